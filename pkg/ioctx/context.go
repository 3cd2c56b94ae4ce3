// Package ioctx carries the command's output streams in a context.Context.
package ioctx

import (
	"context"
	"io"
)

type stdoutKey struct{}
type stderrKey struct{}

// StdoutFromContext returns the stdout writer, or io.Discard.
func StdoutFromContext(ctx context.Context) io.Writer {
	return writerFrom(ctx, stdoutKey{})
}

func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// StderrFromContext returns the stderr writer, or io.Discard.
func StderrFromContext(ctx context.Context) io.Writer {
	return writerFrom(ctx, stderrKey{})
}

func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stderrKey{}, w)
}

func writerFrom(ctx context.Context, key any) io.Writer {
	w, ok := ctx.Value(key).(io.Writer)
	if !ok {
		return io.Discard
	}

	return w
}
