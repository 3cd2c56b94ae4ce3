package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	perrors "github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/vito/is"
	"github.com/vito/typeof/pkg/cli"
	"github.com/vito/typeof/pkg/ioctx"
	"github.com/vito/typeof/pkg/typeof"
)

func TestWriteErrorNice(t *testing.T) {
	is := is.New(t)

	stderr := new(bytes.Buffer)
	ctx := ioctx.StderrToContext(context.Background(), stderr)

	_, err := typeof.LookupPredicate("isTruthyy")
	cli.WriteError(ctx, fmt.Errorf("config: %w", err))

	is.True(strings.Contains(stderr.String(), "unknown predicate: isTruthyy"))
	is.True(strings.Contains(stderr.String(), "did you mean:"))
	is.True(strings.Contains(stderr.String(), "isTruthy"))
}

func TestWriteErrorCause(t *testing.T) {
	is := is.New(t)

	stderr := new(bytes.Buffer)
	ctx := ioctx.StderrToContext(context.Background(), stderr)

	cli.WriteError(ctx, perrors.Wrap(errors.New("disk on fire"), "read input"))

	is.True(strings.Contains(stderr.String(), "read input: disk on fire"))
	is.True(strings.Contains(stderr.String(), "cause: disk on fire"))
}

func TestWriteErrorPlain(t *testing.T) {
	is := is.New(t)

	stderr := new(bytes.Buffer)
	ctx := ioctx.StderrToContext(context.Background(), stderr)

	cli.WriteError(ctx, errors.New("plain"))
	is.True(strings.Contains(stderr.String(), "plain"))
	is.True(!strings.Contains(stderr.String(), "cause:"))
}

func TestFlagError(t *testing.T) {
	is := is.New(t)

	flags := pflag.NewFlagSet("typeof", pflag.ContinueOnError)
	flags.Bool("json", false, "read arguments as JSON")

	stderr := new(bytes.Buffer)
	ctx := ioctx.StderrToContext(context.Background(), stderr)

	inner := errors.New("unknown flag: --jsn")
	err := cli.FlagError{Err: inner, Flags: flags}
	is.True(errors.Is(err, inner))

	cli.WriteError(ctx, err)
	is.True(strings.Contains(stderr.String(), "unknown flag: --jsn"))
	is.True(strings.Contains(stderr.String(), "flags:"))
	is.True(strings.Contains(stderr.String(), "--json"))
	is.True(strings.Contains(stderr.String(), "read arguments as JSON"))
}
