package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/morikuni/aec"
	perrors "github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/vito/typeof/pkg/ioctx"
	"github.com/vito/typeof/pkg/typeof"
)

// WriteError renders an error to the context's stderr, letting it explain
// itself if it knows how.
func WriteError(ctx context.Context, err error) {
	out := ioctx.StderrFromContext(ctx)

	var nice typeof.NiceError
	if errors.As(err, &nice) {
		metaErr := nice.NiceError(out)
		if metaErr != nil {
			fmt.Fprintf(out, "\x1b[31merrored while erroring: %s\x1b[0m\n", metaErr)
			fmt.Fprintf(out, "\x1b[31moriginal error: %T: %s\x1b[0m\n", err, err)
		}

		return
	}

	fmt.Fprintln(out, aec.RedF.Apply(err.Error()))

	if cause := perrors.Cause(err); cause != err {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "cause: %s\n", cause)
	}
}

// FlagError is returned for bad command-line flags.
type FlagError struct {
	Err   error
	Flags *pflag.FlagSet
}

func (err FlagError) Error() string {
	return err.Err.Error()
}

func (err FlagError) Unwrap() error {
	return err.Err
}

func (err FlagError) NiceError(w io.Writer) error {
	fmt.Fprintln(w, aec.RedF.Apply(err.Error()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "flags:")

	// this is a little hokey, but it should be fine
	cp := *err.Flags
	cp.SetOutput(w)
	cp.PrintDefaults()

	return nil
}
