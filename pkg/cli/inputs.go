package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/vito/typeof/pkg/typeof"
)

// ReadLiterals reads one value from each literal argument. Every literal
// that fails to read is reported.
func ReadLiterals(literals []string) ([]typeof.Value, error) {
	var errs error

	vals := make([]typeof.Value, 0, len(literals))
	for i, lit := range literals {
		val, err := typeof.Read(lit)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("literal %d: %w", i+1, err))
			continue
		}

		vals = append(vals, val)
	}

	if errs != nil {
		return nil, errs
	}

	return vals, nil
}

// ReadStream reads every value from a stream of literals, or of JSON
// documents if asJSON is set.
func ReadStream(r io.Reader, name string, asJSON bool) ([]typeof.Value, error) {
	if !asJSON {
		return typeof.ReadAll(r, name)
	}

	dec := typeof.NewDecoder(r)

	var vals []typeof.Value
	for {
		val, err := dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return vals, nil
			}

			return nil, fmt.Errorf("%s: %w", name, err)
		}

		vals = append(vals, val)
	}
}

// ReadJSONArgs decodes one JSON document from each argument.
func ReadJSONArgs(docs []string) ([]typeof.Value, error) {
	var errs error

	vals := make([]typeof.Value, 0, len(docs))
	for i, doc := range docs {
		val, err := typeof.UnmarshalJSON([]byte(doc))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("document %d: %w", i+1, err))
			continue
		}

		vals = append(vals, val)
	}

	if errs != nil {
		return nil, errs
	}

	return vals, nil
}
