package typeof

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/morikuni/aec"
	"github.com/spy16/slurp/reader"
)

// NiceError is an error that is able to provide some extra guidance to the
// user.
type NiceError interface {
	error

	NiceError(io.Writer) error
}

type DecodeError struct {
	Source      any
	Destination any
}

func (err DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s (%T) into %T", err.Source, err.Source, err.Destination)
}

// TypeError is returned by native routines called on the wrong kind of
// value.
type TypeError struct {
	Message string
}

func (err TypeError) Error() string {
	return "TypeError: " + err.Message
}

// ConvertError is returned when a Go value has no runtime equivalent.
type ConvertError struct {
	Source any
	Reason string
}

func (err ConvertError) Error() string {
	if err.Reason == "" {
		return fmt.Sprintf("cannot convert %T to Value: %+v", err.Source, err.Source)
	}

	return fmt.Sprintf("cannot convert %T to Value: %s", err.Source, err.Reason)
}

type ArityError struct {
	Name     string
	Need     int
	Variadic bool
	Have     int
}

func (err ArityError) Error() string {
	var msg string
	if err.Variadic {
		msg = "%s arity: need at least %d arguments, given %d"
	} else {
		msg = "%s arity: need %d arguments, given %d"
	}

	return fmt.Sprintf(
		msg,
		err.Name,
		err.Need,
		err.Have,
	)
}

// ReadError is returned when the reader trips on a syntax token.
type ReadError struct {
	Err reader.Error
}

func (err ReadError) Error() string {
	return fmt.Sprintf("%s: %s", err.Err.Begin, err.Err)
}

// Unwrap returns the underlying cause, e.g. an UnknownFormError.
func (err ReadError) Unwrap() error {
	cause := err.Err.Cause
	for {
		inner, ok := cause.(reader.Error)
		if !ok {
			return cause
		}

		cause = inner.Cause
	}
}

// UnknownFormError is returned by the reader for an unrecognized
// constructor form.
type UnknownFormError struct {
	Name string
}

func (err UnknownFormError) Error() string {
	return fmt.Sprintf("unknown form: (%s ...)", err.Name)
}

func (err UnknownFormError) NiceError(w io.Writer) error {
	fmt.Fprintln(w, aec.RedF.Apply(err.Error()))

	return writeSuggestions(w, err.Name, FormNames())
}

// UnknownPredicateError is returned when looking up a predicate by a name
// which does not exist.
type UnknownPredicateError struct {
	Name string
}

func (err UnknownPredicateError) Error() string {
	return fmt.Sprintf("unknown predicate: %s", err.Name)
}

func (err UnknownPredicateError) NiceError(w io.Writer) error {
	fmt.Fprintln(w, aec.RedF.Apply(err.Error()))

	names := make([]string, len(Predicates))
	for i, pred := range Predicates {
		names[i] = pred.Name
	}

	return writeSuggestions(w, err.Name, names)
}

// Suggest returns the candidates closest to name, best first.
func Suggest(name string, candidates []string) []string {
	const threshold = 0.6

	type scored struct {
		name  string
		score float64
	}

	var matches []scored
	for _, c := range candidates {
		score := levenshtein.Match(strings.ToLower(name), strings.ToLower(c), nil)
		if score >= threshold {
			matches = append(matches, scored{c, score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}

	return names
}

func writeSuggestions(w io.Writer, name string, candidates []string) error {
	suggestions := Suggest(name, candidates)
	if len(suggestions) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "did you mean:")
	fmt.Fprintln(w)

	for _, s := range suggestions {
		_, err := fmt.Fprintf(w, "  %s\n", aec.YellowF.Apply(s))
		if err != nil {
			return err
		}
	}

	return nil
}
