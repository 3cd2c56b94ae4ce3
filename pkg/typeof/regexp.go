package typeof

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// RegExp is a pattern object.
type RegExp struct {
	*Object

	Source string
	Flags  string

	re *regexp2.Regexp
}

var _ Composite = (*RegExp)(nil)

// NewRegExp compiles a pattern with ECMAScript semantics. Flags i, m and s
// change matching; g, y, u and d are recorded but do not affect compilation.
//
// ECMAScript mode always keeps line terminators out of '.', so the s flag
// compiles in regexp2's default mode instead.
func NewRegExp(source, flags string) (*RegExp, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if strings.ContainsRune(flags, 's') {
		opts = regexp2.None
	}

	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'g', 'y', 'u', 'd':
		default:
			return nil, fmt.Errorf("invalid regular expression flags: %q", flags)
		}
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression /%s/: %w", source, err)
	}

	obj := newObject(RegExpPrototype)
	obj.SetHidden(String("lastIndex"), Number(0))

	return &RegExp{
		Object: obj,
		Source: source,
		Flags:  flags,
		re:     re,
	}, nil
}

// Test reports whether the pattern matches the string.
func (value *RegExp) Test(s string) bool {
	matched, err := value.re.MatchString(s)
	return err == nil && matched
}

func (value *RegExp) accessor(key Key) (Value, bool) {
	switch key {
	case String("source"):
		return String(value.Source), true
	case String("flags"):
		return String(value.Flags), true
	case String("global"):
		return Bool(strings.ContainsRune(value.Flags, 'g')), true
	default:
		return nil, false
	}
}

func (*RegExp) Class() string {
	return "RegExp"
}

func (value *RegExp) String() string {
	return "/" + value.Source + "/" + value.Flags
}

func (value *RegExp) Equal(other Value) bool {
	var o *RegExp
	return decodes(other, &o) && o == value
}

func (value *RegExp) Decode(dest any) error {
	switch x := dest.(type) {
	case **RegExp:
		*x = value
		return nil
	case **regexp2.Regexp:
		*x = value.re
		return nil
	case *Composite:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	default:
		return DecodeError{
			Source:      value,
			Destination: dest,
		}
	}
}
