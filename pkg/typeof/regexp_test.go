package typeof_test

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/vito/is"
	"github.com/vito/typeof/pkg/typeof"
)

func TestRegExpSyntax(t *testing.T) {
	for _, test := range []struct {
		Source  string
		Flags   string
		Match   string
		NoMatch string
	}{
		{`a(?=b)`, "", "ab", "ac"},
		{`a(?!b)`, "", "ac", "ab"},
		{`(?<=x)y`, "", "xy", "zy"},
		{`(a)\1`, "", "aa", "ab"},
		{`(?<name>x)\k<name>`, "", "xx", "xy"},
		{`^b$`, "m", "a\nb", "ab"},
		{`a.b`, "s", "a\nb", "ab"},
		{`ABC`, "i", "abc", "abd"},
		{`\d+`, "gu", "42", "x"},
	} {
		test := test
		t.Run("/"+test.Source+"/"+test.Flags, func(t *testing.T) {
			is := is.New(t)

			re, err := typeof.NewRegExp(test.Source, test.Flags)
			is.NoErr(err)
			is.True(typeof.IsPatternObject(re))
			is.True(re.Test(test.Match))
			is.True(!re.Test(test.NoMatch))
		})
	}
}

func TestRegExpInvalid(t *testing.T) {
	is := is.New(t)

	_, err := typeof.NewRegExp(`(`, "")
	is.True(err != nil)

	_, err = typeof.NewRegExp(`a`, "q")
	is.True(err != nil)
}

func TestRegExpDecode(t *testing.T) {
	is := is.New(t)

	re := mustRegExp(`a(?=b)`, "")

	var compiled *regexp2.Regexp
	is.NoErr(re.Decode(&compiled))

	matched, err := compiled.MatchString("ab")
	is.NoErr(err)
	is.True(matched)
}
