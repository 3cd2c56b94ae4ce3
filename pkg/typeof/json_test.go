package typeof_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vito/is"
	"github.com/vito/typeof/pkg/typeof"
	. "github.com/vito/typeof/pkg/typeoftest"
)

func TestUnmarshalJSON(t *testing.T) {
	for _, test := range []struct {
		JSON      string
		Repr      string
		Predicate string
	}{
		{`null`, "null", "isAbsent"},
		{`true`, "true", "isTrue"},
		{`false`, "false", "isFalse"},
		{`0`, "0", "isNumeric"},
		{`-12.5`, "-12.5", "isNumeric"},
		{`1e400`, "Infinity", "isNumeric"},
		{`-1e400`, "-Infinity", "isTruthy"},
		{`1e-400`, "0", "isFalsey"},
		{`""`, `""`, "isEmpty"},
		{`"hi"`, `"hi"`, "isTextual"},
		{`[]`, "[]", "isOrderedSequence"},
		{`[1,"two",null]`, `[1, "two", null]`, "notEmpty"},
		{`{}`, "{}", "isPlainRecord"},
		{`{"b":1,"a":{"c":[]}}`, `{b: 1, a: {c: []}}`, "isPlainRecord"},
		{`{"not an identifier":1}`, `{"not an identifier": 1}`, "notEmpty"},
	} {
		test := test
		t.Run(test.JSON, func(t *testing.T) {
			is := is.New(t)

			val, err := typeof.UnmarshalJSON([]byte(test.JSON))
			is.NoErr(err)
			is.Equal(val.String(), test.Repr)

			pred, err := typeof.LookupPredicate(test.Predicate)
			is.NoErr(err)
			is.True(pred.Check(val))
		})
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	for _, src := range []string{
		``,
		`{`,
		`[1,`,
		`{"a"}`,
	} {
		src := src
		t.Run(src, func(t *testing.T) {
			is := is.New(t)

			_, err := typeof.UnmarshalJSON([]byte(src))
			is.True(err != nil)
		})
	}
}

func TestDecoderStream(t *testing.T) {
	is := is.New(t)

	dec := typeof.NewDecoder(strings.NewReader(`1 "two" [3] {"four":4}`))

	var vals []typeof.Value
	for {
		val, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		is.NoErr(err)
		vals = append(vals, val)
	}

	is.Equal(len(vals), 4)
	Equal(t, vals[0], typeof.Number(1))
	Equal(t, vals[1], typeof.String("two"))
	EqualRepr(t, vals[2], typeof.NewArray(typeof.Number(3)))
	EqualRepr(t, vals[3], typeof.NewRecord(typeof.Slots{"four": typeof.Number(4)}))
}

func TestDecoderDecode(t *testing.T) {
	is := is.New(t)

	dec := typeof.NewDecoder(strings.NewReader(`"hello" 42`))

	var str string
	is.NoErr(dec.Decode(&str))
	is.Equal(str, "hello")

	var num typeof.Number
	is.NoErr(dec.Decode(&num))
	is.Equal(num, typeof.Number(42))
}

func TestMarshalReport(t *testing.T) {
	is := is.New(t)

	payload, err := typeof.MarshalJSON(typeof.Report{
		Value:      "[]",
		Tag:        "[object Array]",
		Predicates: []string{"isOrderedSequence"},
		Empty:      true,
		Truthy:     true,
	})
	is.NoErr(err)
	is.Equal(
		string(payload),
		`{"value":"[]","tag":"[object Array]","predicates":["isOrderedSequence"],"empty":true,"truthy":true}`,
	)
}
