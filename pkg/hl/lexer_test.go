package hl_test

import (
	"testing"

	"github.com/alecthomas/chroma"
	"github.com/vito/is"
	"github.com/vito/typeof/pkg/hl"
)

func TestLiteralLexer(t *testing.T) {
	for _, test := range []struct {
		Source string
		Token  chroma.Token
	}{
		{`null`, chroma.Token{Type: chroma.KeywordConstant, Value: "null"}},
		{`-Infinity`, chroma.Token{Type: chroma.KeywordConstant, Value: "-Infinity"}},
		{`42`, chroma.Token{Type: chroma.LiteralNumber, Value: "42"}},
		{`0x1f`, chroma.Token{Type: chroma.LiteralNumberHex, Value: "0x1f"}},
		{`"hi \"there\""`, chroma.Token{Type: chroma.LiteralString, Value: `"hi \"there\""`}},
		{`/a+/gi`, chroma.Token{Type: chroma.LiteralStringRegex, Value: "/a+/gi"}},
		{`:key`, chroma.Token{Type: chroma.LiteralStringSymbol, Value: ":key"}},
		{`; note`, chroma.Token{Type: chroma.CommentSingle, Value: "; note"}},
	} {
		test := test
		t.Run(test.Source, func(t *testing.T) {
			is := is.New(t)

			tokens, err := chroma.Tokenise(hl.LiteralLexer, nil, test.Source)
			is.NoErr(err)
			is.True(len(tokens) > 0)
			is.Equal(tokens[0], test.Token)
		})
	}
}

func TestLiteralLexerForms(t *testing.T) {
	is := is.New(t)

	tokens, err := chroma.Tokenise(hl.LiteralLexer, nil, `(map [:a 1]) (unknown)`)
	is.NoErr(err)

	var builtins, functions []string
	for _, tok := range tokens {
		is.True(tok.Type != chroma.Error)

		switch tok.Type {
		case chroma.NameBuiltin:
			builtins = append(builtins, tok.Value)
		case chroma.NameFunction:
			functions = append(functions, tok.Value)
		}
	}

	is.Equal(builtins, []string{"map"})
	is.Equal(functions, []string{"unknown"})
}
