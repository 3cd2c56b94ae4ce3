package hl

import (
	"github.com/alecthomas/chroma"
	. "github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/vito/typeof/pkg/typeof"
)

// LiteralLexer highlights the literal syntax read by typeof.NewReader.
var LiteralLexer = lexers.Register(MustNewLazyLexer(
	&Config{
		Name:      "typeof",
		Aliases:   []string{"typeof"},
		MimeTypes: []string{"text/x-typeof"},
	},
	literalRules,
))

// taken from chroma's TTY formatter
var ttyMap = map[string]string{
	"30m": "#000000", "31m": "#7f0000", "32m": "#007f00", "33m": "#7f7fe0",
	"34m": "#00007f", "35m": "#7f007f", "36m": "#007f7f", "37m": "#e5e5e5",
	"90m": "#555555", "91m": "#ff0000", "92m": "#00ff00", "93m": "#ffff00",
	"94m": "#0000ff", "95m": "#ff00ff", "96m": "#00ffff", "97m": "#ffffff",
}

// TTY style matches to hex codes used by the TTY formatter to map them to
// specific ANSI escape codes.
var TTYStyle = styles.Register(chroma.MustNewStyle("tty", chroma.StyleEntries{
	chroma.Comment:             ttyMap["95m"] + " italic",
	chroma.KeywordConstant:     ttyMap["33m"],
	chroma.Keyword:             ttyMap["31m"],
	chroma.NameBuiltin:         ttyMap["31m"],
	chroma.NameFunction:        ttyMap["34m"],
	chroma.LiteralNumber:       ttyMap["31m"],
	chroma.LiteralString:       ttyMap["32m"],
	chroma.LiteralStringSymbol: ttyMap["33m"],
	chroma.LiteralStringRegex:  ttyMap["36m"],
	chroma.Punctuation:         ttyMap["90m"],
}))

const symChars = `\w!$%*+<=>?.#\-`

var constants = []string{
	"null",
	"undefined",
	"true",
	"false",
	"NaN",
	"Infinity",
	"-Infinity",
}

func literalRules() Rules {
	wordStart := `((?<![` + symChars + `])|^)`
	wordEnd := `((?![` + symChars + `])|$)`

	return Rules{
		"root": {
			{Pattern: `;.*$`, Type: CommentSingle, Mutator: nil},
			{Pattern: `[\s]+`, Type: Text, Mutator: nil},
			{Pattern: Words(wordStart, wordEnd, constants...), Type: KeywordConstant, Mutator: nil},
			{Pattern: `-?0x[abcdefABCDEF\d]+`, Type: LiteralNumberHex, Mutator: nil},
			{Pattern: `-?\d+(\.\d+)?([eE][+-]?\d+)?`, Type: LiteralNumber, Mutator: nil},
			{Pattern: `"(\\\\|\\"|[^"])*"`, Type: LiteralString, Mutator: nil},
			{Pattern: `/(\\/|[^/\s])+/[a-z]*`, Type: LiteralStringRegex, Mutator: nil},
			{Pattern: `:[` + symChars + `]+`, Type: LiteralStringSymbol, Mutator: nil},
			{Pattern: `(?<=\()` + Words(``, wordEnd, typeof.FormNames()...), Type: NameBuiltin, Mutator: nil},
			{Pattern: `(?<=\()[` + symChars + `]+`, Type: NameFunction, Mutator: nil},
			{Pattern: `[` + symChars + `]+`, Type: NameVariable, Mutator: nil},
			{Pattern: `(\[|\])`, Type: Punctuation, Mutator: nil},
			{Pattern: `(\{|\})`, Type: Punctuation, Mutator: nil},
			{Pattern: `(\(|\))`, Type: Punctuation, Mutator: nil},
			{Pattern: `[,:]`, Type: Punctuation, Mutator: nil},
		},
	}
}
