package typeof

import "fmt"

// Token is a unique token. Two tokens are equal only if they are the same
// token, regardless of description.
type Token struct {
	Description string
}

var _ Key = (*Token)(nil)

// NewToken returns a fresh token.
func NewToken(desc string) *Token {
	return &Token{Description: desc}
}

// Well-known tokens.
var (
	// IteratorKey names the iteration protocol routine.
	IteratorKey = NewToken("Symbol.iterator")

	// ToStringTagKey names a slot which overrides the class shown by Tag.
	ToStringTagKey = NewToken("Symbol.toStringTag")

	// TypeNameKey marks a composite as a custom type descriptor.
	TypeNameKey = NewToken("typeof.typeName")
)

func (*Token) isKey() {}

func (value *Token) String() string {
	return fmt.Sprintf("Symbol(%s)", value.Description)
}

func (*Token) Class() string {
	return "Symbol"
}

func (value *Token) Equal(other Value) bool {
	var o *Token
	return decodes(other, &o) && o == value
}

func (value *Token) Decode(dest any) error {
	switch x := dest.(type) {
	case **Token:
		*x = value
		return nil
	case *Key:
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
