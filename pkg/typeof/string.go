package typeof

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

type String string

var _ Key = String("")

func (String) isKey() {}

func (value String) String() string {
	return fmt.Sprintf("%q", string(value))
}

func (String) Class() string {
	return "String"
}

// Len returns the length in UTF-16 code units, which is what the length slot
// reports.
func (value String) Len() int {
	return utf16Len(string(value))
}

func (value String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && value == o
}

func (value String) Decode(dest any) error {
	switch x := dest.(type) {
	case *String:
		*x = value
		return nil
	case *Key:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	case *string:
		*x = string(value)
		return nil
	case *[]byte:
		*x = []byte(value)
		return nil
	default:
		return DecodeError{
			Source:      value,
			Destination: dest,
		}
	}
}

// getOwn serves the length and index slots every string owns.
func (value String) getOwn(key Key) (Value, bool) {
	name, ok := key.(String)
	if !ok {
		return nil, false
	}

	if name == lengthKey {
		return Number(value.Len()), true
	}

	idx, ok := arrayIndex(name)
	if !ok {
		return nil, false
	}

	units := utf16.Encode([]rune(string(value)))
	if idx >= len(units) {
		return nil, false
	}

	return String(utf16.Decode(units[idx : idx+1])), true
}

// arrayIndex parses a canonical non-negative integer key.
func arrayIndex(name String) (int, bool) {
	idx, err := strconv.Atoi(string(name))
	if err != nil || idx < 0 || strconv.Itoa(idx) != string(name) {
		return 0, false
	}

	return idx, true
}

func indexKeys(n int) []Key {
	keys := make([]Key, n)
	for i := range keys {
		keys[i] = String(strconv.Itoa(i))
	}

	return keys
}
