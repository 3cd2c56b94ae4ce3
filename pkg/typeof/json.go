package typeof

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Decoder reads JSON documents as values. Objects keep their key order.
type Decoder struct {
	dec *json.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Decoder{dec}
}

// Next returns the next document, or io.EOF.
func (dec *Decoder) Next() (Value, error) {
	return decodeValue(dec.dec)
}

func (dec *Decoder) Decode(dest any) error {
	val, err := decodeValue(dec.dec)
	if err != nil {
		return err
	}

	return val.Decode(dest)
}

func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

func UnmarshalJSON(payload []byte) (Value, error) {
	return NewDecoder(bytes.NewBuffer(payload)).Next()
}

func MarshalJSON(val any) ([]byte, error) {
	buf := new(bytes.Buffer)

	err := NewEncoder(buf).Encode(val)
	if err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch x := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil

	case json.Number:
		f, err := x.Float64()
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("number %s: %w", x, err)
		}

		return Number(f), nil

	case json.Delim:
		switch x {
		case '{':
			obj := NewObject()

			for dec.More() {
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}

				str, ok := key.(string)
				if !ok {
					return nil, fmt.Errorf("expected string key, got %T", key)
				}

				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}

				obj.Set(String(str), val)
			}

			end, err := dec.Token()
			if err != nil {
				return nil, err
			}

			if end != json.Delim('}') {
				return nil, fmt.Errorf("expected } at end of object, got %v", end)
			}

			return obj, nil

		case '[':
			var vals []Value
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}

				vals = append(vals, val)
			}

			end, err := dec.Token()
			if err != nil {
				return nil, err
			}

			if end != json.Delim(']') {
				return nil, fmt.Errorf("expected ] at end of array, got %v", end)
			}

			return NewArray(vals...), nil

		default:
			return nil, fmt.Errorf("unexpected delimiter: %s", x)
		}

	default:
		return nil, fmt.Errorf("unhandled token type: %T", tok)
	}
}
