package typeof

import (
	"math"
	"strconv"
)

// Number is a double-precision number, including NaN and the infinities.
type Number float64

var _ Value = Number(0)

// NaN is the not-a-number sentinel.
var NaN = Number(math.NaN())

func (value Number) String() string {
	f := float64(value)

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func (Number) Class() string {
	return "Number"
}

// Equal follows strict equality: NaN is not equal to itself.
func (value Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && value == o
}

func (value Number) Decode(dest any) error {
	switch x := dest.(type) {
	case *Number:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	case *float64:
		*x = float64(value)
		return nil
	case *int:
		f := float64(value)
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return DecodeError{
				Source:      value,
				Destination: dest,
			}
		}

		*x = int(f)
		return nil
	default:
		return DecodeError{
			Source:      value,
			Destination: dest,
		}
	}
}

func (value Number) isNaN() bool {
	return math.IsNaN(float64(value))
}
