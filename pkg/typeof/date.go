package typeof

import (
	"math"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is used to determine the current time.
var Clock = clockwork.NewRealClock()

// Date is a calendar timestamp. A Date built from unparseable input is
// still a Date, but its value is invalid.
type Date struct {
	*Object

	Time  time.Time
	Valid bool
}

var _ Composite = (*Date)(nil)

// maxDateMillis bounds the time value of a valid Date in either direction.
const maxDateMillis = 8.64e15

var (
	minDateTime = time.UnixMilli(-maxDateMillis)
	maxDateTime = time.UnixMilli(maxDateMillis)
)

// dateLayouts are tried in order by ParseDate. Layouts without a zone are
// read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"1/2/2006 15:04:05",
	"1/2/2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	"Mon Jan 2 2006 15:04:05 GMT-0700",
	"Mon Jan 2 2006 15:04:05 MST",
	"Mon Jan 2 2006 15:04:05",
	"Mon Jan 2 2006",
	"Mon, Jan 2 2006",
	"Jan 2 2006 15:04:05",
	"Jan 2 2006 15:04",
	"Jan 2 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2 2006 15:04:05",
	"January 2 2006",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006",
	"2 January 2006",
}

// NewDate returns a Date for t. Times beyond the host's representable range
// yield an invalid Date.
func NewDate(t time.Time) *Date {
	if t.Before(minDateTime) || t.After(maxDateTime) {
		return InvalidDate()
	}

	return &Date{
		Object: newObject(DatePrototype),
		Time:   t,
		Valid:  true,
	}
}

// InvalidDate returns a Date whose value is invalid.
func InvalidDate() *Date {
	return &Date{
		Object: newObject(DatePrototype),
	}
}

// ParseDate parses a timestamp. Unparseable input yields an invalid Date
// rather than an error.
func ParseDate(s string) *Date {
	s = strings.Join(strings.Fields(s), " ")

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewDate(t)
		}
	}

	return InvalidDate()
}

// DateFromMillis returns a Date for a time value in milliseconds since the
// epoch. NaN, infinities and values beyond the host's range yield an
// invalid Date.
func DateFromMillis(ms Number) *Date {
	f := float64(ms)
	if math.IsNaN(f) || math.Abs(f) > maxDateMillis {
		return InvalidDate()
	}

	return NewDate(time.UnixMilli(int64(math.Trunc(f))).UTC())
}

// Now returns the current time according to Clock.
func Now() *Date {
	return NewDate(Clock.Now())
}

// Millis returns the time value in milliseconds since the epoch, or NaN.
func (value *Date) Millis() Number {
	if !value.Valid {
		return NaN
	}

	return Number(value.Time.UnixMilli())
}

func (*Date) Class() string {
	return "Date"
}

func (value *Date) String() string {
	if !value.Valid {
		return "(date NaN)"
	}

	return `(date "` + value.Time.UTC().Format("2006-01-02T15:04:05.000Z") + `")`
}

func (value *Date) Equal(other Value) bool {
	var o *Date
	return decodes(other, &o) && o == value
}

func (value *Date) Decode(dest any) error {
	switch x := dest.(type) {
	case **Date:
		*x = value
		return nil
	case *time.Time:
		if !value.Valid {
			return DecodeError{
				Source:      value,
				Destination: dest,
			}
		}

		*x = value.Time
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
