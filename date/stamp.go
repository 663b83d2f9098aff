package date

import (
	"fmt"
	"strconv"
	"time"
)

// StampFormat is the layout of a Stamp in the transaction store: 12 digits, no separators.
const StampFormat = "200601021504"

// Stamp is a point in time with minute resolution, as recorded on transactions.
//
// It carries no time zone: the wall clock reading at write time is what is stored.
type Stamp struct {
	day    Date
	hour   int
	minute int
}

// NewStamp returns a normalized Stamp.
func NewStamp(year int, month time.Month, day, hour, minute int) Stamp {
	return FromTime(time.Date(year, month, day, hour, minute, 0, 0, time.UTC))
}

// FromTime truncates t to the minute, in t's own location.
func FromTime(t time.Time) Stamp {
	return Stamp{
		day:    New(t.Date()),
		hour:   t.Hour(),
		minute: t.Minute(),
	}
}

// Date returns the day of the stamp.
func (s Stamp) Date() Date { return s.day }

// Hour returns the hour of the stamp, in [0, 23].
func (s Stamp) Hour() int { return s.hour }

// Minute returns the minute of the stamp, in [0, 59].
func (s Stamp) Minute() int { return s.minute }

// IsZero reports whether s is the zero Stamp.
func (s Stamp) IsZero() bool { return s == Stamp{} }

func (s Stamp) time() time.Time {
	return time.Date(s.day.y, s.day.m, s.day.d, s.hour, s.minute, 0, 0, time.UTC)
}

// Before reports whether s is strictly before x.
func (s Stamp) Before(x Stamp) bool { return s.time().Before(x.time()) }

// After reports whether s is strictly after x.
func (s Stamp) After(x Stamp) bool { return s.time().After(x.time()) }

// String returns the stamp in StampFormat.
func (s Stamp) String() string { return s.time().Format(StampFormat) }

// ParseStamp parses a 12 digit YYYYMMDDHHmm stamp.
//
// Fields are extracted at fixed offsets and must describe an existing minute:
// "202502301200" (February 30th) is rejected rather than normalized.
func ParseStamp(str string) (Stamp, error) {
	if len(str) != len(StampFormat) {
		return Stamp{}, fmt.Errorf("invalid stamp %q: want %d digits (YYYYMMDDHHmm)", str, len(StampFormat))
	}
	var fields [5]int
	offsets := [...]struct{ from, to int }{{0, 4}, {4, 6}, {6, 8}, {8, 10}, {10, 12}}
	for i, o := range offsets {
		part := str[o.from:o.to]
		v, err := strconv.Atoi(part)
		if err != nil || part[0] == '+' || part[0] == '-' {
			return Stamp{}, fmt.Errorf("invalid stamp %q: %q is not a number", str, part)
		}
		fields[i] = v
	}
	year, month, day, hour, minute := fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4]
	s := NewStamp(year, month, day, hour, minute)
	if s.day.y != year || s.day.m != month || s.day.d != day || s.hour != hour || s.minute != minute {
		return Stamp{}, fmt.Errorf("invalid stamp %q: not a valid date and time", str)
	}
	return s, nil
}

// MustParseStamp is like ParseStamp but panics on error.
func MustParseStamp(str string) Stamp {
	s, err := ParseStamp(str)
	if err != nil {
		panic(err.Error())
	}
	return s
}
