package date

import "fmt"

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between two days, boundaries included.
func NewRange(from, to Date) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// LastDays returns the range of the n days ending on 'on' (included).
// A range of 1 day contains only 'on'.
func LastDays(on Date, n int) Range {
	if n < 1 {
		n = 1
	}
	return Range{From: on.Add(1 - n), To: on}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// String returns the range as "from..to".
func (r Range) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return fmt.Sprintf("%s..%s", r.From, r.To)
}
