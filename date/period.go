package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period: a day, a week starting on Monday, a month, a quarter or a year.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// ParsePeriod parses a period name, singular or adjective ("month" or "monthly").
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

// Range returns the period containing d.
func (p Period) Range(d Date) Range {
	switch p {
	case Weekly:
		// time.Weekday counts from Sunday.
		offset := (int(d.time().Weekday()) + 6) % 7
		monday := d.Add(-offset)
		return Range{From: monday, To: monday.Add(6)}
	case Monthly:
		first := New(d.y, d.m, 1)
		return Range{From: first, To: New(d.y, d.m+1, 0)}
	case Quarterly:
		m := d.m - (d.m-1)%3
		return Range{From: New(d.y, m, 1), To: New(d.y, m+3, 0)}
	case Yearly:
		return Range{From: New(d.y, time.January, 1), To: New(d.y, time.December, 31)}
	default:
		return Range{From: d, To: d}
	}
}
