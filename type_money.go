package clf

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display ledger amounts.
const DefaultCurrency = money.USD

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of the given value and currency. An empty currency means DefaultCurrency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Zero
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Rounded returns m rounded to the currency fraction digits, half away from zero.
func (m Money) Rounded() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}

// String returns the value in accounting notation: rounded, with the currency
// symbol and thousands separators; negative values are wrapped in parentheses.
func (m Money) String() string {
	cur := m.currency()
	units := m.value.Abs().Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	var s string
	if units.LessThanOrEqual(maxMinorUnits) {
		s = cur.Formatter().Format(units.IntPart())
	} else {
		s = formatMinorUnits(cur, units)
	}
	if m.value.Round(int32(cur.Fraction)).IsNegative() {
		return "(" + s + ")"
	}
	return s
}

// maxMinorUnits is the largest amount, in minor units, the currency formatter accepts.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// formatMinorUnits formats a whole, non negative amount of minor units like
// the currency formatter, without its int64 limit.
func formatMinorUnits(cur money.Currency, units decimal.Decimal) string {
	digits := units.String()
	if n := cur.Fraction + 1 - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	whole, fraction := digits[:len(digits)-cur.Fraction], digits[len(digits)-cur.Fraction:]

	var b strings.Builder
	for i := range len(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteByte(whole[i])
	}
	if cur.Fraction > 0 {
		b.WriteString(cur.Decimal)
		b.WriteString(fraction)
	}
	s := strings.Replace(cur.Template, "1", b.String(), 1)
	return strings.Replace(s, "$", cur.Grapheme, 1)
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: m.cur} }

// FormatCurrency formats an amount in DefaultCurrency accounting notation,
// e.g. -1234.5 is "($1,234.50)".
func FormatCurrency(amount decimal.Decimal) string {
	return M(amount, DefaultCurrency).String()
}

// round2 is the rounding used for every balance the ledger reports.
func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
