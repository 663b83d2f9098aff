package clf

import (
	"fmt"
	"strings"

	"github.com/etnz/clf/date"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable, timestamped, signed monetary record against one account.
//
// A positive Amount is a credit, a negative Amount a debit.
type Transaction struct {
	Time        date.Stamp
	Account     AccountID
	Amount      decimal.Decimal
	Description string
}

// NewTransaction validates and returns a transaction.
func NewTransaction(on date.Stamp, account AccountID, amount decimal.Decimal, description string) (Transaction, error) {
	if err := validateDescription(description); err != nil {
		return Transaction{}, err
	}
	return Transaction{Time: on, Account: account, Amount: amount, Description: description}, nil
}

// Equal reports whether two transactions hold the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.Time == o.Time && t.Account == o.Account && t.Amount.Equal(o.Amount) && t.Description == o.Description
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s #%s %s %q", t.Time, t.Account, t.Amount, t.Description)
}

// validateDescription rejects descriptions the tab separated store cannot hold.
func validateDescription(description string) error {
	if strings.ContainsAny(description, "\t\r\n") {
		return newError(InvalidInput, nil, "description %q contains a tab or a line break", description)
	}
	return nil
}

// Limits of the amounts typed by the user: less than 10^15 in magnitude,
// with at most 15 decimal places.
const (
	maxAmountDigits = 15
	maxAmountPlaces = 15
)

// ParseAmount parses a dollar amount typed by the user, e.g. "12.50" or "-3".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, newError(InvalidInput, err, "amount %q is not a number", s)
	}
	// bounds on digits and exponent: comparing values would expand 1e1000000000
	coef := d.Coefficient()
	exp := int(d.Exponent())
	if exp < -maxAmountPlaces || exp+len(coef.Abs(coef).String()) > maxAmountDigits {
		return decimal.Zero, newError(InvalidInput, nil, "amount %q is out of range", s)
	}
	return d, nil
}
