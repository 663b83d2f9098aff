package clf

import (
	"fmt"
	"iter"

	"github.com/etnz/clf/date"
	"github.com/shopspring/decimal"
)

// Balance returns the sum of the amounts recorded on the account, rounded to
// 2 decimal places (half away from zero). It is zero when the account has
// no transaction.
func (l *Ledger) Balance(account AccountID) (decimal.Decimal, error) {
	total := decimal.Zero
	for tx, err := range l.log.All() {
		if err != nil {
			return decimal.Zero, err
		}
		if tx.Account == account {
			total = total.Add(tx.Amount)
		}
	}
	return round2(total), nil
}

// FilterKind selects how a query matches transactions.
type FilterKind int

const (
	// ByAccount matches the transactions of one account.
	ByAccount FilterKind = iota + 1
	// ByAmount matches the transactions whose absolute amount equals the absolute query amount.
	ByAmount
	// ByAccountAndAmount combines ByAccount and ByAmount.
	ByAccountAndAmount
)

func (k FilterKind) String() string {
	switch k {
	case ByAccount:
		return "account"
	case ByAmount:
		return "amount"
	case ByAccountAndAmount:
		return "account and amount"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(k))
	}
}

// Filter describes a transaction query.
type Filter struct {
	Kind    FilterKind
	Account AccountID
	Amount  decimal.Decimal
}

// AccountFilter returns a filter on the account.
func AccountFilter(account AccountID) Filter { return Filter{Kind: ByAccount, Account: account} }

// AmountFilter returns a filter on the absolute amount.
func AmountFilter(amount decimal.Decimal) Filter { return Filter{Kind: ByAmount, Amount: amount} }

// AccountAmountFilter returns a filter on both the account and the absolute amount.
func AccountAmountFilter(account AccountID, amount decimal.Decimal) Filter {
	return Filter{Kind: ByAccountAndAmount, Account: account, Amount: amount}
}

// match returns the predicate of the filter, or an InvalidQuery error.
func (f Filter) match() (func(Transaction) bool, error) {
	byAccount := func(tx Transaction) bool { return tx.Account == f.Account }
	byAmount := func(tx Transaction) bool { return tx.Amount.Abs().Equal(f.Amount.Abs()) }
	switch f.Kind {
	case ByAccount:
		return byAccount, nil
	case ByAmount:
		return byAmount, nil
	case ByAccountAndAmount:
		return func(tx Transaction) bool { return byAccount(tx) && byAmount(tx) }, nil
	default:
		return nil, newError(InvalidQuery, nil, "unknown filter %v", f.Kind)
	}
}

// Query returns the transactions matching the filter, in file order.
//
// The filter is checked immediately; the log is read only when the sequence is
// ranged over, and again on every range.
func (l *Ledger) Query(f Filter) (iter.Seq2[Transaction, error], error) {
	match, err := f.match()
	if err != nil {
		return nil, err
	}
	return l.where(match), nil
}

// Recent returns the transactions of the last 'days' days, today included, in file order.
func (l *Ledger) Recent(days int) iter.Seq2[Transaction, error] {
	return l.During(date.LastDays(l.Today(), days))
}

// During returns the transactions whose day is in r, in file order.
func (l *Ledger) During(r date.Range) iter.Seq2[Transaction, error] {
	return l.where(func(tx Transaction) bool { return r.Contains(tx.Time.Date()) })
}

// Today returns the current day of the ledger clock.
func (l *Ledger) Today() date.Date { return date.FromTime(l.Now()).Date() }

func (l *Ledger) where(match func(Transaction) bool) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		for tx, err := range l.log.All() {
			if err != nil {
				yield(tx, err)
				return
			}
			if match(tx) && !yield(tx, nil) {
				return
			}
		}
	}
}

// Collect drains a transaction sequence into a slice, stopping at the first error.
func Collect(seq iter.Seq2[Transaction, error]) ([]Transaction, error) {
	var txs []Transaction
	for tx, err := range seq {
		if err != nil {
			return txs, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
