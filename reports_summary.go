package clf

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SummaryRow is the balance of one account.
type SummaryRow struct {
	Account AccountID
	Name    string
	Total   decimal.Decimal
}

// Summary aggregates every transaction into one balance per known account.
type Summary struct {
	Rows []SummaryRow // ordered by ascending numeric account id

	// Unknown holds the totals of transactions naming an account that is not
	// in the directory. They are not part of Rows nor of the grand total.
	Unknown []SummaryRow
}

// GrandTotal returns the sum of the row totals.
func (s *Summary) GrandTotal() decimal.Decimal { return GrandTotal(s.Rows) }

// GrandTotal returns the sum of the totals of rows.
func GrandTotal(rows []SummaryRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Total)
	}
	return total
}

// Summarize computes the balance of every account of the directory.
//
// Transactions on an account missing from the directory are skipped: a
// warning is logged for each such account and its total is reported in
// Summary.Unknown.
func (l *Ledger) Summarize() (*Summary, error) {
	return l.summarize(false)
}

// SummarizeStrict is like Summarize but fails with an UnknownAccount error on
// the first transaction naming an account missing from the directory.
func (l *Ledger) SummarizeStrict() (*Summary, error) {
	return l.summarize(true)
}

func (l *Ledger) summarize(strict bool) (*Summary, error) {
	dir, err := l.accounts.Load()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	index := make(map[AccountID]int, dir.Len())
	for i, a := range dir.Sorted() {
		summary.Rows = append(summary.Rows, SummaryRow{Account: a.ID, Name: a.Name, Total: decimal.Zero})
		index[a.ID] = i
	}

	unknown := make(map[AccountID]int)
	for tx, err := range l.log.All() {
		if err != nil {
			return nil, err
		}
		if i, ok := index[tx.Account]; ok {
			summary.Rows[i].Total = summary.Rows[i].Total.Add(tx.Amount)
			continue
		}
		if strict {
			return nil, newError(UnknownAccount, nil, "transaction %v names account %s which is not defined", tx.Time, tx.Account)
		}
		i, seen := unknown[tx.Account]
		if !seen {
			i = len(summary.Unknown)
			unknown[tx.Account] = i
			summary.Unknown = append(summary.Unknown, SummaryRow{Account: tx.Account, Total: decimal.Zero})
			l.Logger.WithFields(logrus.Fields{"account": tx.Account}).Warn("transactions on an undefined account are left out of the summary")
		}
		summary.Unknown[i].Total = summary.Unknown[i].Total.Add(tx.Amount)
	}

	for i := range summary.Rows {
		summary.Rows[i].Total = round2(summary.Rows[i].Total)
	}
	for i := range summary.Unknown {
		summary.Unknown[i].Total = round2(summary.Unknown[i].Total)
	}
	return summary, nil
}
