package clf

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func TestLedger_Summarize(t *testing.T) {
	l, _ := newTestLedger(t)
	writeFile(t, l, AccountsFile, "ACCOUNT 10: Brokerage\nACCOUNT 2: Savings\nACCOUNT 1: Checking\n")
	l.Credit("1", D("1000"), "pay")
	l.Debit("1", D("200.10"), "rent")
	l.Transfer("1", "2", D("300"), "save")
	l.Credit("10", D("0.005"), "dust")

	summary, err := l.Summarize()
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	want := []SummaryRow{
		{Account: "1", Name: "Checking", Total: D("499.9")},
		{Account: "2", Name: "Savings", Total: D("300")},
		{Account: "10", Name: "Brokerage", Total: D("0.01")},
	}
	if len(summary.Rows) != len(want) {
		t.Fatalf("Summarize() has %d rows, want %d", len(summary.Rows), len(want))
	}
	for i, row := range summary.Rows {
		if row.Account != want[i].Account || row.Name != want[i].Name || !row.Total.Equal(want[i].Total) {
			t.Errorf("row %d = %+v, want %+v", i, row, want[i])
		}
	}
	if got := summary.GrandTotal(); !got.Equal(D("799.91")) {
		t.Errorf("GrandTotal() = %s, want 799.91", got)
	}
	if len(summary.Unknown) != 0 {
		t.Errorf("Unknown = %v, want none", summary.Unknown)
	}
}

func TestLedger_SummarizeEmpty(t *testing.T) {
	l, _ := newTestLedger(t)
	summary, err := l.Summarize()
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Rows) != 0 || !summary.GrandTotal().IsZero() {
		t.Errorf("Summarize() of an empty ledger = %+v", summary)
	}
}

func TestLedger_SummarizeGrandTotalMatchesBalances(t *testing.T) {
	l, _ := newTestLedger(t)
	writeFile(t, l, AccountsFile, "ACCOUNT 1: A\nACCOUNT 2: B\nACCOUNT 3: C\n")
	amounts := []string{"10.01", "-3.33", "7", "0.99", "-12.5", "100.10", "-0.01"}
	for i, a := range amounts {
		l.Credit(AccountID([]string{"1", "2", "3", "4"}[i%4]), D(a), "x")
	}

	summary, err := l.Summarize()
	if err != nil {
		t.Fatal(err)
	}

	sumOfBalances := decimal.Zero
	for _, id := range []AccountID{"1", "2", "3"} {
		b, err := l.Balance(id)
		if err != nil {
			t.Fatal(err)
		}
		sumOfBalances = sumOfBalances.Add(b)
	}
	sumOfKnown := decimal.Zero
	txs, _ := l.Transactions()
	for _, tx := range txs {
		if tx.Account != "4" {
			sumOfKnown = sumOfKnown.Add(tx.Amount)
		}
	}

	if got := summary.GrandTotal(); !got.Equal(sumOfBalances) || !got.Equal(sumOfKnown) {
		t.Errorf("GrandTotal() = %s, sum of balances = %s, sum of known amounts = %s", got, sumOfBalances, sumOfKnown)
	}
}

func TestLedger_SummarizeUnknownAccount(t *testing.T) {
	l, hook := newTestLedger(t)
	writeFile(t, l, AccountsFile, "ACCOUNT 1: Checking\n")
	l.Credit("1", D("10"), "known")
	l.Credit("9", D("5"), "unknown")
	l.Credit("9", D("2.5"), "unknown again")
	hook.Reset()

	summary, err := l.Summarize()
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if !summary.GrandTotal().Equal(D("10")) {
		t.Errorf("GrandTotal() = %s, want 10", summary.GrandTotal())
	}
	if len(summary.Unknown) != 1 || summary.Unknown[0].Account != "9" || !summary.Unknown[0].Total.Equal(D("7.5")) {
		t.Errorf("Unknown = %+v, want account 9 with 7.5", summary.Unknown)
	}
	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 1 {
		t.Errorf("logged %d warnings, want 1 per unknown account", warnings)
	}

	if _, err := l.SummarizeStrict(); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("SummarizeStrict() error = %v, want an unknown account error", err)
	}
}

func TestLedger_SummarizeDuplicateAccount(t *testing.T) {
	l, _ := newTestLedger(t)
	l.CreateAccount("5", "Old Name")
	l.CreateAccount("5", "New Name")
	l.Credit("5", D("3"), "x")

	summary, err := l.Summarize()
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Rows) != 1 || summary.Rows[0].Name != "New Name" || !summary.Rows[0].Total.Equal(D("3")) {
		t.Errorf("Summarize() rows = %+v, want one row named %q", summary.Rows, "New Name")
	}
}

func TestLedger_SummarizeMalformedDirectory(t *testing.T) {
	l, _ := newTestLedger(t)
	writeFile(t, l, AccountsFile, "not an account\n")
	if _, err := l.Summarize(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Summarize() error = %v, want a malformed record error", err)
	}
}
