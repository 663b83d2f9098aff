package clf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/clf/date"
)

func TestTransactionLogRoundTrip(t *testing.T) {
	log := NewTransactionLog(filepath.Join(t.TempDir(), "nested", "root"))

	var want []Transaction
	for i := range 25 {
		tx := Transaction{
			Time:        date.NewStamp(2021, 3, 1+i, i%24, i),
			Account:     AccountID(fmt.Sprint(i % 4)),
			Amount:      D(fmt.Sprintf("%d.%02d", i*37-400, i*3)),
			Description: fmt.Sprintf("entry #%d: café, 50%% off", i),
		}
		if err := log.Append(tx); err != nil {
			t.Fatalf("Append(%v) unexpected error: %v", tx, err)
		}
		want = append(want, tx)
	}

	got, err := log.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("LoadAll() returned %d transactions, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("LoadAll()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTransactionLogIsRestartable(t *testing.T) {
	log := NewTransactionLog(t.TempDir())
	seq := log.All()

	count := func() int {
		n := 0
		for _, err := range seq {
			if err != nil {
				t.Fatal(err)
			}
			n++
		}
		return n
	}
	if n := count(); n != 0 {
		t.Errorf("missing file: %d transactions, want 0", n)
	}
	log.Append(Transaction{Time: date.MustParseStamp("202001151342"), Account: "1", Amount: D("1")})
	log.Append(Transaction{Time: date.MustParseStamp("202001151343"), Account: "1", Amount: D("2")})
	if n := count(); n != 2 {
		t.Errorf("after two appends: %d transactions, want 2", n)
	}
	// stopping early is fine
	for range seq {
		break
	}
	if n := count(); n != 2 {
		t.Errorf("third range: %d transactions, want 2", n)
	}
}

func TestTransactionLogRejectsTab(t *testing.T) {
	log := NewTransactionLog(t.TempDir())
	err := log.Append(Transaction{Time: date.MustParseStamp("202001151342"), Account: "1", Amount: D("1"), Description: "a\tb"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Append() error = %v, want an invalid input error", err)
	}
	if _, err := os.Stat(log.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("the log file was created for a rejected transaction")
	}
}

func TestTransactionLogStorageError(t *testing.T) {
	root := t.TempDir()
	// a directory where the file should be cannot be read as a log
	if err := os.Mkdir(filepath.Join(root, TransactionsFile), 0755); err != nil {
		t.Fatal(err)
	}
	log := NewTransactionLog(root)

	if _, err := log.LoadAll(); !errors.Is(err, ErrStorage) {
		t.Errorf("LoadAll() error = %v, want a storage error", err)
	}
	err := log.Append(Transaction{Time: date.MustParseStamp("202001151342"), Account: "1", Amount: D("1")})
	if !errors.Is(err, ErrStorage) {
		t.Errorf("Append() error = %v, want a storage error", err)
	}
}

func TestAccountStore(t *testing.T) {
	store := NewAccountStore(t.TempDir())

	dir, err := store.Load()
	if err != nil || dir.Len() != 0 {
		t.Fatalf("Load() of a missing file = %v, %v, want an empty directory", dir, err)
	}

	for _, a := range []Account{{"1", "Checking"}, {"2", "Rainy Day"}, {"1", "Main Checking"}} {
		if err := store.Create(a); err != nil {
			t.Fatalf("Create(%v) unexpected error: %v", a, err)
		}
	}
	b, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "ACCOUNT 1: Checking\nACCOUNT 2: Rainy Day\nACCOUNT 1: Main Checking\n"; got != want {
		t.Errorf("accounts file = %q, want %q", got, want)
	}

	dir, err = store.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	got := slices.Collect(dir.Accounts())
	want := []Account{{"1", "Main Checking"}, {"2", "Rainy Day"}}
	if !slices.Equal(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestAccountStoreMalformed(t *testing.T) {
	store := NewAccountStore(t.TempDir())
	if err := os.WriteFile(store.Path(), []byte("ACCOUNT 1: Checking\ngarbage\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Load() error = %v, want a malformed record error", err)
	}
}

func TestLedgerLongLines(t *testing.T) {
	l, _ := newTestLedger(t)
	long := strings.Repeat("x", 70*1024)

	if _, err := l.CreateAccount("1", "Checking "+long); err != nil {
		t.Fatalf("CreateAccount() unexpected error: %v", err)
	}
	if _, err := l.Credit("1", D("10"), "ok"); err != nil {
		t.Fatalf("Credit() unexpected error: %v", err)
	}
	if _, err := l.Credit("1", D("5"), long); err != nil {
		t.Fatalf("Credit() unexpected error: %v", err)
	}
	if _, err := l.Credit("1", D("1"), "after"); err != nil {
		t.Fatalf("Credit() unexpected error: %v", err)
	}

	txs, err := l.Transactions()
	if err != nil {
		t.Fatalf("Transactions() unexpected error: %v", err)
	}
	if len(txs) != 3 || txs[1].Description != long || txs[2].Description != "after" {
		t.Errorf("Transactions() returned %d transactions, want 3 with the long description in the middle", len(txs))
	}
	if got, err := l.Balance("1"); err != nil || !got.Equal(D("16")) {
		t.Errorf("Balance(1) = %s, %v, want 16", got, err)
	}

	summary, err := l.Summarize()
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if len(summary.Rows) != 1 || summary.Rows[0].Name != "Checking "+long {
		t.Errorf("Summarize() rows = %d, want the long account name", len(summary.Rows))
	}
}

func TestDecodeTransactionsLastLine(t *testing.T) {
	var got []string
	for tx, err := range DecodeTransactions(strings.NewReader("202001011000\t1\t5\ta\r\n\n202001021000\t2\t-3\tb"), nil) {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, tx.Description)
	}
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("DecodeTransactions() descriptions = %q, want %q", got, want)
	}
}
