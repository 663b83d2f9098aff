package clf

import (
	"fmt"
	"time"

	"github.com/etnz/clf/date"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Ledger combines the Account Directory and the Transaction Log stored under a single root directory.
//
// A Ledger holds no state besides its configuration: every operation reads
// the stores again.
type Ledger struct {
	root     string
	accounts *AccountStore
	log      *TransactionLog

	// Now is the clock used to timestamp new transactions.
	Now func() time.Time
	// Logger receives diagnostics.
	Logger logrus.FieldLogger
}

// NewLedger returns the ledger stored under root.
func NewLedger(root string) *Ledger {
	l := &Ledger{
		root:     root,
		accounts: NewAccountStore(root),
		log:      NewTransactionLog(root),
		Now:      time.Now,
	}
	l.SetLogger(logrus.StandardLogger())
	return l
}

// SetLogger sets the logger of the ledger and of its transaction log.
func (l *Ledger) SetLogger(logger logrus.FieldLogger) {
	l.Logger = logger
	l.log.Logger = logger
}

// Root returns the storage root.
func (l *Ledger) Root() string { return l.root }

// TransactionLog returns the Transaction Log store.
func (l *Ledger) TransactionLog() *TransactionLog { return l.log }

// Directory loads the Account Directory.
func (l *Ledger) Directory() (*Directory, error) { return l.accounts.Load() }

// Transactions loads every transaction in file order.
func (l *Ledger) Transactions() ([]Transaction, error) { return l.log.LoadAll() }

// append timestamps and appends a transaction.
func (l *Ledger) append(account AccountID, amount decimal.Decimal, description string) (Transaction, error) {
	tx, err := NewTransaction(date.FromTime(l.Now()), account, amount, description)
	if err != nil {
		return tx, err
	}
	return tx, l.log.Append(tx)
}

// Debit appends a transaction of -amount on the account.
//
// amount is expected to be a positive magnitude but this is not checked:
// a negative amount is negated as well, and ends up increasing the balance.
func (l *Ledger) Debit(account AccountID, amount decimal.Decimal, description string) (Transaction, error) {
	return l.append(account, amount.Neg(), description)
}

// Credit appends a transaction of amount on the account, unchanged.
func (l *Ledger) Credit(account AccountID, amount decimal.Decimal, description string) (Transaction, error) {
	return l.append(account, amount, description)
}

// Transfer debits 'from' then credits 'to' with the same amount.
//
// Both legs are independent appends: if the credit fails the debit stays
// in the log and the returned error says so.
func (l *Ledger) Transfer(from, to AccountID, amount decimal.Decimal, description string) (debit, credit Transaction, err error) {
	// Both descriptions must be valid before anything is written.
	if err := validateDescription(description); err != nil {
		return debit, credit, err
	}
	debit, err = l.Debit(from, amount, fmt.Sprintf("Transfer from account #%s: %s", from, description))
	if err != nil {
		return debit, credit, err
	}
	credit, err = l.Credit(to, amount, fmt.Sprintf("Transfer to account #%s: %s", to, description))
	if err != nil {
		l.Logger.WithFields(logrus.Fields{"from": from, "to": to, "amount": amount.String()}).Error("transfer half applied: debit recorded, credit failed")
		return debit, credit, fmt.Errorf("transfer half applied, debit on account %s recorded but credit on account %s failed: %w", from, to, err)
	}
	return debit, credit, nil
}

// CreateAccount appends an account definition.
func (l *Ledger) CreateAccount(id, name string) (Account, error) {
	a, err := NewAccount(id, name)
	if err != nil {
		return a, err
	}
	if err := l.accounts.Create(a); err != nil {
		return a, err
	}
	l.Logger.WithFields(logrus.Fields{"account": a.ID, "name": a.Name}).Debug("account created")
	return a, nil
}
