package clf

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// File names of the two stores, relative to the storage root.
const (
	AccountsFile     = "accounts"
	TransactionsFile = "transactions"
)

// AccountStore is the Account Directory persisted as one "ACCOUNT <id>: <name>" line per definition.
type AccountStore struct {
	path string
}

// NewAccountStore returns the account store of the storage root.
func NewAccountStore(root string) *AccountStore {
	return &AccountStore{path: filepath.Join(root, AccountsFile)}
}

// Path returns the file backing the store.
func (s *AccountStore) Path() string { return s.path }

// Load reads the whole directory. A missing file is an empty directory.
func (s *AccountStore) Load() (*Directory, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDirectory(), nil
	}
	if err != nil {
		return nil, newError(Storage, err, "could not open accounts file %q", s.path)
	}
	defer f.Close()

	dir, err := DecodeAccounts(f)
	if err != nil {
		return nil, newError(kindOf(err), err, "could not decode accounts file %q", s.path)
	}
	return dir, nil
}

// Create appends an account definition. Duplicate ids are accepted.
func (s *AccountStore) Create(a Account) error {
	a, err := NewAccount(string(a.ID), a.Name)
	if err != nil {
		return err
	}
	return appendLine(s.path, formatAccount(a))
}

// TransactionLog is the append-only sequence of transaction records, one tab separated record per line.
type TransactionLog struct {
	path   string
	Logger logrus.FieldLogger
}

// NewTransactionLog returns the transaction log of the storage root.
func NewTransactionLog(root string) *TransactionLog {
	return &TransactionLog{path: filepath.Join(root, TransactionsFile), Logger: logrus.StandardLogger()}
}

// Path returns the file backing the log.
func (l *TransactionLog) Path() string { return l.path }

// Append appends one record with a single write.
func (l *TransactionLog) Append(tx Transaction) error {
	if err := validateDescription(tx.Description); err != nil {
		return err
	}
	if err := appendLine(l.path, formatTransaction(tx)); err != nil {
		return err
	}
	l.Logger.WithFields(logrus.Fields{"account": tx.Account, "amount": tx.Amount.String()}).Debug("transaction appended")
	return nil
}

// All returns an iterator over every record in file order.
//
// Each iteration opens and reads the file again, so the sequence can be
// ranged over any number of times and always reflects the store. A missing
// file is an empty log.
func (l *TransactionLog) All() iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		f, err := os.Open(l.path)
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		if err != nil {
			yield(Transaction{}, newError(Storage, err, "could not open transactions file %q", l.path))
			return
		}
		defer f.Close()

		skip := func(n int, line string) {
			l.Logger.WithFields(logrus.Fields{"file": l.path, "line": n}).Debugf("skipping non transaction record %q", line)
		}
		for tx, err := range DecodeTransactions(f, skip) {
			if err != nil {
				yield(tx, newError(kindOf(err), err, "could not decode transactions file %q", l.path))
				return
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// LoadAll reads every record in file order.
func (l *TransactionLog) LoadAll() ([]Transaction, error) {
	var txs []Transaction
	for tx, err := range l.All() {
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// appendLine appends line to the file with a single write, creating the file
// and its directory if needed.
func appendLine(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return newError(Storage, err, "could not create directory for %q", path)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return newError(Storage, err, "could not open %q for append", path)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return newError(Storage, err, "could not append to %q", path)
	}
	if err := f.Close(); err != nil {
		return newError(Storage, err, "could not close %q", path)
	}
	return nil
}

// kindOf returns the kind of a ledger error, Storage for any other error.
func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}
