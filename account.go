package clf

import (
	"cmp"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// AccountID identifies an account. It is a non negative decimal integer kept
// in its canonical text form ("7", never "007").
type AccountID string

// ParseAccountID parses and canonicalizes an account id.
func ParseAccountID(s string) (AccountID, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", newError(InvalidInput, nil, "account id %q is not a whole number", s)
	}
	return AccountID(strconv.FormatUint(n, 10)), nil
}

// number returns the numeric value of a canonical id.
func (id AccountID) number() uint64 {
	n, _ := strconv.ParseUint(string(id), 10, 64)
	return n
}

// compareAccountIDs orders ids numerically.
func compareAccountIDs(a, b AccountID) int { return cmp.Compare(a.number(), b.number()) }

// Account is a named bucket against which transactions are recorded.
type Account struct {
	ID   AccountID
	Name string
}

// NewAccount validates and returns an account.
func NewAccount(id, name string) (Account, error) {
	aid, err := ParseAccountID(id)
	if err != nil {
		return Account{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Account{}, newError(InvalidInput, nil, "account %s: name is empty", aid)
	}
	if strings.ContainsAny(name, "\t\r\n") {
		return Account{}, newError(InvalidInput, nil, "account %s: name %q contains a tab or a line break", aid, name)
	}
	return Account{ID: aid, Name: name}, nil
}

// Directory is the ordered mapping from account id to account name.
//
// The order is the order in which ids were first defined. When an id is
// defined more than once the last name wins, but the id keeps the position
// of its first definition.
type Directory struct {
	ids   []AccountID
	names map[AccountID]string
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{names: make(map[AccountID]string)}
}

// Define adds or redefines an account.
func (d *Directory) Define(a Account) {
	if _, exists := d.names[a.ID]; !exists {
		d.ids = append(d.ids, a.ID)
	}
	d.names[a.ID] = a.Name
}

// Len returns the number of distinct account ids.
func (d *Directory) Len() int { return len(d.ids) }

// Lookup returns the name of an account and whether it is defined.
func (d *Directory) Lookup(id AccountID) (name string, ok bool) {
	name, ok = d.names[id]
	return
}

// Name returns the name of an account, or an UnknownAccount error.
func (d *Directory) Name(id AccountID) (string, error) {
	name, ok := d.names[id]
	if !ok {
		return "", newError(UnknownAccount, nil, "account %s is not defined", id)
	}
	return name, nil
}

// Accounts iterates over accounts in directory order.
func (d *Directory) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, id := range d.ids {
			if !yield(Account{ID: id, Name: d.names[id]}) {
				return
			}
		}
	}
}

// Sorted returns the accounts ordered by ascending numeric id.
func (d *Directory) Sorted() []Account {
	accounts := slices.Collect(d.Accounts())
	slices.SortFunc(accounts, func(a, b Account) int { return compareAccountIDs(a.ID, b.ID) })
	return accounts
}
