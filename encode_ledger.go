package clf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/etnz/clf/date"
	"github.com/shopspring/decimal"
)

// accountPrefix starts every line of the account store.
const accountPrefix = "ACCOUNT"

// fieldSeparator separates the fields of a transaction record.
const fieldSeparator = "\t"

// transactionFields is the number of fields of a transaction record.
const transactionFields = 4

// EncodeAccount writes a single account definition line: "ACCOUNT <id>: <name>".
func EncodeAccount(w io.Writer, a Account) error {
	if _, err := io.WriteString(w, formatAccount(a)); err != nil {
		return fmt.Errorf("failed to write account %s: %w", a.ID, err)
	}
	return nil
}

func formatAccount(a Account) string {
	return fmt.Sprintf("%s %s: %s\n", accountPrefix, a.ID, a.Name)
}

// parseAccount parses an account definition line.
//
// The name is the rest of the line after the "<id>:" token, so names with
// spaces are supported.
func parseAccount(line string) (Account, error) {
	rest, ok := strings.CutPrefix(line, accountPrefix)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return Account{}, fmt.Errorf("line does not start with %q", accountPrefix+" ")
	}
	id, name, ok := strings.Cut(strings.TrimLeft(rest, " \t"), ":")
	if !ok {
		return Account{}, fmt.Errorf("missing ':' after the account id")
	}
	return NewAccount(id, name)
}

// DecodeAccounts reads account definitions from r. Blank lines are skipped,
// any other line that is not an account definition is a MalformedRecord error.
func DecodeAccounts(r io.Reader) (*Directory, error) {
	dir := NewDirectory()
	n := 0
	for line, err := range lines(r) {
		if err != nil {
			return nil, newError(Storage, err, "error reading accounts")
		}
		n++
		if strings.TrimSpace(line) == "" {
			continue // Skip empty lines
		}
		a, err := parseAccount(line)
		if err != nil {
			return nil, newError(MalformedRecord, err, "line %d: %q", n, line)
		}
		dir.Define(a)
	}
	return dir, nil
}

// EncodeTransaction writes a single transaction record, followed by a newline.
//
// The record is written with a single Write call.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	if err := validateDescription(tx.Description); err != nil {
		return err
	}
	if _, err := io.WriteString(w, formatTransaction(tx)); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

func formatTransaction(tx Transaction) string {
	return strings.Join([]string{
		tx.Time.String(),
		string(tx.Account),
		tx.Amount.String(),
		tx.Description,
	}, fieldSeparator) + "\n"
}

// errSkip marks a line that is not a transaction record at all.
var errSkip = errors.New("not a transaction record")

// parseTransaction parses a transaction record.
// It returns errSkip when the line does not have exactly 4 fields.
func parseTransaction(line string) (Transaction, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != transactionFields {
		return Transaction{}, errSkip
	}
	on, err := date.ParseStamp(fields[0])
	if err != nil {
		return Transaction{}, err
	}
	account, err := ParseAccountID(fields[1])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q: %w", fields[2], err)
	}
	return Transaction{Time: on, Account: account, Amount: amount, Description: fields[3]}, nil
}

// DecodeTransactions returns an iterator over the transaction records read from r, in order.
//
// Lines that do not have exactly 4 tab separated fields are skipped, skip is
// called for each of them (it may be nil). A 4 field line that does not parse
// yields a MalformedRecord error and ends the iteration.
func DecodeTransactions(r io.Reader, skip func(n int, line string)) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		n := 0
		for line, err := range lines(r) {
			if err != nil {
				yield(Transaction{}, newError(Storage, err, "error reading transactions"))
				return
			}
			n++
			tx, err := parseTransaction(line)
			if err == errSkip {
				if skip != nil {
					skip(n, line)
				}
				continue
			}
			if err != nil {
				yield(Transaction{}, newError(MalformedRecord, err, "line %d: %q", n, line))
				return
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// lines returns an iterator over the lines of r, without their "\n" or "\r\n"
// ending. Lines have no length limit. A last line without ending is yielded too.
func lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if err != nil && err != io.EOF {
				yield("", err)
				return
			}
			if line != "" {
				line = strings.TrimSuffix(line, "\n")
				if !yield(strings.TrimRight(line, "\r"), nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
		}
	}
}
