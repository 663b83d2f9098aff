package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/clf"
	"github.com/etnz/clf/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Choice is an entry of the interactive menu.
type Choice int

const (
	NoChoice Choice = iota
	DebitChoice
	CreditChoice
	TransferChoice
	SummarizeChoice
	RecentChoice
	QueryAccountChoice
	QueryAmountChoice
	QueryAccountAmountChoice
	CreateAccountChoice
	QuitChoice
)

// RecentDays is the period listed by the recent transactions entry.
const RecentDays = 30

var menuEntries = []struct {
	choice Choice
	key    string
	label  string
}{
	{DebitChoice, "d", "Make a debit"},
	{CreditChoice, "c", "Make a credit"},
	{TransferChoice, "t", "Make a transfer"},
	{SummarizeChoice, "s", "Summarize transaction data"},
	{RecentChoice, "r", fmt.Sprintf("Show recent transactions (last %d days)", RecentDays)},
	{QueryAccountChoice, "qa", "Query transaction data by account number"},
	{QueryAmountChoice, "qd", "Query transaction data by dollar amount"},
	{QueryAccountAmountChoice, "qad", "Query transaction data by account and dollar"},
	{CreateAccountChoice, "cna", "Create a new account"},
	{QuitChoice, "q", "Quit"},
}

// ParseChoice returns the menu entry of a key, or NoChoice.
func ParseChoice(s string) Choice {
	s = strings.TrimSpace(s)
	for _, e := range menuEntries {
		if e.key == s {
			return e.choice
		}
	}
	return NoChoice
}

// String returns the menu key of c.
func (c Choice) String() string {
	for _, e := range menuEntries {
		if e.choice == c {
			return e.key
		}
	}
	return "?"
}

// Shell is the interactive menu over a ledger.
type Shell struct {
	ledger *clf.Ledger
	in     *bufio.Reader
	out    io.Writer
}

// NewShell returns a menu reading choices from in and writing to out.
func NewShell(l *clf.Ledger, in io.Reader, out io.Writer) *Shell {
	return &Shell{ledger: l, in: bufio.NewReader(in), out: out}
}

// RunShell runs the interactive menu on the standard input.
func RunShell(_ context.Context) subcommands.ExitStatus {
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := NewShell(l, os.Stdin, stdout).Run(); err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Run shows the menu and dispatches choices until the user quits or the input ends.
//
// Errors of an operation are printed and the menu is shown again. Only input
// errors are returned.
func (s *Shell) Run() error {
	for {
		s.menu()
		line, err := s.read()
		if errors.Is(err, io.EOF) {
			return s.dispatch(QuitChoice)
		}
		if err != nil {
			return err
		}

		choice := ParseChoice(line)
		err = s.dispatch(choice)
		switch {
		case errors.Is(err, io.EOF):
			return s.dispatch(QuitChoice)
		case err != nil:
			fmt.Fprintf(s.out, "Error: %v\n", err)
		case choice == QuitChoice:
			return nil
		}
	}
}

func (s *Shell) menu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Enter input choice:")
	for _, e := range menuEntries {
		fmt.Fprintf(s.out, "(%s) %s\n", e.key, e.label)
	}
	fmt.Fprint(s.out, "> ")
}

// read returns the next input line, of any length, or io.EOF.
func (s *Shell) read() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func (s *Shell) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	return s.read()
}

func (s *Shell) promptAmount(msg string) (decimal.Decimal, error) {
	line, err := s.prompt(msg)
	if err != nil {
		return decimal.Zero, err
	}
	return clf.ParseAmount(line)
}

// promptAccount reads an account id and prints the selected account.
func (s *Shell) promptAccount(msg string) (clf.AccountID, error) {
	line, err := s.prompt(msg)
	if err != nil {
		return "", err
	}
	id, err := clf.ParseAccountID(line)
	if err != nil {
		return "", err
	}
	dir, err := s.ledger.Directory()
	if err != nil {
		return "", err
	}
	name, err := dir.Name(id)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(s.out, "You have selected account %s: %s.\n", id, name)
	return id, nil
}

// dispatch runs a menu choice. NoChoice does nothing, so that the menu is shown again.
func (s *Shell) dispatch(c Choice) error {
	switch c {
	case DebitChoice:
		return s.movement("debit", s.ledger.Debit)
	case CreditChoice:
		return s.movement("credit", s.ledger.Credit)
	case TransferChoice:
		return s.transfer()
	case SummarizeChoice:
		summary, err := s.ledger.Summarize()
		if err != nil {
			return err
		}
		renderer.Summary(s.out, summary)
	case RecentChoice:
		return s.list(clf.Filter{}, true)
	case QueryAccountChoice, QueryAmountChoice, QueryAccountAmountChoice:
		return s.query(c)
	case CreateAccountChoice:
		id, err := s.prompt("Enter new account number: ")
		if err != nil {
			return err
		}
		name, err := s.prompt("Enter new account name: ")
		if err != nil {
			return err
		}
		a, err := s.ledger.CreateAccount(id, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "You have created account %s: %s.\n", a.ID, a.Name)
	case QuitChoice:
		fmt.Fprintln(s.out, "Bye!")
	}
	return nil
}

func (s *Shell) movement(kind string, op func(clf.AccountID, decimal.Decimal, string) (clf.Transaction, error)) error {
	id, err := s.promptAccount(fmt.Sprintf("Enter account which you want to %s: ", kind))
	if err != nil {
		return err
	}
	amount, err := s.promptAmount(fmt.Sprintf("Enter the amount to %s: ", kind))
	if err != nil {
		return err
	}
	description, err := s.prompt(fmt.Sprintf("Enter a description for the %s: ", kind))
	if err != nil {
		return err
	}
	if _, err := op(id, amount, description); err != nil {
		return err
	}
	return balanceLine(s.out, s.ledger, id)
}

func (s *Shell) transfer() error {
	from, err := s.promptAccount("Enter account which you want to transfer FROM: ")
	if err != nil {
		return err
	}
	to, err := s.promptAccount("Enter account which you want to transfer TO: ")
	if err != nil {
		return err
	}
	amount, err := s.promptAmount("Enter the amount to transfer: ")
	if err != nil {
		return err
	}
	description, err := s.prompt("Enter a description for the transfer: ")
	if err != nil {
		return err
	}
	if err := transferLine(s.out, s.ledger, "Before", from, to); err != nil {
		return err
	}
	if _, _, err := s.ledger.Transfer(from, to, amount, description); err != nil {
		return err
	}
	return transferLine(s.out, s.ledger, "After", from, to)
}

func (s *Shell) query(c Choice) error {
	var f clf.Filter
	if c == QueryAccountChoice || c == QueryAccountAmountChoice {
		line, err := s.prompt("Enter the account number: ")
		if err != nil {
			return err
		}
		if f.Account, err = clf.ParseAccountID(line); err != nil {
			return err
		}
		f.Kind = clf.ByAccount
	}
	if c == QueryAmountChoice || c == QueryAccountAmountChoice {
		amount, err := s.promptAmount("Enter the dollar amount with no dollar sign: ")
		if err != nil {
			return err
		}
		f.Amount = amount
		f.Kind = clf.ByAmount
		if c == QueryAccountAmountChoice {
			f.Kind = clf.ByAccountAndAmount
		}
	}
	return s.list(f, false)
}

// list prints the transactions matching f, or the recent ones.
func (s *Shell) list(f clf.Filter, recent bool) error {
	seq := s.ledger.Recent(RecentDays)
	if !recent {
		var err error
		if seq, err = s.ledger.Query(f); err != nil {
			return err
		}
	}
	dir, err := s.ledger.Directory()
	if err != nil {
		return err
	}
	txs, err := clf.Collect(seq)
	if err != nil {
		return err
	}
	renderer.Transactions(s.out, txs, dir)
	return nil
}
