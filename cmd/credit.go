package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/clf"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type creditCmd struct{}

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "add an amount to an account" }
func (*creditCmd) Usage() string {
	return `clf credit <account> <amount> <description...>

  Appends a credit of <amount> to <account> and prints the new balance.
  The description is every remaining argument, joined by spaces.
`
}

func (*creditCmd) SetFlags(f *flag.FlagSet) {}

func (*creditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(f, (*clf.Ledger).Credit)
}

type debitCmd struct{}

func (*debitCmd) Name() string     { return "debit" }
func (*debitCmd) Synopsis() string { return "subtract an amount from an account" }
func (*debitCmd) Usage() string {
	return `clf debit <account> <amount> <description...>

  Appends a debit of <amount> to <account> and prints the new balance.
  The amount is recorded negated.
`
}

func (*debitCmd) SetFlags(f *flag.FlagSet) {}

func (*debitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(f, (*clf.Ledger).Debit)
}

// record parses "<account> <amount> <description...>" and applies op.
func record(f *flag.FlagSet, op func(*clf.Ledger, clf.AccountID, decimal.Decimal, string) (clf.Transaction, error)) subcommands.ExitStatus {
	if f.NArg() < 3 {
		fmt.Fprintln(stderr, "Error: expecting an account, an amount and a description.")
		return subcommands.ExitUsageError
	}
	id, err := clf.ParseAccountID(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	amount, err := clf.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	description := strings.Join(f.Args()[2:], " ")

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, err := op(l, id, amount, description); err != nil {
		fmt.Fprintf(stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := balanceLine(stdout, l, id); err != nil {
		fmt.Fprintf(stderr, "Error computing balance: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
