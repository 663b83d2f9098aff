package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/clf"
	"github.com/google/subcommands"
)

type transferCmd struct{}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move an amount from one account to another" }
func (*transferCmd) Usage() string {
	return `clf transfer <from> <to> <amount> <description...>

  Debits <from> and credits <to> with <amount>, then prints both balances.
`
}

func (*transferCmd) SetFlags(f *flag.FlagSet) {}

func (*transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 4 {
		fmt.Fprintln(stderr, "Error: expecting two accounts, an amount and a description.")
		return subcommands.ExitUsageError
	}
	from, err := clf.ParseAccountID(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	to, err := clf.ParseAccountID(f.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	amount, err := clf.ParseAmount(f.Arg(2))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, _, err := l.Transfer(from, to, amount, strings.Join(f.Args()[3:], " ")); err != nil {
		fmt.Fprintf(stderr, "Error recording transfer: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := transferLine(stdout, l, "After", from, to); err != nil {
		fmt.Fprintf(stderr, "Error computing balances: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
