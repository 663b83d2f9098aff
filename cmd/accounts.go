package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type newAccountCmd struct{}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "define an account" }
func (*newAccountCmd) Usage() string {
	return `clf new-account <id> <name...>

  Appends an account definition. The name is every remaining argument, joined by spaces.
  Defining an existing id again renames the account.
`
}

func (*newAccountCmd) SetFlags(f *flag.FlagSet) {}

func (*newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(stderr, "Error: expecting an account id and a name.")
		return subcommands.ExitUsageError
	}
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := l.CreateAccount(f.Arg(0), strings.Join(f.Args()[1:], " "))
	if err != nil {
		fmt.Fprintf(stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "You have created account %s: %s.\n", a.ID, a.Name)
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the defined accounts" }
func (*accountsCmd) Usage() string {
	return `clf accounts

  Lists the accounts, ordered by id.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(stderr, "Error: accounts takes no arguments.")
		return subcommands.ExitUsageError
	}
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	dir, err := l.Directory()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, a := range dir.Sorted() {
		fmt.Fprintf(stdout, "%s: %s\n", a.ID, a.Name)
	}
	return subcommands.ExitSuccess
}
