package cmd

import (
	"context"
	"flag"
	"fmt"
	"iter"

	"github.com/etnz/clf"
	"github.com/etnz/clf/date"
	"github.com/etnz/clf/renderer"
	"github.com/google/subcommands"
)

type queryCmd struct {
	account  string
	amount   string
	markdown bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "list the transactions of an account or an amount" }
func (*queryCmd) Usage() string {
	return `clf query [-a <account>] [-amount <amount>] [-md]

  Lists the transactions of an account, of an amount, or both, in the order they were recorded.
  Amounts match whatever their sign: -amount 50 lists debits and credits of 50.
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to list transactions of.")
	f.StringVar(&c.amount, "amount", "", "Amount to list transactions of.")
	f.BoolVar(&c.markdown, "md", false, "Render a markdown table.")
}

// filter builds the query filter out of the flags.
func (c *queryCmd) filter() (clf.Filter, error) {
	var filter clf.Filter
	if c.account != "" {
		id, err := clf.ParseAccountID(c.account)
		if err != nil {
			return filter, err
		}
		filter.Kind, filter.Account = clf.ByAccount, id
	}
	if c.amount != "" {
		amount, err := clf.ParseAmount(c.amount)
		if err != nil {
			return filter, err
		}
		filter.Amount = amount
		if filter.Kind == clf.ByAccount {
			filter.Kind = clf.ByAccountAndAmount
		} else {
			filter.Kind = clf.ByAmount
		}
	}
	return filter, nil
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 || (c.account == "" && c.amount == "") {
		fmt.Fprintln(stderr, "Error: expecting -a, -amount or both, and no arguments.")
		return subcommands.ExitUsageError
	}
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	seq, err := l.Query(filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return list(l, "Transactions", seq, c.markdown)
}

type recentCmd struct {
	days     int
	period   string
	markdown bool
}

func (*recentCmd) Name() string     { return "recent" }
func (*recentCmd) Synopsis() string { return "list the latest transactions" }
func (*recentCmd) Usage() string {
	return `clf recent [-days <n> | -p <period>] [-md]

  Lists the transactions of the last n days, today included,
  or of the current day, week, month, quarter or year.
`
}

func (c *recentCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of days to list, today included.")
	f.StringVar(&c.period, "p", "", "Calendar period to list (day, week, month, quarter, year). Overrides -days.")
	f.BoolVar(&c.markdown, "md", false, "Render a markdown table.")
}

func (c *recentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 || c.days < 1 {
		fmt.Fprintln(stderr, "Error: -days must be a positive number, and recent takes no arguments.")
		return subcommands.ExitUsageError
	}
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.period == "" {
		return list(l, fmt.Sprintf("Last %d Days", c.days), l.Recent(c.days), c.markdown)
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	r := period.Range(l.Today())
	return list(l, fmt.Sprintf("This %s (%s)", period, r), l.During(r), c.markdown)
}

// list prints a sequence of transactions, with the account names of the directory.
func list(l *clf.Ledger, title string, seq iter.Seq2[clf.Transaction, error], markdown bool) subcommands.ExitStatus {
	dir, err := l.Directory()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	txs, err := clf.Collect(seq)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if markdown {
		printMarkdown(renderer.TransactionsMarkdown(title, txs, dir))
	} else {
		renderer.Transactions(stdout, txs, dir)
	}
	return subcommands.ExitSuccess
}
