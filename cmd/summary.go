package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/clf"
	"github.com/etnz/clf/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	strict   bool
	markdown bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the balance of every account" }
func (*summaryCmd) Usage() string {
	return `clf summary [-strict] [-md]

  Displays the balance of every account and the grand total.
  Transactions on undefined accounts are reported apart, or are an error with -strict.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "Fail on transactions naming an undefined account.")
	f.BoolVar(&c.markdown, "md", false, "Render a markdown table.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(stderr, "Error: summary takes no arguments.")
		return subcommands.ExitUsageError
	}
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	summarize := l.Summarize
	if c.strict {
		summarize = l.SummarizeStrict
	}
	summary, err := summarize()
	if err != nil {
		fmt.Fprintf(stderr, "Error summarizing transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.markdown {
		printMarkdown(renderer.SummaryMarkdown(summary))
	} else {
		renderer.Summary(stdout, summary)
	}
	return subcommands.ExitSuccess
}

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance of an account" }
func (*balanceCmd) Usage() string {
	return `clf balance <account>

  Displays the sum of the transactions of <account>.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expecting one account.")
		return subcommands.ExitUsageError
	}
	id, err := clf.ParseAccountID(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := balanceLine(stdout, l, id); err != nil {
		fmt.Fprintf(stderr, "Error computing balance: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
