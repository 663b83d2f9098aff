// Command clf keeps a personal ledger of accounts and transactions.
//
// Without arguments it runs an interactive menu, otherwise it runs the given command.
// See "clf topic" for the documentation.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/clf/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("clf")

	commander := subcommands.NewCommander(flag.CommandLine, "clf")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	ctx := context.Background()
	if flag.NArg() == 0 {
		os.Exit(int(cmd.RunShell(ctx)))
	}
	os.Exit(int(commander.Execute(ctx)))
}
