// Package cmd implements the clf command line: one-shot subcommands and the interactive menu.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/clf"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Environment variables read by the command line.
const (
	RootEnv     = "CLF_ROOT"
	LogLevelEnv = "CLF_LOG_LEVEL"
	// TestingNowEnv freezes the clock, as "2006-01-02 15:04" in local time.
	TestingNowEnv = "CLF_TESTING_NOW"
)

const testingNowFormat = "2006-01-02 15:04"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rootDir = flag.String("root", DefaultRoot(), "Folder holding the accounts and transactions files. Defaults to $"+RootEnv+".")
var verbose = flag.Bool("v", false, "Log debug messages.")
var logLevel = flag.String("log-level", envOr(LogLevelEnv, "warn"), "Log level: debug, info, warn or error.")

// stdout and stderr are swapped by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type registration struct {
	cmd   subcommands.Command
	group string
	alias string
}

// commands lists every subcommand, with its short alias from the menu letters.
func commands() []registration {
	return []registration{
		{&newAccountCmd{}, "accounts", "cna"},
		{&accountsCmd{}, "accounts", ""},
		{&creditCmd{}, "transactions", "c"},
		{&debitCmd{}, "transactions", "d"},
		{&transferCmd{}, "transactions", "t"},
		{&balanceCmd{}, "reports", ""},
		{&summaryCmd{}, "reports", ""},
		{&queryCmd{}, "reports", ""},
		{&recentCmd{}, "reports", ""},
		{&topicCmd{}, "help", ""},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, r := range commands() {
		c.Register(r.cmd, r.group)
		if r.alias != "" {
			c.Register(subcommands.Alias(r.alias, r.cmd), r.group)
		}
	}
}

// DefaultRoot returns the default storage root: $CLF_ROOT, or the
// cli_finance folder in the user's documents.
func DefaultRoot() string {
	if root := os.Getenv(RootEnv); root != "" {
		return root
	}
	if user := os.Getenv("USER"); user != "" {
		return filepath.Join("/home", user, "Documents", "money", "cli_finance")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Documents", "money", "cli_finance")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newLogger returns the logger configured by the -v and -log-level flags.
func newLogger() (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
		return logger, nil
	}
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid -log-level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// OpenLedger is the central function to open the ledger stored in the -root folder.
func OpenLedger() (*clf.Ledger, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	l := clf.NewLedger(*rootDir)
	l.SetLogger(logger)

	if s := os.Getenv(TestingNowEnv); s != "" {
		now, err := time.ParseInLocation(testingNowFormat, s, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid $%s: %w", TestingNowEnv, err)
		}
		l.Now = func() time.Time { return now }
	}
	logger.WithField("root", *rootDir).Debug("ledger opened")
	return l, nil
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}

// balanceLine is how every command reports a balance.
func balanceLine(w io.Writer, l *clf.Ledger, id clf.AccountID) error {
	balance, err := l.Balance(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The balance of account %s is %s.\n", id, clf.FormatCurrency(balance))
	return nil
}

// transferLine reports the balances of both accounts of a transfer.
func transferLine(w io.Writer, l *clf.Ledger, when string, from, to clf.AccountID) error {
	fromBalance, err := l.Balance(from)
	if err != nil {
		return err
	}
	toBalance, err := l.Balance(to)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s transfer, account %s balance = %s & account %s balance = %s.\n",
		when, from, clf.FormatCurrency(fromBalance), to, clf.FormatCurrency(toBalance))
	return nil
}
