package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/clf"
	"github.com/etnz/clf/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Install it with COMP_INSTALL=1 clf, main calls Complete on every run.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"root":      predict.Dirs("*"),
			"v":         predict.Nothing,
			"log-level": predict.Set{"debug", "info", "warn", "error"},
		},
	}
	for _, r := range commands() {
		sub := &complete.Command{
			Flags: flagPredictors(r.cmd.SetFlags),
			Args:  argsPredictor(r.cmd.Name()),
		}
		root.Sub[r.cmd.Name()] = sub
		if r.alias != "" {
			root.Sub[r.alias] = sub
		}
	}
	return root
}

// flagPredictors predicts the flags a subcommand defines: nothing after a
// boolean flag, something after the others.
func flagPredictors(setFlags func(*flag.FlagSet)) map[string]complete.Predictor {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	setFlags(f)
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	if _, ok := flags["a"]; ok {
		flags["a"] = complete.PredictFunc(predictAccounts)
	}
	return flags
}

func argsPredictor(name string) complete.Predictor {
	switch name {
	case "credit", "debit", "transfer", "balance":
		return complete.PredictFunc(predictAccounts)
	case "topic":
		topics, _ := docs.List()
		return predict.Set(topics)
	}
	return predict.Nothing
}

// predictAccounts proposes the ids of the accounts under the default root.
func predictAccounts(prefix string) []string {
	dir, err := clf.NewAccountStore(DefaultRoot()).Load()
	if err != nil {
		return nil
	}
	var ids []string
	for _, a := range dir.Sorted() {
		if strings.HasPrefix(string(a.ID), prefix) {
			ids = append(ids, string(a.ID))
		}
	}
	return ids
}
