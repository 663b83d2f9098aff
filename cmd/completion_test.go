package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	c := Completion()

	for _, name := range []string{"credit", "c", "debit", "d", "transfer", "t", "new-account", "cna", "summary", "query", "recent", "balance", "accounts", "topic"} {
		assert.Contains(t, c.Sub, name)
	}
	assert.Same(t, c.Sub["credit"], c.Sub["c"])
	assert.Contains(t, c.Flags, "root")

	query := c.Sub["query"]
	require.NotNil(t, query)
	assert.Contains(t, query.Flags, "a")
	assert.Contains(t, query.Flags, "amount")
	assert.Contains(t, query.Flags, "md")

	assert.Contains(t, c.Sub["topic"].Args.Predict(""), "shell")
}

func TestPredictAccounts(t *testing.T) {
	root, _, _ := setup(t)
	t.Setenv(RootEnv, root)
	writeRootFile(t, root, "accounts", "ACCOUNT 12: Brokerage\nACCOUNT 1: Checking\nACCOUNT 2: Savings\n")

	assert.Equal(t, []string{"1", "12"}, predictAccounts("1"))
	assert.Equal(t, []string{"1", "2", "12"}, predictAccounts(""))
	assert.Empty(t, predictAccounts("3"))
}
