package clf

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// D is a helper for test to create a decimal from a literal.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testClock is a settable clock, one minute later at every reading.
type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(time.Minute)
	return now
}

// newTestLedger returns a ledger in a temporary directory with a fixed clock
// starting on 2020-01-15 13:42 and a logger whose entries are captured by the returned hook.
func newTestLedger(t *testing.T) (*Ledger, *test.Hook) {
	t.Helper()
	l := NewLedger(t.TempDir())
	clock := &testClock{t: time.Date(2020, time.January, 15, 13, 42, 0, 0, time.Local)}
	l.Now = clock.Now

	logger, hook := test.NewNullLogger()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	l.SetLogger(logger)
	return l, hook
}

// writeFile writes content into a file of the ledger root.
func writeFile(t *testing.T, l *Ledger, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(l.Root(), name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// readFile reads a file of the ledger root.
func readFile(t *testing.T, l *Ledger, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(l.Root(), name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(b)
}
