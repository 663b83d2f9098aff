// Package renderer formats ledger data for the terminal: dotted column
// listings in the classic layout, and markdown tables.
package renderer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// filler pads columns in listings.
const filler = "."

// Column widths of the listings, in terminal cells.
const (
	accountColumn      = 32 // "Acct_<id>_<name>" in transaction rows
	amountColumn       = 14
	summaryIDColumn    = 5
	summaryNameColumn  = 22
	descriptionPrefix  = "..."
	unknownAccountName = "?"
)

// alignRight pads s on the left with dots up to width cells. Longer strings are not truncated.
func alignRight(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return strings.Repeat(filler, n) + s
	}
	return s
}

// alignLeft pads s on the right with dots up to width cells. Longer strings are not truncated.
func alignLeft(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(filler, n)
	}
	return s
}
