package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/clf"
	md "github.com/nao1215/markdown"
)

// SummaryRow renders the balance of one account on one line.
func SummaryRow(r clf.SummaryRow) string {
	return alignLeft(string(r.Account), summaryIDColumn) +
		alignRight(r.Name, summaryNameColumn) +
		alignRight(clf.FormatCurrency(r.Total), amountColumn)
}

// Summary writes the summary report: a header, one row per account and the grand total.
func Summary(w io.Writer, s *clf.Summary) {
	fmt.Fprintln(w, "SUMMARY OF TRANSACTIONS")
	for _, r := range s.Rows {
		fmt.Fprintln(w, SummaryRow(r))
	}
	fmt.Fprintf(w, "The grand total is: %s\n", clf.FormatCurrency(s.GrandTotal()))
	for _, r := range s.Unknown {
		fmt.Fprintf(w, "Not included: %s on undefined account %s\n", clf.FormatCurrency(r.Total), r.Account)
	}
}

// SummaryMarkdown renders the summary report as markdown.
func SummaryMarkdown(s *clf.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary of Transactions")

	rows := make([][]string, 0, len(s.Rows)+1)
	for _, r := range s.Rows {
		rows = append(rows, []string{string(r.Account), r.Name, clf.FormatCurrency(r.Total)})
	}
	rows = append(rows, []string{"", "**Grand Total**", "**" + clf.FormatCurrency(s.GrandTotal()) + "**"})
	doc.Table(md.TableSet{
		Header: []string{"Account", "Name", "Balance"},
		Rows:   rows,
	})

	if len(s.Unknown) > 0 {
		doc.H2("Undefined Accounts")
		items := make([]string, 0, len(s.Unknown))
		for _, r := range s.Unknown {
			items = append(items, fmt.Sprintf("account %s: %s", r.Account, clf.FormatCurrency(r.Total)))
		}
		doc.BulletList(items...)
	}
	return doc.String()
}
