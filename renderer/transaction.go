package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/clf"
	"github.com/etnz/clf/date"
	md "github.com/nao1215/markdown"
)

// Names resolves account names. *clf.Directory implements it.
type Names interface {
	Lookup(id clf.AccountID) (name string, ok bool)
}

func accountName(names Names, id clf.AccountID) string {
	if names != nil {
		if name, ok := names.Lookup(id); ok {
			return name
		}
	}
	return unknownAccountName
}

// TransactionRow renders a transaction on one line:
//
//	2020/01/15.........Acct_1_Checking......($12.50)...Groceries
func TransactionRow(tx clf.Transaction, names Names) string {
	account := fmt.Sprintf("Acct_%s_%s", tx.Account, accountName(names, tx.Account))
	return tx.Time.Date().Format(date.ListingFormat) +
		alignRight(account, accountColumn) +
		alignRight(clf.FormatCurrency(tx.Amount), amountColumn) +
		descriptionPrefix + tx.Description
}

// Transactions writes one row per transaction.
func Transactions(w io.Writer, txs []clf.Transaction, names Names) {
	for _, tx := range txs {
		fmt.Fprintln(w, TransactionRow(tx, names))
	}
}

// TransactionsMarkdown renders transactions as a markdown table.
func TransactionsMarkdown(title string, txs []clf.Transaction, names Names) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Time.Date().String(),
			fmt.Sprintf("%02d:%02d", tx.Time.Hour(), tx.Time.Minute()),
			string(tx.Account),
			accountName(names, tx.Account),
			clf.FormatCurrency(tx.Amount),
			tx.Description,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Time", "Account", "Name", "Amount", "Description"},
		Rows:   rows,
	})
	return doc.String()
}
