package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tranche"
	md "github.com/nao1215/markdown"
)

// LoansMarkdown renders the generated pool as a table, one row per
// loan.
func LoansMarkdown(loans []tranche.Loan, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Loan Pool (%d loans)", len(loans)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Principal", "Annual Rate", "Term", "Monthly Payment"},
		Rows:   [][]string{},
	}
	for i, l := range loans {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i),
			tranche.M(l.Principal, currency).String(),
			tranche.FromFraction(l.AnnualRate).String(),
			fmt.Sprintf("%d", l.TermMonths),
			tranche.M(l.Payment(), currency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
