package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tranche"
	md "github.com/nao1215/markdown"
)

// ScheduleMarkdown renders one loan's amortization table.
func ScheduleMarkdown(s tranche.Schedule, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Amortization Schedule")
	doc.PlainText(fmt.Sprintf("Principal: %s at %s over %d months, monthly payment %s",
		tranche.M(s.Loan.Principal, currency),
		tranche.FromFraction(s.Loan.AnnualRate),
		s.Loan.TermMonths,
		tranche.M(s.Loan.Payment(), currency)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Date", "Payment", "Interest", "Principal", "Balance"},
		Rows:   [][]string{},
	}
	for _, inst := range s.Installments {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", inst.Month),
			inst.Date.String(),
			tranche.M(inst.Payment, currency).String(),
			tranche.M(inst.Interest, currency).String(),
			tranche.M(inst.Principal, currency).String(),
			tranche.M(inst.Balance, currency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
