// Package renderer turns simulation reports into markdown suitable for
// terminal rendering.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tranche"
	md "github.com/nao1215/markdown"
)

// PoolMarkdown renders the full pool report: totals first, then the
// tranche table in seniority order.
func PoolMarkdown(r *tranche.PoolReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Loan Pool Summary (%d loans, %d months)", r.Count, r.Term))
	doc.PlainText(fmt.Sprintf("Total Principal: %s", r.TotalPrincipal))
	doc.PlainText(fmt.Sprintf("Total Cash Collected: %s", r.TotalCash))
	doc.PlainText(fmt.Sprintf("Total Interest: %s", r.TotalInterest))

	if r.Waterfall {
		doc.H2("Tranches (sequential waterfall)")
	} else {
		doc.H2("Tranches (pro-rata split)")
	}
	doc.Table(trancheTable(r))

	return doc.String()
}

// TranchesMarkdown renders the tranche table alone.
func TranchesMarkdown(r *tranche.PoolReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.Waterfall {
		doc.H1("Tranche Allocation (sequential waterfall)")
	} else {
		doc.H1("Tranche Allocation (pro-rata split)")
	}
	doc.Table(trancheTable(r))

	return doc.String()
}

func trancheTable(r *tranche.PoolReport) md.TableSet {
	header := []string{"Tranche", "Allocation", "Investment", "Total Cash", "IRR (monthly)", "IRR (annualized)"}
	alignment := []md.TableAlignment{
		md.AlignLeft,
		md.AlignRight,
		md.AlignRight,
		md.AlignRight,
		md.AlignRight,
		md.AlignRight,
	}
	if r.Waterfall {
		header = append(header, "Shortfall Periods")
		alignment = append(alignment, md.AlignRight)
	}

	table := md.TableSet{Alignment: alignment, Header: header, Rows: [][]string{}}
	for _, t := range r.Tranches {
		irr, annual := "N/A", "N/A"
		if t.Solved {
			irr = t.IRR.String()
			annual = t.AnnualIRR.String()
		}
		row := []string{
			string(t.Class),
			t.Fraction.String(),
			t.Investment.String(),
			t.TotalCash.String(),
			irr,
			annual,
		}
		if r.Waterfall {
			row = append(row, fmt.Sprintf("%d", t.Shortfalls))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
