package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/tranche"
	"github.com/etnz/tranche/date"
)

// testReport builds a small deterministic report for rendering tests.
func testReport(t *testing.T, waterfall bool) *tranche.PoolReport {
	t.Helper()
	g := tranche.NewGenerator(tranche.DefaultSeed)
	g.Count = 5
	pool := tranche.NewPool(g.Generate(), date.New(2026, time.January, 1))
	report, err := tranche.NewPoolReport(pool, tranche.StandardAllocations(), waterfall, "USD")
	if err != nil {
		t.Fatalf("NewPoolReport() failed: %v", err)
	}
	return report
}

func TestPoolMarkdown(t *testing.T) {
	got := PoolMarkdown(testReport(t, false))

	for _, want := range []string{
		"Loan Pool Summary",
		"Total Principal: $",
		"Total Cash Collected: $",
		"Senior", "Mezzanine", "Equity",
		"70.00%", "20.00%", "10.00%",
		"IRR (monthly)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PoolMarkdown() missing %q in:\n%s", want, got)
		}
	}

	// Field order: totals first, then tranches in seniority order.
	order := []string{"Total Principal", "Total Cash Collected", "Senior", "Mezzanine", "Equity"}
	last := -1
	for _, field := range order {
		i := strings.Index(got, field)
		if i < 0 || i < last {
			t.Fatalf("field %q missing or out of order in:\n%s", field, got)
		}
		last = i
	}
}

func TestTranchesMarkdownWaterfall(t *testing.T) {
	got := TranchesMarkdown(testReport(t, true))
	if !strings.Contains(got, "Shortfall Periods") {
		t.Errorf("waterfall table missing shortfall column:\n%s", got)
	}
	if !strings.Contains(got, "sequential waterfall") {
		t.Errorf("waterfall table missing mode title:\n%s", got)
	}
}

func TestTrancheIRRNoSolutionRendersNA(t *testing.T) {
	report := &tranche.PoolReport{
		Count: 1, Term: 1,
		TotalPrincipal: tranche.M(1000, "USD"),
		TotalCash:      tranche.M(0, "USD"),
		Tranches: []tranche.TrancheReport{
			{Class: tranche.Senior, Fraction: tranche.FromFraction(1), Solved: false},
		},
	}
	got := TranchesMarkdown(report)
	if !strings.Contains(got, "N/A") {
		t.Errorf("unsolved IRR should render as N/A:\n%s", got)
	}
}

func TestScheduleMarkdown(t *testing.T) {
	loan := tranche.Loan{Principal: 10_000, AnnualRate: 0.12, TermMonths: 12}
	s := tranche.Amortize(loan, date.New(2026, time.January, 1))

	got := ScheduleMarkdown(s, "USD")
	for _, want := range []string{"Amortization Schedule", "2026-02-01", "2027-01-01", "$888.49", "$100.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("ScheduleMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestLoansMarkdown(t *testing.T) {
	loans := []tranche.Loan{{Principal: 12_345.678, AnnualRate: 0.1, TermMonths: 36}}
	got := LoansMarkdown(loans, "USD")
	for _, want := range []string{"Loan Pool (1 loans)", "$12,345.68", "10.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("LoansMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestChart(t *testing.T) {
	series := []float64{100, 101, 99, 100, 102}
	got := Chart(series)
	if got == "" {
		t.Fatal("Chart() returned an empty plot")
	}
	if !strings.Contains(got, "Portfolio Cash Flow") {
		t.Errorf("Chart() missing caption:\n%s", got)
	}
}
