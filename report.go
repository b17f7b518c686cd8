package tranche

import (
	"errors"
	"fmt"
)

// DefaultCurrency is the reporting currency when none is configured.
const DefaultCurrency = "USD"

// PoolReport is the fully computed view of a simulation, ready for
// rendering. It carries no behavior beyond formatting-friendly types.
type PoolReport struct {
	Count          int
	Term           int
	TotalPrincipal Money
	TotalCash      Money
	TotalInterest  Money
	CashFlow       []float64 // portfolio monthly series
	Waterfall      bool
	Tranches       []TrancheReport
}

// TrancheReport is one tranche's line in the report.
type TrancheReport struct {
	Class      Class
	Fraction   Percent
	Investment Money
	TotalCash  Money
	Solved     bool    // false when the IRR solver found no real root
	IRR        Percent // periodic (monthly) rate; valid when Solved
	AnnualIRR  Percent // compounded annual equivalent; valid when Solved
	Shortfalls int     // periods not paid in full (waterfall mode)
}

// NewPoolReport runs the allocator and the IRR solver over the pool.
// With waterfall set, cash is distributed in seniority order instead of
// the flat pro-rata split.
func NewPoolReport(p Pool, allocs []Allocation, waterfall bool, currency string) (*PoolReport, error) {
	if currency == "" {
		currency = DefaultCurrency
	}

	var tranches []Tranche
	var err error
	if waterfall {
		tranches, err = SliceWaterfall(p, allocs)
	} else {
		tranches, err = SliceProRata(p, allocs)
	}
	if err != nil {
		return nil, err
	}

	report := &PoolReport{
		Count:          len(p.Loans),
		Term:           p.Term(),
		TotalPrincipal: M(p.TotalPrincipal(), currency),
		TotalCash:      M(p.TotalCash(), currency),
		TotalInterest:  M(p.TotalInterest(), currency),
		CashFlow:       p.CashFlow(),
		Waterfall:      waterfall,
	}

	for _, t := range tranches {
		tr := TrancheReport{
			Class:      t.Class,
			Fraction:   FromFraction(t.Fraction),
			Investment: M(t.Investment, currency),
			TotalCash:  M(t.TotalCash(), currency),
			Shortfalls: t.Shortfalls(),
		}
		rate, err := IRR(t.Investment, t.CashFlows)
		switch {
		case errors.Is(err, ErrNoSolution):
			// Surfaced as N/A by the renderer, never as a zero rate.
			tr.Solved = false
		case err != nil:
			return nil, fmt.Errorf("tranche %s: %w", t.Class, err)
		default:
			tr.Solved = true
			tr.IRR = FromFraction(rate)
			tr.AnnualIRR = FromFraction(Annualize(rate))
		}
		report.Tranches = append(report.Tranches, tr)
	}
	return report, nil
}
