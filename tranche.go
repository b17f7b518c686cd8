package tranche

import (
	"errors"
	"fmt"
	"math"
)

// Class identifies a tranche by seniority.
type Class string

const (
	Senior    Class = "Senior"
	Mezzanine Class = "Mezzanine"
	Equity    Class = "Equity"
)

// Allocation binds a class to its fixed share of the pool's principal
// and cash.
type Allocation struct {
	Class    Class
	Fraction float64
}

// StandardAllocations is the 70/20/10 capital structure, most senior
// first.
func StandardAllocations() []Allocation {
	return []Allocation{
		{Class: Senior, Fraction: 0.70},
		{Class: Mezzanine, Fraction: 0.20},
		{Class: Equity, Fraction: 0.10},
	}
}

// ErrBadAllocation reports an allocation set whose fractions do not sum
// to 1.
var ErrBadAllocation = errors.New("tranche allocations must sum to 1")

func validateAllocations(allocs []Allocation) error {
	if len(allocs) == 0 {
		return fmt.Errorf("%w: no allocations", ErrBadAllocation)
	}
	var sum float64
	for _, a := range allocs {
		sum += a.Fraction
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: got %.6f", ErrBadAllocation, sum)
	}
	return nil
}

// Tranche is one slice of the pool's cash flows.
type Tranche struct {
	Class      Class
	Fraction   float64
	Investment float64     // share of the pool's principal
	CashFlows  []float64   // monthly cash received, over the pool's term
	Statuses   []PayStatus // per-period payment status; nil in pro-rata mode
}

// TotalCash returns the cash the tranche receives over the term.
func (t Tranche) TotalCash() float64 {
	var total float64
	for _, cf := range t.CashFlows {
		total += cf
	}
	return total
}

// Shortfalls returns the number of periods where the tranche was not
// paid in full. Always zero in pro-rata mode.
func (t Tranche) Shortfalls() int {
	var n int
	for _, s := range t.Statuses {
		if s != PaidInFull {
			n++
		}
	}
	return n
}

// SliceProRata splits the pool across the allocations proportionally:
// each tranche invests its fraction of the total principal and receives
// its fraction of the total cash, spread evenly over the term. There is
// no subordination; every tranche is paid regardless of the shape of
// the portfolio series.
func SliceProRata(p Pool, allocs []Allocation) ([]Tranche, error) {
	if err := validateAllocations(allocs); err != nil {
		return nil, err
	}
	term := p.Term()
	if term == 0 {
		return nil, errors.New("tranche: empty pool")
	}
	totalPrincipal := p.TotalPrincipal()
	totalCash := p.TotalCash()

	tranches := make([]Tranche, len(allocs))
	for i, a := range allocs {
		flows := make([]float64, term)
		monthly := totalCash * a.Fraction / float64(term)
		for m := range flows {
			flows[m] = monthly
		}
		tranches[i] = Tranche{
			Class:      a.Class,
			Fraction:   a.Fraction,
			Investment: totalPrincipal * a.Fraction,
			CashFlows:  flows,
		}
	}
	return tranches, nil
}
