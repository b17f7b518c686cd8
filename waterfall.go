package tranche

import "errors"

// PayStatus describes how a tranche's claim was met in one period.
type PayStatus int

const (
	PaidInFull PayStatus = iota
	PartiallyPaid
	Defaulted
)

func (s PayStatus) String() string {
	switch s {
	case PaidInFull:
		return "paid-in-full"
	case PartiallyPaid:
		return "partially-paid"
	case Defaulted:
		return "defaulted"
	}
	return "unknown"
}

// SliceWaterfall distributes each period's portfolio cash in seniority
// order (the order of allocs). Every tranche but the last claims its
// flat scheduled amount plus any shortfall carried from earlier
// periods, capped by the cash still available; unpaid claims cascade as
// carried shortfall. The last allocation is the residual tranche and
// takes whatever remains after senior claims are served.
//
// Each tranche records a per-period status: PaidInFull when the whole
// claim (or a zero claim) was served, PartiallyPaid when only part of
// it was, Defaulted when a positive claim received nothing.
func SliceWaterfall(p Pool, allocs []Allocation) ([]Tranche, error) {
	if err := validateAllocations(allocs); err != nil {
		return nil, err
	}
	term := p.Term()
	if term == 0 {
		return nil, errors.New("tranche: empty pool")
	}
	series := p.CashFlow()
	totalPrincipal := p.TotalPrincipal()
	totalCash := p.TotalCash()

	tranches := make([]Tranche, len(allocs))
	scheduled := make([]float64, len(allocs))
	carried := make([]float64, len(allocs))
	for i, a := range allocs {
		tranches[i] = Tranche{
			Class:      a.Class,
			Fraction:   a.Fraction,
			Investment: totalPrincipal * a.Fraction,
			CashFlows:  make([]float64, term),
			Statuses:   make([]PayStatus, term),
		}
		scheduled[i] = totalCash * a.Fraction / float64(term)
	}

	residual := len(tranches) - 1
	for m := 0; m < term; m++ {
		available := series[m]
		for i := range tranches {
			claim := scheduled[i] + carried[i]
			if i == residual {
				claim = available
			}
			paid := claim
			if paid > available {
				paid = available
			}
			available -= paid
			carried[i] = claim - paid
			tranches[i].CashFlows[m] = paid

			switch {
			case claim-paid < 1e-9:
				tranches[i].Statuses[m] = PaidInFull
			case paid > 0:
				tranches[i].Statuses[m] = PartiallyPaid
			default:
				tranches[i].Statuses[m] = Defaulted
			}
		}
	}
	return tranches, nil
}
