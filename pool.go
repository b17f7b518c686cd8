package tranche

import "github.com/etnz/tranche/date"

// Pool is a set of loans together with their repayment schedules.
// It is created once by NewPool and never mutated.
type Pool struct {
	Loans     []Loan
	Schedules []Schedule
	Start     date.Date // origination date shared by all loans
}

// NewPool amortizes every loan, originated at start.
func NewPool(loans []Loan, start date.Date) Pool {
	schedules := make([]Schedule, len(loans))
	for i, l := range loans {
		schedules[i] = Amortize(l, start)
	}
	return Pool{Loans: loans, Schedules: schedules, Start: start}
}

// Term returns the pool's horizon in months, the longest schedule.
func (p Pool) Term() int {
	var term int
	for _, s := range p.Schedules {
		if len(s.Installments) > term {
			term = len(s.Installments)
		}
	}
	return term
}

// CashFlow returns the portfolio cash-flow series: the element-wise sum
// of every loan's monthly payments over the pool's term.
func (p Pool) CashFlow() []float64 {
	series := make([]float64, p.Term())
	for _, s := range p.Schedules {
		for i, inst := range s.Installments {
			series[i] += inst.Payment
		}
	}
	return series
}

// TotalPrincipal returns the sum of all loan principals.
func (p Pool) TotalPrincipal() float64 {
	var total float64
	for _, l := range p.Loans {
		total += l.Principal
	}
	return total
}

// TotalCash returns the total cash collected over the pool's life, the
// sum of every payment of every schedule.
func (p Pool) TotalCash() float64 {
	var total float64
	for _, s := range p.Schedules {
		total += s.TotalPaid()
	}
	return total
}

// TotalInterest returns the interest portion of TotalCash.
func (p Pool) TotalInterest() float64 {
	var total float64
	for _, s := range p.Schedules {
		total += s.TotalInterest()
	}
	return total
}
