package tranche

import (
	"math"

	"github.com/etnz/tranche/date"
)

// MonthlyPayment returns the level payment that amortizes principal
// over the given number of months at a nominal annual rate, using the
// standard annuity formula P = principal * r / (1 - (1+r)^-months)
// with r the monthly rate. A zero rate degenerates to equal principal
// installments.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	r := annualRate / 12
	if r == 0 {
		return principal / float64(months)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(months)))
}

// Installment is one month of a loan's repayment schedule.
type Installment struct {
	Month     int       // 1-based month index
	Date      date.Date // payment due date
	Payment   float64   // cash collected this month
	Interest  float64   // interest portion of the payment
	Principal float64   // principal portion of the payment
	Balance   float64   // remaining balance after the payment
}

// Schedule is the full repayment schedule of one loan.
type Schedule struct {
	Loan         Loan
	Installments []Installment
}

// Amortize computes the repayment schedule of l with the first payment
// one month after start.
//
// Each month the interest accrues on the open balance and the rest of
// the level payment retires principal. On the final month the principal
// portion is clamped to the remaining balance and the payment recomputed
// from it, so the balance settles at exactly zero and never goes
// negative.
func Amortize(l Loan, start date.Date) Schedule {
	payment := l.Payment()
	r := l.MonthlyRate()
	balance := l.Principal

	installments := make([]Installment, 0, l.TermMonths)
	for m := 1; m <= l.TermMonths; m++ {
		interest := balance * r
		principal := payment - interest
		due := payment
		if m == l.TermMonths || balance < principal {
			// Settle the remaining balance: the last payment is
			// recomputed so the balance reaches exactly zero and can
			// never go negative.
			principal = balance
			due = principal + interest
		}
		balance -= principal
		installments = append(installments, Installment{
			Month:     m,
			Date:      start.AddMonths(m),
			Payment:   due,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}
	return Schedule{Loan: l, Installments: installments}
}

// CashFlows returns the schedule's monthly payments as a series.
func (s Schedule) CashFlows() []float64 {
	flows := make([]float64, len(s.Installments))
	for i, inst := range s.Installments {
		flows[i] = inst.Payment
	}
	return flows
}

// TotalPaid returns the sum of all payments in the schedule.
func (s Schedule) TotalPaid() float64 {
	var total float64
	for _, inst := range s.Installments {
		total += inst.Payment
	}
	return total
}

// TotalInterest returns the interest accrued over the whole schedule.
func (s Schedule) TotalInterest() float64 {
	var total float64
	for _, inst := range s.Installments {
		total += inst.Interest
	}
	return total
}
