package tranche

import "math/rand"

// Default pool parameters. A generator built with NewGenerator uses
// these; callers can override any field before calling Generate.
const (
	DefaultSeed       int64 = 42
	DefaultCount            = 100
	DefaultTermMonths       = 36

	DefaultPrincipalMin = 10_000.0
	DefaultPrincipalMax = 50_000.0
	DefaultRateMin      = 0.05
	DefaultRateMax      = 0.15
)

// Loan is a single fixed-rate, fully amortizing loan. Loans are
// immutable once generated.
type Loan struct {
	Principal  float64 // original principal, in currency units
	AnnualRate float64 // nominal annual rate, as a fraction in (0,1)
	TermMonths int
}

// MonthlyRate returns the periodic rate used by the amortization engine.
func (l Loan) MonthlyRate() float64 { return l.AnnualRate / 12 }

// Payment returns the loan's level monthly payment.
func (l Loan) Payment() float64 {
	return MonthlyPayment(l.Principal, l.AnnualRate, l.TermMonths)
}

// Generator draws loan pools with principal and rate uniformly
// distributed over half-open ranges [Min, Max).
type Generator struct {
	Count        int
	PrincipalMin float64
	PrincipalMax float64
	RateMin      float64
	RateMax      float64
	TermMonths   int
	Seed         int64
}

// NewGenerator returns a generator for the standard pool (100 loans,
// principal in [10000, 50000), rate in [0.05, 0.15), 36 months) with
// the given seed.
func NewGenerator(seed int64) Generator {
	return Generator{
		Count:        DefaultCount,
		PrincipalMin: DefaultPrincipalMin,
		PrincipalMax: DefaultPrincipalMax,
		RateMin:      DefaultRateMin,
		RateMax:      DefaultRateMax,
		TermMonths:   DefaultTermMonths,
		Seed:         seed,
	}
}

// Generate draws the pool. The random source is local to the call and
// seeded from g.Seed, so two generators with the same configuration
// produce identical pools. For each loan the principal is drawn first,
// then the rate.
func (g Generator) Generate() []Loan {
	rng := rand.New(rand.NewSource(g.Seed))
	loans := make([]Loan, g.Count)
	for i := range loans {
		principal := g.PrincipalMin + rng.Float64()*(g.PrincipalMax-g.PrincipalMin)
		rate := g.RateMin + rng.Float64()*(g.RateMax-g.RateMin)
		loans[i] = Loan{Principal: principal, AnnualRate: rate, TermMonths: g.TermMonths}
	}
	return loans
}
