// Package cmd implements the CLI application to run loan-pool
// securitization simulations.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/tranche"
	"github.com/etnz/tranche/date"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all
// and lets the commander execute the user-selected one.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&loansCmd{},
	&scheduleCmd{},
	&tranchesCmd{},
	&chartCmd{},
	&topicCmd{},
}

// simFlags holds the pool-generation flags shared by the simulation
// commands.
type simFlags struct {
	seed         int64
	count        int
	term         int
	principalMin float64
	principalMax float64
	rateMin      float64
	rateMax      float64
	start        string
	currency     string
}

func (s *simFlags) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&s.seed, "seed", tranche.DefaultSeed, "Random seed; a given seed always produces the same pool.")
	f.IntVar(&s.count, "count", tranche.DefaultCount, "Number of loans in the pool.")
	f.IntVar(&s.term, "term", tranche.DefaultTermMonths, "Loan term in months.")
	f.Float64Var(&s.principalMin, "principal-min", tranche.DefaultPrincipalMin, "Lower bound of the principal range (inclusive).")
	f.Float64Var(&s.principalMax, "principal-max", tranche.DefaultPrincipalMax, "Upper bound of the principal range (exclusive).")
	f.Float64Var(&s.rateMin, "rate-min", tranche.DefaultRateMin, "Lower bound of the annual rate range (inclusive).")
	f.Float64Var(&s.rateMax, "rate-max", tranche.DefaultRateMax, "Upper bound of the annual rate range (exclusive).")
	f.StringVar(&s.start, "start", date.Today().String(), "Origination date of the pool (YYYY-MM-DD); affects schedule dates only.")
	f.StringVar(&s.currency, "currency", tranche.DefaultCurrency, "ISO 4217 reporting currency.")
}

// pool generates the loan pool described by the flags.
func (s *simFlags) pool() (tranche.Pool, error) {
	if s.count <= 0 {
		return tranche.Pool{}, fmt.Errorf("count must be positive, got %d", s.count)
	}
	if s.term <= 0 {
		return tranche.Pool{}, fmt.Errorf("term must be positive, got %d", s.term)
	}
	if s.principalMin <= 0 || s.principalMax < s.principalMin {
		return tranche.Pool{}, fmt.Errorf("invalid principal range [%g, %g)", s.principalMin, s.principalMax)
	}
	if s.rateMin < 0 || s.rateMax < s.rateMin {
		return tranche.Pool{}, fmt.Errorf("invalid rate range [%g, %g)", s.rateMin, s.rateMax)
	}
	start, err := date.Parse(s.start)
	if err != nil {
		return tranche.Pool{}, err
	}

	g := tranche.NewGenerator(s.seed)
	g.Count = s.count
	g.TermMonths = s.term
	g.PrincipalMin, g.PrincipalMax = s.principalMin, s.principalMax
	g.RateMin, g.RateMax = s.rateMin, s.rateMax

	return tranche.NewPool(g.Generate(), start), nil
}

// report generates the pool and computes the full report over it.
func (s *simFlags) report(waterfall bool) (*tranche.PoolReport, error) {
	pool, err := s.pool()
	if err != nil {
		return nil, err
	}
	return tranche.NewPoolReport(pool, tranche.StandardAllocations(), waterfall, s.currency)
}
