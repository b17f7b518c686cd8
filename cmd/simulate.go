package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tranche/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	sim       simFlags
	waterfall bool
	noChart   bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run the full pool simulation and report" }
func (*simulateCmd) Usage() string {
	return `tsim simulate [-seed <n>] [-count <n>] [-waterfall] [-no-chart]

  Generates the loan pool, amortizes every loan, aggregates the
  portfolio cash flow, slices it across the Senior/Mezzanine/Equity
  tranches and reports each tranche's IRR, followed by a line chart of
  the portfolio monthly cash flow.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.sim.SetFlags(f)
	f.BoolVar(&c.waterfall, "waterfall", false, "Distribute cash in seniority order instead of pro rata.")
	f.BoolVar(&c.noChart, "no-chart", false, "Skip the cash-flow chart.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.sim.report(c.waterfall)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PoolMarkdown(report))

	if !c.noChart {
		fmt.Println(renderer.Chart(report.CashFlow))
	}
	return subcommands.ExitSuccess
}
