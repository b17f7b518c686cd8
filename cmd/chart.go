package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tranche/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	sim simFlags
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot the portfolio monthly cash flow" }
func (*chartCmd) Usage() string {
	return `tsim chart [-seed <n>] [-count <n>]

  Plots the portfolio monthly cash-flow series as a terminal line
  chart, x being the 0-based month index.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.sim.SetFlags(f)
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pool, err := c.sim.pool()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Chart(pool.CashFlow()))
	return subcommands.ExitSuccess
}
