package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tranche/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	sim  simFlags
	loan int
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display one loan's amortization schedule" }
func (*scheduleCmd) Usage() string {
	return `tsim schedule -loan <index> [-seed <n>]

  Displays the month-by-month amortization table of a single loan of
  the generated pool: payment, interest and principal portions, and the
  remaining balance.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	c.sim.SetFlags(f)
	f.IntVar(&c.loan, "loan", 0, "Index of the loan in the pool (see the loans command).")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pool, err := c.sim.pool()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.loan < 0 || c.loan >= len(pool.Schedules) {
		fmt.Fprintf(os.Stderr, "Error: loan index %d out of range [0, %d)\n", c.loan, len(pool.Schedules))
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.ScheduleMarkdown(pool.Schedules[c.loan], c.sim.currency))
	return subcommands.ExitSuccess
}
