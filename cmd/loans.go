package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tranche/renderer"
	"github.com/google/subcommands"
)

// loansCmd holds the flags for the 'loans' subcommand.
type loansCmd struct {
	sim simFlags
}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "list the generated loan pool" }
func (*loansCmd) Usage() string {
	return `tsim loans [-seed <n>] [-count <n>]

  Lists every loan in the generated pool with its principal, rate and
  level monthly payment.
`
}

func (c *loansCmd) SetFlags(f *flag.FlagSet) {
	c.sim.SetFlags(f)
}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pool, err := c.sim.pool()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LoansMarkdown(pool.Loans, c.sim.currency))
	return subcommands.ExitSuccess
}
