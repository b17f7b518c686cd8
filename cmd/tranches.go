package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tranche/renderer"
	"github.com/google/subcommands"
)

// tranchesCmd holds the flags for the 'tranches' subcommand.
type tranchesCmd struct {
	sim       simFlags
	waterfall bool
}

func (*tranchesCmd) Name() string     { return "tranches" }
func (*tranchesCmd) Synopsis() string { return "display the tranche allocation and IRR table" }
func (*tranchesCmd) Usage() string {
	return `tsim tranches [-waterfall] [-seed <n>]

  Displays the Senior/Mezzanine/Equity allocation with each tranche's
  investment, total cash and internal rate of return. With -waterfall,
  cash is distributed in seniority order and the table also counts the
  periods each tranche was not paid in full.
`
}

func (c *tranchesCmd) SetFlags(f *flag.FlagSet) {
	c.sim.SetFlags(f)
	f.BoolVar(&c.waterfall, "waterfall", false, "Distribute cash in seniority order instead of pro rata.")
}

func (c *tranchesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.sim.report(c.waterfall)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TranchesMarkdown(report))
	return subcommands.ExitSuccess
}
