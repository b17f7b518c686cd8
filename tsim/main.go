package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tranche/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; exits early when invoked by the shell.
	completion().Complete("tsim")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	simFlags := map[string]complete.Predictor{
		"seed":          predict.Something,
		"count":         predict.Something,
		"term":          predict.Something,
		"principal-min": predict.Something,
		"principal-max": predict.Something,
		"rate-min":      predict.Something,
		"rate-max":      predict.Something,
		"start":         predict.Something,
		"currency":      predict.Set{"USD", "EUR", "GBP", "JPY"},
	}
	withWaterfall := map[string]complete.Predictor{"waterfall": predict.Nothing}
	for k, v := range simFlags {
		withWaterfall[k] = v
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"simulate": {Flags: withWaterfall},
			"loans":    {Flags: simFlags},
			"schedule": {Flags: simFlags},
			"tranches": {Flags: withWaterfall},
			"chart":    {Flags: simFlags},
			"topic": {
				Args: predict.Set{"readme", "amortization", "irr", "reproducibility", "tranches", "waterfall", "*"},
			},
		},
	}
}
