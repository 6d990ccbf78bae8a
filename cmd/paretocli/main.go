package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fairdiv/paretoflow/exchange"
)

func main() {
	app := &cli.App{
		Name:  "paretocli",
		Usage: "Check and repair Pareto efficiency of fractional allocations",
		Commands: []*cli.Command{
			checkCmd,
			improveCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var checkCmd = &cli.Command{
	Name:    "check",
	Usage:   "Report whether the allocation is Pareto efficient",
	Aliases: []string{"c"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input market.json",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doCheck(ctx.String("input"))
	},
}

var improveCmd = &cli.Command{
	Name:    "improve",
	Usage:   "Apply cycle-canceling steps until efficient or the step cap",
	Aliases: []string{"i"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input market.json",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "specify the output allocation.json (default: stdout)",
		},
		&cli.Float64Flag{
			Name:  "epsilon",
			Value: exchange.DefaultEpsilon,
			Usage: "nominal step size for each cycle-canceling step (0,1]",
		},
		&cli.IntFlag{
			Name:  "max-steps",
			Value: 100,
			Usage: "maximum number of improvement steps to apply",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			inFile  = ctx.String("input")
			outFile = ctx.String("output")
			eps     = ctx.Float64("epsilon")
			steps   = ctx.Int("max-steps")
		)
		if !(eps > 0) || eps > 1 {
			return errors.New("invalid epsilon")
		}
		if steps <= 0 {
			return errors.New("invalid max-steps")
		}

		return doImprove(inFile, outFile, eps, steps)
	},
}
