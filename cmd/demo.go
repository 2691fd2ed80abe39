package cmd

import (
	"context"
	"flag"
	"fmt"

	"financas/renderer"
	"github.com/google/subcommands"
)

// demoCmd holds the flags for the 'demo' subcommand.
type demoCmd struct {
	months int
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the example scenario and print both reports" }
func (*demoCmd) Usage() string {
	return `fin demo [-months <n>]

  Builds the example client (two accounts, two investments), prints the
  current financial report and a future-value projection.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 6, "Projection horizon, in 30-day months")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := exampleClient()

	fmt.Println(renderer.GenerateReport(client))

	fmt.Printf("\nProjeção de Rendimentos para %d meses a partir de hoje:\n", c.months)
	fmt.Println(renderer.FutureValueReport(client, monthsFromNow(c.months)))

	return subcommands.ExitSuccess
}
