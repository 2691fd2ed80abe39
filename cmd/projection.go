package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"financas"
	"financas/renderer"
	"github.com/google/subcommands"
)

// projectionCmd holds the flags for the 'projection' subcommand.
type projectionCmd struct {
	months int
	date   string
}

func (*projectionCmd) Name() string     { return "projection" }
func (*projectionCmd) Synopsis() string { return "display a future-value projection" }
func (*projectionCmd) Usage() string {
	return `fin projection [-months <n> | -d <date>]

  Displays the example client's projected position, rendered as markdown
  for the terminal. The horizon is given either as a number of 30-day
  months or as an absolute date (yyyy-mm-dd).
`
}

func (c *projectionCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 6, "Projection horizon, in 30-day months")
	f.StringVar(&c.date, "d", "", "Projection target date (yyyy-mm-dd), overrides -months")
}

func (c *projectionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	future := monthsFromNow(c.months)
	if c.date != "" {
		parsed, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		future = parsed
	}

	projection := financas.NewProjection(exampleClient(), time.Now(), future)
	printMarkdown(renderer.ProjectionMarkdown(projection))
	return subcommands.ExitSuccess
}
