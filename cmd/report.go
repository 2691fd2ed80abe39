package cmd

import (
	"context"
	"flag"
	"time"

	"financas"
	"financas/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the example client's financial report" }
func (*reportCmd) Usage() string {
	return `fin report

  Displays the current financial report of the example client, rendered as
  markdown for the terminal.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report := financas.NewReport(exampleClient(), time.Now())
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
