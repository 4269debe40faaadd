package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bs "github.com/etnz/balancesheet"
	"github.com/etnz/balancesheet/renderer"
	"github.com/google/subcommands"
)

// ratiosCmd holds the flags for the 'ratios' subcommand.
type ratiosCmd struct {
	inputFlags
	markdown bool
}

func (*ratiosCmd) Name() string     { return "ratios" }
func (*ratiosCmd) Synopsis() string { return "collect line items and print the financial ratios" }
func (*ratiosCmd) Usage() string {
	return `bs ratios [-i <answers.jsonl> | -json <doc.json> -map <mapping.jsonl>] [-md]

  Prints the current ratio, the debt-to-equity ratio, the equity ratio and the
  debt ratio. Ratios over a zero denominator are reported as N/A.
`
}

func (c *ratiosCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.BoolVar(&c.markdown, "md", false, "render the report as markdown")
}

func (c *ratiosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := c.Ledger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting line items: %v\n", err)
		return subcommands.ExitFailure
	}

	sheet := renderer.NewBalanceSheet(bs.NewAggregator(ledger), "", Label())
	if c.markdown {
		printMarkdown(renderer.RatiosMarkdown(sheet))
		return subcommands.ExitSuccess
	}
	fmt.Fprint(stdout, renderer.RenderRatios(sheet))
	return subcommands.ExitSuccess
}
