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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	inputFlags
	title    string
	markdown bool
	noRatios bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "collect line items and print the balance sheet" }
func (*reportCmd) Usage() string {
	return `bs report [-i <answers.jsonl> | -json <doc.json> -map <mapping.jsonl>] [-md] [-title <title>] [-no-ratios]

  Asks one value for every asset and liability category, then prints the
  balance sheet followed by the financial ratios.
  See 'bs topic input' for the non interactive inputs.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.title, "title", renderer.DefaultTitle, "title of the balance sheet")
	f.BoolVar(&c.markdown, "md", false, "render the reports as markdown")
	f.BoolVar(&c.noRatios, "no-ratios", false, "do not print the financial ratios")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := c.Ledger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting line items: %v\n", err)
		return subcommands.ExitFailure
	}

	sheet := renderer.NewBalanceSheet(bs.NewAggregator(ledger), c.title, Label())
	if c.markdown {
		md := renderer.BalanceSheetMarkdown(sheet)
		if !c.noRatios {
			md += "\n" + renderer.RatiosMarkdown(sheet)
		}
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	fmt.Fprint(stdout, renderer.RenderBalanceSheet(sheet))
	if !c.noRatios {
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, renderer.RenderRatios(sheet))
	}
	return subcommands.ExitSuccess
}
