package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	bs "github.com/etnz/balancesheet"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the asset and liability categories" }
func (*categoriesCmd) Usage() string {
	return `bs categories

  Lists the category ids usable in answers and mapping files, and how assets
  are classified.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (*categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tASSET\tTERM")
	for _, c := range bs.AssetCategories {
		term := "non-current"
		if c.Current {
			term = "current"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, term)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ID\tLIABILITY\tTERM")
	for _, c := range bs.LiabilityCategories {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, "asked")
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing categories: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
