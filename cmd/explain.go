package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	bs "github.com/etnz/balancesheet"
	"github.com/etnz/balancesheet/agent"
	"github.com/etnz/balancesheet/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const defaultQuestion = "Comment this balance sheet and its financial ratios."

// explainCmd asks an AI accountant to comment the reports.
type explainCmd struct {
	inputFlags
	interactive bool
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "ask an AI accountant to comment the balance sheet" }
func (*explainCmd) Usage() string {
	return `bs explain [-i <answers.jsonl> | -json <doc.json> -map <mapping.jsonl>] [-chat] [<question>...]

  Sends the balance sheet and the financial ratios to Gemini and prints its
  comments. Requires the GEMINI_API_KEY environment variable.
  With -chat, follow-up questions are read from the terminal until 'bye'.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.BoolVar(&c.interactive, "chat", false, "keep asking questions after the first answer")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.interactive && c.answers == "" && c.jsonDoc == "" {
		fmt.Fprintln(os.Stderr, "Error: -chat needs -i or -json, the terminal cannot be used for both the values and the questions")
		return subcommands.ExitUsageError
	}

	question := defaultQuestion
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	ledger, err := c.Ledger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting line items: %v\n", err)
		return subcommands.ExitFailure
	}
	sheet := renderer.NewBalanceSheet(bs.NewAggregator(ledger), "", Label())

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	accountant := agent.NewAccountant(renderer.BalanceSheetMarkdown(sheet), renderer.RatiosMarkdown(sheet))
	if !c.interactive {
		if err := accountant.Start(ctx, client); err != nil {
			fmt.Fprintln(os.Stderr, "Agent failed:", err)
			return subcommands.ExitFailure
		}
		text, err := accountant.Ask(ctx, &genai.Part{Text: question})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Agent failed:", err)
			return subcommands.ExitFailure
		}
		printMarkdown(text)
		return subcommands.ExitSuccess
	}

	a := agent.New(stdout, stdin, accountant)
	if err := a.Run(ctx, client, question); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
