package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// execute runs a subcommand with args and returns its exit status and output.
func execute(t *testing.T, c subcommands.Command, input string, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}

	oldStdin, oldStdout := stdin, stdout
	defer func() { stdin, stdout = oldStdin, oldStdout }()
	var out bytes.Buffer
	stdin, stdout = strings.NewReader(input), &out

	status := c.Execute(context.Background(), f)
	return status, out.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReportCmd(t *testing.T) {
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvCurrencyLabel, "")

	answers := writeFile(t, "answers.jsonl", `{"category":"cash","value":1000}
{"category":"loans","value":500,"shortTerm":true}
`)

	testCases := []struct {
		name         string
		cmd          subcommands.Command
		input        string
		args         []string
		wantStatus   subcommands.ExitStatus
		wantContains []string
		wantMissing  []string
	}{
		{
			name:       "answers file",
			cmd:        &reportCmd{},
			args:       []string{"-i", answers},
			wantStatus: subcommands.ExitSuccess,
			wantContains: []string{
				"=====================STARTUP BALANCE SHEET========================",
				"Cash and cash equivalents                     Rs.1000.00",
				"Debt on business loans                        Rs.500.00",
				"Owner's Equity:                               Rs.500.00",
				"Current Ratio:                 2.00",
			},
		},
		{
			name:         "no ratios",
			cmd:          &reportCmd{},
			args:         []string{"-i", answers, "-no-ratios", "-title", "ACME"},
			wantStatus:   subcommands.ExitSuccess,
			wantContains: []string{"=====================ACME========================"},
			wantMissing:  []string{"FINANCIAL STATUS"},
		},
		{
			name:       "interactive",
			cmd:        &reportCmd{},
			input:      "100 0 0 0 0 0 0\n0 no 0 no 0 no 0 no 0 no 0 no 0 no 0 no 0 no\n",
			wantStatus: subcommands.ExitSuccess,
			wantContains: []string{
				"Enter value for Cash and cash equivalents: Rs.",
				"Equity Ratio:                  100.00%",
				"Debt Ratio:                    0.00%",
				"Debt-to-Equity Ratio:          0.00",
			},
		},
		{
			name:       "non numeric input",
			cmd:        &reportCmd{},
			input:      "100 lots",
			wantStatus: subcommands.ExitFailure,
		},
		{
			name:         "ratios only",
			cmd:          &ratiosCmd{},
			args:         []string{"-i", answers},
			wantStatus:   subcommands.ExitSuccess,
			wantContains: []string{"========FINANCIAL STATUS=========", "Debt Ratio:                    50.00%"},
			wantMissing:  []string{"BALANCE SHEET"},
		},
		{
			name:         "markdown ratios",
			cmd:          &ratiosCmd{},
			args:         []string{"-i", answers, "-md"},
			wantStatus:   subcommands.ExitSuccess,
			wantContains: []string{"# Financial Status", "2.00"},
		},
		{
			name:       "json without mapping",
			cmd:        &ratiosCmd{},
			args:       []string{"-json", answers},
			wantStatus: subcommands.ExitFailure,
		},
		{
			name:         "categories",
			cmd:          &categoriesCmd{},
			wantStatus:   subcommands.ExitSuccess,
			wantContains: []string{"receivables", "Accounts receivable, net and other", "investment-taxes"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, out := execute(t, tc.cmd, tc.input, tc.args...)
			if status != tc.wantStatus {
				t.Fatalf("status = %v, want %v; output:\n%s", status, tc.wantStatus, out)
			}
			for _, s := range tc.wantContains {
				if !strings.Contains(out, s) {
					t.Errorf("output does not contain %q:\n%s", s, out)
				}
			}
			for _, s := range tc.wantMissing {
				if strings.Contains(out, s) {
					t.Errorf("output contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestReportCmd_JSONImport(t *testing.T) {
	doc := writeFile(t, "export.json", `{"assets":{"cash":250,"goodwill":750},"debts":[{"amount":"100.50"}]}`)
	mapping := writeFile(t, "mapping.jsonl", `{"category":"cash","path":"$.assets.cash"}
{"category":"goodwill","path":"$.assets.goodwill"}
{"category":"accrued","path":"$.debts[0].amount"}
`)
	status, out := execute(t, &reportCmd{}, "", "-json", doc, "-map", mapping)
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v, output:\n%s", status, out)
	}
	for _, want := range []string{
		"Total Assets:                                 Rs.1000.00",
		"Total Long-term Liabilities:                  Rs.100.50",
		"Owner's Equity:                               Rs.899.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestConfig(t *testing.T) {
	oldLabel, oldCurrency := *currencyLabel, *currency
	defer func() { *currencyLabel, *currency = oldLabel, oldCurrency }()

	t.Setenv(EnvCurrencyLabel, "")
	t.Setenv(EnvCurrency, "")
	if Label() != "Rs." || Currency() != "INR" {
		t.Errorf("defaults = %q, %q; want Rs., INR", Label(), Currency())
	}

	t.Setenv(EnvCurrencyLabel, "$")
	t.Setenv(EnvCurrency, "USD")
	if Label() != "$" || Currency() != "USD" {
		t.Errorf("from environment = %q, %q; want $, USD", Label(), Currency())
	}

	*currencyLabel, *currency = "EUR ", "EUR"
	if Label() != "EUR " || Currency() != "EUR" {
		t.Errorf("from flags = %q, %q; want EUR , EUR", Label(), Currency())
	}

	*currency = "XYZ"
	if _, err := (&inputFlags{}).Ledger(); err == nil {
		t.Error("Ledger() with an unknown currency succeeded, want error")
	}
}
