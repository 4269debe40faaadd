// Package cmd implements the CLI application to compute a balance sheet.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	bs "github.com/etnz/balancesheet"
	"github.com/etnz/balancesheet/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&ratiosCmd{}, "reports")
	c.Register(&explainCmd{}, "reports")

	c.Register(&categoriesCmd{}, "documentation")
	c.Register(&topicCmd{}, "documentation")
}

const (
	EnvCurrencyLabel = "BS_CURRENCY_LABEL"
	EnvCurrency      = "BS_CURRENCY"
	EnvVerbose       = "BS_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currencyLabel = flag.String("currency-label", "", "Label printed before amounts. Defaults to $"+EnvCurrencyLabel+" or "+renderer.DefaultLabel)
var currency = flag.String("currency", "", "ISO currency code of the amounts. Defaults to $"+EnvCurrency+" or "+bs.DefaultCurrency)
var Verbose = flag.Bool("v", false, "print logs. Defaults to $"+EnvVerbose)

// stdin and stdout are the terminal of interactive sessions.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// LoadEnv loads the .env file of the working directory, if any.
// Variables already set in the environment are not overridden.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// SetupLogs discards logs unless verbose mode is on.
func SetupLogs() {
	if !IsVerbose() {
		log.SetOutput(io.Discard)
	}
}

// IsVerbose returns true if the -v flag or $BS_VERBOSE is set.
func IsVerbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// Label returns the currency label from the flag, the environment, or the default.
func Label() string {
	return firstOf(*currencyLabel, os.Getenv(EnvCurrencyLabel), renderer.DefaultLabel)
}

// Currency returns the currency code from the flag, the environment, or the default.
func Currency() string {
	return firstOf(*currency, os.Getenv(EnvCurrency), bs.DefaultCurrency)
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// inputFlags holds the flags selecting where line item values come from.
// With none set, values are asked on the terminal.
type inputFlags struct {
	answers string
	jsonDoc string
	mapping string
}

func (in *inputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&in.answers, "i", "", "read values from a JSONL answers file instead of asking them")
	f.StringVar(&in.jsonDoc, "json", "", "read values from a JSON document, using -map")
	f.StringVar(&in.mapping, "map", "", "JSONL mapping from category to JSONPath in the -json document")
}

// Ledger loads the ledger from the selected input.
func (in *inputFlags) Ledger() (*bs.Ledger, error) {
	cur := Currency()
	if err := bs.CheckCurrency(cur); err != nil {
		return nil, err
	}

	switch {
	case in.answers != "":
		log.Printf("reading answers from %q", in.answers)
		f, err := os.Open(in.answers)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return bs.DecodeAnswers(f, cur)

	case in.jsonDoc != "" || in.mapping != "":
		if in.jsonDoc == "" || in.mapping == "" {
			return nil, errors.New("-json and -map must be used together")
		}
		log.Printf("importing %q with mapping %q", in.jsonDoc, in.mapping)
		mf, err := os.Open(in.mapping)
		if err != nil {
			return nil, err
		}
		defer mf.Close()
		mappings, err := bs.DecodeMappings(mf)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: %w", in.mapping, err)
		}
		df, err := os.Open(in.jsonDoc)
		if err != nil {
			return nil, err
		}
		defer df.Close()
		return bs.ImportJSON(df, mappings, cur)

	default:
		l, err := bs.NewSession(stdout, stdin, cur, Label()).Collect()
		fmt.Fprintln(stdout)
		return l, err
	}
}
