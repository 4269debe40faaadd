package balancesheet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// ErrNoInput is returned when the input ends before every category has a value.
var ErrNoInput = errors.New("unexpected end of input")

// Session collects the catalog values interactively.
//
// Prompts are written to w and answers are read from r as whitespace
// separated words, so several answers may be given on a single line.
type Session struct {
	w        io.Writer
	words    *bufio.Scanner
	currency string
	label    string
}

// NewSession creates a session that writes prompts to w and reads answers from r.
// Values are recorded in 'currency' and prompted with the 'label' prefix (e.g. "Rs.").
func NewSession(w io.Writer, r io.Reader, currency, label string) *Session {
	words := bufio.NewScanner(r)
	words.Split(bufio.ScanWords)
	return &Session{w: w, words: words, currency: currency, label: label}
}

// Collect runs a full session and returns the populated ledger.
func (s *Session) Collect() (*Ledger, error) {
	l := NewLedger(s.currency)
	l, err := s.CollectAssets(l)
	if err != nil {
		return nil, err
	}
	return s.CollectLiabilities(l)
}

// CollectAssets asks one value per asset category and returns the ledger with the new assets.
// The current/non-current classification comes from the catalog.
func (s *Session) CollectAssets(l *Ledger) (*Ledger, error) {
	fmt.Fprintln(s.w, "Enter asset details. One value per category:")
	for _, c := range AssetCategories {
		fmt.Fprintf(s.w, "Enter value for %s: %s", c.Name, s.label)
		value, err := s.readMoney()
		if err != nil {
			return l, fmt.Errorf("reading %q: %w", c.Name, err)
		}
		l.AddAsset(c.Asset(value))
	}
	log.Printf("collected %d assets", len(AssetCategories))
	return l, nil
}

// CollectLiabilities asks one value and a short-term flag per liability
// category and returns the ledger with the new liabilities.
func (s *Session) CollectLiabilities(l *Ledger) (*Ledger, error) {
	for _, c := range LiabilityCategories {
		fmt.Fprintf(s.w, "Enter value for %s: %s", c.Name, s.label)
		value, err := s.readMoney()
		if err != nil {
			return l, fmt.Errorf("reading %q: %w", c.Name, err)
		}
		fmt.Fprint(s.w, "Is this short-term? (yes/no): ")
		answer, err := s.readWord()
		if err != nil {
			return l, fmt.Errorf("reading term of %q: %w", c.Name, err)
		}
		l.AddLiability(c.Liability(value, strings.EqualFold(answer, "yes")))
	}
	log.Printf("collected %d liabilities", len(LiabilityCategories))
	return l, nil
}

func (s *Session) readWord() (string, error) {
	if !s.words.Scan() {
		if err := s.words.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return s.words.Text(), nil
}

func (s *Session) readMoney() (Money, error) {
	word, err := s.readWord()
	if err != nil {
		return Money{}, err
	}
	return ParseMoney(word, s.currency)
}
