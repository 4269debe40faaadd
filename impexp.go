package balancesheet

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains the non interactive input formats.
// They remain human readable, one JSON object per line.

// answer is a single line of an answers file.
type answer struct {
	Category  string          `json:"category"`
	Value     decimal.Decimal `json:"value"`
	ShortTerm bool            `json:"shortTerm"`
}

// DecodeAnswers reads a JSONL answers file and returns the populated ledger.
//
// Each line is an object with a 'category' id from the catalog, a 'value'
// and, for liabilities, an optional 'shortTerm' boolean:
//
//	{"category":"cash","value":1000}
//	{"category":"loans","value":500,"shortTerm":true}
//
// Line items are added in file order. A category appears at most once.
func DecodeAnswers(r io.Reader, currency string) (*Ledger, error) {
	l := NewLedger(currency)
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var a answer
		if err := json.Unmarshal(line, &a); err != nil {
			return nil, fmt.Errorf("line %d: cannot parse answer %q: %w", n, string(line), err)
		}
		if err := add(l, seen, a); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// add appends the line item of 'a' to l, unless its category is already in seen.
func add(l *Ledger, seen map[string]bool, a answer) error {
	if seen[a.Category] {
		return fmt.Errorf("duplicate category %q", a.Category)
	}
	value := M(a.Value, l.currency)
	if c, ok := LookupAsset(a.Category); ok {
		l.AddAsset(c.Asset(value))
	} else if c, ok := LookupLiability(a.Category); ok {
		l.AddLiability(c.Liability(value, a.ShortTerm))
	} else {
		return fmt.Errorf("unknown category %q", a.Category)
	}
	seen[a.Category] = true
	return nil
}

// Mapping tells where to find a category value in a JSON document.
type Mapping struct {
	Category  string `json:"category"`
	Path      string `json:"path"` // JSONPath expression, e.g. "$.balance.cash"
	ShortTerm bool   `json:"shortTerm"`
}

// DecodeMappings reads a JSONL mapping file, one Mapping per line.
func DecodeMappings(r io.Reader) ([]Mapping, error) {
	var mappings []Mapping
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var m Mapping
		if err := json.Unmarshal(line, &m); err != nil {
			return nil, fmt.Errorf("cannot parse mapping %q: %w", string(line), err)
		}
		mappings = append(mappings, m)
	}
	return mappings, scanner.Err()
}

// ImportJSON extracts line item values from an arbitrary JSON document,
// typically an export from an accounting tool.
//
// Values are added in mappings order. A path that selects nothing, or a
// category mapped twice, is an error.
func ImportJSON(r io.Reader, mappings []Mapping, currency string) (*Ledger, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON document: %w", err)
	}

	l := NewLedger(currency)
	seen := make(map[string]bool)
	for _, m := range mappings {
		v, err := jsonpath.Get(m.Path, doc)
		if err != nil {
			return nil, fmt.Errorf("category %q: evaluating %q: %w", m.Category, m.Path, err)
		}
		// jsonpath returns a list for wildcard and slice expressions: keep the first one
		if list, ok := v.([]any); ok {
			if len(list) == 0 {
				return nil, fmt.Errorf("category %q: %q selects nothing", m.Category, m.Path)
			}
			v = list[0]
		}
		d, err := toDecimal(v)
		if err != nil {
			return nil, fmt.Errorf("category %q: %q: %w", m.Category, m.Path, err)
		}
		if err := add(l, seen, answer{Category: m.Category, Value: d, ShortTerm: m.ShortTerm}); err != nil {
			return nil, fmt.Errorf("mapping %q: %w", m.Path, err)
		}
	}
	return l, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case json.Number:
		return decimal.NewFromString(x.String())
	case float64:
		return decimal.NewFromFloat(x), nil
	case string:
		return decimal.NewFromString(x)
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number: %v", v)
	}
}
