package renderer

import (
	"bytes"
	"fmt"
	"io"

	md "github.com/nao1215/markdown"
)

// BalanceSheetMarkdown renders the balance sheet as markdown tables.
// Amounts use the currency formatting (grapheme and thousand separators).
func BalanceSheetMarkdown(b *BalanceSheet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balance Sheet (%s)", b.Currency))

	doc.H2("Assets")
	doc.Table(sectionTable(b.CurrentAssets))
	doc.Table(sectionTable(b.NonCurrentAssets))
	doc.PlainText(fmt.Sprintf("**Total Assets: %s**", b.TotalAssets))

	doc.H2("Liabilities")
	doc.Table(sectionTable(b.ShortTermLiabilities))
	doc.Table(sectionTable(b.LongTermLiabilities))
	doc.PlainText(fmt.Sprintf("**Total Liabilities: %s**", b.TotalLiabilities))

	doc.H2("Owner's Equity")
	doc.PlainText(fmt.Sprintf("**%s**", b.Equity))

	return doc.String()
}

func sectionTable(s Section) md.TableSet {
	rows := make([][]string, 0, len(s.Lines)+1)
	for _, l := range s.Lines {
		rows = append(rows, []string{l.Name, l.Amount.String()})
	}
	rows = append(rows, []string{s.TotalLabel, s.Total.String()})
	return md.TableSet{
		Header: []string{s.Title, "Amount"},
		Rows:   rows,
	}
}

// RatiosMarkdown renders the financial ratios as a markdown table.
// Unavailable ratios are explained in a notes section.
func RatiosMarkdown(b *BalanceSheet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Status")

	rows := make([][]string, 0, len(b.Ratios))
	for _, r := range b.Ratios {
		value := r.Ratio.String()
		if !r.Ratio.Available() {
			value = "N/A"
		}
		rows = append(rows, []string{r.Label, value})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ratio", "Value"},
		Rows:   rows,
	})

	ConditionalBlock(plainText{doc}, func(w io.Writer) bool {
		fmt.Fprintln(w, "Notes:")
		fmt.Fprintln(w)
		found := false
		for _, r := range b.Ratios {
			if !r.Ratio.Available() {
				fmt.Fprintf(w, "- %s %s\n", r.Label, r.Ratio.Reason())
				found = true
			}
		}
		return found
	})
	return doc.String()
}

// plainText writes to a markdown document as plain text paragraphs.
type plainText struct{ doc *md.Markdown }

func (p plainText) Write(b []byte) (int, error) {
	p.doc.PlainText(string(b))
	return len(b), nil
}
