package renderer

import (
	bs "github.com/etnz/balancesheet"
)

// DefaultTitle is the balance sheet report title.
const DefaultTitle = "STARTUP BALANCE SHEET"

// DefaultLabel is the currency label printed before every amount.
const DefaultLabel = "Rs."

// BalanceSheet is the data needed to render the balance sheet and ratio reports.
// Numbers are handled using the exact decimal types (Money, Ratio)
// so that they already contain basics renderers (Fixed, String).
type BalanceSheet struct {
	// Title of the balance sheet report.
	Title string
	// Label is the currency label printed before amounts, e.g. "Rs.".
	Label string
	// Currency is the ISO code of every amount.
	Currency string

	CurrentAssets    Section
	NonCurrentAssets Section
	TotalAssets      bs.Money

	ShortTermLiabilities Section
	LongTermLiabilities  Section
	TotalLiabilities     bs.Money

	Equity bs.Money

	// Ratios in report order.
	Ratios []RatioLine
}

// Section is a titled list of line items with a subtotal.
type Section struct {
	Title      string
	TotalLabel string
	Lines      []Line
	Total      bs.Money
}

// Line is a single line item.
type Line struct {
	Name   string
	Amount bs.Money
}

// RatioLine is a labelled financial ratio.
type RatioLine struct {
	Label string
	Ratio bs.Ratio
}

// NewBalanceSheet creates the report data from an aggregator.
// Empty title and label default to DefaultTitle and DefaultLabel.
func NewBalanceSheet(a *bs.Aggregator, title, label string) *BalanceSheet {
	if title == "" {
		title = DefaultTitle
	}
	if label == "" {
		label = DefaultLabel
	}

	assetSection := func(title, totalLabel string, f bs.Filter) Section {
		s := Section{Title: title, TotalLabel: totalLabel, Total: a.TotalAssets(f), Lines: []Line{}}
		for _, x := range a.Assets(f) {
			s.Lines = append(s.Lines, Line{Name: x.Name(), Amount: x.Value()})
		}
		return s
	}
	liabilitySection := func(title, totalLabel string, f bs.Filter) Section {
		s := Section{Title: title, TotalLabel: totalLabel, Total: a.TotalLiabilities(f), Lines: []Line{}}
		for _, x := range a.Liabilities(f) {
			s.Lines = append(s.Lines, Line{Name: x.Name(), Amount: x.Value()})
		}
		return s
	}

	r := a.Ratios()
	return &BalanceSheet{
		Title:    title,
		Label:    label,
		Currency: a.Currency(),

		CurrentAssets:    assetSection("Current Assets", "Total Current Assets:", bs.Current),
		NonCurrentAssets: assetSection("Non-Current Assets", "Total Non-Current Assets:", bs.NonCurrent),
		TotalAssets:      a.TotalAssets(bs.All),

		ShortTermLiabilities: liabilitySection("Short-term Liabilities", "Total Short-term Liabilities:", bs.ShortTerm),
		LongTermLiabilities:  liabilitySection("Long-term Liabilities", "Total Long-term Liabilities:", bs.LongTerm),
		TotalLiabilities:     a.TotalLiabilities(bs.All),

		Equity: a.Equity(),

		Ratios: []RatioLine{
			{Label: "Current Ratio:", Ratio: r.CurrentRatio},
			{Label: "Debt-to-Equity Ratio:", Ratio: r.DebtToEquity},
			{Label: "Equity Ratio:", Ratio: r.EquityRatio},
			{Label: "Debt Ratio:", Ratio: r.DebtRatio},
		},
	}
}

// amount formats m with the report currency label, e.g. "Rs.1250.50".
func (b *BalanceSheet) amount(m bs.Money) string { return b.Label + m.Fixed() }
