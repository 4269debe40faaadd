package balancesheet

import "slices"

// Filter selects line items by term.
type Filter int

const (
	// All selects every line item.
	All Filter = iota
	// Current selects current assets, or short-term liabilities.
	Current
	// NonCurrent selects non-current assets, or long-term liabilities.
	NonCurrent
)

// Liability aliases, for readability.
const (
	ShortTerm = Current
	LongTerm  = NonCurrent
)

func (f Filter) String() string {
	switch f {
	case All:
		return "all"
	case Current:
		return "current"
	case NonCurrent:
		return "non-current"
	default:
		return "unknown"
	}
}

// match reports whether an item whose short term flag is 'current' is selected.
func (f Filter) match(current bool) bool {
	switch f {
	case Current:
		return current
	case NonCurrent:
		return !current
	default:
		return true
	}
}

// Reasons reported for ratios with a zero denominator.
const (
	NoShortTermLiabilities = "No short term liabilities"
	NoEquity               = "No equity"
	NoAssets               = "No assets"
)

// Ratios holds the basic financial ratios of a balance sheet.
type Ratios struct {
	CurrentRatio Ratio // current assets / short-term liabilities
	DebtToEquity Ratio // total liabilities / equity
	EquityRatio  Ratio // equity / total assets, in percent
	DebtRatio    Ratio // total liabilities / total assets, in percent
}

// Aggregator computes totals and ratios over a snapshot of a Ledger.
//
// It is stateless: every method recomputes from the line items.
type Aggregator struct {
	currency    string
	assets      []Asset
	liabilities []Liability
}

// NewAggregator takes a snapshot of the ledger. Later changes to the ledger
// are not seen by the aggregator.
func NewAggregator(l *Ledger) *Aggregator {
	return &Aggregator{
		currency:    l.currency,
		assets:      slices.Clone(l.assets),
		liabilities: slices.Clone(l.liabilities),
	}
}

// Currency returns the currency of every total.
func (a *Aggregator) Currency() string { return a.currency }

// Assets returns the assets matching f, in ledger order.
func (a *Aggregator) Assets(f Filter) []Asset {
	var res []Asset
	for _, x := range a.assets {
		if f.match(x.isCurrent) {
			res = append(res, x)
		}
	}
	return res
}

// Liabilities returns the liabilities matching f, in ledger order.
func (a *Aggregator) Liabilities(f Filter) []Liability {
	var res []Liability
	for _, x := range a.liabilities {
		if f.match(x.isShortTerm) {
			res = append(res, x)
		}
	}
	return res
}

// TotalAssets returns the sum of the assets matching f. It is zero when none match.
func (a *Aggregator) TotalAssets(f Filter) Money {
	total := M(0, a.currency)
	for _, x := range a.assets {
		if f.match(x.isCurrent) {
			total = total.Add(x.value)
		}
	}
	return total
}

// TotalLiabilities returns the sum of the liabilities matching f. It is zero when none match.
func (a *Aggregator) TotalLiabilities(f Filter) Money {
	total := M(0, a.currency)
	for _, x := range a.liabilities {
		if f.match(x.isShortTerm) {
			total = total.Add(x.value)
		}
	}
	return total
}

// Equity returns the owner's equity: total assets minus total liabilities.
// A negative equity is a valid, insolvent, state.
func (a *Aggregator) Equity() Money {
	return a.TotalAssets(All).Sub(a.TotalLiabilities(All))
}

// Ratios computes the financial ratios. Ratios over a zero denominator are
// not available.
func (a *Aggregator) Ratios() Ratios {
	currentAssets := a.TotalAssets(Current)
	shortTerm := a.TotalLiabilities(ShortTerm)
	totalAssets := a.TotalAssets(All)
	totalLiabilities := a.TotalLiabilities(All)
	equity := totalAssets.Sub(totalLiabilities)

	return Ratios{
		CurrentRatio: NewRatio(currentAssets, shortTerm, NoShortTermLiabilities),
		DebtToEquity: NewRatio(totalLiabilities, equity, NoEquity),
		EquityRatio:  NewPercent(equity, totalAssets, NoAssets),
		DebtRatio:    NewPercent(totalLiabilities, totalAssets, NoAssets),
	}
}
