package balancesheet

import (
	"fmt"
	"slices"
)

// Asset is an immutable asset line item.
type Asset struct {
	name      string
	value     Money
	isCurrent bool
}

// NewAsset creates an asset. Values are expected to be non-negative.
func NewAsset(name string, value Money, current bool) Asset {
	return Asset{name: name, value: value, isCurrent: current}
}

func (a Asset) Name() string    { return a.name }
func (a Asset) Value() Money    { return a.value }
func (a Asset) IsCurrent() bool { return a.isCurrent }

func (a Asset) String() string {
	if a.isCurrent {
		return fmt.Sprintf("%s: %s (Current-asset)", a.name, a.value)
	}
	return fmt.Sprintf("%s: %s (Noncurrent-asset)", a.name, a.value)
}

// Liability is an immutable liability line item.
type Liability struct {
	name        string
	value       Money
	isShortTerm bool
}

// NewLiability creates a liability. Values are expected to be non-negative.
func NewLiability(name string, value Money, shortTerm bool) Liability {
	return Liability{name: name, value: value, isShortTerm: shortTerm}
}

func (l Liability) Name() string      { return l.name }
func (l Liability) Value() Money      { return l.value }
func (l Liability) IsShortTerm() bool { return l.isShortTerm }

func (l Liability) String() string {
	if l.isShortTerm {
		return fmt.Sprintf("%s: %s (Short-term)", l.name, l.value)
	}
	return fmt.Sprintf("%s: %s (Long-term)", l.name, l.value)
}

// Ledger holds the line items of a balance sheet.
//
// Assets and liabilities are kept in insertion order, so that reports list
// them in a deterministic order.
type Ledger struct {
	currency    string
	assets      []Asset
	liabilities []Liability
}

// NewLedger creates an empty ledger whose totals are expressed in 'currency'.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		currency:    currency,
		assets:      make([]Asset, 0),
		liabilities: make([]Liability, 0),
	}
}

// Currency returns the ledger currency.
func (l *Ledger) Currency() string { return l.currency }

// AddAsset appends an asset to the ledger.
func (l *Ledger) AddAsset(a Asset) { l.assets = append(l.assets, a) }

// AddLiability appends a liability to the ledger.
func (l *Ledger) AddLiability(li Liability) { l.liabilities = append(l.liabilities, li) }

// Assets returns a copy of the assets in insertion order.
func (l *Ledger) Assets() []Asset { return slices.Clone(l.assets) }

// Liabilities returns a copy of the liabilities in insertion order.
func (l *Ledger) Liabilities() []Liability { return slices.Clone(l.liabilities) }

// Len returns the number of line items.
func (l *Ledger) Len() int { return len(l.assets) + len(l.liabilities) }
