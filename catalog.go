package balancesheet

import "fmt"

// Category is an entry of the fixed line item catalog.
type Category struct {
	ID   string // stable identifier, used in answer files
	Name string // label printed in reports
	// Current is the predetermined classification of an asset category.
	// It is meaningless for liability categories, whose term is supplied by the user.
	Current bool
}

// AssetCategories is the ordered catalog of asset line items.
var AssetCategories = []Category{
	{ID: "cash", Name: "Cash and cash equivalents", Current: true},
	{ID: "securities", Name: "Marketable securities", Current: true},
	{ID: "inventories", Name: "Inventories", Current: true},
	{ID: "receivables", Name: "Accounts receivable, net and other", Current: true},
	{ID: "property", Name: "Property and equipment, net"},
	{ID: "goodwill", Name: "Goodwill"},
	{ID: "other-assets", Name: "Other assets"},
}

// LiabilityCategories is the ordered catalog of liability line items.
var LiabilityCategories = []Category{
	{ID: "income-tax", Name: "Income tax payable"},
	{ID: "sales-tax", Name: "Sales tax liability"},
	{ID: "loans", Name: "Debt on business loans"},
	{ID: "contracts", Name: "Contracts you can't cancel without penalty"},
	{ID: "leases", Name: "Lease agreements"},
	{ID: "insurance", Name: "Insurance payable"},
	{ID: "benefits", Name: "Benefits payable"},
	{ID: "investment-taxes", Name: "Taxes on investments"},
	{ID: "accrued", Name: "Accrued liabilities"},
}

var (
	assetIndex     = index(AssetCategories)
	liabilityIndex = index(LiabilityCategories)
)

func index(categories []Category) map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}

// LookupAsset returns the asset category with the given id.
func LookupAsset(id string) (Category, bool) {
	c, ok := assetIndex[id]
	return c, ok
}

// LookupLiability returns the liability category with the given id.
func LookupLiability(id string) (Category, bool) {
	c, ok := liabilityIndex[id]
	return c, ok
}

// Asset creates the asset for this category, classified by the catalog.
func (c Category) Asset(value Money) Asset {
	return NewAsset(c.Name, value, c.Current)
}

// Liability creates the liability for this category.
func (c Category) Liability(value Money, shortTerm bool) Liability {
	return NewLiability(c.Name, value, shortTerm)
}

func (c Category) String() string { return fmt.Sprintf("%s (%s)", c.Name, c.ID) }
