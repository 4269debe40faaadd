package balancesheet

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// newTestLedger creates an INR ledger with the given items.
func newTestLedger(assets []Asset, liabilities []Liability) *Ledger {
	l := NewLedger("INR")
	for _, a := range assets {
		l.AddAsset(a)
	}
	for _, li := range liabilities {
		l.AddLiability(li)
	}
	return l
}
