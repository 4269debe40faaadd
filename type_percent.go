package balancesheet

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Ratio is a financial ratio that may be unavailable.
//
// A Ratio computed over a zero denominator is not available: it carries the
// reason instead of a value, never an infinity or a NaN.
type Ratio struct {
	value   decimal.Decimal
	ok      bool
	percent bool
	reason  string
}

// NewRatio returns num/den, or an unavailable ratio with 'reason' if den is zero.
func NewRatio(num, den Money, reason string) Ratio {
	if den.IsZero() {
		return Ratio{reason: reason}
	}
	return Ratio{value: num.Ratio(den), ok: true}
}

// NewPercent returns num/den×100, or an unavailable ratio with 'reason' if den is zero.
func NewPercent(num, den Money, reason string) Ratio {
	r := NewRatio(num, den, reason)
	r.percent = true
	if r.ok {
		r.value = r.value.Mul(hundred)
	}
	return r
}

// Value returns the ratio value and true, or false if the ratio is not available.
func (r Ratio) Value() (decimal.Decimal, bool) { return r.value, r.ok }

// Available reports whether the ratio could be computed.
func (r Ratio) Available() bool { return r.ok }

// Reason returns why the ratio is not available, empty when it is.
func (r Ratio) Reason() string { return r.reason }

// IsPercent reports whether the value is expressed in percent.
func (r Ratio) IsPercent() bool { return r.percent }

// String formats the ratio with two decimals, e.g. "2.00", "45.50%" or "N/A (No equity)".
func (r Ratio) String() string {
	if !r.ok {
		return fmt.Sprintf("N/A (%s)", r.reason)
	}
	if r.percent {
		return r.value.StringFixed(2) + "%"
	}
	return r.value.StringFixed(2)
}
