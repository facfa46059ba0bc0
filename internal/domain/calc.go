package domain

// Totals holds the charges derived from one denomination/quantity pair.
type Totals struct {
	Subtotal   int64
	Fee        int64
	Total      int64
	FeeRate    float64
	FeePercent int
}

// ComputeTotals derives subtotal, fee and total for quantity notes of the
// given face value. All arithmetic is in integer VND: the fee is
// subtotal*percent/100 with truncating division, which is exact for every
// table denomination (all multiples of 10,000). A quantity below 1 is
// coerced to 1. An unknown denomination falls back to DefaultFeePercent.
func ComputeTotals(denomination int64, quantity int) Totals {
	if quantity < 1 {
		quantity = 1
	}

	percent := DefaultFeePercent
	if d, ok := LookupDenomination(denomination); ok {
		percent = d.FeePercent
	}

	subtotal := denomination * int64(quantity)
	fee := subtotal * int64(percent) / 100

	return Totals{
		Subtotal:   subtotal,
		Fee:        fee,
		Total:      subtotal + fee,
		FeeRate:    float64(percent) / 100,
		FeePercent: percent,
	}
}
