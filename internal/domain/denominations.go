package domain

// Denomination is one fixed cash face value eligible for exchange, with its
// own service fee. The table is compile-time data, not user-editable.
type Denomination struct {
	Value      int64  `json:"value"`
	Label      string `json:"label"`
	FeePercent int    `json:"feePercent"`
}

// DefaultFeePercent is applied when a denomination is missing from the
// table. An unlisted value is silently charged 12% instead of being
// rejected; preserved as observed behavior.
const DefaultFeePercent = 12

// MinOrderTotal is the minimum accepted order total (fee included), in VND.
const MinOrderTotal = 1_000_000

var denominations = []Denomination{
	{Value: 500_000, Label: "500,000 VNĐ", FeePercent: 3},
	{Value: 200_000, Label: "200,000 VNĐ", FeePercent: 4},
	{Value: 100_000, Label: "100,000 VNĐ", FeePercent: 7},
	{Value: 50_000, Label: "50,000 VNĐ", FeePercent: 13},
	{Value: 20_000, Label: "20,000 VNĐ", FeePercent: 13},
	{Value: 10_000, Label: "10,000 VNĐ", FeePercent: 12},
}

// Denominations returns a copy of the fee table.
func Denominations() []Denomination {
	out := make([]Denomination, len(denominations))
	copy(out, denominations)
	return out
}

// LookupDenomination finds the table entry for a face value.
func LookupDenomination(value int64) (Denomination, bool) {
	for _, d := range denominations {
		if d.Value == value {
			return d, true
		}
	}
	return Denomination{}, false
}
