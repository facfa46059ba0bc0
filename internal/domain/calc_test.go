package domain

import "testing"

func TestComputeTotalsTableRates(t *testing.T) {
	tests := []struct {
		denomination int64
		quantity     int
		wantPercent  int
	}{
		{500_000, 2, 3},
		{200_000, 5, 4},
		{100_000, 10, 7},
		{50_000, 20, 13},
		{20_000, 50, 13},
		{10_000, 100, 12},
	}

	for _, tc := range tests {
		got := ComputeTotals(tc.denomination, tc.quantity)

		wantSubtotal := tc.denomination * int64(tc.quantity)
		if got.Subtotal != wantSubtotal {
			t.Errorf("ComputeTotals(%d, %d).Subtotal = %d, want %d", tc.denomination, tc.quantity, got.Subtotal, wantSubtotal)
		}
		wantFee := wantSubtotal * int64(tc.wantPercent) / 100
		if got.Fee != wantFee {
			t.Errorf("ComputeTotals(%d, %d).Fee = %d, want %d", tc.denomination, tc.quantity, got.Fee, wantFee)
		}
		if got.Total != wantSubtotal+wantFee {
			t.Errorf("ComputeTotals(%d, %d).Total = %d, want %d", tc.denomination, tc.quantity, got.Total, wantSubtotal+wantFee)
		}
		if got.FeePercent != tc.wantPercent {
			t.Errorf("ComputeTotals(%d, %d).FeePercent = %d, want %d", tc.denomination, tc.quantity, got.FeePercent, tc.wantPercent)
		}
		if got.FeeRate != float64(tc.wantPercent)/100 {
			t.Errorf("ComputeTotals(%d, %d).FeeRate = %v, want %v", tc.denomination, tc.quantity, got.FeeRate, float64(tc.wantPercent)/100)
		}
	}
}

// An unlisted denomination is charged the 12% fallback instead of being
// rejected. This pins current behavior.
func TestComputeTotalsFallbackRate(t *testing.T) {
	got := ComputeTotals(77_000, 10)
	if got.FeePercent != DefaultFeePercent {
		t.Fatalf("fallback FeePercent = %d, want %d", got.FeePercent, DefaultFeePercent)
	}
	if got.Fee != 77_000*10*12/100 {
		t.Fatalf("fallback Fee = %d, want %d", got.Fee, int64(77_000*10*12/100))
	}
}

func TestComputeTotalsCoercesQuantity(t *testing.T) {
	for _, q := range []int{0, -3} {
		got := ComputeTotals(500_000, q)
		if got.Subtotal != 500_000 {
			t.Errorf("ComputeTotals(500000, %d).Subtotal = %d, want 500000", q, got.Subtotal)
		}
	}
}

func TestLookupDenomination(t *testing.T) {
	d, ok := LookupDenomination(200_000)
	if !ok || d.FeePercent != 4 || d.Label != "200,000 VNĐ" {
		t.Fatalf("LookupDenomination(200000) = %+v, %v", d, ok)
	}
	if _, ok := LookupDenomination(123); ok {
		t.Fatal("LookupDenomination(123) should not match")
	}
}
