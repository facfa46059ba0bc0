package domain

import (
	"testing"
	"time"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{1_000, "1.000 ₫"},
		{500_000, "500.000 ₫"},
		{1_030_000, "1.030.000 ₫"},
		{-20_000, "-20.000 ₫"},
	}
	for _, tc := range tests {
		if got := FormatVND(tc.amount); got != tc.want {
			t.Errorf("FormatVND(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, time.February, 3, 9, 5, 7, 0, time.Local)
	if got := FormatTimestamp(ts); got != "09:05:07 3/2/2026" {
		t.Errorf("FormatTimestamp = %q", got)
	}
}
