package domain

import (
	"strconv"
	"time"
)

// FormatVND renders an amount the way the vi-VN locale does for VND:
// dot-grouped digits followed by the đồng sign, e.g. "1.000.000 ₫".
func FormatVND(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	s := string(out) + " ₫"
	if neg {
		s = "-" + s
	}
	return s
}

const timestampLayout = "15:04:05 2/1/2006"

// FormatTimestamp renders a vi-VN locale timestamp string. Display-only:
// it does not sort lexicographically.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
