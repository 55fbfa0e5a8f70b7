// internal/pkg/money/money.go
package money

import "strconv"

// FCFA amounts are whole integers; the currency has no fractional minor
// unit, so all arithmetic stays in int64 and only formatting lives here.

// FormatFCFA renders an amount the way the storefront displays prices,
// with thousands grouped by spaces: 15000 -> "15 000 FCFA".
func FormatFCFA(amount int64) string {
	return GroupDigits(amount) + " FCFA"
}

// GroupDigits formats an integer with space-separated thousands groups.
func GroupDigits(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}
