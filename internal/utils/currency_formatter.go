package utils

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(-math.MaxInt64)
)

// FormatAmount renders amount with the currency glyph, thousands separators
// and the currency's minor unit precision, e.g. "₹50,000.00".
// An unknown currency code falls back to "<amount> <CODE>".
func FormatAmount(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}

	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return formatLarge(minor, cur)
	}
	return money.New(minor.IntPart(), code).Display()
}

// CurrencyGlyph returns the display symbol for an ISO 4217 code, or the code
// itself when the currency is unknown.
func CurrencyGlyph(currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if cur := money.GetCurrency(code); cur != nil {
		return cur.Grapheme
	}
	return code
}

// IsKnownCurrency reports whether code is a supported ISO 4217 currency.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

// formatLarge lays out amounts beyond go-money's int64 minor units with the
// same template, separators and sign placement as money.Display.
func formatLarge(minor decimal.Decimal, cur *money.Currency) string {
	sa := minor.Abs().String()

	if len(sa) <= cur.Fraction {
		sa = strings.Repeat("0", cur.Fraction-len(sa)+1) + sa
	}
	if cur.Thousand != "" {
		for i := len(sa) - cur.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + cur.Thousand + sa[i:]
		}
	}
	if cur.Fraction > 0 {
		sa = sa[:len(sa)-cur.Fraction] + cur.Decimal + sa[len(sa)-cur.Fraction:]
	}

	sa = strings.Replace(cur.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", cur.Grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}
