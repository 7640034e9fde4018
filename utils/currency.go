package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Monetary amounts cross the cart/order boundary as pt-BR formatted
// strings ("R$ 1.234,56"). ParseBRL and FormatBRL are the two ends of
// that contract; every consumer of cart/order totals round-trips
// through them.

// ParseBRL parses a pt-BR currency string back into a decimal.
// Tolerates the currency symbol, regular and non-breaking spaces and
// thousands separators: "R$ 1.234,56" → 1234.56.
func ParseBRL(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(
		"R$", "",
		" ", "",
		" ", "",
		".", "",
	).Replace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty currency value %q", s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid currency value %q: %w", s, err)
	}
	return d, nil
}

// FormatBRL renders a decimal as "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	// Insert "." thousands separators right to left.
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatBRLFloat is a convenience wrapper for float-typed model fields.
func FormatBRLFloat(v float64) string {
	return FormatBRL(decimal.NewFromFloat(v))
}
