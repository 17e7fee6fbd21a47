// Package core holds the clinic ledger domain: transactions, categories,
// and the pure filter/summary/chart engines that operate on them.
//
// Amounts are decimal.Decimal throughout so that values entered on the
// form survive the CSV round-trip verbatim and tax math rounds the way a
// receipt printed by hand would.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a form value to a non-negative decimal amount.
//
// Both dot and comma decimal separators are accepted. An empty string is
// treated as zero, matching the entry form's default. Negative values are
// rejected; the ledger records refunds as Expense rows instead.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// FormatTaka renders an amount for the UI as "৳ 1,234.56".
func FormatTaka(d decimal.Decimal) string {
	return "৳ " + GroupDigits(d)
}

// GroupDigits formats an amount to two decimal places with comma
// thousands separators.
func GroupDigits(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}
