package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

type (
	// Segment is one category's share of a month's stacked bar.
	Segment struct {
		Category string
		Amount   decimal.Decimal
	}

	// MonthBar is one bar of the monthly chart: a year-month label, the
	// stacked per-category segments, and the month total.
	MonthBar struct {
		Label    string // "2006-01"
		Total    decimal.Decimal
		Segments []Segment
	}
)

// MonthlyBars buckets rows of the given type by calendar month and
// category. Months are ordered chronologically and segments by category
// name, so two renders of the same table are identical. An empty result
// means the caller should show its no-data placeholder instead of a chart.
func MonthlyBars(txs []Transaction, typ TxType) []MonthBar {
	byMonth := map[string]map[string]decimal.Decimal{}
	for _, tx := range txs {
		if tx.Type != typ || tx.Date.IsZero() {
			continue
		}
		label := tx.Date.Format("2006-01")
		if byMonth[label] == nil {
			byMonth[label] = map[string]decimal.Decimal{}
		}
		byMonth[label][tx.Category] = byMonth[label][tx.Category].Add(tx.Amount)
	}
	if len(byMonth) == 0 {
		return nil
	}

	labels := make([]string, 0, len(byMonth))
	for label := range byMonth {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	bars := make([]MonthBar, 0, len(labels))
	for _, label := range labels {
		bar := MonthBar{Label: label, Total: decimal.Zero}
		cats := make([]string, 0, len(byMonth[label]))
		for cat := range byMonth[label] {
			cats = append(cats, cat)
		}
		sort.Strings(cats)
		for _, cat := range cats {
			amt := byMonth[label][cat]
			bar.Segments = append(bar.Segments, Segment{Category: cat, Amount: amt})
			bar.Total = bar.Total.Add(amt)
		}
		bars = append(bars, bar)
	}
	return bars
}

// MaxTotal returns the largest month total, for scaling bar widths.
func MaxTotal(bars []MonthBar) decimal.Decimal {
	max := decimal.Zero
	for _, b := range bars {
		if b.Total.GreaterThan(max) {
			max = b.Total
		}
	}
	return max
}
