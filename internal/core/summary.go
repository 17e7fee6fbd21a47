package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the income/expense totals and row count for a set of
// transactions.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Count   int
}

// Window is a fixed trailing time span used for the analytics section.
type Window struct {
	Label string
	Days  int
}

// WindowSummary pairs a window with the summary of the rows inside it.
type WindowSummary struct {
	Window
	Summary
}

// TrailingWindows are the spans shown on the analytics panel, in display
// order.
var TrailingWindows = []Window{
	{Label: "Last 7 Days", Days: 7},
	{Label: "Last 30 Days", Days: 30},
	{Label: "Last 3 Months", Days: 90},
	{Label: "Last 6 Months", Days: 180},
	{Label: "Last Year", Days: 365},
}

// Summarize totals the given rows. Every row counts exactly once: rows of
// unknown type contribute to Count but to neither total.
func Summarize(txs []Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount)
		}
		s.Count++
	}
	return s
}

// WindowSummaries computes one summary per trailing window, each against
// the full table passed in. The analytics panel intentionally ignores the
// sidebar date filter, as the clinic's reporting always has.
func WindowSummaries(txs []Transaction, now time.Time) []WindowSummary {
	out := make([]WindowSummary, 0, len(TrailingWindows))
	for _, w := range TrailingWindows {
		start := now.AddDate(0, 0, -w.Days)
		var inWindow []Transaction
		for _, tx := range txs {
			if !tx.Date.IsZero() && !tx.Date.Before(start) {
				inWindow = append(inWindow, tx)
			}
		}
		out = append(out, WindowSummary{Window: w, Summary: Summarize(inWindow)})
	}
	return out
}
