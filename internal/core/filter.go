package core

import (
	"sort"
	"time"
)

// Filter narrows txs to rows whose date falls within [from, to] inclusive
// and whose type is in types. Dates compare at day granularity. Rows whose
// date failed to parse on load carry a zero time and never match a range.
func Filter(txs []Transaction, from, to time.Time, types []TxType) []Transaction {
	if len(txs) == 0 {
		return nil
	}
	allowed := make(map[TxType]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	fromDay := truncateDay(from)
	toDay := truncateDay(to)
	var out []Transaction
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		d := truncateDay(tx.Date)
		if d.Before(fromDay) || d.After(toDay) {
			continue
		}
		if !allowed[tx.Type] {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// FilterIndices is Filter but returns positions into txs instead of rows.
// The dashboard uses the position in the loaded table as the stable
// reference a receipt link carries.
func FilterIndices(txs []Transaction, from, to time.Time, types []TxType) []int {
	allowed := make(map[TxType]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	fromDay := truncateDay(from)
	toDay := truncateDay(to)
	var out []int
	for i, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		d := truncateDay(tx.Date)
		if d.Before(fromDay) || d.After(toDay) || !allowed[tx.Type] {
			continue
		}
		out = append(out, i)
	}
	return out
}

// SortByDateDesc returns a copy of txs ordered newest first, preserving
// the relative order of same-day rows.
func SortByDateDesc(txs []Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
