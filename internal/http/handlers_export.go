package http

import (
	"log/slog"
	"net/http"
	"time"

	"surokkha/internal/core"
	"surokkha/internal/store/csvstore"
)

// handleExportCSV streams the currently filtered transactions as a CSV
// download. An empty filter result still produces the header row.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := s.currentSession(r); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	f := parseFilters(r, time.Now())
	txs, err := s.backend.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction load error", "error", err)
		http.Error(w, "could not load transactions", http.StatusInternalServerError)
		return
	}
	filtered := core.Filter(txs, f.From, f.To, f.Types)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="surokkha_transactions.csv"`)
	if err := csvstore.WriteTransactionsCSV(w, filtered); err != nil {
		slog.ErrorContext(r.Context(), "CSV export error", "error", err)
	}
}
