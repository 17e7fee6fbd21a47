package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"surokkha/internal/receipt"
)

// handleReceipt renders the PDF receipt for a single transaction,
// addressed by its position in the loaded table.
func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := s.currentSession(r); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id < 0 {
		http.Error(w, "invalid receipt id", http.StatusBadRequest)
		return
	}

	txs, err := s.backend.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction load error", "error", err)
		http.Error(w, "could not load transactions", http.StatusInternalServerError)
		return
	}
	if id >= len(txs) {
		http.NotFound(w, r)
		return
	}
	tx := txs[id]

	pdf, err := s.renderer.Render(tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Receipt render error", "error", err, "id", id)
		http.Error(w, "could not render receipt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+receipt.Filename(tx)+`"`)
	_, _ = w.Write(pdf)
}
