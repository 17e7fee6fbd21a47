package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"surokkha/internal/core"
)

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := s.currentSession(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	// Enforced server-side, not just hidden in the UI: a viewer's forged
	// POST must not reach the store.
	if !sess.Role.CanRecord() {
		slog.WarnContext(r.Context(), "Transaction entry denied", "username", sess.Username, "role", string(sess.Role))
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	now := time.Now()
	f := parseFilters(r, now)

	date := now
	if v := sanitizeInput(r.Form.Get("date")); v != "" {
		if d, err := time.Parse(dateLayout, v); err == nil {
			date = d
		}
	}

	category := sanitizeInput(r.Form.Get("category"))
	if category == "" {
		redirectFlash(w, r, f, "err", "Please enter/select a Category.")
		return
	}

	txType, err := core.ParseTxType(r.Form.Get("type"))
	if err != nil {
		redirectFlash(w, r, f, "err", "Please choose Income or Expense.")
		return
	}

	amount, err := core.ParseAmount(r.Form.Get("amount"))
	if err != nil {
		if errors.Is(err, core.ErrNegativeAmount) {
			redirectFlash(w, r, f, "err", "Amount cannot be negative.")
		} else {
			redirectFlash(w, r, f, "err", "Amount is not a valid number.")
		}
		return
	}

	tx := core.Transaction{
		Date:          date,
		Category:      category,
		Type:          txType,
		Amount:        amount,
		PaymentMethod: sanitizeInput(r.Form.Get("payment_method")),
		ClientName:    sanitizeInput(r.Form.Get("client_name")),
		Phone:         sanitizeInput(r.Form.Get("phone")),
		Address:       sanitizeInput(r.Form.Get("address")),
		DutyDoctor:    sanitizeInput(r.Form.Get("duty_doctor")),
		Details:       sanitizeInput(r.Form.Get("details")),
	}
	if err := tx.Validate(); err != nil {
		redirectFlash(w, r, f, "err", "Invalid transaction: "+err.Error())
		return
	}

	if err := s.backend.Append(r.Context(), tx); err != nil {
		slog.ErrorContext(r.Context(), "Transaction append error", "error", err,
			"category", tx.Category, "amount", tx.Amount.String())
		redirectFlash(w, r, f, "err", "Could not save the transaction.")
		return
	}
	redirectFlash(w, r, f, "msg", "Transaction added!")
}
