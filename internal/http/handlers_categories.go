package http

import (
	"log/slog"
	"net/http"
	"time"

	"surokkha/internal/core"
)

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
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
	if !sess.Role.CanManage() {
		slog.WarnContext(r.Context(), "Category entry denied", "username", sess.Username, "role", string(sess.Role))
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f := parseFilters(r, time.Now())

	name := sanitizeInput(r.Form.Get("name"))
	if name == "" {
		redirectFlash(w, r, f, "err", "Please enter a category name.")
		return
	}
	typ, err := core.ParseTxType(r.Form.Get("type"))
	if err != nil {
		redirectFlash(w, r, f, "err", "Please choose Income or Expense.")
		return
	}

	cat := core.Category{Name: name, Type: typ}
	if err := s.backend.AppendCategory(r.Context(), cat); err != nil {
		slog.ErrorContext(r.Context(), "Category append error", "error", err, "name", name)
		redirectFlash(w, r, f, "err", "Could not save the category.")
		return
	}
	redirectFlash(w, r, f, "msg", "Category '"+name+"' added!")
}
