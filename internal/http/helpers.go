package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"surokkha/internal/auth"
	"surokkha/internal/core"
)

const sessionCookie = "surokkha_session"

const dateLayout = "2006-01-02"

// currentSession resolves the request's session cookie, if any.
func (s *Server) currentSession(r *http.Request) (auth.Session, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return auth.Session{}, false
	}
	return s.sessions.Lookup(c.Value)
}

// filters is the sidebar state: an inclusive date range plus the type
// multiselect.
type filters struct {
	From  time.Time
	To    time.Time
	Types []core.TxType
}

// parseFilters reads the sidebar parameters, falling back to the default
// view of the trailing 30 days with both types selected.
func parseFilters(r *http.Request, now time.Time) filters {
	f := filters{
		From:  now.AddDate(0, 0, -30),
		To:    now,
		Types: []core.TxType{core.Income, core.Expense},
	}
	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("start")); v != "" {
		if d, err := time.Parse(dateLayout, v); err == nil {
			f.From = d
		}
	}
	if v := strings.TrimSpace(q.Get("end")); v != "" {
		if d, err := time.Parse(dateLayout, v); err == nil {
			f.To = d
		}
	}
	if vals, ok := q["type"]; ok {
		f.Types = nil
		for _, v := range vals {
			if t, err := core.ParseTxType(v); err == nil {
				f.Types = append(f.Types, t)
			}
		}
	}
	return f
}

// query re-encodes the filter state for links that must preserve it.
func (f filters) query() string {
	v := url.Values{}
	v.Set("start", f.From.Format(dateLayout))
	v.Set("end", f.To.Format(dateLayout))
	for _, t := range f.Types {
		v.Add("type", string(t))
	}
	return v.Encode()
}

func (f filters) hasType(t core.TxType) bool {
	for _, ft := range f.Types {
		if ft == t {
			return true
		}
	}
	return false
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// redirectFlash sends the browser back to the dashboard with a one-line
// message, keeping the current sidebar filter.
func redirectFlash(w http.ResponseWriter, r *http.Request, f filters, key, msg string) {
	v, _ := url.ParseQuery(f.query())
	v.Set(key, msg)
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}
