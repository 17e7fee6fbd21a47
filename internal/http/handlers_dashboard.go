package http

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"surokkha/internal/core"
)

type (
	txRow struct {
		ID            int
		Date          string
		Category      string
		Type          string
		Amount        string
		PaymentMethod string
		ClientName    string
		Phone         string
		Address       string
		DutyDoctor    string
		Details       string
	}

	summaryRow struct {
		Label   string
		Income  string
		Expense string
		Count   int
	}

	chartSegment struct {
		Category string
		Amount   string
		Width    int
		Color    int
	}

	chartBar struct {
		Label    string
		Total    string
		Segments []chartSegment
	}

	chartData struct {
		Title string
		Bars  []chartBar
	}

	categoryRow struct {
		Name string
		Type string
	}

	dashboardData struct {
		Username  string
		Role      string
		CanRecord bool
		CanManage bool

		Start          string
		End            string
		IncomeChecked  bool
		ExpenseChecked bool
		ExportQuery    string
		Today          string

		Flash string
		Error string

		CategoryNames  []string
		Categories     []categoryRow
		PaymentMethods []string
		TxTypes        []string

		Rows      []txRow
		Summaries []summaryRow

		IncomeChart  chartData
		ExpenseChart chartData
	}
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess, ok := s.currentSession(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	f := parseFilters(r, now)

	txs, err := s.backend.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction load error", "error", err)
	}
	cats, err := s.backend.LoadCategories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Category load error", "error", err)
	}

	data := dashboardData{
		Username:       sess.Username,
		Role:           string(sess.Role),
		CanRecord:      sess.Role.CanRecord(),
		CanManage:      sess.Role.CanManage(),
		Start:          f.From.Format(dateLayout),
		End:            f.To.Format(dateLayout),
		IncomeChecked:  f.hasType(core.Income),
		ExpenseChecked: f.hasType(core.Expense),
		ExportQuery:    f.query(),
		Today:          now.Format(dateLayout),
		Flash:          r.URL.Query().Get("msg"),
		Error:          r.URL.Query().Get("err"),
		PaymentMethods: core.PaymentMethods,
	}
	for _, t := range core.TxTypes {
		data.TxTypes = append(data.TxTypes, string(t))
	}
	for _, c := range cats {
		data.Categories = append(data.Categories, categoryRow{Name: c.Name, Type: string(c.Type)})
		data.CategoryNames = appendUnique(data.CategoryNames, c.Name)
	}

	// Filtered table, newest first, each row keeping its position in the
	// loaded table as the receipt reference.
	indices := core.FilterIndices(txs, f.From, f.To, f.Types)
	rows := make([]txRow, 0, len(indices))
	for _, i := range indices {
		rows = append(rows, makeTxRow(i, txs[i]))
	}
	sortRowsByDateDesc(rows)
	data.Rows = rows

	// Analytics windows run over the whole table, not the sidebar filter.
	if sess.Role.CanRecord() {
		for _, ws := range core.WindowSummaries(txs, now) {
			data.Summaries = append(data.Summaries, summaryRow{
				Label:   ws.Label,
				Income:  core.FormatTaka(ws.Income),
				Expense: core.FormatTaka(ws.Expense),
				Count:   ws.Count,
			})
		}
	}

	data.IncomeChart = makeChart("Monthly Income", core.MonthlyBars(txs, core.Income))
	data.ExpenseChart = makeChart("Monthly Expense", core.MonthlyBars(txs, core.Expense))

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func makeTxRow(id int, tx core.Transaction) txRow {
	date := ""
	if !tx.Date.IsZero() {
		date = tx.Date.Format(dateLayout)
	}
	return txRow{
		ID:            id,
		Date:          date,
		Category:      tx.Category,
		Type:          string(tx.Type),
		Amount:        core.FormatTaka(tx.Amount),
		PaymentMethod: tx.PaymentMethod,
		ClientName:    tx.ClientName,
		Phone:         tx.Phone,
		Address:       tx.Address,
		DutyDoctor:    tx.DutyDoctor,
		Details:       tx.Details,
	}
}

func sortRowsByDateDesc(rows []txRow) {
	// Dates are formatted as 2006-01-02, so string order is date order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})
}

// makeChart turns month buckets into stacked CSS bars. Segment widths are
// percentages of the largest month so all bars share one scale; any
// non-zero segment keeps at least 2% so it stays visible.
func makeChart(title string, bars []core.MonthBar) chartData {
	data := chartData{Title: title}
	max := core.MaxTotal(bars)
	colors := map[string]int{}
	for _, b := range bars {
		bar := chartBar{Label: b.Label, Total: core.FormatTaka(b.Total)}
		for _, seg := range b.Segments {
			color, ok := colors[seg.Category]
			if !ok {
				color = len(colors) % 8
				colors[seg.Category] = color
			}
			bar.Segments = append(bar.Segments, chartSegment{
				Category: seg.Category,
				Amount:   core.FormatTaka(seg.Amount),
				Width:    segmentWidth(seg.Amount, max),
				Color:    color,
			})
		}
		data.Bars = append(data.Bars, bar)
	}
	return data
}

func segmentWidth(amount, max decimal.Decimal) int {
	if max.IsZero() || !amount.IsPositive() {
		return 0
	}
	w := int(amount.Div(max).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	if w < 2 {
		w = 2
	}
	if w > 100 {
		w = 100
	}
	return w
}

func appendUnique(in []string, v string) []string {
	for _, s := range in {
		if s == v {
			return in
		}
	}
	return append(in, v)
}
