package http

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tally/internal/core"
	"tally/internal/export"
	applog "tally/internal/log"
	"tally/internal/report"
	"tally/internal/theme"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Theme theme.Theme
		Mode  string
	}{
		Theme: s.store.Theme(r.Context()),
		Mode:  string(report.ModeDay),
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err.Error())
		newHXResponse().Status(http.StatusBadRequest).
			HTML(`<div class="error">Invalid request format</div>`).Write(w)
		return
	}

	subject := sanitizeInput(r.Form.Get("subject"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		newHXResponse().Status(http.StatusUnprocessableEntity).
			HTML(`<div class="error">Amount must be a positive number</div>`).Write(w)
		return
	}

	rec, err := s.store.Add(r.Context(), core.Money{Cents: cents}, subject, time.Now())
	if errors.Is(err, core.ErrEmptySubject) || errors.Is(err, core.ErrInvalidAmount) {
		newHXResponse().Status(http.StatusUnprocessableEntity).
			HTML(`<div class="error">Invalid input: ` + template.HTMLEscapeString(err.Error()) + `</div>`).Write(w)
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Record add error",
			applog.FieldError, err.Error(), applog.FieldSubject, subject)
		newHXResponse().Status(http.StatusInternalServerError).
			HTML(`<div class="error">Failed to save the expense</div>`).Write(w)
		return
	}

	s.invalidateDerived()
	newHXResponse().TriggerRecordsChanged().
		HTML(`<div class="success">Recorded ` + template.HTMLEscapeString(rec.Subject) +
			` - ` + template.HTMLEscapeString(rec.Amount.Display()) + `</div>`).Write(w)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		newHXResponse().Status(http.StatusBadRequest).
			HTML(`<div class="error">Invalid request format</div>`).Write(w)
		return
	}

	// The UI asks for confirmation and posts confirm=yes along with the id;
	// anything else leaves the collection untouched.
	if r.Form.Get("confirm") != "yes" {
		newHXResponse().HTML(``).Write(w)
		return
	}
	id, err := strconv.ParseInt(strings.TrimSpace(r.Form.Get("id")), 10, 64)
	if err != nil {
		newHXResponse().Status(http.StatusBadRequest).
			HTML(`<div class="error">Invalid record id</div>`).Write(w)
		return
	}

	found, err := s.store.Delete(r.Context(), id)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Record delete error",
			applog.FieldError, err.Error(), applog.FieldRecordID, id)
		newHXResponse().Status(http.StatusInternalServerError).
			HTML(`<div class="error">Failed to delete the expense</div>`).Write(w)
		return
	}
	if !found {
		// Unknown id is a no-op, not an error.
		newHXResponse().HTML(``).Write(w)
		return
	}

	s.invalidateDerived()
	newHXResponse().TriggerRecordsChanged().HTML(``).Write(w)
}

// recordRow is one line of the table partial.
type recordRow struct {
	ID      int64
	Date    string
	Time    string
	Amount  string
	Subject string
}

func (s *Server) handleRecordsTable(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	var rows []recordRow
	for _, rec := range s.store.Records() {
		if !matchesQuery(rec, query) {
			continue
		}
		rows = append(rows, recordRow{
			ID:      rec.ID,
			Date:    rec.Date,
			Time:    rec.Time,
			Amount:  rec.Amount.Display(),
			Subject: rec.Subject,
		})
	}

	data := struct {
		Rows  []recordRow
		Query string
	}{Rows: rows, Query: query}
	if err := s.templates.ExecuteTemplate(w, "records.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Records template execution failed", applog.FieldError, err.Error())
		_, _ = w.Write([]byte(`<div class="error">Failed to render the table</div>`))
	}
}

// matchesQuery is the display filter: a case-insensitive substring match on
// the subject or on the formatted amount. It never touches the store.
func matchesQuery(rec core.Record, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(rec.Subject), q) ||
		strings.Contains(strings.ToLower(rec.Amount.Display()), q)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	now := time.Now()
	totals := report.Summarize(s.store.Records(), core.DayKey(now), core.MonthKey(now))
	data := struct {
		Today string
		Month string
		All   string
	}{
		Today: totals.Today.Display(),
		Month: totals.Month.Display(),
		All:   totals.All.Display(),
	}
	if err := s.templates.ExecuteTemplate(w, "summary.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Summary template execution failed", applog.FieldError, err.Error())
		_, _ = w.Write([]byte(`<div class="error">Failed to render the summary</div>`))
	}
}

// chartPayload feeds the client-side line and donut charts.
type chartPayload struct {
	Mode            string    `json:"mode"`
	TrendLabels     []string  `json:"trend_labels"`
	TrendValues     []float64 `json:"trend_values"`
	BreakdownLabels []string  `json:"breakdown_labels"`
	BreakdownValues []float64 `json:"breakdown_values"`
	PrimaryColor    string    `json:"primary_color"`
	AccentColor     string    `json:"accent_color"`
}

func (s *Server) handleChartData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	mode, err := report.ParseMode(strings.TrimSpace(r.URL.Query().Get("mode")))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	now := time.Now()
	key := string(mode) + ":" + core.DayKey(now)
	payload, cached := s.chartCache.Get(key)
	if !cached {
		chart := report.GroupForChart(s.store.Records(), mode, core.DayKey(now), core.MonthKey(now))
		t := s.store.Theme(r.Context())
		payload = chartPayload{
			Mode:            string(mode),
			TrendLabels:     make([]string, 0, len(chart.Trend)),
			TrendValues:     make([]float64, 0, len(chart.Trend)),
			BreakdownLabels: make([]string, 0, len(chart.Breakdown)),
			BreakdownValues: make([]float64, 0, len(chart.Breakdown)),
			PrimaryColor:    t.Primary,
			AccentColor:     t.Accent,
		}
		for _, p := range chart.Trend {
			payload.TrendLabels = append(payload.TrendLabels, p.Label)
			payload.TrendValues = append(payload.TrendValues, float64(p.Amount.Cents)/100.0)
		}
		for _, e := range chart.Breakdown {
			payload.BreakdownLabels = append(payload.BreakdownLabels, e.Subject)
			payload.BreakdownValues = append(payload.BreakdownValues, float64(e.Amount.Cents)/100.0)
		}
		s.chartCache.Set(key, payload)
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.ErrorContext(r.Context(), "Chart payload encode failed", applog.FieldError, err.Error())
	}
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		newHXResponse().Status(http.StatusBadRequest).
			HTML(`<div class="error">Invalid request format</div>`).Write(w)
		return
	}

	t := theme.Theme{
		Primary: strings.TrimSpace(r.Form.Get("primary")),
		Accent:  strings.TrimSpace(r.Form.Get("accent")),
	}
	if err := s.store.SetTheme(r.Context(), t); err != nil {
		if errors.Is(err, theme.ErrInvalidColor) {
			newHXResponse().Status(http.StatusUnprocessableEntity).
				HTML(`<div class="error">Colors must be hex values like #4361ee</div>`).Write(w)
			return
		}
		s.logger.ErrorContext(r.Context(), "Theme save error", applog.FieldError, err.Error())
		newHXResponse().Status(http.StatusInternalServerError).
			HTML(`<div class="error">Failed to save the theme</div>`).Write(w)
		return
	}

	// Chart payloads bake the colors in, so they are stale now.
	s.invalidateDerived()
	newHXResponse().TriggerThemeChanged(t.Primary, t.Accent).HTML(``).Write(w)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	if err := export.WriteCSV(w, s.store.Records()); err != nil {
		s.logger.ErrorContext(r.Context(), "CSV export failed", applog.FieldError, err.Error())
	}
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
