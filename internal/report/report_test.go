package report

import (
	"testing"

	"tally/internal/core"
)

func rec(cents int64, subject, date, clock string) core.Record {
	return core.Record{
		Amount:  core.Money{Cents: cents},
		Subject: subject,
		Date:    date,
		Time:    clock,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, "2024-05-01", "2024-05")
	if got.Today.Cents != 0 || got.Month.Cents != 0 || got.All.Cents != 0 {
		t.Fatalf("empty collection must yield zero totals: %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	records := []core.Record{
		rec(100, "a", "2024-05-01", "09:00:00"),
		rec(200, "b", "2024-05-01", "10:00:00"),
		rec(400, "c", "2024-05-15", "11:00:00"),
		rec(800, "d", "2024-04-30", "12:00:00"),
		rec(1600, "e", "2023-05-01", "13:00:00"),
	}
	got := Summarize(records, "2024-05-01", "2024-05")
	if got.Today.Cents != 300 {
		t.Errorf("today: got %d, want 300", got.Today.Cents)
	}
	if got.Month.Cents != 700 {
		t.Errorf("month: got %d, want 700", got.Month.Cents)
	}
	if got.All.Cents != 3100 {
		t.Errorf("all: got %d, want 3100", got.All.Cents)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"day", "hour", "month"} {
		m, err := ParseMode(s)
		if err != nil || string(m) != s {
			t.Fatalf("ParseMode(%q) = %v, %v", s, m, err)
		}
	}
	if m, err := ParseMode(""); err != nil || m != ModeDay {
		t.Fatalf("empty mode should default to day, got %v, %v", m, err)
	}
	if _, err := ParseMode("week"); err == nil {
		t.Fatal("unknown mode should fail")
	}
}

func TestGroupForChartSumsEqualKeys(t *testing.T) {
	records := []core.Record{
		rec(1000, "a", "2024-05-01", "09:00:00"),
		rec(2000, "b", "2024-05-01", "21:30:00"),
	}
	chart := GroupForChart(records, ModeDay, "2024-05-01", "2024-05")
	if len(chart.Trend) != 1 {
		t.Fatalf("expected one day bucket, got %d", len(chart.Trend))
	}
	if chart.Trend[0].Label != "01" || chart.Trend[0].Amount.Cents != 3000 {
		t.Fatalf("day bucket: %+v", chart.Trend[0])
	}
}

func TestGroupForChartHourLabels(t *testing.T) {
	records := []core.Record{
		rec(100, "a", "2024-05-01", "09:15:00"),
		rec(200, "b", "2024-05-01", "09:45:00"),
		rec(400, "c", "2024-05-01", "21:00:00"),
		rec(800, "d", "2024-05-02", "05:00:00"), // other day, excluded
	}
	chart := GroupForChart(records, ModeHour, "2024-05-01", "2024-05")
	if len(chart.Trend) != 2 {
		t.Fatalf("expected 2 hour buckets, got %d", len(chart.Trend))
	}
	if chart.Trend[0].Label != "09:00" || chart.Trend[0].Amount.Cents != 300 {
		t.Fatalf("first bucket: %+v", chart.Trend[0])
	}
	if chart.Trend[1].Label != "21:00" || chart.Trend[1].Amount.Cents != 400 {
		t.Fatalf("second bucket: %+v", chart.Trend[1])
	}
}

func TestGroupForChartMonthBreakdown(t *testing.T) {
	records := []core.Record{
		rec(50000, "Coffee", "2024-05-01", "09:00:00"),
		rec(150000, "Coffee", "2024-05-01", "10:00:00"),
	}
	chart := GroupForChart(records, ModeMonth, "2024-05-01", "2024-05")
	if len(chart.Breakdown) != 1 {
		t.Fatalf("expected one breakdown entry, got %d", len(chart.Breakdown))
	}
	if chart.Breakdown[0].Subject != "Coffee" || chart.Breakdown[0].Amount.Cents != 200000 {
		t.Fatalf("breakdown entry: %+v", chart.Breakdown[0])
	}
	if len(chart.Trend) != 1 || chart.Trend[0].Label != "05" {
		t.Fatalf("month trend: %+v", chart.Trend)
	}
}

func TestGroupForChartMonthAggregation(t *testing.T) {
	records := []core.Record{
		rec(100, "a", "2024-05-20", "09:00:00"),
		rec(200, "b", "2024-05-03", "09:00:00"),
		rec(400, "c", "2024-05-11", "09:00:00"),
	}
	// Day-of-month grouping only sees records from today, so use month mode
	// with per-month keys to observe ordering across records.
	chart := GroupForChart(records, ModeMonth, "2024-05-20", "2024-05")
	if len(chart.Trend) != 1 || chart.Trend[0].Amount.Cents != 700 {
		t.Fatalf("month bucket: %+v", chart.Trend)
	}

	// Breakdown keeps first-appearance order.
	want := []string{"a", "b", "c"}
	for i, e := range chart.Breakdown {
		if e.Subject != want[i] {
			t.Fatalf("breakdown order: got %v", chart.Breakdown)
		}
	}
}

func TestGroupForChartEmptyPeriod(t *testing.T) {
	records := []core.Record{
		rec(100, "a", "2024-05-01", "09:00:00"),
	}
	chart := GroupForChart(records, ModeDay, "2030-01-01", "2030-01")
	if len(chart.Trend) != 0 || len(chart.Breakdown) != 0 {
		t.Fatalf("expected empty series, got %+v", chart)
	}
}

func TestGroupForChartSkipsMalformedRecords(t *testing.T) {
	records := []core.Record{
		rec(100, "ok", "2024-05-01", "09:00:00"),
		rec(200, "bad", "2024-05-01", "9"), // truncated time string
	}
	chart := GroupForChart(records, ModeHour, "2024-05-01", "2024-05")
	if len(chart.Trend) != 1 || chart.Trend[0].Amount.Cents != 100 {
		t.Fatalf("malformed record should be skipped: %+v", chart.Trend)
	}
}
