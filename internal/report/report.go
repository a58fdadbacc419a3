// Package report derives summary totals and chart-ready series from the
// record collection. Everything here is a pure function over a slice; the
// store is never mutated.
package report

import (
	"fmt"
	"sort"

	"tally/internal/core"
)

// Mode is the active aggregation granularity for the trend chart.
type Mode string

const (
	ModeDay   Mode = "day"
	ModeHour  Mode = "hour"
	ModeMonth Mode = "month"
)

// ParseMode validates a user-supplied mode string, defaulting to day when
// empty.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDay, ModeHour, ModeMonth:
		return Mode(s), nil
	case "":
		return ModeDay, nil
	default:
		return "", fmt.Errorf("invalid chart mode %q", s)
	}
}

// Totals are the three summary figures shown above the table.
type Totals struct {
	Today core.Money
	Month core.Money
	All   core.Money
}

// Summarize computes the three totals in a single pass. today is a
// YYYY-MM-DD key, monthKey a YYYY-MM prefix, both local calendar.
func Summarize(records []core.Record, today, monthKey string) Totals {
	var t Totals
	for _, r := range records {
		t.All.Cents += r.Amount.Cents
		if r.Date == today {
			t.Today.Cents += r.Amount.Cents
		}
		if monthOf(r.Date) == monthKey {
			t.Month.Cents += r.Amount.Cents
		}
	}
	return t
}

// TrendPoint is one time bucket of the trend series.
type TrendPoint struct {
	Label  string
	Amount core.Money
}

// BreakdownEntry is one subject slice of the breakdown series.
type BreakdownEntry struct {
	Subject string
	Amount  core.Money
}

// Chart carries both series for one period filter.
type Chart struct {
	Trend     []TrendPoint
	Breakdown []BreakdownEntry
}

// GroupForChart restricts the collection to the active period (today for
// day/hour, monthKey for month), then buckets amounts by a mode-dependent
// key: hour-of-day, day-of-month, or month-of-year. Amounts sharing a key
// are summed. The trend series is sorted ascending by key; the breakdown
// series keeps subjects in order of first appearance. An empty filtered set
// yields empty series.
func GroupForChart(records []core.Record, mode Mode, today, monthKey string) Chart {
	buckets := map[string]int64{}
	subjects := map[string]int64{}
	var subjectOrder []string

	for _, r := range records {
		if !inPeriod(r, mode, today, monthKey) {
			continue
		}
		key, ok := bucketKey(r, mode)
		if !ok {
			continue
		}
		buckets[key] += r.Amount.Cents
		if _, seen := subjects[r.Subject]; !seen {
			subjectOrder = append(subjectOrder, r.Subject)
		}
		subjects[r.Subject] += r.Amount.Cents
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	chart := Chart{}
	for _, k := range keys {
		label := k
		if mode == ModeHour {
			label = k + ":00"
		}
		chart.Trend = append(chart.Trend, TrendPoint{Label: label, Amount: core.Money{Cents: buckets[k]}})
	}
	for _, subject := range subjectOrder {
		chart.Breakdown = append(chart.Breakdown, BreakdownEntry{Subject: subject, Amount: core.Money{Cents: subjects[subject]}})
	}
	return chart
}

func inPeriod(r core.Record, mode Mode, today, monthKey string) bool {
	if mode == ModeMonth {
		return monthOf(r.Date) == monthKey
	}
	return r.Date == today
}

// bucketKey extracts the grouping key from the derived date/time strings.
// Records with malformed strings are skipped rather than mis-bucketed.
func bucketKey(r core.Record, mode Mode) (string, bool) {
	switch mode {
	case ModeHour:
		if len(r.Time) < 2 {
			return "", false
		}
		return r.Time[:2], true
	case ModeDay:
		if len(r.Date) < 10 {
			return "", false
		}
		return r.Date[8:10], true
	case ModeMonth:
		if len(r.Date) < 7 {
			return "", false
		}
		return r.Date[5:7], true
	default:
		return "", false
	}
}

func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
