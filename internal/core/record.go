package core

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptySubject  = errors.New("empty subject")
)

// Record is a single expense entry. Date and Time are derived from the
// creation instant exactly once and never recomputed afterwards; both use
// the local calendar.
type Record struct {
	ID        int64
	Amount    Money
	Subject   string
	Timestamp int64 // milliseconds since epoch
	Date      string // YYYY-MM-DD
	Time      string // HH:MM:SS
}

// NewRecord builds a record from validated input. The id doubles as the
// creation timestamp in milliseconds.
func NewRecord(amount Money, subject string, now time.Time) (Record, error) {
	subject = strings.TrimSpace(subject)
	if err := amount.Validate(); err != nil {
		return Record{}, err
	}
	if subject == "" {
		return Record{}, ErrEmptySubject
	}
	ms := now.UnixMilli()
	return Record{
		ID:        ms,
		Amount:    amount,
		Subject:   subject,
		Timestamp: ms,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04:05"),
	}, nil
}

// DayKey formats t as the per-record date string (local calendar).
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey formats t as the year-month prefix used for monthly aggregation.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
