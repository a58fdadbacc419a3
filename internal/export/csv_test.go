package export

import (
	"strings"
	"testing"

	"tally/internal/core"
)

func TestWriteCSV(t *testing.T) {
	records := []core.Record{
		{
			ID:        1714552200000,
			Amount:    core.Money{Cents: 1250},
			Subject:   `Lunch "special"`,
			Timestamp: 1714552200000,
			Date:      "2024-05-01",
			Time:      "09:10:00",
		},
		{
			ID:        1714552300000,
			Amount:    core.Money{Cents: 300},
			Subject:   "Bus",
			Timestamp: 1714552300000,
			Date:      "2024-05-01",
			Time:      "09:11:40",
		},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Date,Time,Amount,Subject" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[1] != `1714552200000,2024-05-01,09:10:00,12.50,"Lunch ""special"""` {
		t.Fatalf("quoted row: %q", lines[1])
	}
	if lines[2] != `1714552300000,2024-05-01,09:11:40,3.00,"Bus"` {
		t.Fatalf("plain row: %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if sb.String() != "ID,Date,Time,Amount,Subject\n" {
		t.Fatalf("empty export: %q", sb.String())
	}
}
