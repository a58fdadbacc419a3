package store

import (
	"strings"
	"testing"

	"tally/internal/core"
)

func TestDecodeCoercesStringNumerics(t *testing.T) {
	blob := `[{"id":"1714552200000","amount":"1234","subject":"Coffee","timestamp":"1714552200000","date":"2024-05-01","time":"09:10:00"}]`
	records, err := decodeRecords(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ID != 1714552200000 || r.Amount.Cents != 1234 || r.Timestamp != 1714552200000 {
		t.Fatalf("coercion wrong: %+v", r)
	}
}

func TestDecodeFloatAndNull(t *testing.T) {
	blob := `[{"id":2,"amount":99.0,"subject":"x","timestamp":null,"date":"","time":""}]`
	records, err := decodeRecords(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if records[0].Amount.Cents != 99 || records[0].Timestamp != 0 {
		t.Fatalf("float/null coercion wrong: %+v", records[0])
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, blob := range []string{"", "{", `{"not":"an array"}`, `[{"id":{}}]`} {
		if _, err := decodeRecords(blob); err == nil {
			t.Fatalf("%q should not decode", blob)
		}
	}
}

func TestEncodeShape(t *testing.T) {
	rec := core.Record{
		ID:        7,
		Amount:    core.Money{Cents: 250},
		Subject:   "Bus",
		Timestamp: 7,
		Date:      "2024-05-01",
		Time:      "08:00:00",
	}
	data, err := encodeRecords([]core.Record{rec})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, want := range []string{`"id":7`, `"amount":250`, `"subject":"Bus"`, `"date":"2024-05-01"`} {
		if !strings.Contains(data, want) {
			t.Fatalf("encoded blob missing %q: %s", want, data)
		}
	}

	back, err := decodeRecords(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back[0] != rec {
		t.Fatalf("round trip mismatch: %+v", back[0])
	}
}
