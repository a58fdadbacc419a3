package store

import (
	"encoding/json"
	"strconv"
	"strings"

	"tally/internal/core"
)

// persistedRecord is the storage shape of one record under the records key.
// Numeric fields tolerate values that earlier versions serialized as strings
// or floats; they are coerced back to integers on decode.
type persistedRecord struct {
	ID        flexInt64 `json:"id"`
	Amount    flexInt64 `json:"amount"`
	Subject   string    `json:"subject"`
	Timestamp flexInt64 `json:"timestamp"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
}

// flexInt64 decodes from a JSON number, a string-encoded number, or null.
type flexInt64 int64

func (v *flexInt64) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*v = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	if s == "" {
		*v = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*v = flexInt64(int64(f))
	return nil
}

// encodeRecords serializes the collection for the records key.
func encodeRecords(records []core.Record) (string, error) {
	out := make([]persistedRecord, len(records))
	for i, r := range records {
		out[i] = persistedRecord{
			ID:        flexInt64(r.ID),
			Amount:    flexInt64(r.Amount.Cents),
			Subject:   r.Subject,
			Timestamp: flexInt64(r.Timestamp),
			Date:      r.Date,
			Time:      r.Time,
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeRecords parses the records key. A non-nil error means the stored
// content is unusable as a whole; the caller recovers by starting empty.
func decodeRecords(data string) ([]core.Record, error) {
	var in []persistedRecord
	if err := json.Unmarshal([]byte(data), &in); err != nil {
		return nil, err
	}
	records := make([]core.Record, len(in))
	for i, p := range in {
		records[i] = core.Record{
			ID:        int64(p.ID),
			Amount:    core.Money{Cents: int64(p.Amount)},
			Subject:   p.Subject,
			Timestamp: int64(p.Timestamp),
			Date:      p.Date,
			Time:      p.Time,
		}
	}
	return records, nil
}
