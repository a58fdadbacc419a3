// Package store owns the in-memory record collection and mirrors it to the
// local key-value store after every mutation. It is the only writer; the
// aggregation and presentation layers read copies.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"tally/internal/core"
	"tally/internal/kv"
	applog "tally/internal/log"
	"tally/internal/theme"
)

// Storage keys. The records key holds the JSON array; the theme keys hold
// plain color strings.
const (
	recordsKey      = "records"
	themePrimaryKey = "theme.primary"
	themeAccentKey  = "theme.accent"
)

type Store struct {
	mu      sync.Mutex
	kv      kv.Store
	records []core.Record
	logger  *applog.Logger
}

func New(kvStore kv.Store, logger *applog.Logger) *Store {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Store{
		kv:     kvStore,
		logger: logger.WithComponent(applog.ComponentStore),
	}
}

// Load reads the persisted collection. Absent or unparseable content yields
// an empty collection; the previous data stays in storage until the next
// Save overwrites it. The collection ends up sorted newest-first.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, recordsKey)
	if errors.Is(err, kv.ErrNotFound) {
		s.records = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		s.logger.WarnContext(ctx, "Stored records unparseable, starting empty",
			applog.FieldOperation, applog.OpLoad, applog.FieldError, err.Error())
		s.records = nil
		return nil
	}

	sortByRecency(records)
	s.records = records
	s.logger.InfoContext(ctx, "Records loaded",
		applog.FieldOperation, applog.OpLoad, applog.FieldCount, len(records))
	return nil
}

// Save serializes the full collection back to storage.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

// save persists the collection; callers hold s.mu.
func (s *Store) save(ctx context.Context) error {
	data, err := encodeRecords(s.records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := s.kv.Set(ctx, recordsKey, data); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// Add validates the input, prepends the new record, and persists. On a
// validation error nothing is mutated.
func (s *Store) Add(ctx context.Context, amount core.Money, subject string, now time.Time) (core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := core.NewRecord(amount, subject, now)
	if err != nil {
		return core.Record{}, err
	}
	// Millisecond ids can collide when records are added back to back.
	for s.hasID(rec.ID) {
		rec.ID++
	}

	prev := s.records
	s.records = append([]core.Record{rec}, s.records...)
	if err := s.save(ctx); err != nil {
		s.records = prev
		return core.Record{}, err
	}

	s.logger.InfoContext(ctx, "Record added",
		applog.FieldOperation, applog.OpAdd,
		applog.FieldRecordID, rec.ID,
		applog.FieldSubject, rec.Subject,
		applog.FieldAmountCents, rec.Amount.Cents)
	return rec, nil
}

// Delete removes the record with the given id and persists. An unknown id
// is a silent no-op with found=false.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.DebugContext(ctx, "Delete of unknown record ignored",
			applog.FieldOperation, applog.OpDelete, applog.FieldRecordID, id)
		return false, nil
	}

	prev := s.records
	s.records = append(s.records[:idx:idx], s.records[idx+1:]...)
	if err := s.save(ctx); err != nil {
		s.records = prev
		return false, err
	}

	s.logger.InfoContext(ctx, "Record deleted",
		applog.FieldOperation, applog.OpDelete, applog.FieldRecordID, id)
	return true, nil
}

// Records returns a copy of the collection, newest first.
func (s *Store) Records() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Theme reads the persisted colors, falling back to defaults for missing or
// invalid values.
func (s *Store) Theme(ctx context.Context) theme.Theme {
	t := theme.Default()
	if v, err := s.kv.Get(ctx, themePrimaryKey); err == nil && theme.ValidColor(v) {
		t.Primary = v
	}
	if v, err := s.kv.Get(ctx, themeAccentKey); err == nil && theme.ValidColor(v) {
		t.Accent = v
	}
	return t
}

// SetTheme validates and persists both colors.
func (s *Store) SetTheme(ctx context.Context, t theme.Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, themePrimaryKey, t.Primary); err != nil {
		return fmt.Errorf("write primary color: %w", err)
	}
	if err := s.kv.Set(ctx, themeAccentKey, t.Accent); err != nil {
		return fmt.Errorf("write accent color: %w", err)
	}
	s.logger.InfoContext(ctx, "Theme updated",
		applog.FieldOperation, applog.OpTheme, "primary", t.Primary, "accent", t.Accent)
	return nil
}

// hasID reports whether any record carries the id; callers hold s.mu.
func (s *Store) hasID(id int64) bool {
	for _, r := range s.records {
		if r.ID == id {
			return true
		}
	}
	return false
}

func sortByRecency(records []core.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
}
