package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewSQLite(filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(ctx, "records"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("missing key: got %v, want ErrNotFound", err)
			}

			if err := store.Set(ctx, "records", `[{"id":1}]`); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, err := store.Get(ctx, "records")
			if err != nil || got != `[{"id":1}]` {
				t.Fatalf("get: got %q, %v", got, err)
			}

			// Overwrite
			if err := store.Set(ctx, "records", `[]`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			if got, _ := store.Get(ctx, "records"); got != `[]` {
				t.Fatalf("after overwrite: got %q", got)
			}

			if err := store.Delete(ctx, "records"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := store.Get(ctx, "records"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("after delete: got %v, want ErrNotFound", err)
			}
			// Deleting again is a no-op.
			if err := store.Delete(ctx, "records"); err != nil {
				t.Fatalf("double delete: %v", err)
			}
		})
	}
}

func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tally.db")

	first, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, "theme.primary", "#4361ee"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got, err := second.Get(ctx, "theme.primary")
	if err != nil || got != "#4361ee" {
		t.Fatalf("value did not survive reopen: got %q, %v", got, err)
	}
}

func TestOpenFactory(t *testing.T) {
	store, err := Open(Config{Type: MemoryBackend}, nil)
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := store.(*Memory); !ok {
		t.Fatalf("expected *Memory, got %T", store)
	}

	if _, err := Open(Config{Type: "postgres"}, nil); err == nil {
		t.Fatal("unknown backend should fail")
	}

	if !SQLiteBackend.IsValid() || !MemoryBackend.IsValid() || BackendType("x").IsValid() {
		t.Fatal("BackendType.IsValid misbehaves")
	}
}
