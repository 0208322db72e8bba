package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table.Name,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table.Name, err)
		}
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestReopenKeepsSequence(t *testing.T) {
	dsn := "file:" + t.TempDir() + "/mentorai.db"
	ctx := context.Background()

	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.seq.Next(ctx); err != nil {
		t.Fatalf("next: %v", err)
	}
	s.Close()

	s, err = Open(dsn)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got != 2 {
		t.Fatalf("sequence after reopen = %d, want 2", got)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("MENTORAI_DB", dir+"/custom/db.sqlite")
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != dir+"/custom/db.sqlite" {
		t.Fatalf("expected env override, got %q", p)
	}

	t.Setenv("MENTORAI_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != dir+"/mentorai/mentorai.db" {
		t.Fatalf("unexpected XDG path %q", p)
	}
}
