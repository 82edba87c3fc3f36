package session

import (
	"os"
	"path/filepath"
	"testing"

	"servicehub-server/internal/models"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, ok := s.Load(); ok {
		t.Fatalf("expected no session in a fresh directory")
	}

	rec := Record{ID: "1", Name: "John Doe", Email: "john@example.com", Role: models.RoleCustomer}
	if err := s.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := s.Load()
	if !ok {
		t.Fatalf("expected a session after save")
	}
	if got != rec {
		t.Fatalf("roundtrip mismatch: %+v != %+v", got, rec)
	}
}

func TestLoadDiscardsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path := filepath.Join(dir, Key+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, ok := s.Load(); ok {
		t.Fatalf("corrupt file must read as no session")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("corrupt file must be removed")
	}
}

func TestClearRemovesCachedData(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := s.Save(Record{ID: "1", Name: "John Doe", Email: "john@example.com", Role: models.RoleCustomer}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// A stray cached view file sits next to the session record.
	if err := os.WriteFile(filepath.Join(dir, "appointments.json"), []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := s.Load(); ok {
		t.Fatalf("expected no session after clear")
	}
	if _, err := os.Stat(filepath.Join(dir, "appointments.json")); !os.IsNotExist(err) {
		t.Fatalf("cached json data must be cleared")
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Fatalf("non-json files must survive clear: %v", err)
	}
}
