// Package session persists the current identity across restarts, the way the
// dashboard keeps its logged-in user under a fixed localStorage key. It is the
// only state in the system that outlives the process.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"servicehub-server/internal/models"
)

// Key is the fixed name the identity record is stored under.
const Key = "currentUser"

// Record is the stored identity.
type Record struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// Store reads and writes the single session record as a JSON file.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates the state directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, Key+".json")
}

// Load returns the stored identity, or ok=false when there is none. A corrupt
// or unparseable file is treated as "no session" and discarded.
func (s *Store) Load() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		return Record{}, false
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil || rec.ID == "" {
		_ = os.Remove(s.path())
		return Record{}, false
	}
	return rec, true
}

// Save writes the identity record.
func (s *Store) Save(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}

// Clear removes the identity record and any cached view data files in the
// state directory.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}
	return nil
}
