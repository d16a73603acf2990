// Package store persists the address book as a JSON snapshot on disk.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finchley/rolo/internal/book"
)

// FileStore reads and writes the address book snapshot at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given snapshot path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot path.
func (s *FileStore) Path() string {
	return s.path
}

// Save writes the whole book to the snapshot path, overwriting any existing
// file. The parent directory is created if needed. Save failures propagate;
// they are never silently dropped.
func (s *FileStore) Save(b *book.AddressBook) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: creating directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshaling: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", s.path, err)
	}
	return nil
}

// Load reads the snapshot and rebuilds the address book. Best-effort
// recovery: a missing, unreadable, or corrupt snapshot yields a fresh empty
// book rather than an error, so the tool always starts.
func (s *FileStore) Load() *book.AddressBook {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return book.New()
	}

	b := book.New()
	if err := json.Unmarshal(data, b); err != nil {
		return book.New()
	}
	return b
}
