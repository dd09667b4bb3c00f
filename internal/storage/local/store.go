package local

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store provides thread-safe JSON file storage. Each slot is a single
// named JSON file under the base directory; writes go through a temp
// file and rename so a crash mid-write never leaves a truncated slot.
type Store struct {
	basePath string
	mu       sync.RWMutex
}

// NewStore creates a new local JSON store
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// Save persists data to a slot
func (s *Store) Save(slot string, data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.slotPath(slot)
	tmp := path + ".tmp"

	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode json: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace slot: %w", err)
	}

	return nil
}

// Load reads data from a slot
func (s *Store) Load(slot string, data interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.slotPath(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(data); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

// Delete removes a slot
func (s *Store) Delete(slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.slotPath(slot)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("remove file: %w", err)
	}

	return nil
}

// Exists checks if a slot has been written
func (s *Store) Exists(slot string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.slotPath(slot))
	return err == nil
}

func (s *Store) slotPath(slot string) string {
	return filepath.Join(s.basePath, slot+".json")
}
