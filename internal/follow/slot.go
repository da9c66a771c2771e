package follow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SlotKey is the single durable-storage key holding the local follow list
const SlotKey = "followed_users"

// Slot is a single string-keyed durable storage slot, read once at startup
// and overwritten on every local follow write.
type Slot interface {
	Load() ([]byte, bool, error)
	Save(data []byte) error
}

// FileSlot stores the slot as one JSON file under the state directory
type FileSlot struct {
	path string
}

// NewFileSlot creates a file-backed slot for the given key
func NewFileSlot(stateDir, key string) *FileSlot {
	return &FileSlot{path: filepath.Join(stateDir, key+".json")}
}

// Load reads the slot. The second return is false when the slot has never
// been written.
func (s *FileSlot) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %s: %w", s.path, err)
	}
	return data, true, nil
}

// Save overwrites the slot. The write goes through a temp file and rename so
// a crash mid-write cannot leave a truncated slot.
func (s *FileSlot) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to commit slot %s: %w", s.path, err)
	}
	return nil
}
