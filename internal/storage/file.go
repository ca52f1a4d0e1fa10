package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per slot under a data directory. Writes go
// through a temp file and rename so a crash never leaves a half-written slot.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *FileStore) Load(slot string, into any) error {
	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("failed to read slot %q: %w", slot, err)
	}

	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to decode slot %q: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Save(slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", slot, err)
	}

	tmp := s.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", slot, err)
	}
	if err := os.Rename(tmp, s.path(slot)); err != nil {
		return fmt.Errorf("failed to replace slot %q: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Delete(slot string) error {
	if err := os.Remove(s.path(slot)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete slot %q: %w", slot, err)
	}
	return nil
}
