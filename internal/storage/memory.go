package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store used by tests and the offline demo.
type MemStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

func (s *MemStore) Load(slot string, into any) error {
	s.mu.Lock()
	data, ok := s.slots[slot]
	s.mu.Unlock()

	if !ok {
		return ErrSlotNotFound
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to decode slot %q: %w", slot, err)
	}
	return nil
}

func (s *MemStore) Save(slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", slot, err)
	}

	s.mu.Lock()
	s.slots[slot] = data
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Delete(slot string) error {
	s.mu.Lock()
	delete(s.slots, slot)
	s.mu.Unlock()
	return nil
}

// SetRaw stores raw bytes in a slot, bypassing JSON encoding. Tests use it to
// plant malformed payloads.
func (s *MemStore) SetRaw(slot string, data []byte) {
	s.mu.Lock()
	s.slots[slot] = data
	s.mu.Unlock()
}
