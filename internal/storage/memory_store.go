package storage

import (
	"fmt"
	"sync"
)

// MemoryStore keeps blobs in process memory. Failures can be injected
// to exercise the port's error paths.
type MemoryStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	GetErr error
	PutErr error
	puts   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Init() error {
	return nil
}

func (s *MemoryStore) Load() error {
	return s.Init()
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	value, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return fmt.Errorf("failed to write %s: %w", key, s.PutErr)
	}
	s.data[key] = append([]byte(nil), value...)
	s.puts++
	return nil
}

// Puts counts successful writes
func (s *MemoryStore) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

func (s *MemoryStore) GetConfigPath() string {
	return "memory"
}
