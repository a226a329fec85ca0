package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/nightslot/internal/logger"
	"github.com/julianstephens/nightslot/internal/utils"
)

type fileContents struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// JSONStore keeps every key in a single JSON file. Values must themselves
// be valid JSON so the file stays human-readable.
type JSONStore struct {
	path  string
	store *fileContents
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyContents()
	return s.save()
}

// Load reads the state file. A missing file starts an empty store that is
// written on the first Put. An unparsable file is moved aside to
// <path>.corrupt and the store starts empty.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No state file yet, starting empty", "path", s.path)
			s.store = emptyContents()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileContents{}
	if err := json.Unmarshal(data, s.store); err != nil {
		aside := s.path + corruptSuffix
		if rerr := os.Rename(s.path, aside); rerr != nil {
			logger.Warn("Failed to move unreadable state file aside", "path", s.path, "error", rerr)
		}
		logger.Warn("State file is unreadable, starting empty", "path", s.path, "moved_to", aside, "error", err)
		s.store = emptyContents()
		return nil
	}
	if s.store.Entries == nil {
		s.store.Entries = make(map[string]json.RawMessage)
	}
	return nil
}

const corruptSuffix = ".corrupt"

func emptyContents() *fileContents {
	return &fileContents{
		Version: 1,
		Entries: make(map[string]json.RawMessage),
	}
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	value, ok := s.store.Entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	// the file is indented, values are handed back compact
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

func (s *JSONStore) Put(key string, value []byte) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", key)
	}
	s.store.Entries[key] = append(json.RawMessage(nil), value...)
	return s.save()
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := utils.WriteFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

// GetConfigPath returns the path of the backing file.
//
// Running multiple processes against the same file is not supported; the
// last writer wins.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
