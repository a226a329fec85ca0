package storage

import "errors"

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("key not found")

// Provider is a key-value blob backend for planner snapshots.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Blobs
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error

	// Utils
	GetConfigPath() string
}

// SchemaReporter is implemented by providers backed by a versioned SQL schema
type SchemaReporter interface {
	SchemaVersion() (current, latest int, err error)
}
