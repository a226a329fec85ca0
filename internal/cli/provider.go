package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/nightslot/internal/config"
	"github.com/julianstephens/nightslot/internal/keyring"
	"github.com/julianstephens/nightslot/internal/logger"
	"github.com/julianstephens/nightslot/internal/storage"
)

// NewProvider builds the storage backend named in cfg
func NewProvider(cfg *config.Config) (storage.Provider, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		connStr, source, err := keyring.ResolveConnectionString(cfg.Storage.Connection)
		if err != nil {
			return nil, err
		}
		if err := storage.ValidateConnString(connStr); err != nil {
			// passwords are only accepted from the keyring or the environment
			if !errors.Is(err, storage.ErrEmbeddedCredentials) || source == keyring.SourceConfig {
				return nil, fmt.Errorf("%s connection string: %w", source, err)
			}
		}
		logger.Debug("Using PostgreSQL storage", "source", source)
		return storage.NewPostgresStore(connStr), nil
	case config.BackendJSON:
		path, err := cfg.StatePath()
		if err != nil {
			return nil, err
		}
		return storage.NewJSONStore(path), nil
	default:
		path, err := cfg.StatePath()
		if err != nil {
			return nil, err
		}
		return storage.NewSQLiteStore(path), nil
	}
}
