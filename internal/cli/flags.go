package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/nightslot/internal/config"
	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/storage"
)

// ApplyOverrides layers command-line flags over the config file values
func ApplyOverrides(cfg *config.Config, backend, path string, debug bool) error {
	if backend != "" {
		b := config.Backend(strings.ToLower(backend))
		if !b.Valid() {
			return fmt.Errorf("unknown backend %q (expected sqlite, json or postgres)", backend)
		}
		cfg.Storage.Backend = b
		if b == config.BackendJSON && path == "" && cfg.Storage.Path == constants.DefaultStatePath {
			// let Normalize pick the .json default
			cfg.Storage.Path = ""
		}
	}

	switch {
	case path == "":
	case storage.IsPostgresConnString(path):
		cfg.Storage.Backend = config.BackendPostgres
		cfg.Storage.Connection = path
	default:
		cfg.Storage.Path = path
		if backend == "" && strings.EqualFold(filepath.Ext(path), ".json") {
			cfg.Storage.Backend = config.BackendJSON
		}
	}

	if debug {
		cfg.Debug = true
	}
	cfg.Normalize()
	return nil
}

// SkipsStorage reports commands that run without a storage backend
func SkipsStorage(command string) bool {
	return strings.HasPrefix(command, "keyring")
}

// SkipsLoad reports commands that open storage themselves or not at all
func SkipsLoad(command string) bool {
	for _, prefix := range []string{"init", "keyring", "doctor", "debug path"} {
		if strings.HasPrefix(command, prefix) {
			return true
		}
	}
	return false
}
