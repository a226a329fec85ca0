package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/nightslot/internal/constants"
	"github.com/julianstephens/nightslot/internal/models"
	"github.com/julianstephens/nightslot/internal/utils"
)

// Backend names a storage provider
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendJSON     Backend = "json"
	BackendPostgres Backend = "postgres"
)

func (b Backend) Valid() bool {
	switch b {
	case BackendSQLite, BackendJSON, BackendPostgres:
		return true
	}
	return false
}

// StorageConfig selects where planner state lives.
type StorageConfig struct {
	// Backend is one of sqlite (default), json or postgres.
	Backend Backend `yaml:"backend"`
	// Path is the state file for the sqlite and json backends.
	Path string `yaml:"path"`
	// Connection is a PostgreSQL URI or DSN without a password. When empty
	// the NIGHTSLOT_DB_CONNECTION environment variable and then the OS
	// keyring are consulted.
	Connection string `yaml:"connection,omitempty"`
}

type BackupConfig struct {
	// Keep is how many automatic backups are retained.
	Keep int `yaml:"keep"`
}

// LogConfig controls the rotating log file under <config dir>/logs.
// Zero MaxBackups or MaxAgeDays keeps rotated files forever.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Config is the top-level application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Backup  BackupConfig  `yaml:"backup"`
	Log     LogConfig     `yaml:"log"`

	// DefaultView is the view shown when no state has been saved yet.
	DefaultView models.View `yaml:"default_view"`

	// Debug mirrors log output to stderr at debug level.
	Debug bool `yaml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    constants.DefaultStatePath,
		},
		Backup: BackupConfig{
			Keep: constants.MaxBackups,
		},
		Log: LogConfig{
			Level:      constants.DefaultLogLevel,
			MaxSizeMB:  constants.DefaultLogMaxSizeMB,
			MaxBackups: constants.DefaultLogMaxBackups,
			MaxAgeDays: constants.DefaultLogMaxAgeDays,
		},
		DefaultView: models.ViewDay,
	}
}

// Normalize fills missing or invalid values with defaults so partially
// written files still behave.
func (c *Config) Normalize() {
	if !c.Storage.Backend.Valid() {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Path == "" {
		c.Storage.Path = constants.DefaultStatePath
		if c.Storage.Backend == BackendJSON {
			c.Storage.Path = strings.TrimSuffix(constants.DefaultStatePath, filepath.Ext(constants.DefaultStatePath)) + ".json"
		}
	}
	if c.Backup.Keep <= 0 {
		c.Backup.Keep = constants.MaxBackups
	}
	if !c.DefaultView.Valid() {
		c.DefaultView = models.ViewDay
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		c.Log.Level = constants.DefaultLogLevel
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = constants.DefaultLogMaxSizeMB
	}
	if c.Log.MaxBackups < 0 {
		c.Log.MaxBackups = constants.DefaultLogMaxBackups
	}
	if c.Log.MaxAgeDays < 0 {
		c.Log.MaxAgeDays = constants.DefaultLogMaxAgeDays
	}
}

// Load reads the YAML file at path. A missing file is created with the
// defaults on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	path, err := utils.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save normalizes cfg and writes it atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	path, err := utils.ExpandHome(path)
	if err != nil {
		return err
	}

	cfg.Normalize()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return utils.WriteFileAtomic(path, data, 0o600)
}

func (c *Config) Save(path string) error {
	return Save(path, c)
}

// StatePath returns the storage path with ~ expanded
func (c *Config) StatePath() (string, error) {
	return utils.ExpandHome(c.Storage.Path)
}
