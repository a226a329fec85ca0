package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/nightslot/internal/constants"
)

// Logger is the global logger. It stays nil until Init, and the helpers
// below are no-ops until then.
var Logger *log.Logger

// Config selects where logs go and how the file rotates
type Config struct {
	// Dir holds the logs directory, normally the config directory.
	Dir string
	// Level is parsed with log.ParseLevel; empty means warn.
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// Debug forces debug level and mirrors output to stderr.
	Debug bool
}

// Path returns the active log file for cfg
func (c Config) Path() string {
	return filepath.Join(c.Dir, constants.LogDirName, constants.AppName+".log")
}

func (c Config) level() log.Level {
	if c.Debug {
		return log.DebugLevel
	}
	lvl, err := log.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		return log.WarnLevel
	}
	return lvl
}

// Init opens the rotating log file and installs the global logger
func Init(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Path()), 0o700); err != nil {
		return err
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = constants.DefaultLogMaxSizeMB
	}
	file := &lumberjack.Logger{
		Filename:   cfg.Path(),
		MaxSize:    maxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	// the TUI owns the terminal unless debugging
	var w io.Writer = file
	if cfg.Debug {
		w = io.MultiWriter(os.Stderr, file)
	}

	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           cfg.level(),
		Prefix:          constants.AppName,
	})
	return nil
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
