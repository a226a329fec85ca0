package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func readLog(t *testing.T, cfg Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.Path())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestInit(t *testing.T) {
	cfg := Config{Dir: filepath.Join(t.TempDir(), "config")}
	if err := Init(cfg); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if cfg.Path() != filepath.Join(cfg.Dir, "logs", "nightslot.log") {
		t.Errorf("path = %s", cfg.Path())
	}

	Debug("Test debug message")
	Warn("Test warning message", "key", "value")

	content := readLog(t, cfg)
	if !strings.Contains(content, "Test warning message") {
		t.Errorf("log file missing warning message: %q", content)
	}
	if strings.Contains(content, "Test debug message") {
		t.Errorf("debug message written at the default level: %q", content)
	}
}

func TestInitDebugMode(t *testing.T) {
	cfg := Config{Dir: filepath.Join(t.TempDir(), "config"), Level: "error", Debug: true}
	if err := Init(cfg); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Debug("Test debug message in debug mode")

	if content := readLog(t, cfg); !strings.Contains(content, "Test debug message in debug mode") {
		t.Errorf("debug message missing in debug mode: %q", content)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		cfg  Config
		want log.Level
	}{
		{Config{}, log.WarnLevel},
		{Config{Level: "info"}, log.InfoLevel},
		{Config{Level: "error"}, log.ErrorLevel},
		{Config{Level: "nonsense"}, log.WarnLevel},
		{Config{Level: "error", Debug: true}, log.DebugLevel},
	}
	for _, tt := range tests {
		if got := tt.cfg.level(); got != tt.want {
			t.Errorf("level(%+v) = %v, want %v", tt.cfg, got, tt.want)
		}
	}
}

func TestInfoLevelFromConfig(t *testing.T) {
	cfg := Config{Dir: t.TempDir(), Level: "info", MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
	if err := Init(cfg); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { Logger = nil })

	Info("Test info message")
	Debug("Test debug message")

	content := readLog(t, cfg)
	if !strings.Contains(content, "Test info message") || strings.Contains(content, "Test debug message") {
		t.Errorf("unexpected log content: %q", content)
	}
}

func TestHelpersBeforeInit(t *testing.T) {
	Logger = nil
	// Must not panic when the logger has not been initialized
	Debug("noop")
	Info("noop")
	Warn("noop")
	Error("noop")
}
