package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/nightslot/internal/constants"
)

func TestSetGetDelete(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://tester@localhost:5432/nightslot?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString failed: %v", err)
	}
	if got != connStr {
		t.Errorf("got %q, want %q", got, connStr)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()
	if err := SetConnectionString(""); err == nil {
		t.Error("expected error for empty connection string")
	}
}

func TestResolveConnectionString(t *testing.T) {
	gokeyring.MockInit()
	t.Setenv(constants.DBConnectionEnv, "")

	if _, _, err := ResolveConnectionString(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound with nothing configured, got %v", err)
	}

	if err := SetConnectionString("postgres://keyring@localhost/db"); err != nil {
		t.Fatal(err)
	}
	got, source, err := ResolveConnectionString("")
	if err != nil || source != SourceKeyring || got != "postgres://keyring@localhost/db" {
		t.Errorf("keyring: got %q %q %v", got, source, err)
	}

	t.Setenv(constants.DBConnectionEnv, "postgres://env@localhost/db")
	got, source, _ = ResolveConnectionString("")
	if source != SourceEnv || got != "postgres://env@localhost/db" {
		t.Errorf("env: got %q %q", got, source)
	}

	got, source, _ = ResolveConnectionString("postgres://config@localhost/db")
	if source != SourceConfig || got != "postgres://config@localhost/db" {
		t.Errorf("config: got %q %q", got, source)
	}
}
