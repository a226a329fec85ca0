package migration

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/nightslot/migrations"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mapFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count == 1
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	runner := NewRunner(openTestDB(t), mapFS(nil), SQLite)

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestReadMigrations(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		want    []int
		wantErr string
	}{
		{
			name: "sorted by version",
			files: map[string]string{
				"003_another.sql": "CREATE TABLE c (id INTEGER);",
				"001_init.sql":    "CREATE TABLE a (id INTEGER);",
				"002_update.sql":  "CREATE TABLE b (id INTEGER);",
				"README.md":       "ignored",
			},
			want: []int{1, 2, 3},
		},
		{
			name:    "missing underscore",
			files:   map[string]string{"001init.sql": "SELECT 1;"},
			wantErr: "invalid migration filename",
		},
		{
			name:    "zero version",
			files:   map[string]string{"000_init.sql": "SELECT 1;"},
			wantErr: "version must be at least 1",
		},
		{
			name:    "non-numeric version",
			files:   map[string]string{"abc_init.sql": "SELECT 1;"},
			wantErr: "invalid version number",
		},
		{
			name: "duplicate version",
			files: map[string]string{
				"001_init.sql":  "SELECT 1;",
				"001_other.sql": "SELECT 2;",
			},
			wantErr: "duplicate migration version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(openTestDB(t), mapFS(tt.files), SQLite)
			got, err := runner.ReadMigrations()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMigrations failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d migrations, got %d", len(tt.want), len(got))
			}
			for i, v := range tt.want {
				if got[i].Version != v {
					t.Errorf("migration %d: expected version %d, got %d", i, v, got[i].Version)
				}
			}
			if got[0].Name != "init" {
				t.Errorf("expected name 'init', got %q", got[0].Name)
			}
		})
	}
}

func TestApplyFromScratchAndIncremental(t *testing.T) {
	db := openTestDB(t)
	files := mapFS(map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
	})
	runner := NewRunner(db, files, SQLite)

	var logged []string
	count, err := runner.Apply(func(msg string) { logged = append(logged, msg) })
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 migration applied, got %d", count)
	}
	if len(logged) == 0 {
		t.Error("expected progress messages")
	}

	files["002_posts.sql"] = &fstest.MapFile{Data: []byte("CREATE TABLE posts (id INTEGER PRIMARY KEY);")}
	count, err = runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 more migration applied, got %d", count)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}
	if !tableExists(t, db, "users") || !tableExists(t, db, "posts") {
		t.Error("expected both tables to exist")
	}

	count, err = runner.Apply(nil)
	if err != nil || count != 0 {
		t.Errorf("expected no-op third run, got count=%d err=%v", count, err)
	}
}

func TestApplyRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"001_init.sql": `
			CREATE TABLE users (id INTEGER PRIMARY KEY);
			THIS IS INVALID SQL;
		`,
	}), SQLite)

	if _, err := runner.Apply(nil); err == nil {
		t.Fatal("Apply should have failed with invalid SQL")
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 0 {
		t.Errorf("expected version 0 after failed migration, got %d", version)
	}
	if tableExists(t, db, "users") {
		t.Error("table should not exist after failed migration")
	}
}

func TestNewerDatabaseIsRejected(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
	}), SQLite)

	if err := runner.ensureSchemaVersionTable(); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (10)"); err != nil {
		t.Fatal(err)
	}

	if err := runner.Validate(); err == nil {
		t.Error("Validate should fail for a newer database")
	}
	if _, err := runner.Apply(nil); err == nil {
		t.Error("Apply should fail for a newer database")
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatal(err)
	}
	db := openTestDB(t)
	runner := NewRunner(db, sub, SQLite)

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !tableExists(t, db, "kv") {
		t.Error("expected kv table")
	}
	if err := runner.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestPlaceholder(t *testing.T) {
	if got := SQLite.placeholder(1); got != "?" {
		t.Errorf("sqlite placeholder = %q", got)
	}
	if got := Postgres.placeholder(2); got != "$2" {
		t.Errorf("postgres placeholder = %q", got)
	}
}
