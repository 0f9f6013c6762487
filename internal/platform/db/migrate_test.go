package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMigrations_SortsAndSkips(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"002_inventory.sql": "CREATE TABLE b (id INT);",
		"001_core.sql":      "CREATE TABLE a (id INT);",
		"README.md":         "not a migration",
		"notes.sql":         "no numeric prefix",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "001_core" {
		t.Errorf("first migration wrong: %+v", migrations[0])
	}
	if migrations[1].Version != 2 {
		t.Errorf("second migration wrong: %+v", migrations[1])
	}
	if migrations[0].SQL != "CREATE TABLE a (id INT);" {
		t.Errorf("sql not loaded: %q", migrations[0].SQL)
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	m := NewMigrator(nil, "/nonexistent/migrations")
	if _, err := m.LoadMigrations(); err == nil {
		t.Error("expected error for missing directory")
	}
}
