package db

import (
	"path/filepath"
	"testing"
)

func TestOpen_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	for _, table := range []string{"cursors", "bookmarks"} {
		var name string
		err := database.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	if err := InitSchema(database); err != nil {
		t.Errorf("InitSchema should be idempotent: %v", err)
	}
}

func TestOpen_Memory(t *testing.T) {
	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if _, err := database.Exec("INSERT INTO cursors (user_id, position) VALUES ('a', 1)"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := database.Exec("INSERT INTO cursors (user_id, position) VALUES ('b', 0)"); err == nil {
		t.Error("expected position check constraint to reject 0")
	}
}
