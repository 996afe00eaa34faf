// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tables come from db.GetSchemaSQL() so tests run against the same schema
// as production. Do not declare CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/outerwinnie/remembrar/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCursor inserts a cursor row directly.
func seedCursor(t *testing.T, database *sql.DB, key string, pos int) {
	t.Helper()
	if _, err := database.Exec("INSERT INTO cursors (user_id, position) VALUES (?, ?)", key, pos); err != nil {
		t.Fatalf("failed to seed cursor: %v", err)
	}
}
