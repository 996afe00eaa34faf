package db

// SchemaSQL is the complete schema for the sqlite state backend.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository
// tests load it through GetSchemaSQL() instead of declaring tables.
const SchemaSQL = `
-- Cursors (one row per user, or one global row)
CREATE TABLE IF NOT EXISTS cursors (
	user_id TEXT PRIMARY KEY,
	position INTEGER NOT NULL CHECK(position >= 1),
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Bookmarks (catalog-wide, at most one per position)
CREATE TABLE IF NOT EXISTS bookmarks (
	position INTEGER PRIMARY KEY CHECK(position >= 1),
	url TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
