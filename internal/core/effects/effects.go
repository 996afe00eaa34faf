// Package effects defines effect types as data structures representing I/O operations.
// Navigation logic returns effects; the app layer executes them.
package effects

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// Persisted entities.
const (
	EntityCursor   = "cursor"
	EntityBookmark = "bookmark"
)

// Persist operations.
const (
	OpUpsert = "upsert"
	OpInsert = "insert_if_absent"
)

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string // "debug", "info", "warn"
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// PersistEffect represents a store write.
type PersistEffect struct {
	Entity    string // EntityCursor or EntityBookmark
	Operation string // OpUpsert or OpInsert
	Data      any    // CursorData or BookmarkData
}

func (e PersistEffect) EffectType() string { return "persist" }

// CursorData is the payload of a cursor upsert.
type CursorData struct {
	Key      string
	Position int
}

// BookmarkData is the payload of a bookmark insert.
type BookmarkData struct {
	Position int
	URL      string
}
