package secondary

import "context"

// CursorRepository defines the secondary port for cursor persistence.
// Implementations serialize their own read-modify-write cycles.
type CursorRepository interface {
	// GetPosition returns the stored position for key. found is false when
	// no record exists.
	GetPosition(ctx context.Context, key string) (pos int, found bool, err error)

	// SetPosition upserts the record for key.
	SetPosition(ctx context.Context, key string, pos int) error

	// List returns every cursor record.
	List(ctx context.Context) ([]*CursorRecord, error)
}

// CursorRecord represents a cursor as stored in persistence.
type CursorRecord struct {
	Key      string // user ID, or the global key
	Position int
}

// BookmarkRepository defines the secondary port for bookmark persistence.
// Bookmarks are catalog-wide and keyed by position.
type BookmarkRepository interface {
	// Exists reports whether pos is bookmarked.
	Exists(ctx context.Context, pos int) (bool, error)

	// Add inserts a bookmark if pos is absent. created is false, with no
	// write performed, when pos was already present.
	Add(ctx context.Context, pos int, url string) (created bool, err error)

	// List returns all bookmarks ordered by position.
	List(ctx context.Context) ([]*BookmarkRecord, error)
}

// BookmarkRecord represents a bookmark as stored in persistence.
type BookmarkRecord struct {
	Position int
	URL      string
}
