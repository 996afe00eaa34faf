package primary

import "context"

// NavigationService defines the primary port for catalog navigation.
type NavigationService interface {
	// OpenForUser returns the user's current entry without writing anything.
	OpenForUser(ctx context.Context, userID string) (*ResolvedEntry, error)

	// Navigate moves the user's cursor one step and saves it.
	Navigate(ctx context.Context, userID string, dir Direction) (*NavigationResponse, error)

	// Bookmark saves the user's current entry catalog-wide.
	Bookmark(ctx context.Context, userID string) (*BookmarkResponse, error)

	// Seek jumps the user's cursor to position. Privileged by default.
	Seek(ctx context.Context, userID string, position int) (*NavigationResponse, error)

	// ListBookmarks returns every bookmark as a display entry.
	ListBookmarks(ctx context.Context) ([]*ResolvedEntry, error)

	// CatalogSize returns the number of catalog entries.
	CatalogSize() int

	// IsAuthorized reports whether userID may perform action.
	IsAuthorized(ctx context.Context, userID, action string) bool
}

// Direction is a single-step navigation intent.
type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

// ResolvedEntry is a position paired with its display-ready URL.
type ResolvedEntry struct {
	Position   int
	DisplayURL string
}

// NavigationResponse contains the result of a cursor move.
type NavigationResponse struct {
	Entry *ResolvedEntry
	// AtBoundary is true when the move was a no-op at the first or last entry.
	AtBoundary bool
	// Saved is false when the cursor could not be persisted this turn.
	Saved bool
}

// BookmarkResponse contains the result of a bookmark request.
type BookmarkResponse struct {
	Entry             *ResolvedEntry
	AlreadyBookmarked bool
	// Saved is true when the bookmark is on record, whether written now or before.
	Saved bool
	// CursorSaved is false when the bookmark was stored but the position was not.
	CursorSaved bool
}
