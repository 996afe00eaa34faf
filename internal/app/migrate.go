package app

import (
	"context"
	"fmt"

	"github.com/outerwinnie/remembrar/internal/ports/secondary"
)

// StateStores groups the repositories of one storage backend.
type StateStores struct {
	Cursors   secondary.CursorRepository
	Bookmarks secondary.BookmarkRepository
}

// CopyReport summarizes a CopyState run.
type CopyReport struct {
	Cursors          int
	Bookmarks        int
	SkippedBookmarks int // already present in the destination
}

// CopyState copies every cursor and bookmark from one backend to another.
// Cursors are upserted; bookmarks keep insert-if-absent semantics.
func CopyState(ctx context.Context, from, to StateStores) (*CopyReport, error) {
	report := &CopyReport{}

	cursors, err := from.Cursors.List(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list cursors: %w", err)
	}
	for _, c := range cursors {
		if err := to.Cursors.SetPosition(ctx, c.Key, c.Position); err != nil {
			return report, fmt.Errorf("failed to copy cursor %s: %w", c.Key, err)
		}
		report.Cursors++
	}

	bookmarks, err := from.Bookmarks.List(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	for _, b := range bookmarks {
		created, err := to.Bookmarks.Add(ctx, b.Position, b.URL)
		if err != nil {
			return report, fmt.Errorf("failed to copy bookmark %d: %w", b.Position, err)
		}
		if created {
			report.Bookmarks++
		} else {
			report.SkippedBookmarks++
		}
	}

	return report, nil
}
