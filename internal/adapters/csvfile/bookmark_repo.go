package csvfile

import (
	"context"
	"errors"
	"os"
	"sort"
	"sync"

	rerrors "github.com/outerwinnie/remembrar/internal/errors"
	"github.com/outerwinnie/remembrar/internal/ports/secondary"
)

// bookmarkRow is one line of the bookmark file.
type bookmarkRow struct {
	Position int    `csv:"Position"`
	URL      string `csv:"Url"`
}

var bookmarkColumns = []string{"Position", "Url"}

// BookmarkRepository implements secondary.BookmarkRepository over a flat
// file with one (Position, Url) row per bookmarked position.
type BookmarkRepository struct {
	path string
	mu   sync.Mutex // serializes read-modify-write
}

// NewBookmarkRepository creates a bookmark repository backed by path.
func NewBookmarkRepository(path string) *BookmarkRepository {
	return &BookmarkRepository{path: path}
}

// Path returns the backing file.
func (r *BookmarkRepository) Path() string {
	return r.path
}

// Exists reports whether pos is bookmarked.
func (r *BookmarkRepository) Exists(ctx context.Context, pos int) (bool, error) {
	records, err := r.load()
	if err != nil {
		return false, rerrors.NewPersistError("bookmark", "read", err)
	}
	for _, rec := range records {
		if rec.Position == pos {
			return true, nil
		}
	}
	return false, nil
}

// Add inserts (pos, url) unless pos is already present.
func (r *BookmarkRepository) Add(ctx context.Context, pos int, url string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, rerrors.NewPersistError("bookmark", "write", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return false, rerrors.NewPersistError("bookmark", "read", err)
	}
	for _, rec := range records {
		if rec.Position == pos {
			return false, nil
		}
	}

	records = append(records, &secondary.BookmarkRecord{Position: pos, URL: url})
	sortBookmarks(records)

	rows := make([]*bookmarkRow, len(records))
	for i, rec := range records {
		rows[i] = &bookmarkRow{Position: rec.Position, URL: rec.URL}
	}
	if err := writeRecords(r.path, rows); err != nil {
		return false, rerrors.NewPersistError("bookmark", "write", err)
	}
	return true, nil
}

// List returns all bookmarks ordered by position.
func (r *BookmarkRepository) List(ctx context.Context) ([]*secondary.BookmarkRecord, error) {
	records, err := r.load()
	if err != nil {
		return nil, rerrors.NewPersistError("bookmark", "read", err)
	}
	sortBookmarks(records)
	return records, nil
}

func (r *BookmarkRepository) load() ([]*secondary.BookmarkRecord, error) {
	var rows []*bookmarkRow
	err := readRecords(r.path, bookmarkColumns, &rows)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	records := make([]*secondary.BookmarkRecord, len(rows))
	for i, row := range rows {
		records[i] = &secondary.BookmarkRecord{Position: row.Position, URL: row.URL}
	}
	return records, nil
}

func sortBookmarks(records []*secondary.BookmarkRecord) {
	sort.Slice(records, func(i, j int) bool { return records[i].Position < records[j].Position })
}

// Ensure BookmarkRepository implements the interface.
var _ secondary.BookmarkRepository = (*BookmarkRepository)(nil)
