package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	rerrors "github.com/outerwinnie/remembrar/internal/errors"
	"github.com/outerwinnie/remembrar/internal/ports/secondary"
)

// BookmarkRepository implements secondary.BookmarkRepository with SQLite.
type BookmarkRepository struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new SQLite bookmark repository.
func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Exists reports whether pos is bookmarked.
func (r *BookmarkRepository) Exists(ctx context.Context, pos int) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookmarks WHERE position = ?",
		pos,
	).Scan(&count)
	if err != nil {
		return false, rerrors.NewPersistError("bookmark", "read", err)
	}

	return count > 0, nil
}

// Add inserts a bookmark unless pos is already present.
func (r *BookmarkRepository) Add(ctx context.Context, pos int, url string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO bookmarks (position, url) VALUES (?, ?)",
		pos, url,
	)
	if err != nil {
		return false, rerrors.NewPersistError("bookmark", "write", fmt.Errorf("failed to insert bookmark: %w", err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, rerrors.NewPersistError("bookmark", "write", err)
	}

	return rowsAffected == 1, nil
}

// List retrieves all bookmarks ordered by position.
func (r *BookmarkRepository) List(ctx context.Context) ([]*secondary.BookmarkRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT position, url FROM bookmarks ORDER BY position ASC",
	)
	if err != nil {
		return nil, rerrors.NewPersistError("bookmark", "read", err)
	}
	defer rows.Close()

	var records []*secondary.BookmarkRecord
	for rows.Next() {
		record := &secondary.BookmarkRecord{}
		if err := rows.Scan(&record.Position, &record.URL); err != nil {
			return nil, rerrors.NewPersistError("bookmark", "read", fmt.Errorf("failed to scan bookmark: %w", err))
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, rerrors.NewPersistError("bookmark", "read", err)
	}

	return records, nil
}

// Ensure BookmarkRepository implements the interface.
var _ secondary.BookmarkRepository = (*BookmarkRepository)(nil)
