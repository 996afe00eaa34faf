// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	rerrors "github.com/outerwinnie/remembrar/internal/errors"
	"github.com/outerwinnie/remembrar/internal/ports/secondary"
)

// CursorRepository implements secondary.CursorRepository with SQLite.
type CursorRepository struct {
	db *sql.DB
}

// NewCursorRepository creates a new SQLite cursor repository.
func NewCursorRepository(db *sql.DB) *CursorRepository {
	return &CursorRepository{db: db}
}

// GetPosition retrieves the stored position for key.
func (r *CursorRepository) GetPosition(ctx context.Context, key string) (int, bool, error) {
	var pos int
	err := r.db.QueryRowContext(ctx,
		"SELECT position FROM cursors WHERE user_id = ?",
		key,
	).Scan(&pos)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, rerrors.NewPersistError("cursor", "read", err)
	}

	return pos, true, nil
}

// SetPosition upserts the cursor for key.
func (r *CursorRepository) SetPosition(ctx context.Context, key string, pos int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cursors (user_id, position) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET position = excluded.position, updated_at = CURRENT_TIMESTAMP`,
		key, pos,
	)
	if err != nil {
		return rerrors.NewPersistError("cursor", "write", fmt.Errorf("failed to upsert cursor: %w", err))
	}

	return nil
}

// List retrieves all cursors ordered by key.
func (r *CursorRepository) List(ctx context.Context) ([]*secondary.CursorRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id, position FROM cursors ORDER BY user_id ASC",
	)
	if err != nil {
		return nil, rerrors.NewPersistError("cursor", "read", err)
	}
	defer rows.Close()

	var records []*secondary.CursorRecord
	for rows.Next() {
		record := &secondary.CursorRecord{}
		if err := rows.Scan(&record.Key, &record.Position); err != nil {
			return nil, rerrors.NewPersistError("cursor", "read", fmt.Errorf("failed to scan cursor: %w", err))
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, rerrors.NewPersistError("cursor", "read", err)
	}

	return records, nil
}

// Ensure CursorRepository implements the interface.
var _ secondary.CursorRepository = (*CursorRepository)(nil)
