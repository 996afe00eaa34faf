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

// cursorRow is one line of the progress file.
type cursorRow struct {
	UserID    string `csv:"UserId"`
	CurrentID int    `csv:"CurrentId"`
}

var cursorColumns = []string{"UserId", "CurrentId"}

// CursorRepository implements secondary.CursorRepository over a flat file
// with one (UserId, CurrentId) row per user.
type CursorRepository struct {
	path string
	mu   sync.Mutex // serializes read-modify-write
}

// NewCursorRepository creates a cursor repository backed by path.
func NewCursorRepository(path string) *CursorRepository {
	return &CursorRepository{path: path}
}

// Path returns the backing file.
func (r *CursorRepository) Path() string {
	return r.path
}

// GetPosition returns the stored position for key.
func (r *CursorRepository) GetPosition(ctx context.Context, key string) (int, bool, error) {
	records, err := r.load()
	if err != nil {
		return 0, false, rerrors.NewPersistError("cursor", "read", err)
	}
	for _, rec := range records {
		if rec.Key == key {
			return rec.Position, true, nil
		}
	}
	return 0, false, nil
}

// SetPosition upserts the record for key, creating the file if needed.
func (r *CursorRepository) SetPosition(ctx context.Context, key string, pos int) error {
	if err := ctx.Err(); err != nil {
		return rerrors.NewPersistError("cursor", "write", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return rerrors.NewPersistError("cursor", "read", err)
	}

	found := false
	for _, rec := range records {
		if rec.Key == key {
			rec.Position = pos
			found = true
			break
		}
	}
	if !found {
		records = append(records, &secondary.CursorRecord{Key: key, Position: pos})
	}

	rows := make([]*cursorRow, len(records))
	for i, rec := range records {
		rows[i] = &cursorRow{UserID: rec.Key, CurrentID: rec.Position}
	}
	if err := writeRecords(r.path, rows); err != nil {
		return rerrors.NewPersistError("cursor", "write", err)
	}
	return nil
}

// List returns every cursor record ordered by key.
func (r *CursorRepository) List(ctx context.Context) ([]*secondary.CursorRecord, error) {
	records, err := r.load()
	if err != nil {
		return nil, rerrors.NewPersistError("cursor", "read", err)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	return records, nil
}

// load reads all records in file order. A missing file is empty.
func (r *CursorRepository) load() ([]*secondary.CursorRecord, error) {
	var rows []*cursorRow
	err := readRecords(r.path, cursorColumns, &rows)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	records := make([]*secondary.CursorRecord, len(rows))
	for i, row := range rows {
		records[i] = &secondary.CursorRecord{Key: row.UserID, Position: row.CurrentID}
	}
	return records, nil
}

// Ensure CursorRepository implements the interface.
var _ secondary.CursorRepository = (*CursorRepository)(nil)
