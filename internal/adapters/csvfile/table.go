// Package csvfile contains comma-separated flat-file implementations of the
// catalog source and the cursor and bookmark repositories.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/renameio/v2"
)

const utf8BOM = "\ufeff"

func init() {
	// Every tagged column must appear in the header.
	gocsv.FailIfUnmatchedStructTags = true
}

// readRecords decodes path into out, a pointer to a slice of tagged structs.
// A missing file returns os.ErrNotExist so callers can treat it as empty.
func readRecords(path string, columns []string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return decodeRecords(f, columns, out)
}

// decodeRecords decodes r into out. A zero-byte input decodes to nothing.
func decodeRecords(r io.Reader, columns []string, out any) error {
	err := gocsv.UnmarshalCSV(headerReader{Reader: csv.NewReader(r), columns: columns}, out)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil
	}
	return err
}

// writeRecords replaces path with the encoded records in one atomic rename.
func writeRecords(path string, records any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	data, err := gocsv.MarshalBytes(records)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	return nil
}

// headerReader rewrites the header row to the canonical column spelling so
// "url", " Url " and a BOM-prefixed "URL" all match the `csv:"URL"` tag.
type headerReader struct {
	*csv.Reader
	columns []string
}

func (h headerReader) ReadAll() ([][]string, error) {
	rows, err := h.Reader.ReadAll()
	if err != nil || len(rows) == 0 {
		return rows, err
	}
	for i, cell := range rows[0] {
		rows[0][i] = h.canonical(cell)
	}
	return rows, nil
}

func (h headerReader) canonical(cell string) string {
	name := strings.TrimSpace(strings.TrimPrefix(cell, utf8BOM))
	for _, c := range h.columns {
		if strings.EqualFold(name, c) {
			return c
		}
	}
	return name
}
