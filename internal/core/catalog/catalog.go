// Package catalog holds the immutable, 1-indexed video catalog.
// It performs no I/O; sources decode rows and hand the URLs to New.
package catalog

import (
	"fmt"
	"strings"

	rerrors "github.com/outerwinnie/remembrar/internal/errors"
)

// Entry is a single catalog item. Positions start at 1.
type Entry struct {
	Position int
	URL      string
}

// Catalog is the ordered set of entries loaded at startup.
// It is never mutated after New returns, so it is safe for concurrent use.
type Catalog struct {
	source  string
	entries []Entry
}

// New builds a catalog from URLs in row order. An empty list or a blank
// URL is a LoadError; no partial catalog is returned.
func New(source string, urls []string) (*Catalog, error) {
	if len(urls) == 0 {
		return nil, rerrors.NewLoadError(source, "catalog has no entries", nil)
	}

	entries := make([]Entry, len(urls))
	for i, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			return nil, rerrors.NewLoadError(source, fmt.Sprintf("row %d has an empty URL", i+1), nil)
		}
		entries[i] = Entry{Position: i + 1, URL: u}
	}

	return &Catalog{source: source, entries: entries}, nil
}

// Source returns the name of the resource the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Len returns N, the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Contains reports whether pos is in [1, N].
func (c *Catalog) Contains(pos int) bool {
	return pos >= 1 && pos <= len(c.entries)
}

// Entry resolves a position. Callers must clamp first; an out-of-range
// position yields a LookupError.
func (c *Catalog) Entry(pos int) (Entry, error) {
	if !c.Contains(pos) {
		return Entry{}, rerrors.NewLookupError(pos, len(c.entries))
	}
	return c.entries[pos-1], nil
}

// Clamp pulls pos into [1, N]. Used for persisted positions written
// against a larger catalog.
func (c *Catalog) Clamp(pos int) int {
	if pos < 1 {
		return 1
	}
	if pos > len(c.entries) {
		return len(c.entries)
	}
	return pos
}
