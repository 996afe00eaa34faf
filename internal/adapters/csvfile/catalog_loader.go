package csvfile

import (
	"io"
	"os"

	"github.com/outerwinnie/remembrar/internal/core/catalog"
	rerrors "github.com/outerwinnie/remembrar/internal/errors"
)

// URLColumn is the header of the catalog column holding video links.
const URLColumn = "URL"

// catalogRow is one catalog line. Other columns are ignored.
type catalogRow struct {
	URL string `csv:"URL"`
}

// LoadCatalog reads a catalog file. Any failure is a LoadError and no
// catalog is returned.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rerrors.NewLoadError(path, "unreadable", err)
	}
	defer f.Close()

	return ReadCatalog(f, path)
}

// ReadCatalog decodes a catalog from r. The header must contain a URL
// column. Rows become positions 1..N in order.
func ReadCatalog(r io.Reader, source string) (*catalog.Catalog, error) {
	var rows []*catalogRow
	if err := decodeRecords(r, []string{URLColumn}, &rows); err != nil {
		return nil, rerrors.NewLoadError(source, "malformed catalog", err)
	}

	urls := make([]string, len(rows))
	for i, row := range rows {
		urls[i] = row.URL
	}
	return catalog.New(source, urls)
}
