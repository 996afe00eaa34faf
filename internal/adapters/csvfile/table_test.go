package csvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords_CanonicalizesHeader(t *testing.T) {
	src := "\ufeff userid ,CURRENTID\n42,3\n"

	var rows []*cursorRow
	require.NoError(t, decodeRecords(strings.NewReader(src), cursorColumns, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "42", rows[0].UserID)
	assert.Equal(t, 3, rows[0].CurrentID)
}

func TestDecodeRecords_MissingColumnFails(t *testing.T) {
	var rows []*cursorRow
	err := decodeRecords(strings.NewReader("UserId\n42\n"), cursorColumns, &rows)
	assert.Error(t, err)
}

func TestDecodeRecords_EmptyInput(t *testing.T) {
	var rows []*bookmarkRow
	require.NoError(t, decodeRecords(strings.NewReader(""), bookmarkColumns, &rows))
	assert.Empty(t, rows)
}

func TestWriteRecords_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "bookmarks.csv")

	require.NoError(t, writeRecords(path, []*bookmarkRow{{Position: 1, URL: "u1"}}))
	require.NoError(t, writeRecords(path, []*bookmarkRow{{Position: 1, URL: "u1"}, {Position: 4, URL: "u4"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Position,Url\n1,u1\n4,u4\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
