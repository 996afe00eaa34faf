package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError(t *testing.T) {
	err := NewLoadError("videos.csv", "missing URL column", nil)

	assert.Equal(t, "load catalog videos.csv: missing URL column", err.Error())
	assert.True(t, IsLoad(err))
	assert.False(t, IsPersist(err))

	wrapped := fmt.Errorf("startup: %w", NewLoadError("videos.csv", "unreadable", fs.ErrNotExist))
	assert.True(t, IsLoad(wrapped))
	assert.True(t, Is(wrapped, fs.ErrNotExist))
}

func TestPersistError(t *testing.T) {
	err := NewPersistError("cursor", "write", fs.ErrPermission)

	assert.Equal(t, "cursor store write: permission denied", err.Error())
	assert.True(t, IsPersist(err))
	assert.True(t, Is(err, fs.ErrPermission))

	var pe *PersistError
	assert.True(t, As(fmt.Errorf("wrapped: %w", err), &pe))
	assert.Equal(t, "cursor", pe.Store)
}

func TestLookupError(t *testing.T) {
	err := NewLookupError(4, 3)

	assert.Equal(t, "position 4 outside catalog range [1, 3]", err.Error())
	assert.True(t, IsLookup(err))
	assert.False(t, IsLoad(err))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(fmt.Errorf("seek: %w", ErrUnauthorized)))
	assert.False(t, IsUnauthorized(ErrInvalidInput))
}
