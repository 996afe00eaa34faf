package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	rerrors "github.com/outerwinnie/remembrar/internal/errors"
)

func newBookmarkRepo(t *testing.T) *BookmarkRepository {
	t.Helper()
	return NewBookmarkRepository(filepath.Join(t.TempDir(), "bookmarks.csv"))
}

func TestBookmarkRepository_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newBookmarkRepo(t)

	exists, err := repo.Exists(ctx, 3)
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := repo.Add(ctx, 3, "https://www.youtube.com/watch?v=3")
	require.NoError(t, err)
	assert.True(t, created)

	before, err := os.ReadFile(repo.Path())
	require.NoError(t, err)

	created, err = repo.Add(ctx, 3, "https://other")
	require.NoError(t, err)
	assert.False(t, created)

	after, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	exists, err = repo.Exists(ctx, 3)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBookmarkRepository_ListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := newBookmarkRepo(t)

	for _, pos := range []int{5, 1, 3} {
		_, err := repo.Add(ctx, pos, "u")
		require.NoError(t, err)
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Position)
	assert.Equal(t, 3, records[1].Position)
	assert.Equal(t, 5, records[2].Position)

	data, _ := os.ReadFile(repo.Path())
	assert.Equal(t, "Position,Url\n1,u\n3,u\n5,u\n", string(data))
}

func TestBookmarkRepository_UnreadableFile(t *testing.T) {
	ctx := context.Background()
	repo := newBookmarkRepo(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte("Id,Link,Extra\n1,u,x\n"), 0644))

	_, err := repo.Exists(ctx, 1)
	assert.True(t, rerrors.IsPersist(err))

	_, err = repo.Add(ctx, 2, "u")
	assert.True(t, rerrors.IsPersist(err))
}

func TestBookmarkRepository_ConcurrentAddCreatesOnce(t *testing.T) {
	ctx := context.Background()
	repo := newBookmarkRepo(t)

	var createdCount atomic.Int32
	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			created, err := repo.Add(ctx, 7, "u7")
			if created {
				createdCount.Add(1)
			}
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), createdCount.Load())
	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
