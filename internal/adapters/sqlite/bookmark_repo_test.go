package sqlite_test

import (
	"context"
	"testing"

	"github.com/outerwinnie/remembrar/internal/adapters/sqlite"
)

func TestBookmarkRepository_Add(t *testing.T) {
	repo := sqlite.NewBookmarkRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Add(ctx, 3, "https://www.youtube.com/watch?v=3")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !created {
		t.Error("expected first Add to create")
	}

	created, err = repo.Add(ctx, 3, "https://elsewhere")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created {
		t.Error("expected second Add to be a no-op")
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(records))
	}
	if records[0].URL != "https://www.youtube.com/watch?v=3" {
		t.Errorf("URL = %q, first insert must win", records[0].URL)
	}
}

func TestBookmarkRepository_Exists(t *testing.T) {
	repo := sqlite.NewBookmarkRepository(setupTestDB(t))
	ctx := context.Background()

	exists, err := repo.Exists(ctx, 1)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected no bookmark yet")
	}

	if _, err := repo.Add(ctx, 1, "u1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	exists, err = repo.Exists(ctx, 1)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected bookmark to exist")
	}
}

func TestBookmarkRepository_ListOrdered(t *testing.T) {
	repo := sqlite.NewBookmarkRepository(setupTestDB(t))
	ctx := context.Background()

	for _, pos := range []int{9, 2, 5} {
		if _, err := repo.Add(ctx, pos, "u"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []int{2, 5, 9}
	for i, rec := range records {
		if rec.Position != want[i] {
			t.Errorf("records[%d].Position = %d, want %d", i, rec.Position, want[i])
		}
	}
}
