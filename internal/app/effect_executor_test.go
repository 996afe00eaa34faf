package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/outerwinnie/remembrar/internal/core/effects"
	rerrors "github.com/outerwinnie/remembrar/internal/errors"
	"github.com/outerwinnie/remembrar/internal/logging"
)

func TestEffectExecutor_CursorUpsert(t *testing.T) {
	cursors := newMockCursorRepository()
	executor := NewEffectExecutor(cursors, newMockBookmarkRepository())

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.PersistEffect{Entity: effects.EntityCursor, Operation: effects.OpUpsert, Data: effects.CursorData{Key: "u1", Position: 4}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pos, _ := cursors.position("u1"); pos != 4 {
		t.Errorf("expected position 4, got %d", pos)
	}
}

func TestEffectExecutor_BookmarkInsertIfAbsent(t *testing.T) {
	bookmarks := newMockBookmarkRepository()
	executor := NewEffectExecutor(newMockCursorRepository(), bookmarks)
	eff := effects.PersistEffect{Entity: effects.EntityBookmark, Operation: effects.OpInsert, Data: effects.BookmarkData{Position: 2, URL: "u2"}}

	if err := executor.Execute(context.Background(), []effects.Effect{eff}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := executor.Execute(context.Background(), []effects.Effect{eff})
	if !errors.Is(err, rerrors.ErrAlreadyBookmarked) {
		t.Errorf("expected ErrAlreadyBookmarked, got %v", err)
	}
}

func TestEffectExecutor_StopsAtFirstFailure(t *testing.T) {
	cursors := newMockCursorRepository()
	bookmarks := newMockBookmarkRepository()
	bookmarks.addErr = errors.New("disk full")
	executor := NewEffectExecutor(cursors, bookmarks)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.PersistEffect{Entity: effects.EntityBookmark, Operation: effects.OpInsert, Data: effects.BookmarkData{Position: 1, URL: "u1"}},
		effects.PersistEffect{Entity: effects.EntityCursor, Operation: effects.OpUpsert, Data: effects.CursorData{Key: "u1", Position: 1}},
	})
	if !rerrors.IsPersist(err) {
		t.Fatalf("expected persist error, got %v", err)
	}
	if cursors.writes != 0 {
		t.Error("cursor write must not run after a failed bookmark insert")
	}
}

func TestEffectExecutor_LogUsesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Format: "json", Output: &buf})
	ctx := logging.WithLogger(context.Background(), &logger)

	executor := NewEffectExecutor(newMockCursorRepository(), newMockBookmarkRepository())
	err := executor.Execute(ctx, []effects.Effect{
		effects.LogEffect{Level: "debug", Message: "already at the first video", Fields: map[string]any{"position": 1}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "already at the first video") {
		t.Errorf("expected log line, got %q", buf.String())
	}
}

func TestEffectExecutor_Rejects(t *testing.T) {
	executor := NewEffectExecutor(newMockCursorRepository(), newMockBookmarkRepository())

	tests := []struct {
		name string
		eff  effects.Effect
	}{
		{"unknown entity", effects.PersistEffect{Entity: "playlist", Operation: effects.OpUpsert}},
		{"wrong cursor op", effects.PersistEffect{Entity: effects.EntityCursor, Operation: effects.OpInsert, Data: effects.CursorData{}}},
		{"wrong cursor data", effects.PersistEffect{Entity: effects.EntityCursor, Operation: effects.OpUpsert, Data: effects.BookmarkData{}}},
		{"wrong bookmark data", effects.PersistEffect{Entity: effects.EntityBookmark, Operation: effects.OpInsert, Data: "u1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := executor.Execute(context.Background(), []effects.Effect{tt.eff}); err == nil {
				t.Error("expected error")
			}
		})
	}
}
