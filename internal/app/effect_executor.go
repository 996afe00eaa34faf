// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/outerwinnie/remembrar/internal/core/effects"
	rerrors "github.com/outerwinnie/remembrar/internal/errors"
	"github.com/outerwinnie/remembrar/internal/logging"
	"github.com/outerwinnie/remembrar/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the only place navigation I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor against the state repositories.
type DefaultEffectExecutor struct {
	cursorRepo   secondary.CursorRepository
	bookmarkRepo secondary.BookmarkRepository
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(cursorRepo secondary.CursorRepository, bookmarkRepo secondary.BookmarkRepository) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		cursorRepo:   cursorRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

// Execute processes effects in sequence and stops at the first failure.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.PersistEffect:
		return e.executePersist(ctx, typed)
	case effects.LogEffect:
		level, err := zerolog.ParseLevel(typed.Level)
		if err != nil || typed.Level == "" {
			level = zerolog.InfoLevel
		}
		logging.FromContext(ctx).WithLevel(level).Fields(typed.Fields).Msg(typed.Message)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect) error {
	switch eff.Entity {
	case effects.EntityCursor:
		return e.executeCursorOp(ctx, eff)
	case effects.EntityBookmark:
		return e.executeBookmarkOp(ctx, eff)
	default:
		return fmt.Errorf("unknown entity: %s", eff.Entity)
	}
}

func (e *DefaultEffectExecutor) executeCursorOp(ctx context.Context, eff effects.PersistEffect) error {
	if eff.Operation != effects.OpUpsert {
		return fmt.Errorf("unknown cursor operation: %s", eff.Operation)
	}
	data, ok := eff.Data.(effects.CursorData)
	if !ok {
		return fmt.Errorf("invalid cursor data type: %T", eff.Data)
	}

	if err := e.cursorRepo.SetPosition(ctx, data.Key, data.Position); err != nil {
		return asPersistError(effects.EntityCursor, err)
	}
	return nil
}

func (e *DefaultEffectExecutor) executeBookmarkOp(ctx context.Context, eff effects.PersistEffect) error {
	if eff.Operation != effects.OpInsert {
		return fmt.Errorf("unknown bookmark operation: %s", eff.Operation)
	}
	data, ok := eff.Data.(effects.BookmarkData)
	if !ok {
		return fmt.Errorf("invalid bookmark data type: %T", eff.Data)
	}

	created, err := e.bookmarkRepo.Add(ctx, data.Position, data.URL)
	if err != nil {
		return asPersistError(effects.EntityBookmark, err)
	}
	if !created {
		return rerrors.ErrAlreadyBookmarked
	}
	return nil
}

// asPersistError makes sure repository failures carry the PersistError category.
func asPersistError(store string, err error) error {
	if rerrors.IsPersist(err) {
		return err
	}
	return rerrors.NewPersistError(store, "write", err)
}
