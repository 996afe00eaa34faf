// Package navigation contains the pure business logic for moving a cursor through the catalog.
// Guards are pure functions that evaluate preconditions without side effects.
package navigation

import (
	"fmt"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// MoveContext provides context for previous/next guards.
type MoveContext struct {
	Position int
	Size     int
}

// BookmarkContext provides context for the bookmark guard.
type BookmarkContext struct {
	Position          int
	AlreadyBookmarked bool
}

// SeekContext provides context for the seek guard.
type SeekContext struct {
	Target int
	Size   int
}

// CanMovePrevious evaluates whether the cursor can step back.
// Rules:
// - Position must be greater than 1
func CanMovePrevious(ctx MoveContext) GuardResult {
	if ctx.Position <= 1 {
		return GuardResult{
			Allowed: false,
			Reason:  "already at the first video",
		}
	}

	return GuardResult{Allowed: true}
}

// CanMoveNext evaluates whether the cursor can step forward.
// Rules:
// - Position must be less than the catalog size
func CanMoveNext(ctx MoveContext) GuardResult {
	if ctx.Position >= ctx.Size {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("already at the last video (%d)", ctx.Size),
		}
	}

	return GuardResult{Allowed: true}
}

// CanBookmark evaluates whether a bookmark should be written.
// Rules:
// - Position must not already be bookmarked
func CanBookmark(ctx BookmarkContext) GuardResult {
	if ctx.AlreadyBookmarked {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("video %d is already bookmarked", ctx.Position),
		}
	}

	return GuardResult{Allowed: true}
}

// CanSeek evaluates whether the cursor can jump to Target.
// Rules:
// - Target must be in [1, Size]
func CanSeek(ctx SeekContext) GuardResult {
	if ctx.Target < 1 || ctx.Target > ctx.Size {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("position %d outside catalog range [1, %d]", ctx.Target, ctx.Size),
		}
	}

	return GuardResult{Allowed: true}
}
