package navigation

import (
	"fmt"

	"github.com/outerwinnie/remembrar/internal/core/effects"
	rerrors "github.com/outerwinnie/remembrar/internal/errors"
)

// Action is a navigation intent.
type Action string

const (
	ActionOpen     Action = "open"
	ActionPrevious Action = "previous"
	ActionNext     Action = "next"
	ActionBookmark Action = "bookmark"
	ActionSeek     Action = "seek"
)

// Outcome describes what a plan did to the cursor.
type Outcome string

const (
	OutcomeOpened            Outcome = "opened"
	OutcomeMoved             Outcome = "moved"
	OutcomeAtBoundary        Outcome = "at_boundary"
	OutcomeBookmarked        Outcome = "bookmarked"
	OutcomeAlreadyBookmarked Outcome = "already_bookmarked"
)

// PlanInput contains pre-fetched data for a navigation step.
type PlanInput struct {
	CursorKey         string
	Position          int
	Size              int
	Action            Action
	Target            int    // seek only
	AlreadyBookmarked bool   // bookmark only
	BookmarkURL       string // bookmark only; the form to persist
}

// Plan is the next cursor state plus the effects needed to persist it.
type Plan struct {
	Position int
	Outcome  Outcome
	Effects  []effects.Effect
}

// GeneratePlan computes the next state for an action.
// This is a pure function - all input data must be pre-fetched.
// Positions outside [1, Size] are rejected rather than repaired.
func GeneratePlan(in PlanInput) (Plan, error) {
	if in.Size < 1 {
		return Plan{}, fmt.Errorf("catalog size %d: %w", in.Size, rerrors.ErrInvalidInput)
	}
	if in.Position < 1 || in.Position > in.Size {
		return Plan{}, rerrors.NewLookupError(in.Position, in.Size)
	}

	switch in.Action {
	case ActionOpen:
		return Plan{Position: in.Position, Outcome: OutcomeOpened}, nil

	case ActionPrevious:
		guard := CanMovePrevious(MoveContext{Position: in.Position, Size: in.Size})
		if !guard.Allowed {
			return boundaryPlan(in, guard), nil
		}
		return movePlan(in.CursorKey, in.Position-1), nil

	case ActionNext:
		guard := CanMoveNext(MoveContext{Position: in.Position, Size: in.Size})
		if !guard.Allowed {
			return boundaryPlan(in, guard), nil
		}
		return movePlan(in.CursorKey, in.Position+1), nil

	case ActionSeek:
		if err := CanSeek(SeekContext{Target: in.Target, Size: in.Size}).Error(); err != nil {
			return Plan{}, fmt.Errorf("%w: %w", rerrors.ErrInvalidInput, err)
		}
		return movePlan(in.CursorKey, in.Target), nil

	case ActionBookmark:
		guard := CanBookmark(BookmarkContext{Position: in.Position, AlreadyBookmarked: in.AlreadyBookmarked})
		if !guard.Allowed {
			return Plan{Position: in.Position, Outcome: OutcomeAlreadyBookmarked}, nil
		}
		return Plan{
			Position: in.Position,
			Outcome:  OutcomeBookmarked,
			Effects: []effects.Effect{
				effects.PersistEffect{
					Entity:    effects.EntityBookmark,
					Operation: effects.OpInsert,
					Data:      effects.BookmarkData{Position: in.Position, URL: in.BookmarkURL},
				},
				cursorEffect(in.CursorKey, in.Position),
			},
		}, nil

	default:
		return Plan{}, fmt.Errorf("unknown action %q: %w", in.Action, rerrors.ErrInvalidInput)
	}
}

// movePlan confirms or changes the cursor.
func movePlan(key string, pos int) Plan {
	return Plan{
		Position: pos,
		Outcome:  OutcomeMoved,
		Effects:  []effects.Effect{cursorEffect(key, pos)},
	}
}

// boundaryPlan keeps the cursor in place but still saves it, like any other button press.
func boundaryPlan(in PlanInput, guard GuardResult) Plan {
	return Plan{
		Position: in.Position,
		Outcome:  OutcomeAtBoundary,
		Effects: []effects.Effect{
			effects.LogEffect{
				Level:   "debug",
				Message: guard.Reason,
				Fields:  map[string]any{"cursor": in.CursorKey, "position": in.Position, "action": string(in.Action)},
			},
			cursorEffect(in.CursorKey, in.Position),
		},
	}
}

func cursorEffect(key string, pos int) effects.PersistEffect {
	return effects.PersistEffect{
		Entity:    effects.EntityCursor,
		Operation: effects.OpUpsert,
		Data:      effects.CursorData{Key: key, Position: pos},
	}
}
