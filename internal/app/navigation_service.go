package app

import (
	"context"
	"fmt"

	"github.com/outerwinnie/remembrar/internal/core/catalog"
	"github.com/outerwinnie/remembrar/internal/core/display"
	"github.com/outerwinnie/remembrar/internal/core/effects"
	"github.com/outerwinnie/remembrar/internal/core/navigation"
	rerrors "github.com/outerwinnie/remembrar/internal/errors"
	"github.com/outerwinnie/remembrar/internal/logging"
	"github.com/outerwinnie/remembrar/internal/ports/primary"
	"github.com/outerwinnie/remembrar/internal/ports/secondary"
)

// CursorScope selects whether each user has a cursor or everyone shares one.
type CursorScope string

const (
	ScopeUser   CursorScope = "user"
	ScopeGlobal CursorScope = "global"
)

// GlobalCursorKey is the single cursor key used with ScopeGlobal.
const GlobalCursorKey = "global"

// BookmarkURLForm selects which URL a bookmark persists.
type BookmarkURLForm string

const (
	// URLFormCanonical stores the catalog URL and rewrites on display.
	URLFormCanonical BookmarkURLForm = "canonical"
	// URLFormDisplay stores the already-rewritten URL.
	URLFormDisplay BookmarkURLForm = "display"
)

// NavigationOptions holds the named behavior switches of the service.
type NavigationOptions struct {
	CursorScope     CursorScope
	BookmarkURLForm BookmarkURLForm
}

// NavigationServiceImpl implements the NavigationService interface.
// It is safe for concurrent use: the catalog is immutable and the
// repositories serialize their own writes.
type NavigationServiceImpl struct {
	catalog      *catalog.Catalog
	cursorRepo   secondary.CursorRepository
	bookmarkRepo secondary.BookmarkRepository
	authorizer   secondary.Authorizer
	rewriter     display.HostRewriter
	executor     EffectExecutor
	opts         NavigationOptions
}

// NewNavigationService creates a new NavigationService with injected dependencies.
// A nil authorizer allows every action.
func NewNavigationService(
	cat *catalog.Catalog,
	cursorRepo secondary.CursorRepository,
	bookmarkRepo secondary.BookmarkRepository,
	authorizer secondary.Authorizer,
	rewriter display.HostRewriter,
	executor EffectExecutor,
	opts NavigationOptions,
) *NavigationServiceImpl {
	if opts.CursorScope == "" {
		opts.CursorScope = ScopeUser
	}
	if opts.BookmarkURLForm == "" {
		opts.BookmarkURLForm = URLFormCanonical
	}
	return &NavigationServiceImpl{
		catalog:      cat,
		cursorRepo:   cursorRepo,
		bookmarkRepo: bookmarkRepo,
		authorizer:   authorizer,
		rewriter:     rewriter,
		executor:     executor,
		opts:         opts,
	}
}

// OpenForUser returns the user's current entry. Nothing is written: a
// record is only created by the first navigation or bookmark.
func (s *NavigationServiceImpl) OpenForUser(ctx context.Context, userID string) (*primary.ResolvedEntry, error) {
	if err := s.authorize(ctx, userID, navigation.ActionOpen); err != nil {
		return nil, err
	}

	key := s.cursorKey(userID)
	plan, err := navigation.GeneratePlan(navigation.PlanInput{
		CursorKey: key,
		Position:  s.currentPosition(ctx, key),
		Size:      s.catalog.Len(),
		Action:    navigation.ActionOpen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to plan open: %w", err)
	}

	return s.resolve(plan.Position)
}

// Navigate moves the user's cursor one step. At either end of the catalog
// the cursor stays put and is saved anyway.
func (s *NavigationServiceImpl) Navigate(ctx context.Context, userID string, dir primary.Direction) (*primary.NavigationResponse, error) {
	var action navigation.Action
	switch dir {
	case primary.DirectionPrevious:
		action = navigation.ActionPrevious
	case primary.DirectionNext:
		action = navigation.ActionNext
	default:
		return nil, fmt.Errorf("unknown direction %q: %w", dir, rerrors.ErrInvalidInput)
	}

	return s.move(ctx, userID, navigation.PlanInput{Action: action})
}

// Seek jumps the user's cursor to position.
func (s *NavigationServiceImpl) Seek(ctx context.Context, userID string, position int) (*primary.NavigationResponse, error) {
	return s.move(ctx, userID, navigation.PlanInput{Action: navigation.ActionSeek, Target: position})
}

func (s *NavigationServiceImpl) move(ctx context.Context, userID string, in navigation.PlanInput) (*primary.NavigationResponse, error) {
	if err := s.authorize(ctx, userID, in.Action); err != nil {
		return nil, err
	}

	in.CursorKey = s.cursorKey(userID)
	in.Position = s.currentPosition(ctx, in.CursorKey)
	in.Size = s.catalog.Len()

	plan, err := navigation.GeneratePlan(in)
	if err != nil {
		return nil, fmt.Errorf("failed to plan %s: %w", in.Action, err)
	}

	entry, err := s.resolve(plan.Position)
	if err != nil {
		return nil, err
	}

	saved, err := s.apply(ctx, userID, plan)
	if err != nil {
		return nil, err
	}

	return &primary.NavigationResponse{
		Entry:      entry,
		AtBoundary: plan.Outcome == navigation.OutcomeAtBoundary,
		Saved:      saved,
	}, nil
}

// Bookmark saves the user's current entry catalog-wide. A second bookmark
// of the same position writes nothing and reports AlreadyBookmarked.
func (s *NavigationServiceImpl) Bookmark(ctx context.Context, userID string) (*primary.BookmarkResponse, error) {
	if err := s.authorize(ctx, userID, navigation.ActionBookmark); err != nil {
		return nil, err
	}

	key := s.cursorKey(userID)
	pos := s.currentPosition(ctx, key)

	current, err := s.catalog.Entry(pos)
	if err != nil {
		return nil, fmt.Errorf("internal invariant violated: %w", err)
	}

	url := current.URL
	if s.opts.BookmarkURLForm == URLFormDisplay {
		url = s.rewriter.Rewrite(url)
	}

	plan, err := navigation.GeneratePlan(navigation.PlanInput{
		CursorKey:         key,
		Position:          pos,
		Size:              s.catalog.Len(),
		Action:            navigation.ActionBookmark,
		AlreadyBookmarked: s.isBookmarked(ctx, pos),
		BookmarkURL:       url,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to plan bookmark: %w", err)
	}

	entry, err := s.resolve(plan.Position)
	if err != nil {
		return nil, err
	}

	resp := &primary.BookmarkResponse{
		Entry:             entry,
		AlreadyBookmarked: plan.Outcome == navigation.OutcomeAlreadyBookmarked,
		Saved:             true,
		CursorSaved:       true,
	}
	if resp.AlreadyBookmarked {
		return resp, nil
	}

	// The bookmark insert runs before the cursor upsert, so a failure in
	// the cursor store means the bookmark is already on record.
	err = s.executor.Execute(ctx, plan.Effects)
	var persistErr *rerrors.PersistError
	switch {
	case err == nil:
	case rerrors.Is(err, rerrors.ErrAlreadyBookmarked):
		// Another request bookmarked this position between our check and the insert.
		resp.AlreadyBookmarked = true
	case rerrors.As(err, &persistErr):
		s.logPersistFailure(ctx, userID, plan.Position, err)
		resp.CursorSaved = false
		if persistErr.Store != effects.EntityCursor {
			resp.Saved = false
		}
	default:
		return nil, err
	}

	return resp, nil
}

// ListBookmarks returns every bookmark with its display URL.
func (s *NavigationServiceImpl) ListBookmarks(ctx context.Context) ([]*primary.ResolvedEntry, error) {
	records, err := s.bookmarkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	entries := make([]*primary.ResolvedEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.ResolvedEntry{
			Position:   r.Position,
			DisplayURL: s.rewriter.Rewrite(r.URL),
		}
	}
	return entries, nil
}

// CatalogSize returns the number of catalog entries.
func (s *NavigationServiceImpl) CatalogSize() int {
	return s.catalog.Len()
}

// IsAuthorized reports whether userID may perform action.
func (s *NavigationServiceImpl) IsAuthorized(ctx context.Context, userID, action string) bool {
	if s.authorizer == nil {
		return true
	}
	return s.authorizer.IsAuthorized(ctx, userID, action)
}

// Helper methods

func (s *NavigationServiceImpl) authorize(ctx context.Context, userID string, action navigation.Action) error {
	if !s.IsAuthorized(ctx, userID, string(action)) {
		return fmt.Errorf("user %s may not %s: %w", userID, action, rerrors.ErrUnauthorized)
	}
	return nil
}

func (s *NavigationServiceImpl) cursorKey(userID string) string {
	if s.opts.CursorScope == ScopeGlobal {
		return GlobalCursorKey
	}
	return userID
}

// currentPosition never fails: unreadable state falls back to 1 and a
// stored position beyond the catalog is pulled back into range.
func (s *NavigationServiceImpl) currentPosition(ctx context.Context, key string) int {
	pos, found, err := s.cursorRepo.GetPosition(ctx, key)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("cursor", key).
			Msg("cursor store unreadable, starting at 1")
		return 1
	}
	if !found {
		return 1
	}
	if !s.catalog.Contains(pos) {
		clamped := s.catalog.Clamp(pos)
		logging.FromContext(ctx).Warn().
			Str("cursor", key).
			Int("stored", pos).
			Int("clamped", clamped).
			Msg("stored position outside catalog")
		return clamped
	}
	return pos
}

// isBookmarked never fails: an unreadable store counts as no bookmarks.
func (s *NavigationServiceImpl) isBookmarked(ctx context.Context, pos int) bool {
	exists, err := s.bookmarkRepo.Exists(ctx, pos)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Int("position", pos).
			Msg("bookmark store unreadable")
		return false
	}
	return exists
}

// apply executes plan effects. Persist failures are logged and reported
// through the returned flag; anything else is a bug and is returned.
func (s *NavigationServiceImpl) apply(ctx context.Context, userID string, plan navigation.Plan) (bool, error) {
	err := s.executor.Execute(ctx, plan.Effects)
	if err == nil {
		return true, nil
	}
	if rerrors.IsPersist(err) {
		s.logPersistFailure(ctx, userID, plan.Position, err)
		return false, nil
	}
	return false, err
}

func (s *NavigationServiceImpl) logPersistFailure(ctx context.Context, userID string, pos int, err error) {
	logging.FromContext(ctx).Error().
		Err(err).
		Str("user_id", userID).
		Int("position", pos).
		Msg("state not saved")
}

// resolve maps a position to its display entry. A lookup failure here means
// a guard let a bad position through.
func (s *NavigationServiceImpl) resolve(pos int) (*primary.ResolvedEntry, error) {
	e, err := s.catalog.Entry(pos)
	if err != nil {
		return nil, fmt.Errorf("internal invariant violated: %w", err)
	}
	return &primary.ResolvedEntry{
		Position:   e.Position,
		DisplayURL: s.rewriter.Rewrite(e.URL),
	}, nil
}

// Ensure NavigationServiceImpl implements the interface.
var _ primary.NavigationService = (*NavigationServiceImpl)(nil)
