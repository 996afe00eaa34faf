package app

import (
	"context"
	"sort"
	"sync"

	"github.com/outerwinnie/remembrar/internal/core/catalog"
	"github.com/outerwinnie/remembrar/internal/core/display"
	"github.com/outerwinnie/remembrar/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.CursorRepository   = (*mockCursorRepository)(nil)
	_ secondary.BookmarkRepository = (*mockBookmarkRepository)(nil)
	_ secondary.Authorizer         = (*mockAuthorizer)(nil)
)

// mockCursorRepository implements secondary.CursorRepository for testing.
type mockCursorRepository struct {
	mu        sync.Mutex
	positions map[string]int
	writes    int
	getErr    error
	setErr    error
	listErr   error
}

func newMockCursorRepository() *mockCursorRepository {
	return &mockCursorRepository{positions: make(map[string]int)}
}

func (m *mockCursorRepository) GetPosition(ctx context.Context, key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return 0, false, m.getErr
	}
	pos, ok := m.positions[key]
	return pos, ok, nil
}

func (m *mockCursorRepository) SetPosition(ctx context.Context, key string, position int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.positions[key] = position
	m.writes++
	return nil
}

func (m *mockCursorRepository) List(ctx context.Context) ([]*secondary.CursorRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.CursorRecord
	for k, p := range m.positions {
		result = append(result, &secondary.CursorRecord{Key: k, Position: p})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func (m *mockCursorRepository) position(key string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pos, ok := m.positions[key]
	return pos, ok
}

// mockBookmarkRepository implements secondary.BookmarkRepository for testing.
type mockBookmarkRepository struct {
	mu        sync.Mutex
	urls      map[int]string
	adds      int
	existsErr error
	addErr    error
	listErr   error
	// hideExisting makes Exists report false so the insert path sees a race.
	hideExisting bool
}

func newMockBookmarkRepository() *mockBookmarkRepository {
	return &mockBookmarkRepository{urls: make(map[int]string)}
}

func (m *mockBookmarkRepository) Exists(ctx context.Context, position int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.existsErr != nil {
		return false, m.existsErr
	}
	if m.hideExisting {
		return false, nil
	}
	_, ok := m.urls[position]
	return ok, nil
}

func (m *mockBookmarkRepository) Add(ctx context.Context, position int, url string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return false, m.addErr
	}
	if _, ok := m.urls[position]; ok {
		return false, nil
	}
	m.urls[position] = url
	m.adds++
	return true, nil
}

func (m *mockBookmarkRepository) List(ctx context.Context) ([]*secondary.BookmarkRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.BookmarkRecord
	for p, u := range m.urls {
		result = append(result, &secondary.BookmarkRecord{Position: p, URL: u})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

// mockAuthorizer implements secondary.Authorizer for testing.
type mockAuthorizer struct {
	allowFn func(userID, action string) bool
}

func (m *mockAuthorizer) IsAuthorized(ctx context.Context, userID, action string) bool {
	if m.allowFn == nil {
		return true
	}
	return m.allowFn(userID, action)
}

func newTestCatalog(n int) *catalog.Catalog {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = "https://www.youtube.com/watch?v=" + string(rune('a'+i))
	}
	cat, err := catalog.New("test", urls)
	if err != nil {
		panic(err)
	}
	return cat
}

func newTestNavigationService(cat *catalog.Catalog, opts NavigationOptions) (*NavigationServiceImpl, *mockCursorRepository, *mockBookmarkRepository) {
	cursors := newMockCursorRepository()
	bookmarks := newMockBookmarkRepository()
	service := NewNavigationService(
		cat,
		cursors,
		bookmarks,
		nil,
		display.NewHostRewriter(display.DefaultSourceHost, display.DefaultTargetHost),
		NewEffectExecutor(cursors, bookmarks),
		opts,
	)
	return service, cursors, bookmarks
}
