// Package wire provides dependency injection for remembrar.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/outerwinnie/remembrar/internal/adapters/auth"
	cliadapter "github.com/outerwinnie/remembrar/internal/adapters/cli"
	"github.com/outerwinnie/remembrar/internal/adapters/csvfile"
	"github.com/outerwinnie/remembrar/internal/adapters/sqlite"
	"github.com/outerwinnie/remembrar/internal/app"
	"github.com/outerwinnie/remembrar/internal/config"
	"github.com/outerwinnie/remembrar/internal/core/display"
	"github.com/outerwinnie/remembrar/internal/db"
	"github.com/outerwinnie/remembrar/internal/logging"
	"github.com/outerwinnie/remembrar/internal/ports/primary"
)

var (
	cfg               *config.Config
	navigationService primary.NavigationService
	initErr           error
	once              sync.Once

	dbMu      sync.Mutex
	databases = map[string]*sql.DB{}
)

// Configure sets the configuration used by the first service request.
// It must be called before any other function in this package.
func Configure(c *config.Config) {
	cfg = c
}

// Init builds the services and reports any failure, such as a catalog that
// cannot be loaded. Later calls return the same result.
func Init() error {
	once.Do(initServices)
	return initErr
}

// NavigationService returns the singleton NavigationService instance.
func NavigationService() primary.NavigationService {
	if err := Init(); err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize services")
	}
	return navigationService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		initErr = fmt.Errorf("wire: Configure was not called")
		return
	}

	// Catalog is loaded exactly once per process
	cat, err := csvfile.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		initErr = err
		return
	}

	stores, err := StateStores(cfg.StorageBackend)
	if err != nil {
		initErr = err
		return
	}

	executor := app.NewEffectExecutor(stores.Cursors, stores.Bookmarks)

	navigationService = app.NewNavigationService(
		cat,
		stores.Cursors,
		stores.Bookmarks,
		auth.NewAllowList(cfg.Admins, cfg.Privileged),
		display.NewHostRewriter(cfg.SourceHost, cfg.TargetHost),
		executor,
		app.NavigationOptions{
			CursorScope:     app.CursorScope(cfg.CursorScope),
			BookmarkURLForm: app.BookmarkURLForm(cfg.BookmarkURLForm),
		},
	)

	logging.Debug().
		Str("catalog", cat.Source()).
		Int("videos", cat.Len()).
		Str("backend", cfg.StorageBackend).
		Msg("services initialized")
}

// StateStores returns the cursor and bookmark repositories of a backend.
// SQLite handles are shared per path and released by Close.
func StateStores(backend string) (app.StateStores, error) {
	if cfg == nil {
		return app.StateStores{}, fmt.Errorf("wire: Configure was not called")
	}

	switch backend {
	case config.BackendCSV:
		return app.StateStores{
			Cursors:   csvfile.NewCursorRepository(cfg.CursorPath),
			Bookmarks: csvfile.NewBookmarkRepository(cfg.BookmarkPath),
		}, nil
	case config.BackendSQLite:
		database, err := openDB(cfg.SQLitePath)
		if err != nil {
			return app.StateStores{}, err
		}
		return app.StateStores{
			Cursors:   sqlite.NewCursorRepository(database),
			Bookmarks: sqlite.NewBookmarkRepository(database),
		}, nil
	default:
		return app.StateStores{}, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func openDB(path string) (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if database, ok := databases[path]; ok {
		return database, nil
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	databases[path] = database
	return database, nil
}

// Close releases any open database handles.
func Close() error {
	dbMu.Lock()
	defer dbMu.Unlock()

	var firstErr error
	for path, database := range databases {
		if err := database.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(databases, path)
	}
	return firstErr
}

// NavigationAdapter returns a new NavigationAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func NavigationAdapter() *cliadapter.NavigationAdapter {
	return NavigationAdapterWithOutput(os.Stdout)
}

// NavigationAdapterWithOutput returns a new NavigationAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func NavigationAdapterWithOutput(out io.Writer) *cliadapter.NavigationAdapter {
	return cliadapter.NewNavigationAdapter(NavigationService(), out)
}
