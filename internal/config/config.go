// Package config loads remembrar settings from .env files, the environment
// and an optional .remembrar.yaml, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/outerwinnie/remembrar/internal/core/display"
	rerrors "github.com/outerwinnie/remembrar/internal/errors"
)

// Storage backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Cursor scopes.
const (
	ScopeUser   = "user"
	ScopeGlobal = "global"
)

// Bookmark URL forms.
const (
	URLFormCanonical = "canonical"
	URLFormDisplay   = "display"
)

// Config is the flat remembrar configuration.
type Config struct {
	CatalogPath string

	StorageBackend string
	CursorPath     string
	BookmarkPath   string
	SQLitePath     string

	SourceHost string
	TargetHost string

	CursorScope     string
	BookmarkURLForm string

	Admins     []string
	Privileged []string

	LogLevel  string
	LogFormat string

	// ConfigFile is the config file actually read, empty if none.
	ConfigFile string
}

// envBindings maps config keys to the environment variables that may set them.
// The unprefixed names are the ones existing bot deployments set.
var envBindings = map[string][]string{
	"catalog_path":          {"REMEMBRAR_CATALOG", "YOUTUBE_CSV"},
	"storage.backend":       {"REMEMBRAR_STORAGE"},
	"storage.cursor_path":   {"REMEMBRAR_CURSOR_FILE", "VIDEO_PROGRESS"},
	"storage.bookmark_path": {"REMEMBRAR_BOOKMARK_FILE", "VIDEO_BOOKMARKS"},
	"storage.sqlite_path":   {"REMEMBRAR_DB"},
	"display.source_host":   {"REMEMBRAR_SOURCE_HOST"},
	"display.target_host":   {"REMEMBRAR_TARGET_HOST"},
	"cursor.scope":          {"REMEMBRAR_CURSOR_SCOPE"},
	"bookmarks.url_form":    {"REMEMBRAR_BOOKMARK_URL_FORM"},
	"auth.admins":           {"REMEMBRAR_ADMINS"},
	"auth.privileged":       {"REMEMBRAR_PRIVILEGED"},
	"log.level":             {"LOG_LEVEL"},
	"log.format":            {"LOG_FORMAT"},
}

// Load reads configuration. configFile may be empty, in which case
// .remembrar.yaml is searched for in the working directory and home.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()
	return loadWith(viper.New(), configFile)
}

func loadWith(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(".remembrar")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		CatalogPath:     v.GetString("catalog_path"),
		StorageBackend:  strings.ToLower(v.GetString("storage.backend")),
		CursorPath:      v.GetString("storage.cursor_path"),
		BookmarkPath:    v.GetString("storage.bookmark_path"),
		SQLitePath:      v.GetString("storage.sqlite_path"),
		SourceHost:      v.GetString("display.source_host"),
		TargetHost:      v.GetString("display.target_host"),
		CursorScope:     strings.ToLower(v.GetString("cursor.scope")),
		BookmarkURLForm: strings.ToLower(v.GetString("bookmarks.url_form")),
		Admins:          stringList(v, "auth.admins"),
		Privileged:      stringList(v, "auth.privileged"),
		LogLevel:        v.GetString("log.level"),
		LogFormat:       v.GetString("log.format"),
		ConfigFile:      v.ConfigFileUsed(),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendCSV)
	v.SetDefault("storage.cursor_path", "video_progress.csv")
	v.SetDefault("storage.bookmark_path", "video_bookmarks.csv")
	v.SetDefault("storage.sqlite_path", "remembrar.db")
	v.SetDefault("display.source_host", display.DefaultSourceHost)
	v.SetDefault("display.target_host", display.DefaultTargetHost)
	v.SetDefault("cursor.scope", ScopeUser)
	v.SetDefault("bookmarks.url_form", URLFormCanonical)
	v.SetDefault("auth.privileged", []string{"seek"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")
}

// Validate checks required values and enumerations, including the catalog path.
func (c *Config) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog path is required (set REMEMBRAR_CATALOG or catalog_path): %w", rerrors.ErrInvalidInput)
	}
	return c.ValidateStorage()
}

// ValidateStorage checks the storage and navigation settings without
// requiring a catalog. Commands that never read the catalog use it.
func (c *Config) ValidateStorage() error {
	switch c.StorageBackend {
	case BackendCSV:
		if c.CursorPath == "" || c.BookmarkPath == "" {
			return fmt.Errorf("csv storage needs cursor and bookmark paths: %w", rerrors.ErrInvalidInput)
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite storage needs a database path: %w", rerrors.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s): %w", c.StorageBackend, BackendCSV, BackendSQLite, rerrors.ErrInvalidInput)
	}

	if c.CursorScope != ScopeUser && c.CursorScope != ScopeGlobal {
		return fmt.Errorf("unknown cursor scope %q (want %s or %s): %w", c.CursorScope, ScopeUser, ScopeGlobal, rerrors.ErrInvalidInput)
	}
	if c.BookmarkURLForm != URLFormCanonical && c.BookmarkURLForm != URLFormDisplay {
		return fmt.Errorf("unknown bookmark url form %q (want %s or %s): %w", c.BookmarkURLForm, URLFormCanonical, URLFormDisplay, rerrors.ErrInvalidInput)
	}

	return nil
}

// loadEnvFiles loads .env then .env.local. godotenv never overrides
// variables that are already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// stringList reads a list that may come from YAML or from a
// comma-separated environment variable.
func stringList(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
