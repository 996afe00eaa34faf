// Package cli implements the remembrar cobra commands.
package cli

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/outerwinnie/remembrar/internal/config"
	"github.com/outerwinnie/remembrar/internal/ctxutil"
	"github.com/outerwinnie/remembrar/internal/logging"
	"github.com/outerwinnie/remembrar/internal/wire"
)

// noCatalogAnnotation marks a command (and its subcommands) that runs
// without loading the catalog.
const noCatalogAnnotation = "remembrar/no-catalog"

// AddGlobalFlags registers the flags every command accepts.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "config file (default .remembrar.yaml in . or $HOME)")
	cmd.PersistentFlags().StringP("user", "u", "", "user whose cursor to use (default $REMEMBRAR_USER, then $USER)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}

// Setup loads configuration, configures logging and wiring, and stores the
// acting user in the command context. It runs before every command.
func Setup(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	userFlag, _ := cmd.Flags().GetString("user")

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	validate := cfg.Validate
	if !usesCatalog(cmd) {
		validate = cfg.ValidateStorage
	}
	if err := validate(); err != nil {
		return err
	}

	logging.Configure(&logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	wire.Configure(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxutil.WithUserID(ctx, resolveUser(userFlag))
	cmd.SetContext(ctx)

	if cfg.ConfigFile != "" {
		logging.Debug().Str("file", cfg.ConfigFile).Msg("config loaded")
	}
	return nil
}

// usesCatalog reports whether cmd or any parent needs the catalog.
func usesCatalog(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[noCatalogAnnotation]; ok {
			return false
		}
	}
	return true
}

// Execute runs the command tree. Database handles opened by the command
// are released whether or not it succeeds.
func Execute(ctx context.Context, root *cobra.Command) error {
	defer func() {
		if err := wire.Close(); err != nil {
			logging.Warn().Err(err).Msg("failed to close storage")
		}
	}()
	return root.ExecuteContext(ctx)
}

// resolveUser picks the acting user: flag, then REMEMBRAR_USER, then USER.
func resolveUser(flag string) string {
	for _, candidate := range []string{flag, os.Getenv("REMEMBRAR_USER"), os.Getenv("USER")} {
		if c := strings.TrimSpace(candidate); c != "" {
			return c
		}
	}
	return "local"
}

// actionContext tags a single front-end action with a request ID and the user.
func actionContext(cmd *cobra.Command) (context.Context, string) {
	ctx := cmd.Context()
	userID := ctxutil.UserFromContext(ctx)
	ctx = logging.WithRequestID(ctx, uuid.NewString())
	ctx = logging.WithField(ctx, "user_id", userID)
	return ctx, userID
}
