package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/outerwinnie/remembrar/internal/adapters/tui"
	"github.com/outerwinnie/remembrar/internal/ctxutil"
	"github.com/outerwinnie/remembrar/internal/logging"
	"github.com/outerwinnie/remembrar/internal/wire"
)

// TVCmd returns the tv command.
func TVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tv",
		Short: "Browse the catalog full screen",
		Long: `Open a full-screen player-style view of your current video.

Keys: ←/h back, →/l next, b bookmark, q quit. Every key press saves your position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Init(); err != nil {
				return err
			}

			ctx := cmd.Context()
			userID := ctxutil.UserFromContext(ctx)

			// Logs would draw over the alternate screen.
			logger := logging.Default().Level(zerolog.Disabled)
			ctx = logging.WithLogger(ctx, &logger)

			return tui.Run(ctx, wire.NavigationService(), userID)
		},
	}
}
