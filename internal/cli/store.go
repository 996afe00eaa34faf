package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outerwinnie/remembrar/internal/app"
	"github.com/outerwinnie/remembrar/internal/config"
	rerrors "github.com/outerwinnie/remembrar/internal/errors"
	"github.com/outerwinnie/remembrar/internal/logging"
	"github.com/outerwinnie/remembrar/internal/wire"
)

// StoreCmd returns the store command group.
func StoreCmd() *cobra.Command {
	storeCmd := &cobra.Command{
		Use:         "store",
		Short:       "Manage saved positions and bookmarks",
		Annotations: map[string]string{noCatalogAnnotation: "true"},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy positions and bookmarks between storage backends",
		Long: `Copy every saved position and bookmark from one backend to another.

Positions in the destination are overwritten; existing bookmarks are kept.`,
		Example: "  remembrar store migrate --from csv --to sqlite",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			if from == to {
				return fmt.Errorf("source and destination are both %s: %w", from, rerrors.ErrInvalidInput)
			}

			src, err := wire.StateStores(from)
			if err != nil {
				return err
			}
			dst, err := wire.StateStores(to)
			if err != nil {
				return err
			}

			ctx, _ := actionContext(cmd)
			report, err := app.CopyState(ctx, src, dst)
			if err != nil {
				return fmt.Errorf("failed to migrate %s to %s: %w", from, to, err)
			}

			logging.Info().
				Str("from", from).
				Str("to", to).
				Int("cursors", report.Cursors).
				Int("bookmarks", report.Bookmarks).
				Msg("store migrated")

			fmt.Printf("✓ Migrated %s → %s\n", from, to)
			fmt.Printf("  Positions: %d\n", report.Cursors)
			fmt.Printf("  Bookmarks: %d (%d already present)\n", report.Bookmarks, report.SkippedBookmarks)
			return nil
		},
	}
	migrateCmd.Flags().String("from", config.BackendCSV, "source backend (csv or sqlite)")
	migrateCmd.Flags().String("to", config.BackendSQLite, "destination backend (csv or sqlite)")

	storeCmd.AddCommand(migrateCmd)
	return storeCmd
}
