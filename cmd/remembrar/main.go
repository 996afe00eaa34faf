package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/outerwinnie/remembrar/internal/cli"
	"github.com/outerwinnie/remembrar/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "remembrar",
		Short:   "remembrar - remember where you are in a video list",
		Version: version.String(),
		Long: `remembrar walks a fixed list of videos one at a time.
It remembers each user's position between sessions and keeps a shared list of bookmarks.`,
		SilenceUsage:      true,
		PersistentPreRunE: cli.Setup,
	}
	cli.AddGlobalFlags(rootCmd)

	// Navigation
	rootCmd.AddCommand(cli.OpenCmd())
	rootCmd.AddCommand(cli.NextCmd())
	rootCmd.AddCommand(cli.PrevCmd())
	rootCmd.AddCommand(cli.BookmarkCmd())
	rootCmd.AddCommand(cli.SeekCmd())
	rootCmd.AddCommand(cli.BookmarksCmd())
	rootCmd.AddCommand(cli.CatalogCmd())
	rootCmd.AddCommand(cli.TVCmd())

	// Maintenance
	rootCmd.AddCommand(cli.StoreCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
