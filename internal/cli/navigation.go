package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cliadapter "github.com/outerwinnie/remembrar/internal/adapters/cli"
	rerrors "github.com/outerwinnie/remembrar/internal/errors"
	"github.com/outerwinnie/remembrar/internal/wire"
)

// OpenCmd returns the open command.
func OpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Show the video you are on",
		Long:  "Show your current video. A user seen for the first time starts at video 1; nothing is saved.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID := actionContext(cmd)
			adapter, err := navigationAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Open(ctx, userID)
			return err
		},
	}
}

// NextCmd returns the next command.
func NextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Move to the next video",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID := actionContext(cmd)
			adapter, err := navigationAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Next(ctx, userID)
			return err
		},
	}
}

// PrevCmd returns the prev command.
func PrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "prev",
		Aliases: []string{"previous", "back"},
		Short:   "Move to the previous video",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID := actionContext(cmd)
			adapter, err := navigationAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Previous(ctx, userID)
			return err
		},
	}
}

// BookmarkCmd returns the bookmark command.
func BookmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"save"},
		Short:   "Bookmark the video you are on",
		Long:    "Bookmark your current video. Bookmarks are shared by all users; bookmarking a video twice keeps one record.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, userID := actionContext(cmd)
			adapter, err := navigationAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Bookmark(ctx, userID)
			return err
		},
	}
}

// SeekCmd returns the seek command.
func SeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seek <position>",
		Short: "Jump to a video by position (admins only by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			ctx, userID := actionContext(cmd)
			adapter, err := navigationAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Seek(ctx, userID, position)
			return err
		},
	}
}

// BookmarksCmd returns the bookmarks command.
func BookmarksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmarks",
		Short: "List all bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := actionContext(cmd)
			adapter, err := navigationAdapter()
			if err != nil {
				return err
			}
			_, err = adapter.Bookmarks(ctx)
			return err
		},
	}
}

// CatalogCmd returns the catalog command.
func CatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show how many videos the catalog holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := navigationAdapter()
			if err != nil {
				return err
			}
			ctx, _ := actionContext(cmd)
			adapter.Catalog(ctx)
			return nil
		},
	}
}

// navigationAdapter surfaces wiring failures, such as an unreadable
// catalog, as a command error.
func navigationAdapter() (*cliadapter.NavigationAdapter, error) {
	if err := wire.Init(); err != nil {
		return nil, err
	}
	return wire.NavigationAdapter(), nil
}

func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("position must be a number, got %q: %w", arg, rerrors.ErrInvalidInput)
	}
	return position, nil
}
