package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/outerwinnie/remembrar/internal/ports/primary"
)

// NavigationAdapter is a thin adapter that translates CLI operations to NavigationService calls.
// It depends only on the NavigationService interface, enabling easy testing with mocks.
type NavigationAdapter struct {
	service primary.NavigationService
	out     io.Writer
}

// NewNavigationAdapter creates a new NavigationAdapter with the given service.
func NewNavigationAdapter(service primary.NavigationService, out io.Writer) *NavigationAdapter {
	return &NavigationAdapter{
		service: service,
		out:     out,
	}
}

// Open shows the user's current video.
func (a *NavigationAdapter) Open(ctx context.Context, userID string) (*primary.ResolvedEntry, error) {
	entry, err := a.service.OpenForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to open: %w", err)
	}

	a.printEntry(entry)
	return entry, nil
}

// Next moves forward one video.
func (a *NavigationAdapter) Next(ctx context.Context, userID string) (*primary.NavigationResponse, error) {
	return a.navigate(ctx, userID, primary.DirectionNext)
}

// Previous moves back one video.
func (a *NavigationAdapter) Previous(ctx context.Context, userID string) (*primary.NavigationResponse, error) {
	return a.navigate(ctx, userID, primary.DirectionPrevious)
}

func (a *NavigationAdapter) navigate(ctx context.Context, userID string, dir primary.Direction) (*primary.NavigationResponse, error) {
	resp, err := a.service.Navigate(ctx, userID, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to move %s: %w", dir, err)
	}

	a.printMove(resp)
	return resp, nil
}

// Seek jumps to a position.
func (a *NavigationAdapter) Seek(ctx context.Context, userID string, position int) (*primary.NavigationResponse, error) {
	resp, err := a.service.Seek(ctx, userID, position)
	if err != nil {
		return nil, fmt.Errorf("failed to seek: %w", err)
	}

	a.printMove(resp)
	return resp, nil
}

// Bookmark saves the user's current video.
func (a *NavigationAdapter) Bookmark(ctx context.Context, userID string) (*primary.BookmarkResponse, error) {
	resp, err := a.service.Bookmark(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to bookmark: %w", err)
	}

	a.printEntry(resp.Entry)
	switch {
	case !resp.Saved:
		fmt.Fprintf(a.out, "%s bookmark not saved\n", color.New(color.FgRed).Sprint("✗"))
	case resp.AlreadyBookmarked:
		fmt.Fprintf(a.out, "%s Video %d is already bookmarked\n", color.New(color.FgYellow).Sprint("!"), resp.Entry.Position)
	default:
		fmt.Fprintf(a.out, "✓ Bookmarked video %d\n", resp.Entry.Position)
	}
	if resp.Saved && !resp.CursorSaved {
		fmt.Fprintf(a.out, "%s position not saved\n", color.New(color.FgRed).Sprint("✗"))
	}
	return resp, nil
}

// Bookmarks lists every bookmark.
func (a *NavigationAdapter) Bookmarks(ctx context.Context) ([]*primary.ResolvedEntry, error) {
	entries, err := a.service.ListBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No bookmarks yet.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Bookmark the video you are on:")
		fmt.Fprintln(a.out, "  remembrar bookmark")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "VIDEO\tURL")
	fmt.Fprintln(w, "-----\t---")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\n", e.Position, e.DisplayURL)
	}
	w.Flush()

	return entries, nil
}

// Catalog prints the catalog size.
func (a *NavigationAdapter) Catalog(ctx context.Context) int {
	n := a.service.CatalogSize()
	fmt.Fprintf(a.out, "Catalog: %d videos\n", n)
	return n
}

func (a *NavigationAdapter) printMove(resp *primary.NavigationResponse) {
	a.printEntry(resp.Entry)
	if resp.AtBoundary {
		fmt.Fprintf(a.out, "%s no more videos in that direction\n", color.New(color.FgYellow).Sprint("!"))
	}
	if !resp.Saved {
		fmt.Fprintf(a.out, "%s position not saved\n", color.New(color.FgRed).Sprint("✗"))
	}
}

func (a *NavigationAdapter) printEntry(entry *primary.ResolvedEntry) {
	fmt.Fprintf(a.out, "%s\n%s\n", color.New(color.Bold).Sprintf("Video %d:", entry.Position), entry.DisplayURL)
}
