// Package tui is a terminal front-end for catalog navigation: one screen
// showing the current video with back, next and bookmark buttons.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/outerwinnie/remembrar/internal/logging"
	"github.com/outerwinnie/remembrar/internal/ports/primary"
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusWarn
	statusError
)

// entryMsg carries the result of a service call back into Update.
type entryMsg struct {
	entry  *primary.ResolvedEntry
	status string
	kind   statusKind
}

type errMsg struct{ err error }

// Model represents the navigation screen state.
type Model struct {
	ctx     context.Context
	service primary.NavigationService
	userID  string
	keys    keyMap
	help    help.Model

	entry  *primary.ResolvedEntry
	status string
	kind   statusKind
	width  int
}

// NewModel creates a model for userID. ctx carries the base logger.
func NewModel(ctx context.Context, service primary.NavigationService, userID string) Model {
	return Model{
		ctx:     ctx,
		service: service,
		userID:  userID,
		keys:    keys,
		help:    help.New(),
	}
}

// Entry returns the entry currently on screen.
func (m Model) Entry() *primary.ResolvedEntry {
	return m.entry
}

func (m Model) Init() tea.Cmd {
	return m.open()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Previous):
			return m, m.navigate(primary.DirectionPrevious)
		case key.Matches(msg, m.keys.Next):
			return m, m.navigate(primary.DirectionNext)
		case key.Matches(msg, m.keys.Bookmark):
			return m, m.bookmark()
		}

	case entryMsg:
		m.entry = msg.entry
		m.status = msg.status
		m.kind = msg.kind

	case errMsg:
		m.status = msg.err.Error()
		m.kind = statusError
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("remembrar · %d videos", m.service.CatalogSize())))
	b.WriteString("\n")

	if m.entry == nil {
		b.WriteString("Loading...")
	} else {
		b.WriteString(positionStyle.Render(fmt.Sprintf("Video %d:", m.entry.Position)))
		b.WriteString("\n")
		b.WriteString(urlStyle.Render(m.entry.DisplayURL))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render("⬅️ Back"),
		buttonStyle.Render("➡️ Next"),
		buttonStyle.Render("💾 Save"),
	))

	if m.status != "" {
		b.WriteString("\n")
		switch m.kind {
		case statusWarn:
			b.WriteString(warnStyle.Render(m.status))
		case statusError:
			b.WriteString(errorStyle.Render(m.status))
		default:
			b.WriteString(statusStyle.Render(m.status))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return appStyle.Render(b.String())
}

// requestContext tags one key press for the logs.
func (m Model) requestContext() context.Context {
	ctx := logging.WithRequestID(m.ctx, uuid.NewString())
	return logging.WithField(ctx, "user_id", m.userID)
}

func (m Model) open() tea.Cmd {
	ctx := m.requestContext()
	return func() tea.Msg {
		entry, err := m.service.OpenForUser(ctx, m.userID)
		if err != nil {
			return errMsg{err}
		}
		return entryMsg{entry: entry}
	}
}

func (m Model) navigate(dir primary.Direction) tea.Cmd {
	ctx := m.requestContext()
	return func() tea.Msg {
		resp, err := m.service.Navigate(ctx, m.userID, dir)
		if err != nil {
			return errMsg{err}
		}
		msg := entryMsg{entry: resp.Entry}
		switch {
		case !resp.Saved:
			msg.status, msg.kind = "Position not saved", statusError
		case resp.AtBoundary:
			msg.status, msg.kind = "No more videos that way", statusWarn
		}
		return msg
	}
}

func (m Model) bookmark() tea.Cmd {
	ctx := m.requestContext()
	return func() tea.Msg {
		resp, err := m.service.Bookmark(ctx, m.userID)
		if err != nil {
			return errMsg{err}
		}
		msg := entryMsg{entry: resp.Entry}
		switch {
		case !resp.Saved:
			msg.status, msg.kind = "Bookmark not saved", statusError
		case resp.AlreadyBookmarked:
			msg.status, msg.kind = fmt.Sprintf("Video %d is already bookmarked", resp.Entry.Position), statusWarn
		case !resp.CursorSaved:
			msg.status, msg.kind = fmt.Sprintf("Bookmarked video %d, position not saved", resp.Entry.Position), statusWarn
		default:
			msg.status, msg.kind = fmt.Sprintf("Bookmarked video %d", resp.Entry.Position), statusInfo
		}
		return msg
	}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, service primary.NavigationService, userID string) error {
	p := tea.NewProgram(NewModel(ctx, service, userID), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}
