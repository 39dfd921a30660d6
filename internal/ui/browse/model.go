// Package browse is a terminal view over a loaded note collection.
package browse

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/sheaf/pkg/core"
)

// EmptyText is shown when nothing is loaded.
const EmptyText = "No data to display."

// Navigator is what the browser needs from the service.
type Navigator interface {
	Next()
	Previous()
	Current() (core.Note, bool)
	Save(ctx context.Context) error
	Store() *core.Store
}

// SavedMsg reports the outcome of a save.
type SavedMsg struct {
	Err error
}

// Model is the Bubble Tea model of the browser.
type Model struct {
	nav    Navigator
	status string
	err    error
	width  int
}

// New creates a browser over nav.
func New(nav Navigator) Model {
	return Model{nav: nav}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case SavedMsg:
		if msg.Err != nil {
			m.status, m.err = "", msg.Err
		} else {
			m.status, m.err = "Saved "+core.ExportFileName, nil
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", "right", "l":
			m.nav.Next()
			m.status = ""
		case "p", "left", "h":
			m.nav.Previous()
			m.status = ""
		case "s":
			return m, m.save()
		}
	}
	return m, nil
}

func (m Model) save() tea.Cmd {
	nav := m.nav
	return func() tea.Msg {
		return SavedMsg{Err: nav.Save(context.Background())}
	}
}

func (m Model) View() string {
	note, ok := m.nav.Current()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			paneStyle.Render(mutedStyle.Render(EmptyText)),
			m.footer(),
		)
	}

	pane := paneStyle
	if m.width > 4 {
		pane = pane.Width(m.width - 2)
	}

	store := m.nav.Store()
	cursor, _ := store.Cursor()
	header := titleStyle.Render("Title: "+note.Title) + "  " +
		mutedStyle.Render(fmt.Sprintf("%d/%d", cursor+1, store.Len()))

	body := note.Content
	if len(note.Tags) > 0 {
		body += "\n\n" + mutedStyle.Render("Tags: "+strings.Join(note.Tags, ", "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, pane.Render(body), m.footer())
}

func (m Model) footer() string {
	store := m.nav.Store()
	var keys []string
	if store.HasPrevious() {
		keys = append(keys, "p/← previous")
	}
	if store.HasNext() {
		keys = append(keys, "n/→ next")
	}
	keys = append(keys, "s save", "q quit")
	help := mutedStyle.Render(strings.Join(keys, " • "))

	switch {
	case m.err != nil:
		return help + "\n" + errorStyle.Render("Error: "+m.err.Error())
	case m.status != "":
		return help + "\n" + statusStyle.Render(m.status)
	}
	return help
}
