// Package tui implements the interactive audit log browser behind
// `ward logs --interactive`.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hookward/ward/internal/audit"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
)

// Model is the main Bubble Tea model
type Model struct {
	mode    Mode
	entries []audit.Entry // newest last, displayed newest first
	cursor  int

	// Detail view
	detailViewport viewport.Model
	viewportReady  bool

	// Display dimensions
	width  int
	height int
}

// NewModel creates a browser over the given audit entries.
func NewModel(entries []audit.Entry) Model {
	return Model{
		mode:    ModeList,
		entries: entries,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// entry returns the entry under the cursor (display order: newest first).
func (m Model) entry() audit.Entry {
	return m.entries[len(m.entries)-1-m.cursor]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.viewportReady {
			m.detailViewport = viewport.New(msg.Width-6, msg.Height-8)
			m.viewportReady = true
		} else {
			m.detailViewport.Width = msg.Width - 6
			m.detailViewport.Height = msg.Height - 8
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeList:
			return m.updateList(msg)
		case ModeDetail:
			return m.updateDetail(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.entries) - 1
	case "enter":
		if len(m.entries) > 0 {
			m.mode = ModeDetail
			if m.viewportReady {
				m.detailViewport.SetContent(renderDetail(m.entry()))
				m.detailViewport.GotoTop()
			}
		}
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.mode = ModeList
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch m.mode {
	case ModeDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("ward audit log"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(MutedStyle.Render("No validation decisions recorded yet."))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("q quit"))
		return AppStyle.Render(b.String())
	}

	visible := m.visibleRows()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := start; i < end; i++ {
		e := m.entries[len(m.entries)-1-i]
		row := fmt.Sprintf("%s  %s  %-14s  %s", verdictBadge(e.Result), MutedStyle.Render(e.Timestamp), e.EventType, truncate(e.Data, m.width-45))
		if i == m.cursor {
			b.WriteString(RowSelectedStyle.Render("❯ " + row))
		} else {
			b.WriteString(RowStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("↑/↓ move • enter details • q quit"))
	return AppStyle.Render(b.String())
}

func (m Model) viewDetail() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("validation decision"))
	b.WriteString("\n")
	if m.viewportReady {
		b.WriteString(DetailStyle.Render(m.detailViewport.View()))
	} else {
		b.WriteString(DetailStyle.Render(renderDetail(m.entry())))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("esc back • q back • ctrl+c quit"))
	return AppStyle.Render(b.String())
}

// visibleRows is how many list rows fit in the current terminal height.
func (m Model) visibleRows() int {
	rows := m.height - 7
	if rows < 1 {
		return 10
	}
	return rows
}

func renderDetail(e audit.Entry) string {
	verdict := "allowed"
	if !e.Result {
		verdict = "blocked"
	}
	return fmt.Sprintf(
		"ID:        %s\nTime:      %s\nEvent:     %s\nVerdict:   %s\nMessage:   %s\n\n%s",
		e.ID, e.Timestamp, e.EventType, verdict, e.Message, e.Data,
	)
}

func verdictBadge(allowed bool) string {
	if allowed {
		return AllowStyle.Render("ALLOW")
	}
	return BlockStyle.Render("BLOCK")
}

func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
