// Package tui is an interactive browser for the analytics report:
// a section list on the left, the rendered section on the right.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gautham-gln/chatSummarizer/internal/report"
)

type model struct {
	sections []report.Section
	cursor   int
	detail   viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
	status   string
}

// Run starts the TUI over the precomputed report sections and blocks
// until the user quits. Enter copies the current section to the
// clipboard.
func Run(sections []report.Section) error {
	m := model{
		sections: sections,
		detail:   viewport.New(0, 0),
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.detail = viewport.New(m.detailWidth(), m.panelHeight())
		m.setDetail()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.setDetail()
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.sections)-1 {
				m.cursor++
				m.setDetail()
			}

		case key.Matches(msg, keys.Enter):
			m.status = m.copyCurrent()

		case key.Matches(msg, keys.DetailUp):
			m.detail.LineUp(m.panelHeight() / 2)

		case key.Matches(msg, keys.DetailDn):
			m.detail.LineDown(m.panelHeight() / 2)

		case key.Matches(msg, keys.PageUp):
			m.detail.LineUp(m.panelHeight())

		case key.Matches(msg, keys.PageDown):
			m.detail.LineDown(m.panelHeight())
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) setDetail() {
	if len(m.sections) == 0 {
		m.detail.SetContent("(no data)")
		return
	}
	s := m.sections[m.cursor]
	m.detail.SetContent(s.Body)
	m.detail.GotoTop()
	m.status = ""
}

// copyCurrent puts the current section's plain text on the clipboard
// and returns a status line for the status bar.
func (m model) copyCurrent() string {
	if len(m.sections) == 0 {
		return ""
	}
	s := m.sections[m.cursor]
	if err := clipboard.WriteAll(s.Title + "\n" + s.Body); err != nil {
		return "clipboard unavailable"
	}
	return fmt.Sprintf("copied %q", s.Title)
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	detailW := m.detailWidth()
	panelH := m.panelHeight()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.detail.Width = detailW
	m.detail.Height = panelH
	detailPanel := styleActiveBorder.
		Width(detailW).
		Height(panelH).
		Render(m.detail.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	return lipgloss.JoinVertical(lipgloss.Left, panels, m.statusBar())
}

func (m model) renderList(width, height int) string {
	var lines []string
	for i, s := range m.sections {
		if len(lines) >= height {
			break
		}
		title := s.Title
		if runewidth.StringWidth(title) > width-2 {
			title = runewidth.Truncate(title, width-2, "")
		}
		if i == m.cursor {
			lines = append(lines, styleListSelected.Render("> "+title))
		} else {
			lines = append(lines, styleListNormal.Render("  "+title))
		}
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func (m model) statusBar() string {
	parts := []string{"up/dn sections", "C-u/C-d scroll", "enter copy", "esc quit"}
	if m.status != "" {
		parts = append([]string{m.status}, parts...)
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	w := m.width*30/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) detailWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*70/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract status bar (1) + borders (2)
	h := m.height - 3
	if h < 5 {
		h = 5
	}
	return h
}
