package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ptable/internal/filter"
	"github.com/san-kum/ptable/internal/palette"
)

// headerLines is the height of everything above the grid.
const headerLines = 7

func (m Model) tableKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refilter()
		m.cursor, m.offset = 0, 0
		return m, cmd
	}

	cols := m.columns()
	switch msg.String() {
	case "q":
		m.host.Unmount()
		return m, tea.Quit
	case "/":
		return m, m.search.Focus()
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refilter()
		}
	case "c":
		m.filter = m.filter.Cycle(m.categories, 1)
		m.refilter()
		m.cursor, m.offset = 0, 0
	case "C":
		m.filter = m.filter.Cycle(m.categories, -1)
		m.refilter()
		m.cursor, m.offset = 0, 0
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case "down", "j":
		if m.cursor+cols < len(m.visible) {
			m.cursor += cols
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(0, len(m.visible)-1)
	case "enter", " ":
		if len(m.visible) == 0 {
			return m, nil
		}
		return m.open(m.visible[m.cursor])
	}
	m.scroll()
	return m, nil
}

func (m Model) columns() int {
	return max(1, (m.width-2)/cardWidth)
}

func (m Model) rowsFit() int {
	return max(1, (m.height-headerLines)/cardHeight)
}

// scroll keeps the cursor's row on screen.
func (m *Model) scroll() {
	row := m.cursor / m.columns()
	fit := m.rowsFit()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+fit {
		m.offset = row - fit + 1
	}
}

func (m Model) tableView() string {
	var b strings.Builder

	title := palette.GradientText("Periodic Table of Elements", m.theme.Primary, m.theme.Accent)
	b.WriteString("\n " + title + "  " + m.styles.Subtle.Render("theme: "+m.theme.Name) + "\n")
	b.WriteString(" " + palette.Separator(min(m.width-2, 60), m.theme) + "\n")
	b.WriteString(" " + m.search.View() + "\n")
	b.WriteString(" " + m.styles.Label.Render("category ") + m.styles.Pill.Render(filter.Label(m.filter.Category)) + "\n")
	b.WriteString(" " + m.styles.Subtle.Render(fmt.Sprintf("Found %d elements", len(m.visible))) + "\n\n")

	if len(m.visible) == 0 {
		b.WriteString("  " + m.styles.Warning.Render("No elements found matching your criteria.") + "\n")
		b.WriteString("  " + m.styles.KeyHint.Render("esc clear search  c next category") + "\n")
		return b.String()
	}

	b.WriteString(m.grid())
	b.WriteString("\n " + m.styles.KeyHint.Render("←↓↑→ move  enter open  / search  c/C category  t theme  q quit"))
	return b.String()
}

func (m Model) grid() string {
	cols := m.columns()
	first := m.offset * cols
	last := min(len(m.visible), first+m.rowsFit()*cols)

	var rows []string
	for start := first; start < last; start += cols {
		end := min(start+cols, last)
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(m.visible[i], i == m.cursor, m.theme))
		}
		rows = append(rows, lipgloss.NewStyle().MarginLeft(1).Render(lipgloss.JoinHorizontal(lipgloss.Top, cards...)))
	}
	return strings.Join(rows, "\n")
}
