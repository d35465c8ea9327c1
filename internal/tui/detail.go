package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ptable/internal/catalog"
	"github.com/san-kum/ptable/internal/palette"
)

const panelWidth = 44

func (m Model) detailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q":
		return m.back()
	case "n", "right", "l":
		return m.step(1)
	case "p", "left", "h":
		return m.step(-1)
	case "+", "=":
		m.host.Zoom(true)
	case "-", "_":
		m.host.Zoom(false)
	}
	return m, nil
}

// step replaces the shown element with its neighbour in atomic order.
func (m Model) step(offset int) (Model, tea.Cmd) {
	e, err := m.cat.Neighbour(m.selected.AtomicNumber, offset)
	if err != nil {
		m.log.Warn("no neighbour", "element", m.selected.Symbol, "err", err)
		return m, nil
	}
	for i, v := range m.visible {
		if v.AtomicNumber == e.AtomicNumber {
			m.cursor = i
		}
	}
	return m.open(e)
}

func (m Model) detailView() string {
	e := m.selected
	grad := palette.GradientFor(e.Category, e.Radioactive())

	label := m.styles.Label.Render(fmt.Sprintf("#%d", e.AtomicNumber))
	if e.Radioactive() {
		label += " " + m.styles.Warning.Render("☢")
	}
	atom := lipgloss.JoinVertical(lipgloss.Left, m.host.View(), label)

	name := palette.GradientText(e.Name, grad.From, grad.To)
	header := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(name)+"  "+m.styles.Subtle.Render(e.Symbol),
		lipgloss.NewStyle().Foreground(palette.ElementColor(e.Category, e.Radioactive())).Render(e.DisplayCategory()),
		"",
		palette.BoxWithTitle("Properties", m.facts(e), panelWidth, m.theme),
		palette.BoxWithTitle("Electron Configuration", m.styles.Value.Render(e.ElectronConfiguration), panelWidth, m.theme),
	)

	top := lipgloss.JoinHorizontal(lipgloss.Top, atom, "  ", header)

	sections := []string{
		top,
		palette.BoxWithTitle("Uses", m.uses(e), panelWidth*2-8, m.theme),
		palette.BoxWithTitle("Discovery", m.discovery(e), panelWidth*2-8, m.theme),
		palette.BoxWithTitle("Common Reactions", m.reactions(e), panelWidth*2-8, m.theme),
		m.styles.KeyHint.Render("esc back  n/p next/previous  +/- zoom  t theme  ctrl+d debug"),
	}
	return lipgloss.NewStyle().Margin(1, 1, 0, 1).Render(strings.Join(sections, "\n"))
}

func (m Model) facts(e catalog.Element) string {
	rows := [][2]string{
		{"Atomic Mass", e.AtomicMass},
		{"Block", e.Block},
		{"Group", e.DisplayGroup()},
		{"Period", fmt.Sprint(e.Period)},
		{"State", e.State},
		{"Category", e.Category},
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = m.styles.Label.Render(fmt.Sprintf("%-12s", r[0])) + m.styles.Value.Render(r[1])
	}
	return strings.Join(lines, "\n")
}

func (m Model) uses(e catalog.Element) string {
	if len(e.Uses) == 0 {
		return m.styles.Subtle.Render("No common uses recorded.")
	}
	lines := make([]string, len(e.Uses))
	for i, u := range e.Uses {
		lines[i] = m.styles.Text.Render("• " + u)
	}
	return strings.Join(lines, "\n")
}

func (m Model) discovery(e catalog.Element) string {
	by := e.DiscoveredBy
	if by == "" {
		by = "Unknown"
	}
	return m.styles.Label.Render(fmt.Sprintf("%-12s", "Year")) + m.styles.Value.Render(catalog.FormatYear(e.YearDiscovered)) + "\n" +
		m.styles.Label.Render(fmt.Sprintf("%-12s", "By")) + m.styles.Value.Render(by)
}

func (m Model) reactions(e catalog.Element) string {
	rs := catalog.Reactions(e)
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		lines = append(lines, m.styles.Value.Render(r.Equation)+"  "+m.styles.Subtle.Render(r.Description))
	}
	return strings.Join(lines, "\n")
}
