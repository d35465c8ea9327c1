package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ptable/internal/catalog"
	"github.com/san-kum/ptable/internal/palette"
)

// cardInner fits a shortened display name: eight runes plus "...".
const (
	cardInner  = 11
	cardWidth  = cardInner + 2
	cardHeight = 6
)

// renderCard draws one element tile. The focused card gets a thick border
// in the gradient's end colour.
func renderCard(e catalog.Element, focused bool, t palette.Theme) string {
	grad := palette.GradientFor(e.Category, e.Radioactive())
	color := palette.ElementColor(e.Category, e.Radioactive())

	number := fmt.Sprintf("%-*d", cardInner-len(e.Block), e.AtomicNumber) + e.Block
	mass := e.AtomicMass
	if e.Radioactive() {
		mass = "☢ " + mass
	}
	mass = fit(mass, cardInner)

	center := lipgloss.NewStyle().Width(cardInner).Align(lipgloss.Center)
	symbol := lipgloss.NewStyle().Bold(true).Foreground(color)
	muted := lipgloss.NewStyle().Foreground(t.Muted)

	body := lipgloss.JoinVertical(lipgloss.Left,
		muted.Render(number),
		center.Render(symbol.Render(e.Symbol)),
		center.Render(lipgloss.NewStyle().Foreground(t.Text).Render(fit(e.DisplayName(), cardInner))),
		center.Render(muted.Render(mass)),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(grad.From).
		Width(cardInner)
	if focused {
		box = box.Border(lipgloss.ThickBorder()).BorderForeground(grad.To)
	}
	return box.Render(body)
}

// fit drops trailing runes until s is at most width cells wide, so a card
// line never wraps.
func fit(s string, width int) string {
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width {
		r = r[:len(r)-1]
	}
	return string(r)
}
