package orbit

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ptable/internal/palette"
)

// Badge is the static presentation used when the 3D path is unavailable:
// the element symbol on a category-coloured block. It has no frame loop.
type Badge struct {
	Symbol   string
	Color    lipgloss.Color
	Gradient palette.Gradient
	Cols     int
	Rows     int
}

func NewBadge(subject Subject, cols, rows int) *Badge {
	return &Badge{
		Symbol:   subject.Symbol,
		Color:    subject.Color(),
		Gradient: palette.GradientFor(subject.Category, subject.Radioactive()),
		Cols:     cols,
		Rows:     rows,
	}
}

// Render draws the badge to fill cols x rows cells.
func (b *Badge) Render(theme palette.Theme) string {
	w, h := b.Cols-2, b.Rows-2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	symbol := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Render(b.Symbol)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.Gradient.To).
		Background(b.Color).
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(symbol)
}
