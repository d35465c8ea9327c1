package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from one theme.
type Styles struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Subtle  lipgloss.Style
	KeyHint lipgloss.Style
	Panel   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Pill    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Text:    lipgloss.NewStyle().Foreground(t.Text),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Label:   lipgloss.NewStyle().Foreground(t.Muted),
		Value:   lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Pill:    lipgloss.NewStyle().Foreground(t.Primary).Padding(0, 2),
	}
}

// GradientText colours each rune by interpolating between two hex colours.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// Spinner returns frame of animated spinner
func Spinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	if frame < 0 {
		frame = -frame
	}
	return spinners[frame%len(spinners)]
}

// BoxWithTitle renders a titled panel.
func BoxWithTitle(title, content string, width int, t Theme) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(t.Muted).
		Width(width).
		Padding(0, 1)

	fill := width - lipgloss.Width(title) - 3
	if fill < 0 {
		fill = 0
	}
	border := lipgloss.NewStyle().Foreground(t.Muted)
	header := border.Render("╭─ ") + titleStyle.Render(title) + border.Render(" "+strings.Repeat("─", fill)+"╮")
	return header + "\n" + box.Render(content)
}

// Separator is a decorative rule.
func Separator(width int, t Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

// Blend mixes fg over bg at the given opacity, clamped to [0, 1].
func Blend(fg, bg lipgloss.Color, alpha float64) lipgloss.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	fr, fg2, fb := parseHex(string(fg))
	br, bg2, bb := parseHex(string(bg))
	mix := func(f, b int) int { return int(math.Round(alpha*float64(f) + (1-alpha)*float64(b))) }
	return lipgloss.Color(hexColor(mix(fr, br), mix(fg2, bg2), mix(fb, bb)))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 255, 255, 255
	}
	return r, g, b
}

func hexColor(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
