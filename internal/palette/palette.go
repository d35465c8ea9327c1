// Package palette maps element categories to colours and holds the
// lipgloss themes and style helpers shared by the cards, the detail view
// and the orbit visualizer.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Radioactive is the pseudo-category used for the radioactive override.
const Radioactive = "radioactive"

var (
	Fallback          = lipgloss.Color("#999999")
	RadioactiveColor  = lipgloss.Color("#ffcc00")
	ElectronColor     = lipgloss.Color("#00ffff")
	FallbackGradient  = Gradient{From: lipgloss.Color("#9ca3af"), To: lipgloss.Color("#4b5563")}
	RadioactiveShades = Gradient{From: lipgloss.Color("#facc15"), To: lipgloss.Color("#f97316")}
)

// Gradient is a two-stop colour ramp.
type Gradient struct {
	From, To lipgloss.Color
}

type entry struct {
	color    lipgloss.Color
	gradient Gradient
}

var categories = map[string]entry{
	"alkali metal":          {"#ff55cc", Gradient{"#ec4899", "#a855f7"}},
	"alkaline earth metal":  {"#9966ff", Gradient{"#a855f7", "#6366f1"}},
	"transition metal":      {"#3399ff", Gradient{"#3b82f6", "#06b6d4"}},
	"post-transition metal": {"#33cccc", Gradient{"#06b6d4", "#14b8a6"}},
	"metalloid":             {"#33cc99", Gradient{"#14b8a6", "#22c55e"}},
	"nonmetal":              {"#66dd44", Gradient{"#22c55e", "#84cc16"}},
	"noble gas":             {"#ffaa33", Gradient{"#f59e0b", "#f97316"}},
	"lanthanide":            {"#ff7733", Gradient{"#f97316", "#ef4444"}},
	"actinide":              {"#ff4433", Gradient{"#ef4444", "#f43f5e"}},
	"halogen":               {"#bb33ff", Gradient{"#8b5cf6", "#a855f7"}},
}

func key(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// Known reports whether the category has its own colour.
func Known(category string) bool {
	_, ok := categories[key(category)]
	return ok
}

// CategoryColor returns the category's colour, or Fallback when unmapped.
func CategoryColor(category string) lipgloss.Color {
	if key(category) == Radioactive {
		return RadioactiveColor
	}
	if e, ok := categories[key(category)]; ok {
		return e.color
	}
	return Fallback
}

// ElementColor applies the radioactive override before the category lookup.
func ElementColor(category string, radioactive bool) lipgloss.Color {
	if radioactive {
		return RadioactiveColor
	}
	return CategoryColor(category)
}

// GradientFor returns the card/header ramp for an element.
func GradientFor(category string, radioactive bool) Gradient {
	if radioactive || key(category) == Radioactive {
		return RadioactiveShades
	}
	if e, ok := categories[key(category)]; ok {
		return e.gradient
	}
	return FallbackGradient
}

// Categories lists the mapped categories in a stable order.
func Categories() []string {
	return []string{
		"alkali metal", "alkaline earth metal", "transition metal",
		"post-transition metal", "metalloid", "nonmetal", "halogen",
		"noble gas", "lanthanide", "actinide",
	}
}
