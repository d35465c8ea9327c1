package palette

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Dark       bool
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Orbit      lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeDark = Theme{
		Name:       "dark",
		Dark:       true,
		Primary:    lipgloss.Color("#60a5fa"),
		Secondary:  lipgloss.Color("#a855f7"),
		Accent:     lipgloss.Color("#ec4899"),
		Background: lipgloss.Color("#1e1b4b"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#9ca3af"),
		Orbit:      lipgloss.Color("#444444"),
		Warning:    lipgloss.Color("#fde047"),
		Error:      lipgloss.Color("#ff4757"),
	}

	ThemeLight = Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#2563eb"),
		Secondary:  lipgloss.Color("#7c3aed"),
		Accent:     lipgloss.Color("#db2777"),
		Background: lipgloss.Color("#e0e7ff"),
		Text:       lipgloss.Color("#1f2937"),
		Muted:      lipgloss.Color("#4b5563"),
		Orbit:      lipgloss.Color("#9ca3af"),
		Warning:    lipgloss.Color("#b45309"),
		Error:      lipgloss.Color("#dc2626"),
	}

	// All available themes
	Themes = []Theme{ThemeDark, ThemeLight}
)

// ThemeByName returns a theme by name, falling back to dark.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// Toggle flips between dark and light.
func (t Theme) Toggle() Theme {
	if t.Dark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
