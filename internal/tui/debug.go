package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/ptable/internal/palette"
)

// debugView shows renderer and session internals, toggled with ctrl+d.
func (m Model) debugView() string {
	rows := [][2]string{
		{"view", m.view.String()},
		{"theme", m.theme.Name},
		{"size", fmt.Sprintf("%dx%d", m.width, m.height)},
		{"filter", fmt.Sprintf("%q / %s", m.filter.Query, m.filter.Category)},
		{"visible", fmt.Sprint(len(m.visible))},
		{"stale frames", fmt.Sprint(m.stale)},
	}

	if s := m.host.Active(); s != nil {
		mode := "animated"
		if s.Fallback() {
			mode = "badge"
		}
		rows = append(rows,
			[2]string{"session", s.Token().String()[:8]},
			[2]string{"element", s.Subject().Symbol},
			[2]string{"mode", mode},
			[2]string{"frames", fmt.Sprint(s.Frames())},
		)
		if sc := s.Scene(); sc != nil {
			rows = append(rows,
				[2]string{"electrons", fmt.Sprint(sc.ElectronCount())},
				[2]string{"elapsed", sc.Elapsed.Round(time.Millisecond).String()},
			)
		}
		if err := s.Reason(); err != nil {
			rows = append(rows, [2]string{"reason", err.Error()})
		}
	} else {
		rows = append(rows, [2]string{"session", "none"})
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = m.styles.Label.Render(fmt.Sprintf("%-13s", r[0])) + m.styles.Text.Render(r[1])
	}
	return palette.BoxWithTitle("Debug", strings.Join(lines, "\n"), 48, m.theme)
}
