package tui

import (
	"fmt"
	"io"
	"strings"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints successive frames in place, without bubbletea. It
// backs the non-interactive show command.
type LiveRenderer struct {
	out    io.Writer
	title  string
	footer string
	frames int
}

func NewLiveRenderer(out io.Writer, title, footer string) *LiveRenderer {
	return &LiveRenderer{out: out, title: title, footer: footer}
}

// Draw replaces the screen with frame.
func (r *LiveRenderer) Draw(frame string) {
	r.frames++
	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  %s  frame %d\n\n", r.title, r.frames)
	for _, line := range strings.Split(frame, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if r.footer != "" {
		b.WriteString("\n  " + r.footer + "\n")
	}
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
