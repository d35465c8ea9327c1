package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ptable/internal/viz"
)

const (
	DefaultBackground lipgloss.Color = "#0a0a0a"
	defaultDot        lipgloss.Color = "#cccccc"
)

// CanvasToSVG draws every lit braille dot as a circle, coloured with the
// colour of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64, background lipgloss.Color) string {
	if canvas == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}
	if background == "" {
		background = DefaultBackground
	}

	width := float64(canvas.SubWidth()) * scale
	height := float64(canvas.SubHeight()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, defaultDot)

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			if canvas.Grid[row][col] <= 0x2800 {
				continue
			}
			fill := ""
			if c := canvas.Colors[row][col]; c != "" {
				fill = fmt.Sprintf(` fill="%s"`, c)
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					x, y := col*2+dx, row*4+dy
					if !canvas.IsSet(x, y) {
						continue
					}
					cx := float64(x)*scale + scale/2
					cy := float64(y)*scale + scale/2
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"%s/>\n", cx, cy, dotRadius, fill)
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// Point is one sample of a series, e.g. atomic number against mass.
type Point struct {
	X, Y  float64
	Label string
}

// SeriesToSVG draws points as a polyline with a dot per sample. Labelled
// points get a tooltip title.
func SeriesToSVG(points []Point, width, height int, stroke lipgloss.Color) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	project := func(p Point) (float64, float64) {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, DefaultBackground, stroke)

	for i, p := range points {
		x, y := project(p)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")

	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", stroke)
	for _, p := range points {
		x, y := project(p)
		if p.Label == "" {
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"2\"/>\n", x, y)
			continue
		}
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"2\"><title>%s</title></circle>\n", x, y, escape(p.Label))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
