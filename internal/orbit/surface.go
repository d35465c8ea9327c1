package orbit

import (
	"fmt"

	"github.com/san-kum/ptable/internal/palette"
	"github.com/san-kum/ptable/internal/viz"
)

const (
	MinSurfaceCols = 8
	MinSurfaceRows = 4

	nucleusRings    = 4
	nucleusSegments = 16
)

// Surface is where a scene is rendered. A surface is owned by exactly one
// session and must not be used after Release.
type Surface interface {
	Draw(s *Scene) error
	SetTheme(t palette.Theme)
	String() string
	Canvas() *viz.Canvas
	Clear()
	Release()
}

// SurfaceFactory creates a surface of cols x rows terminal cells.
type SurfaceFactory func(cols, rows int, theme palette.Theme) (Surface, error)

// BrailleSurface renders onto a braille canvas, 2x4 dots per cell.
type BrailleSurface struct {
	canvas   *viz.Canvas
	theme    palette.Theme
	released bool
}

func NewBrailleSurface(cols, rows int, theme palette.Theme) (Surface, error) {
	if cols < MinSurfaceCols || rows < MinSurfaceRows {
		return nil, fmt.Errorf("%w: %dx%d cells is below %dx%d", ErrSurfaceUnavailable, cols, rows, MinSurfaceCols, MinSurfaceRows)
	}
	return &BrailleSurface{canvas: viz.NewCanvas(cols, rows), theme: theme}, nil
}

// Unavailable is a factory for hosts without any rendering capability.
func Unavailable(cols, rows int, theme palette.Theme) (Surface, error) {
	return nil, fmt.Errorf("%w: renderer disabled", ErrSurfaceUnavailable)
}

// FactoryFor maps a renderer name to a factory.
func FactoryFor(renderer string) (SurfaceFactory, error) {
	switch renderer {
	case "", "braille":
		return NewBrailleSurface, nil
	case "none":
		return Unavailable, nil
	}
	return nil, fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, renderer)
}

func (b *BrailleSurface) SetTheme(t palette.Theme) { b.theme = t }

// Draw renders one pass: orbits first, then nucleus and electrons, back to
// front within the painter's sort.
func (b *BrailleSurface) Draw(s *Scene) error {
	if b.released {
		return ErrSurfaceReleased
	}
	if s == nil {
		return nil
	}
	w := viz.NewWireframe()
	for _, o := range s.Orbits {
		w.AddLoop(o.WorldRing(), b.theme.Orbit)
	}
	rot := viz.Euler(s.Nucleus.RotX, s.Nucleus.RotY, 0)
	nucleus := palette.Blend(s.Nucleus.Color, b.theme.Background, s.Nucleus.Opacity)
	w.Edges = append(w.Edges, viz.SphereWireframe(s.Nucleus.Radius, nucleusRings, nucleusSegments, rot, nucleus).Edges...)
	for _, p := range s.Particles {
		w.AddDisc(p.Position, s.Config.ElectronRadius, palette.ElectronColor)
	}
	cam := s.Camera
	viz.Render3D(b.canvas, w, &cam)
	return nil
}

func (b *BrailleSurface) String() string {
	if b.released {
		return ""
	}
	return b.canvas.String()
}

func (b *BrailleSurface) Canvas() *viz.Canvas { return b.canvas }

func (b *BrailleSurface) Clear() {
	if !b.released {
		b.canvas.Clear()
	}
}

// Release drops the canvas. Safe to call more than once.
func (b *BrailleSurface) Release() {
	if b.released {
		return
	}
	b.released = true
	b.canvas = nil
}
