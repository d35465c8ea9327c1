package viz

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Camera is a fixed perspective camera on the +Z axis looking at the origin.
type Camera struct {
	Distance float64
	FOV      float64 // vertical, radians
	Near     float64
	Zoom     float64
}

func NewCamera(distance, fovDeg float64) *Camera {
	return &Camera{Distance: distance, FOV: fovDeg * math.Pi / 180, Near: 0.1, Zoom: 1.0}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(4, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.25, c.Zoom/1.2) }

// Focal returns the projection scale in sub-pixels for a sw x sh target.
func (c *Camera) Focal(sw, sh int) float64 {
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	return (minDim / 2) / math.Tan(c.FOV/2) * c.Zoom
}

// Project converts 3D world coordinates to 2D sub-pixel coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	dz := c.Distance - p.Z
	if dz <= c.Near {
		return 0, 0, 0, false
	}
	f := c.Focal(sw, sh) / dz
	sx := int(math.Round(p.X*f)) + sw/2
	sy := int(math.Round(-p.Y*f)) + sh/2
	return sx, sy, p.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// ProjectRadius returns the on-screen radius of a sphere of radius r at p.
func (c *Camera) ProjectRadius(p Vec3, r float64, sw, sh int) int {
	dz := c.Distance - p.Z
	if dz <= c.Near {
		return 0
	}
	return int(math.Round(r * c.Focal(sw, sh) / dz))
}

type Edge struct {
	Start, End Vec3
	Color      lipgloss.Color
	Radius     float64 // world radius for points drawn as discs
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3, c lipgloss.Color) {
	w.Edges = append(w.Edges, Edge{Start: s, End: e, Color: c})
}
func (w *Wireframe) AddPoint(p Vec3, c lipgloss.Color) {
	w.Edges = append(w.Edges, Edge{Start: p, End: p, Color: c})
}
func (w *Wireframe) AddDisc(p Vec3, r float64, c lipgloss.Color) {
	w.Edges = append(w.Edges, Edge{Start: p, End: p, Color: c, Radius: r})
}

// AddLoop joins consecutive points and closes the loop.
func (w *Wireframe) AddLoop(pts []Vec3, c lipgloss.Color) {
	for i := range pts {
		w.AddEdge(pts[i], pts[(i+1)%len(pts)], c)
	}
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	R              int
	Depth          float64
	Color          lipgloss.Color
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.SubWidth(), c.SubHeight()
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if !v1 && !v2 {
			continue
		}
		pe := ProjectedEdge{X1: x1, Y1: y1, X2: x2, Y2: y2, Depth: (d1 + d2) / 2, Color: e.Color}
		if e.Radius > 0 {
			pe.R = cam.ProjectRadius(e.Start, e.Radius, sw, sh)
		}
		proj = append(proj, pe)
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	for _, e := range proj {
		switch {
		case e.R > 0:
			c.FillDisc(e.X1, e.Y1, e.R, e.Color)
		case e.X1 == e.X2 && e.Y1 == e.Y2:
			c.Plot(e.X1, e.Y1, e.Color)
		default:
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2, e.Color)
		}
	}
}

// SphereWireframe returns latitude and longitude rings of a sphere, rotated by rot.
func SphereWireframe(r float64, rings, segments int, rot Mat3, c lipgloss.Color) *Wireframe {
	w := NewWireframe()
	for i := 1; i < rings; i++ {
		phi := math.Pi * float64(i) / float64(rings)
		y, rr := r*math.Cos(phi), r*math.Sin(phi)
		pts := make([]Vec3, segments)
		for j := range pts {
			a := 2 * math.Pi * float64(j) / float64(segments)
			pts[j] = rot.Apply(Vec3{rr * math.Cos(a), y, rr * math.Sin(a)})
		}
		w.AddLoop(pts, c)
	}
	for i := 0; i < rings; i++ {
		theta := math.Pi * float64(i) / float64(rings)
		pts := make([]Vec3, segments)
		for j := range pts {
			a := 2 * math.Pi * float64(j) / float64(segments)
			p := Vec3{r * math.Sin(a) * math.Cos(theta), r * math.Cos(a), r * math.Sin(a) * math.Sin(theta)}
			pts[j] = rot.Apply(p)
		}
		w.AddLoop(pts, c)
	}
	return w
}
