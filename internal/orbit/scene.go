package orbit

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ptable/internal/catalog"
	"github.com/san-kum/ptable/internal/palette"
	"github.com/san-kum/ptable/internal/viz"
)

const nucleusOpacity = 0.8

// Subject is the part of an element record the visualizer needs.
type Subject struct {
	AtomicNumber int
	Category     string
	Symbol       string
}

func SubjectOf(e catalog.Element) Subject {
	return Subject{AtomicNumber: e.AtomicNumber, Category: e.Category, Symbol: e.Symbol}
}

func (s Subject) Radioactive() bool { return catalog.IsRadioactive(s.AtomicNumber) }

// Color is the nucleus and badge colour, radioactive override first.
func (s Subject) Color() lipgloss.Color {
	return palette.ElementColor(s.Category, s.Radioactive())
}

type Nucleus struct {
	Radius  float64
	Color   lipgloss.Color
	Opacity float64
	RotX    float64
	RotY    float64
}

// Orbit is a ring in the local XY plane with a rotation fixed at
// construction. Orbits are never mutated after NewScene.
type Orbit struct {
	Index    int
	Radius   float64
	Pitch    float64
	Yaw      float64
	Rotation viz.Mat3
	Ring     []viz.Vec3 // local, unrotated, one vertex per segment
}

// PointAt returns the world position at phase angle on the orbit.
func (o Orbit) PointAt(angle float64) viz.Vec3 {
	return o.Rotation.Apply(viz.Vec3{X: math.Cos(angle) * o.Radius, Y: math.Sin(angle) * o.Radius})
}

// WorldRing returns the ring vertices with the orbit rotation applied.
func (o Orbit) WorldRing() []viz.Vec3 {
	pts := make([]viz.Vec3, len(o.Ring))
	for i, p := range o.Ring {
		pts[i] = o.Rotation.Apply(p)
	}
	return pts
}

type Particle struct {
	Orbit        int
	Angle        float64
	AngularSpeed float64
	Position     viz.Vec3
}

// Scene is the transient state of one visualization. len(Orbits) ==
// len(Particles) == ElectronCount for the whole life of the scene.
type Scene struct {
	Subject   Subject
	Config    Config
	Nucleus   Nucleus
	Orbits    []Orbit
	Particles []Particle
	Camera    viz.Camera
	Frames    uint64
	Elapsed   time.Duration
}

// ElectronCount is the capped decorative count.
func (s *Scene) ElectronCount() int { return len(s.Particles) }

// NewScene builds the geometry. rng supplies orbit orientations and
// starting phases; per orbit it is sampled as pitch, yaw, phase.
func NewScene(subject Subject, cfg Config, rng *rand.Rand) (*Scene, error) {
	if subject.AtomicNumber < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSubject, subject.AtomicNumber)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := catalog.ElectronCount(subject.AtomicNumber, cfg.ElectronCap)
	s := &Scene{
		Subject: subject,
		Config:  cfg,
		Nucleus: Nucleus{
			Radius:  cfg.NucleusRadius,
			Color:   subject.Color(),
			Opacity: nucleusOpacity,
		},
		Orbits:    make([]Orbit, n),
		Particles: make([]Particle, n),
		Camera:    *viz.NewCamera(cfg.CameraDistance, cfg.FOV),
	}

	for i := 0; i < n; i++ {
		r := cfg.Radius(i)
		pitch := rng.Float64() * math.Pi
		yaw := rng.Float64() * math.Pi
		o := Orbit{
			Index:    i,
			Radius:   r,
			Pitch:    pitch,
			Yaw:      yaw,
			Rotation: viz.Euler(pitch, yaw, 0),
			Ring:     ring(r, cfg.RingSegments),
		}
		angle := rng.Float64() * 2 * math.Pi
		s.Orbits[i] = o
		s.Particles[i] = Particle{
			Orbit:        i,
			Angle:        angle,
			AngularSpeed: cfg.Speed(i),
			Position:     o.PointAt(angle),
		}
	}
	return s, nil
}

func ring(r float64, segments int) []viz.Vec3 {
	pts := make([]viz.Vec3, segments)
	for j := range pts {
		a := 2 * math.Pi * float64(j) / float64(segments)
		pts[j] = viz.Vec3{X: math.Cos(a) * r, Y: math.Sin(a) * r}
	}
	return pts
}

// Clone copies the mutable parts; orbits are shared.
func (s *Scene) Clone() *Scene {
	c := *s
	c.Particles = make([]Particle, len(s.Particles))
	copy(c.Particles, s.Particles)
	return &c
}
