package orbit

import (
	"math"
	"math/rand"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/san-kum/ptable/internal/catalog"
	"github.com/san-kum/ptable/internal/palette"
	"github.com/san-kum/ptable/internal/viz"
)

const eps = 1e-9

func seeded() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestElectronCountForEveryElement(t *testing.T) {
	g := NewWithT(t)
	cat := catalog.Default()
	for _, e := range cat.All() {
		s, err := NewScene(SubjectOf(e), DefaultConfig(), seeded())
		g.Expect(err).NotTo(HaveOccurred())
		want := min(e.AtomicNumber, 8)
		g.Expect(s.Orbits).To(HaveLen(want), e.Symbol)
		g.Expect(s.Particles).To(HaveLen(want), e.Symbol)
		g.Expect(s.ElectronCount()).To(Equal(want))
	}
}

func TestRadiusIncreasingSpeedNonIncreasing(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()
	cfg.ElectronCap = 20 // long enough for the speed to bottom out
	s, err := NewScene(Subject{AtomicNumber: 118, Category: "noble gas", Symbol: "Og"}, cfg, seeded())
	g.Expect(err).NotTo(HaveOccurred())
	for i := 1; i < len(s.Orbits); i++ {
		g.Expect(s.Orbits[i].Radius).To(BeNumerically(">", s.Orbits[i-1].Radius))
		g.Expect(s.Particles[i].AngularSpeed).To(BeNumerically("<=", s.Particles[i-1].AngularSpeed))
		g.Expect(s.Particles[i].AngularSpeed).To(BeNumerically(">=", 0))
	}
}

func TestHydrogen(t *testing.T) {
	g := NewWithT(t)
	s, err := NewScene(Subject{AtomicNumber: 1, Category: "nonmetal", Symbol: "H"}, DefaultConfig(), seeded())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s.Orbits).To(HaveLen(1))
	g.Expect(s.Particles).To(HaveLen(1))
	g.Expect(s.Orbits[0].Radius).To(Equal(2.0))
	g.Expect(s.Particles[0].AngularSpeed).To(Equal(0.5))
	g.Expect(s.Nucleus.Color).To(Equal(palette.CategoryColor("nonmetal")))
}

func TestUranium(t *testing.T) {
	g := NewWithT(t)
	for _, category := range []string{"actinide", "noble gas", "made up"} {
		s, err := NewScene(Subject{AtomicNumber: 92, Category: category, Symbol: "U"}, DefaultConfig(), seeded())
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(s.Orbits).To(HaveLen(8))
		for i, o := range s.Orbits {
			g.Expect(o.Radius).To(BeNumerically("~", 2.0+0.5*float64(i), eps))
		}
		g.Expect(s.Orbits[7].Radius).To(BeNumerically("~", 5.5, eps))
		g.Expect(s.Nucleus.Color).To(Equal(palette.RadioactiveColor), category)
	}
}

func TestUnknownCategoryUsesFallbackColour(t *testing.T) {
	g := NewWithT(t)
	s, err := NewScene(Subject{AtomicNumber: 6, Category: "plasma crystal", Symbol: "C"}, DefaultConfig(), seeded())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s.Nucleus.Color).To(Equal(palette.Fallback))
}

func TestInvalidSubject(t *testing.T) {
	g := NewWithT(t)
	_, err := NewScene(Subject{AtomicNumber: 0, Symbol: "?"}, DefaultConfig(), seeded())
	g.Expect(err).To(MatchError(ErrInvalidSubject))
}

func TestSeededGeometryIsExact(t *testing.T) {
	g := NewWithT(t)
	subject := Subject{AtomicNumber: 3, Category: "alkali metal", Symbol: "Li"}
	s, err := NewScene(subject, DefaultConfig(), seeded())
	g.Expect(err).NotTo(HaveOccurred())

	replay := seeded()
	for i := 0; i < 3; i++ {
		pitch := replay.Float64() * math.Pi
		yaw := replay.Float64() * math.Pi
		angle := replay.Float64() * 2 * math.Pi
		g.Expect(s.Orbits[i].Pitch).To(Equal(pitch))
		g.Expect(s.Orbits[i].Yaw).To(Equal(yaw))
		g.Expect(s.Particles[i].Angle).To(Equal(angle))
		g.Expect(s.Orbits[i].Pitch).To(And(BeNumerically(">=", 0), BeNumerically("<", math.Pi)))
	}

	again, _ := NewScene(subject, DefaultConfig(), seeded())
	g.Expect(again.Particles).To(Equal(s.Particles))
}

func TestRingGeometry(t *testing.T) {
	g := NewWithT(t)
	s, _ := NewScene(Subject{AtomicNumber: 2, Category: "noble gas", Symbol: "He"}, DefaultConfig(), seeded())
	for _, o := range s.Orbits {
		g.Expect(o.Ring).To(HaveLen(64))
		for _, p := range o.Ring {
			g.Expect(p.Z).To(Equal(0.0))
			g.Expect(p.Length()).To(BeNumerically("~", o.Radius, eps))
		}
		for _, p := range o.WorldRing() {
			g.Expect(p.Length()).To(BeNumerically("~", o.Radius, eps))
		}
	}
}

func TestParticleOnRotatedOrbit(t *testing.T) {
	g := NewWithT(t)
	s, _ := NewScene(Subject{AtomicNumber: 5, Category: "metalloid", Symbol: "B"}, DefaultConfig(), seeded())
	for _, p := range s.Particles {
		o := s.Orbits[p.Orbit]
		r := o.Radius
		want := viz.RotX(o.Pitch).Apply(viz.RotY(o.Yaw).Apply(viz.Vec3{X: math.Cos(p.Angle) * r, Y: math.Sin(p.Angle) * r}))
		g.Expect(p.Position.X).To(BeNumerically("~", want.X, eps))
		g.Expect(p.Position.Y).To(BeNumerically("~", want.Y, eps))
		g.Expect(p.Position.Z).To(BeNumerically("~", want.Z, eps))
		g.Expect(p.Position.Length()).To(BeNumerically("~", r, eps))
	}
}

func TestTickAdvancesOneReferenceFrame(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()
	s, _ := NewScene(Subject{AtomicNumber: 8, Category: "nonmetal", Symbol: "O"}, cfg, seeded())
	before := s.Clone()

	next := Step(s)

	g.Expect(s.Particles).To(Equal(before.Particles), "tick must not mutate its input")
	g.Expect(next.Frames).To(Equal(uint64(1)))
	g.Expect(next.Nucleus.RotX).To(BeNumerically("~", cfg.NucleusSpinX, eps))
	g.Expect(next.Nucleus.RotY).To(BeNumerically("~", cfg.NucleusSpinY, eps))
	for i, p := range next.Particles {
		want := wrap(before.Particles[i].Angle + before.Particles[i].AngularSpeed/56)
		g.Expect(p.Angle).To(BeNumerically("~", want, eps))
		g.Expect(p.Position.Length()).To(BeNumerically("~", next.Orbits[i].Radius, eps))
	}
}

func TestTickScalesWithElapsed(t *testing.T) {
	g := NewWithT(t)
	s, _ := NewScene(Subject{AtomicNumber: 1, Category: "nonmetal", Symbol: "H"}, DefaultConfig(), seeded())
	start := s.Particles[0].Angle

	twice := Tick(s, 2*DefaultFrameInterval)
	g.Expect(twice.Particles[0].Angle).To(BeNumerically("~", wrap(start+2*0.5/56), eps))

	same := Tick(s, 0)
	g.Expect(same.Particles[0].Angle).To(Equal(start))
	g.Expect(same.Frames).To(BeZero())
}

func TestInvariantHoldsAcrossFrames(t *testing.T) {
	g := NewWithT(t)
	s, _ := NewScene(Subject{AtomicNumber: 26, Category: "transition metal", Symbol: "Fe"}, DefaultConfig(), seeded())
	for i := 0; i < 500; i++ {
		s = Tick(s, 17*time.Millisecond)
		g.Expect(len(s.Orbits)).To(Equal(len(s.Particles)))
		for _, p := range s.Particles {
			g.Expect(p.Angle).To(And(BeNumerically(">=", 0), BeNumerically("<", 2*math.Pi)))
		}
	}
	g.Expect(s.Frames).To(Equal(uint64(500)))
}

func TestNucleusDrawnAtOpacity(t *testing.T) {
	g := NewWithT(t)
	s, err := NewScene(Subject{AtomicNumber: 26, Category: "transition metal", Symbol: "Fe"}, DefaultConfig(), seeded())
	g.Expect(err).NotTo(HaveOccurred())
	s.Orbits, s.Particles = nil, nil

	surf, err := NewBrailleSurface(40, 20, palette.ThemeDark)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(surf.Draw(s)).To(Succeed())

	want := palette.Blend(s.Nucleus.Color, palette.ThemeDark.Background, s.Nucleus.Opacity)
	g.Expect(want).NotTo(Equal(s.Nucleus.Color))
	painted := 0
	for _, row := range surf.Canvas().Colors {
		for _, c := range row {
			if c != "" {
				g.Expect(c).To(Equal(want))
				painted++
			}
		}
	}
	g.Expect(painted).To(BeNumerically(">", 0))
}
