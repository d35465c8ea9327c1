package orbit

import (
	"math"
	"time"
)

const twoPi = 2 * math.Pi

// Tick advances a scene by elapsed time and returns the new scene; the
// input is left untouched. One FrameInterval of elapsed time is one
// reference frame: the nucleus turns by (NucleusSpinX, NucleusSpinY) and
// each particle's phase grows by AngularSpeed / FrameDivisor.
func Tick(s *Scene, elapsed time.Duration) *Scene {
	next := s.Clone()
	if elapsed <= 0 {
		return next
	}
	cfg := s.Config
	frames := float64(elapsed) / float64(cfg.FrameInterval)

	next.Nucleus.RotX = wrap(next.Nucleus.RotX + cfg.NucleusSpinX*frames)
	next.Nucleus.RotY = wrap(next.Nucleus.RotY + cfg.NucleusSpinY*frames)
	for i := range next.Particles {
		p := &next.Particles[i]
		p.Angle = wrap(p.Angle + p.AngularSpeed/cfg.FrameDivisor*frames)
		p.Position = next.Orbits[p.Orbit].PointAt(p.Angle)
	}
	next.Frames++
	next.Elapsed += elapsed
	return next
}

// Step advances by exactly one reference frame.
func Step(s *Scene) *Scene {
	return Tick(s, s.Config.FrameInterval)
}

func wrap(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
