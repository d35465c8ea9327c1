package orbit

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/ptable/internal/palette"
)

// Result is the outcome of building a visualization: either an animated
// scene bound to a surface, or a badge with the reason for the fallback.
type Result struct {
	Scene   *Scene
	Surface Surface
	Badge   *Badge
	Reason  error
}

func (r Result) Animated() bool { return r.Scene != nil && r.Surface != nil }

// Build never panics and never returns an error; failures become a
// fallback Result.
func Build(subject Subject, cfg Config, rng *rand.Rand, factory SurfaceFactory, theme palette.Theme) (res Result) {
	var surface Surface
	defer func() {
		if p := recover(); p != nil {
			if surface != nil {
				surface.Release()
			}
			res = fallback(subject, cfg, "build", fmt.Errorf("%w: %v", ErrPanic, p))
		}
	}()

	scene, err := NewScene(subject, cfg, rng)
	if err != nil {
		return fallback(subject, cfg, "scene", err)
	}
	if factory == nil {
		factory = NewBrailleSurface
	}
	surface, err = factory(cfg.ViewportCols, cfg.ViewportRows, theme)
	if err != nil {
		return fallback(subject, cfg, "surface", err)
	}
	if surface == nil {
		return fallback(subject, cfg, "surface", ErrSurfaceUnavailable)
	}
	if err := surface.Draw(scene); err != nil {
		surface.Release()
		return fallback(subject, cfg, "draw", err)
	}
	return Result{Scene: scene, Surface: surface}
}

func fallback(subject Subject, cfg Config, stage string, err error) Result {
	return Result{
		Badge:  NewBadge(subject, cfg.ViewportCols, cfg.ViewportRows),
		Reason: &FallbackError{Stage: stage, Wrapped: err},
	}
}
