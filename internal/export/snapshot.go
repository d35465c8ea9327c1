package export

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/san-kum/ptable/internal/orbit"
	"github.com/san-kum/ptable/internal/palette"
)

// SnapshotOptions control how an atom is rendered to SVG.
type SnapshotOptions struct {
	Orbit  orbit.Config
	Theme  palette.Theme
	Frames int
	Scale  float64
}

type Snapshot struct {
	Subject orbit.Subject
	SVG     string
}

// Render builds a scene for subject, advances it opts.Frames reference
// frames and returns the SVG of the drawn surface.
func Render(subject orbit.Subject, rng *rand.Rand, opts SnapshotOptions) (string, error) {
	res := orbit.Build(subject, opts.Orbit, rng, orbit.NewBrailleSurface, opts.Theme)
	if !res.Animated() {
		return "", fmt.Errorf("render %s: %w", subject.Symbol, res.Reason)
	}
	defer res.Surface.Release()

	scene := res.Scene
	for i := 0; i < opts.Frames; i++ {
		scene = orbit.Step(scene)
	}
	res.Surface.Clear()
	if err := res.Surface.Draw(scene); err != nil {
		return "", err
	}
	return CanvasToSVG(res.Surface.Canvas(), opts.Scale, opts.Theme.Background), nil
}

// RenderAll renders every subject concurrently. Subject i is seeded with
// seedStart+i, so output does not depend on scheduling.
func RenderAll(ctx context.Context, subjects []orbit.Subject, seedStart int64, opts SnapshotOptions) ([]Snapshot, error) {
	results := make([]Snapshot, len(subjects))
	errs := make([]error, len(subjects))

	var wg sync.WaitGroup
	for i, s := range subjects {
		wg.Add(1)
		go func(idx int, subject orbit.Subject) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			svg, err := Render(subject, rand.New(rand.NewSource(seedStart+int64(idx))), opts)
			results[idx], errs[idx] = Snapshot{Subject: subject, SVG: svg}, err
		}(i, s)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
