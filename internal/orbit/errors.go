package orbit

import "errors"

// Domain errors for the orbit visualizer.
var (
	// ErrInvalidConfig indicates a visual constant outside its valid range.
	ErrInvalidConfig = errors.New("orbit: invalid config")

	// ErrInvalidSubject indicates an element that cannot be visualized.
	ErrInvalidSubject = errors.New("orbit: invalid subject (atomic number must be >= 1)")

	// ErrSurfaceUnavailable indicates the rendering surface could not be created.
	ErrSurfaceUnavailable = errors.New("orbit: rendering surface unavailable")

	// ErrSurfaceReleased indicates a draw on a released surface.
	ErrSurfaceReleased = errors.New("orbit: surface already released")

	// ErrPanic indicates a recovered panic during construction or update.
	ErrPanic = errors.New("orbit: recovered panic")
)

// FallbackError records why a session degraded to the static badge.
type FallbackError struct {
	Stage   string // "scene", "surface", "draw", "frame"
	Wrapped error
}

func (e *FallbackError) Error() string {
	return "orbit: fallback at " + e.Stage + ": " + e.Wrapped.Error()
}

func (e *FallbackError) Unwrap() error {
	return e.Wrapped
}
