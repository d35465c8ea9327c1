package orbit

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultElectronCap    = 8
	DefaultBaseRadius     = 2.0
	DefaultRadiusStep     = 0.5
	DefaultRingSegments   = 64
	DefaultBaseSpeed      = 0.5
	DefaultSpeedDecay     = 0.05
	DefaultFrameDivisor   = 56.0
	DefaultFrameInterval  = time.Second / 60
	DefaultNucleusRadius  = 1.0
	DefaultElectronRadius = 0.2
	DefaultNucleusSpinX   = 0.01
	DefaultNucleusSpinY   = 0.015
	DefaultCameraDistance = 8.0
	DefaultFOV            = 75.0
	DefaultViewportCols   = 36
	DefaultViewportRows   = 18

	// maxFrameStep bounds a single tick after the loop stalls.
	maxFrameStep = 250 * time.Millisecond
)

// Config holds the visual constants. None of them model real atomic physics.
type Config struct {
	ElectronCap    int           `yaml:"electron_cap"`
	BaseRadius     float64       `yaml:"base_radius"`
	RadiusStep     float64       `yaml:"radius_step"`
	RingSegments   int           `yaml:"ring_segments"`
	BaseSpeed      float64       `yaml:"base_speed"`
	SpeedDecay     float64       `yaml:"speed_decay"`
	FrameDivisor   float64       `yaml:"frame_divisor"`
	FrameInterval  time.Duration `yaml:"frame_interval"`
	NucleusRadius  float64       `yaml:"nucleus_radius"`
	ElectronRadius float64       `yaml:"electron_radius"`
	NucleusSpinX   float64       `yaml:"nucleus_spin_x"`
	NucleusSpinY   float64       `yaml:"nucleus_spin_y"`
	CameraDistance float64       `yaml:"camera_distance"`
	FOV            float64       `yaml:"fov"`
	ViewportCols   int           `yaml:"viewport_cols"`
	ViewportRows   int           `yaml:"viewport_rows"`
}

func DefaultConfig() Config {
	return Config{
		ElectronCap:    DefaultElectronCap,
		BaseRadius:     DefaultBaseRadius,
		RadiusStep:     DefaultRadiusStep,
		RingSegments:   DefaultRingSegments,
		BaseSpeed:      DefaultBaseSpeed,
		SpeedDecay:     DefaultSpeedDecay,
		FrameDivisor:   DefaultFrameDivisor,
		FrameInterval:  DefaultFrameInterval,
		NucleusRadius:  DefaultNucleusRadius,
		ElectronRadius: DefaultElectronRadius,
		NucleusSpinX:   DefaultNucleusSpinX,
		NucleusSpinY:   DefaultNucleusSpinY,
		CameraDistance: DefaultCameraDistance,
		FOV:            DefaultFOV,
		ViewportCols:   DefaultViewportCols,
		ViewportRows:   DefaultViewportRows,
	}
}

func (c Config) Validate() error {
	switch {
	case c.ElectronCap < 1:
		return fmt.Errorf("%w: electron_cap must be >= 1, got %d", ErrInvalidConfig, c.ElectronCap)
	case c.BaseRadius <= 0:
		return fmt.Errorf("%w: base_radius must be > 0, got %g", ErrInvalidConfig, c.BaseRadius)
	case c.RadiusStep <= 0:
		return fmt.Errorf("%w: radius_step must be > 0, got %g", ErrInvalidConfig, c.RadiusStep)
	case c.RingSegments < 3:
		return fmt.Errorf("%w: ring_segments must be >= 3, got %d", ErrInvalidConfig, c.RingSegments)
	case c.BaseSpeed < 0 || c.SpeedDecay < 0:
		return fmt.Errorf("%w: base_speed and speed_decay must be >= 0", ErrInvalidConfig)
	case c.FrameDivisor <= 0:
		return fmt.Errorf("%w: frame_divisor must be > 0, got %g", ErrInvalidConfig, c.FrameDivisor)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame_interval must be > 0, got %s", ErrInvalidConfig, c.FrameInterval)
	case c.NucleusRadius <= 0 || c.ElectronRadius <= 0:
		return fmt.Errorf("%w: nucleus and electron radius must be > 0", ErrInvalidConfig)
	case c.CameraDistance <= 0:
		return fmt.Errorf("%w: camera_distance must be > 0, got %g", ErrInvalidConfig, c.CameraDistance)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("%w: fov must be in (0, 180), got %g", ErrInvalidConfig, c.FOV)
	case c.ViewportCols < 1 || c.ViewportRows < 1:
		return fmt.Errorf("%w: viewport must be at least 1x1 cells", ErrInvalidConfig)
	}
	return nil
}

// Radius is the orbit radius for index i; strictly increasing.
func (c Config) Radius(i int) float64 {
	return c.BaseRadius + float64(i)*c.RadiusStep
}

// Speed is the angular speed for index i; non-increasing and never negative.
func (c Config) Speed(i int) float64 {
	return math.Max(0, c.BaseSpeed-float64(i)*c.SpeedDecay)
}

// FitsCamera reports whether the outermost orbit lies inside the view
// cone at the focal plane.
func (c Config) FitsCamera() bool {
	outer := c.Radius(c.ElectronCap - 1)
	half := c.CameraDistance * math.Tan(c.FOV*math.Pi/360)
	return outer < half
}
