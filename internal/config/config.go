package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ptable/internal/orbit"
	"github.com/san-kum/ptable/internal/palette"
)

const (
	DefaultTheme    = "dark"
	DefaultFPS      = 60
	DefaultRenderer = "braille"
	MaxFPS          = 240
)

// Environment variables that override file values.
const (
	EnvTheme    = "PTABLE_THEME"
	EnvRenderer = "PTABLE_RENDERER"
	EnvSeed     = "PTABLE_SEED"
	EnvLogFile  = "PTABLE_LOG_FILE"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Theme    string       `yaml:"theme"`
	FPS      int          `yaml:"fps"`
	Seed     int64        `yaml:"seed"`
	Renderer string       `yaml:"renderer"`
	LogFile  string       `yaml:"log_file"`
	Orbit    orbit.Config `yaml:"orbit"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:    DefaultTheme,
		FPS:      DefaultFPS,
		Renderer: DefaultRenderer,
		Orbit:    orbit.DefaultConfig(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEnv reads .env style files into the process environment. Missing
// files are skipped; variables already set are left alone.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from PTABLE_* variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		c.Theme = v
	}
	if v, ok := os.LookupEnv(EnvRenderer); ok && v != "" {
		c.Renderer = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvSeed, v)
		}
		c.Seed = seed
	}
	return nil
}

// UsePreset replaces the orbit block with a named preset.
func (c *Config) UsePreset(name string) error {
	p, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalid, name, ListPresets())
	}
	c.Orbit = p
	return nil
}

func (c *Config) Validate() error {
	if !slices.Contains(palette.ThemeNames(), c.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps must be in [1, %d], got %d", ErrInvalid, MaxFPS, c.FPS)
	}
	if _, err := orbit.FactoryFor(c.Renderer); err != nil {
		return err
	}
	return c.Orbit.Validate()
}

// FrameInterval is the wall-clock delay between scheduled frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}

// SeedOrNow returns the configured seed, or a time-based one when unset.
func (c *Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c *Config) SurfaceFactory() orbit.SurfaceFactory {
	f, err := orbit.FactoryFor(c.Renderer)
	if err != nil {
		return orbit.NewBrailleSurface
	}
	return f
}

func (c *Config) ThemeValue() palette.Theme { return palette.ThemeByName(c.Theme) }
