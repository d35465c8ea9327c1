package config

import (
	"sort"

	"github.com/san-kum/ptable/internal/orbit"
)

// Presets are alternative orbit looks. "reference" is the stock one.
var Presets = map[string]orbit.Config{
	"reference": orbit.DefaultConfig(),
	"calm": tweak(func(c *orbit.Config) {
		c.BaseSpeed = 0.25
		c.SpeedDecay = 0.02
		c.NucleusSpinX = 0.005
		c.NucleusSpinY = 0.0075
	}),
	"dense": tweak(func(c *orbit.Config) {
		c.ElectronCap = 12
		c.BaseRadius = 1.6
		c.RadiusStep = 0.35
		c.RingSegments = 96
		c.SpeedDecay = 0.035
		c.NucleusRadius = 0.8
		c.ElectronRadius = 0.15
	}),
	"minimal": tweak(func(c *orbit.Config) {
		c.ElectronCap = 3
		c.RingSegments = 24
		c.BaseSpeed = 0.4
		c.ViewportCols = 24
		c.ViewportRows = 12
	}),
}

var presetDescriptions = map[string]string{
	"reference": "eight shells, stock speeds",
	"calm":      "slower electrons and nucleus",
	"dense":     "up to twelve tighter shells",
	"minimal":   "three shells in a small viewport",
}

func tweak(f func(*orbit.Config)) orbit.Config {
	c := orbit.DefaultConfig()
	f(&c)
	return c
}

func GetPreset(name string) (orbit.Config, bool) {
	c, ok := Presets[name]
	return c, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func DescribePreset(name string) string { return presetDescriptions[name] }
