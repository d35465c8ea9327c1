package catalog

import (
	"fmt"
	"strconv"
)

// Reaction is one sample chemical equation shown on the detail view.
type Reaction struct {
	Equation    string `yaml:"equation"`
	Description string `yaml:"description"`
}

type Element struct {
	AtomicNumber          int        `yaml:"number"`
	Symbol                string     `yaml:"symbol"`
	Name                  string     `yaml:"name"`
	AtomicMass            string     `yaml:"mass"`
	Category              string     `yaml:"category"`
	Block                 string     `yaml:"block"`
	Group                 int        `yaml:"group"`
	Period                int        `yaml:"period"`
	State                 string     `yaml:"state"`
	ElectronConfiguration string     `yaml:"config"`
	YearDiscovered        int        `yaml:"year"`
	DiscoveredBy          string     `yaml:"by"`
	Uses                  []string   `yaml:"uses"`
	Reactions             []Reaction `yaml:"reactions"`
}

const (
	GroupLanthanide = 101
	GroupActinide   = 102
)

// IsRadioactive reports whether an element has no stable isotope:
// everything past bismuth, plus technetium and promethium.
func IsRadioactive(atomicNumber int) bool {
	return atomicNumber > 83 || atomicNumber == 43 || atomicNumber == 61
}

// ElectronCount is the decorative electron count, capped at limit.
func ElectronCount(atomicNumber, limit int) int {
	if atomicNumber < 0 {
		return 0
	}
	return min(atomicNumber, limit)
}

func (e Element) Radioactive() bool { return IsRadioactive(e.AtomicNumber) }

// DisplayName truncates names longer than ten runes.
func (e Element) DisplayName() string {
	r := []rune(e.Name)
	if len(r) > 10 {
		return string(r[:8]) + "..."
	}
	return e.Name
}

// DisplayGroup renders the f-block pseudo groups as La and Ac.
func (e Element) DisplayGroup() string {
	switch e.Group {
	case GroupLanthanide:
		return "La"
	case GroupActinide:
		return "Ac"
	}
	return strconv.Itoa(e.Group)
}

// DisplayCategory is "radioactive" for radioactive elements.
func (e Element) DisplayCategory() string {
	if e.Radioactive() {
		return "radioactive"
	}
	return e.Category
}

func FormatYear(year int) string {
	switch {
	case year == 0:
		return "Unknown"
	case year < 0:
		return fmt.Sprintf("%d BC", -year)
	}
	return strconv.Itoa(year)
}

// Mass parses the atomic mass, returning 0 when it is not numeric.
func (e Element) Mass() float64 {
	v, err := strconv.ParseFloat(e.AtomicMass, 64)
	if err != nil {
		return 0
	}
	return v
}
