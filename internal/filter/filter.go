// Package filter derives the visible subset of the catalog from the search
// text and the selected category.
package filter

import (
	"strconv"
	"strings"

	"github.com/san-kum/ptable/internal/catalog"
)

const (
	All         = "all"
	Radioactive = "radioactive"
)

type State struct {
	Query    string
	Category string
}

func New() State { return State{Category: All} }

// Matches reports whether e passes both the query and the category.
func (s State) Matches(e catalog.Element) bool {
	return s.matchesQuery(e) && s.matchesCategory(e)
}

func (s State) matchesQuery(e catalog.Element) bool {
	q := strings.ToLower(strings.TrimSpace(s.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Symbol), q) ||
		strings.Contains(strconv.Itoa(e.AtomicNumber), q)
}

func (s State) matchesCategory(e catalog.Element) bool {
	cat := strings.ToLower(s.Category)
	switch cat {
	case "", All:
		return true
	case Radioactive:
		return e.Radioactive()
	}
	return strings.ToLower(e.Category) == cat
}

// Apply returns the matching elements, preserving order.
func (s State) Apply(elements []catalog.Element) []catalog.Element {
	out := make([]catalog.Element, 0, len(elements))
	for _, e := range elements {
		if s.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Categories lists the selectable categories: "all", each catalog
// category, then "radioactive".
func Categories(c *catalog.Catalog) []string {
	out := []string{All}
	out = append(out, c.Categories()...)
	return append(out, Radioactive)
}

// Cycle moves the category by step through options, wrapping around.
// An unknown current category restarts from the first option.
func (s State) Cycle(options []string, step int) State {
	if len(options) == 0 {
		return s
	}
	idx := -1
	for i, o := range options {
		if strings.EqualFold(o, s.Category) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.Category = options[0]
		return s
	}
	n := len(options)
	s.Category = options[((idx+step)%n+n)%n]
	return s
}

// Label is the human form of a category option.
func Label(category string) string {
	if category == All || category == "" {
		return "All Categories"
	}
	return strings.ToUpper(category[:1]) + category[1:]
}
