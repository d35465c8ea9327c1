// Package catalog holds the immutable element table, keyed by atomic number.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed elements.yaml
var elementsYAML []byte

var (
	ErrNotFound = errors.New("catalog: element not found")
	ErrInvalid  = errors.New("catalog: invalid element table")
)

// Catalog is a read-only, validated sequence of elements.
type Catalog struct {
	elements []Element
	byNumber map[int]int
}

// Default returns the embedded table. It panics only if the embedded data
// is broken, which the tests rule out.
func Default() *Catalog {
	c, err := Parse(elementsYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a yaml element list.
func Parse(data []byte) (*Catalog, error) {
	var elements []Element
	if err := yaml.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return New(elements)
}

// New validates elements and builds the lookup index.
func New(elements []Element) (*Catalog, error) {
	c := &Catalog{
		elements: make([]Element, len(elements)),
		byNumber: make(map[int]int, len(elements)),
	}
	copy(c.elements, elements)
	sort.SliceStable(c.elements, func(i, j int) bool {
		return c.elements[i].AtomicNumber < c.elements[j].AtomicNumber
	})
	for i, e := range c.elements {
		if e.AtomicNumber < 1 || e.AtomicNumber > 118 {
			return nil, fmt.Errorf("%w: atomic number %d out of range", ErrInvalid, e.AtomicNumber)
		}
		if e.Symbol == "" || e.Name == "" {
			return nil, fmt.Errorf("%w: element %d missing symbol or name", ErrInvalid, e.AtomicNumber)
		}
		if _, dup := c.byNumber[e.AtomicNumber]; dup {
			return nil, fmt.Errorf("%w: duplicate atomic number %d", ErrInvalid, e.AtomicNumber)
		}
		c.byNumber[e.AtomicNumber] = i
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.elements) }

// All returns a copy of the elements in atomic-number order.
func (c *Catalog) All() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

func (c *Catalog) Lookup(atomicNumber int) (Element, error) {
	i, ok := c.byNumber[atomicNumber]
	if !ok {
		return Element{}, fmt.Errorf("%w: %d", ErrNotFound, atomicNumber)
	}
	return c.elements[i], nil
}

// Find resolves an atomic number, symbol or name (case-insensitive).
func (c *Catalog) Find(query string) (Element, error) {
	q := strings.TrimSpace(query)
	if n, err := strconv.Atoi(q); err == nil {
		return c.Lookup(n)
	}
	for _, e := range c.elements {
		if strings.EqualFold(e.Symbol, q) || strings.EqualFold(e.Name, q) {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("%w: %q", ErrNotFound, query)
}

// Neighbour returns the element offset positions away, wrapping around.
func (c *Catalog) Neighbour(atomicNumber, offset int) (Element, error) {
	i, ok := c.byNumber[atomicNumber]
	if !ok || len(c.elements) == 0 {
		return Element{}, fmt.Errorf("%w: %d", ErrNotFound, atomicNumber)
	}
	n := len(c.elements)
	return c.elements[((i+offset)%n+n)%n], nil
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.elements {
		k := strings.ToLower(e.Category)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
