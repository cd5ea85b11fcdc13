// Package catalog holds the ordered, read-only list of guided steps.
package catalog

import (
	"errors"
	"fmt"

	"gitguide/internal/domain"
)

// ErrEmptyCatalog is returned when a catalog would have no steps
var ErrEmptyCatalog = errors.New("catalog has no steps")

// IndexError reports a lookup outside [0, Len)
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("step index %d out of range [0, %d)", e.Index, e.Len)
}

// Catalog is an immutable ordered sequence of steps
type Catalog struct {
	steps []domain.Step
	first map[domain.HighlightTarget]int
}

// New builds a catalog from steps. The slice is copied.
func New(steps []domain.Step) (*Catalog, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, s := range steps {
		if !s.Highlight.Valid() {
			return nil, fmt.Errorf("step %d: invalid highlight target %d", i, int(s.Highlight))
		}
	}

	c := &Catalog{
		steps: append([]domain.Step(nil), steps...),
		first: make(map[domain.HighlightTarget]int, len(steps)),
	}
	// Only the first occurrence of a target is recorded.
	for i, s := range c.steps {
		if _, seen := c.first[s.Highlight]; !seen {
			c.first[s.Highlight] = i
		}
	}
	return c, nil
}

// Len returns the number of steps
func (c *Catalog) Len() int {
	return len(c.steps)
}

// At returns the step at position i
func (c *Catalog) At(i int) (domain.Step, error) {
	if i < 0 || i >= len(c.steps) {
		return domain.Step{}, &IndexError{Index: i, Len: len(c.steps)}
	}
	return c.steps[i], nil
}

// Steps returns a copy of all steps in order
func (c *Catalog) Steps() []domain.Step {
	return append([]domain.Step(nil), c.steps...)
}

// FirstIndexOf returns the smallest index whose step highlights t
func (c *Catalog) FirstIndexOf(t domain.HighlightTarget) (int, bool) {
	i, ok := c.first[t]
	return i, ok
}
