package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gitguide/internal/domain"
)

// CoverageError lists the targets that no step points at
type CoverageError struct {
	Missing []domain.HighlightTarget
}

func (e *CoverageError) Error() string {
	names := make([]string, len(e.Missing))
	for i, t := range e.Missing {
		names[i] = t.String()
	}
	return fmt.Sprintf("no step highlights: %s", strings.Join(names, ", "))
}

// MissingTargets returns, in declaration order, every target without a step
func MissingTargets(c *Catalog) []domain.HighlightTarget {
	var missing []domain.HighlightTarget
	for _, t := range domain.AllHighlightTargets() {
		if _, ok := c.FirstIndexOf(t); !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

// Validate checks authoring consistency: every target should be reachable
// by click and every step needs a title.
func Validate(c *Catalog) error {
	var errs []error
	for i, s := range c.steps {
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, fmt.Errorf("step %d has no title", i+1))
		}
	}
	if missing := MissingTargets(c); len(missing) > 0 {
		errs = append(errs, &CoverageError{Missing: missing})
	}
	return errors.Join(errs...)
}
