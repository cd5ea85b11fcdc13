// Package navigation owns the step cursor of a guided session.
//
// The cursor always satisfies 0 <= cursor < catalog length. Advance and
// Retreat saturate at the ends; SelectByHighlight jumps to the first step
// for a zone and leaves the cursor alone when there is none.
package navigation

import (
	"gitguide/internal/catalog"
	"gitguide/internal/domain"
	"gitguide/internal/eventbus"
)

// Service handles all navigation logic for one session
type Service struct {
	state   *State
	catalog *catalog.Catalog
	bus     eventbus.EventBus
}

// NewService creates a navigation service positioned on the first step.
// A nil bus disables events.
func NewService(c *catalog.Catalog, bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state:   &State{Cursor: 0},
		catalog: c,
		bus:     bus,
	}
}

// Catalog returns the catalog being navigated
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Cursor returns the current step index
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// Len returns the number of steps
func (s *Service) Len() int {
	return s.catalog.Len()
}

// Current returns the active step
func (s *Service) Current() domain.Step {
	step, err := s.catalog.At(s.state.Cursor)
	if err != nil {
		// unreachable while the cursor invariant holds
		panic(err)
	}
	return step
}

// CurrentHighlight returns the zone the active step points at
func (s *Service) CurrentHighlight() domain.HighlightTarget {
	return s.Current().Highlight
}

// AtStart reports whether Retreat would be a no-op
func (s *Service) AtStart() bool {
	return s.state.Cursor == 0
}

// AtEnd reports whether Advance would be a no-op
func (s *Service) AtEnd() bool {
	return s.state.Cursor == s.maxIndex()
}

// Position returns the 1-based step number and the total, for "step i of N"
func (s *Service) Position() (int, int) {
	return s.state.Cursor + 1, s.Len()
}

// Navigate moves one step in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionNext:
		s.Advance()
	case DirectionPrev:
		s.Retreat()
	}
}

// Advance moves to the next step, staying put on the last one
func (s *Service) Advance() {
	s.moveTo(s.clampIndex(s.state.Cursor+1), domain.CauseAdvance)
}

// Retreat moves to the previous step, staying put on the first one
func (s *Service) Retreat() {
	s.moveTo(s.clampIndex(s.state.Cursor-1), domain.CauseRetreat)
}

// SelectByHighlight jumps to the first step highlighting target.
// It reports whether such a step exists; when none does the cursor is
// left unchanged.
func (s *Service) SelectByHighlight(target domain.HighlightTarget) bool {
	index, ok := s.catalog.FirstIndexOf(target)
	if !ok {
		s.bus.Publish(eventbus.ZoneSelectedEvent{Target: target, Matched: false, Index: -1})
		return false
	}

	s.bus.Publish(eventbus.ZoneSelectedEvent{Target: target, Matched: true, Index: index})
	s.moveTo(index, domain.CauseSelect)
	return true
}

func (s *Service) moveTo(index int, cause domain.StepCause) {
	oldCursor := s.state.Cursor
	s.state.Cursor = index

	if oldCursor != s.state.Cursor {
		s.bus.Publish(eventbus.StepChangedEvent{
			From:  oldCursor,
			To:    s.state.Cursor,
			Cause: cause,
		})
	}
}

func (s *Service) maxIndex() int {
	return s.catalog.Len() - 1
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if last := s.maxIndex(); index > last {
		return last
	}
	return index
}
