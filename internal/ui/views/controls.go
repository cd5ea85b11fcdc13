package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	prevLabel = "◀ prev"
	nextLabel = "next ▶"
)

// ControlsRenderer draws the prev / position / next bar
type ControlsRenderer struct {
	styles *Styles
}

// NewControlsRenderer creates a new controls renderer
func NewControlsRenderer(styles *Styles) *ControlsRenderer {
	return &ControlsRenderer{styles: styles}
}

// PositionText is the "step i / N" indicator for a 1-based index
func PositionText(index, total int) string {
	return fmt.Sprintf("step %d / %d", index, total)
}

// Render lays the controls over width cells. Buttons at a boundary are
// dimmed but stay clickable; the navigation core treats them as no-ops.
func (r *ControlsRenderer) Render(index, total int, atStart, atEnd bool, width int) (string, []Region) {
	prevStyle, nextStyle := r.styles.Control, r.styles.Control
	if atStart {
		prevStyle = r.styles.ControlDisabled
	}
	if atEnd {
		nextStyle = r.styles.ControlDisabled
	}

	left := prevStyle.Render(prevLabel)
	mid := r.styles.Position.Render(PositionText(index, total))
	right := nextStyle.Render(nextLabel)

	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)
	gap1 := max((width-mw)/2-lw, 1)
	gap2 := max(width-lw-gap1-mw-rw, 1)

	line := left + strings.Repeat(" ", gap1) + mid + strings.Repeat(" ", gap2) + right
	nextX := lw + gap1 + mw + gap2

	regions := []Region{
		{Kind: RegionPrev, Rect: Rect{X0: 0, X1: lw - 1}},
		{Kind: RegionNext, Rect: Rect{X0: nextX, X1: nextX + rw - 1}},
	}
	return line, regions
}
