package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitguide/internal/domain"
)

// Geometry of the full diagram, in cells
const (
	boxInnerWidth = 14
	boxWidth      = boxInnerWidth + 2
	boxHeight     = 4
	boxGap        = 1
	localBoxes    = 4
	localWidth    = localBoxes*boxWidth + (localBoxes-1)*boxGap
	separator     = " ┊ " // 3 cells
	separatorX    = localWidth + 1
	remoteX       = localWidth + 3

	// DiagramWidth is the width of the full diagram
	DiagramWidth = remoteX + boxWidth
)

type stageBox struct {
	target   domain.HighlightTarget
	label    string
	subLabel string
}

var stageBoxes = []stageBox{
	{domain.WorkingTree, "working tree", ""},
	{domain.StagingArea, "staging area", "(index)"},
	{domain.LocalBranch, "local branch", "master"},
	{domain.RemoteTrackingRef, "tracking ref", "origin/master"},
	{domain.RemoteBranch, "remote branch", "master"},
}

// boxX returns the left edge of stage box i (0..3 local, 4 remote)
func boxX(i int) int {
	if i >= localBoxes {
		return remoteX
	}
	return i * (boxWidth + boxGap)
}

func center(i int) int {
	return boxX(i) + boxWidth/2
}

type transition struct {
	target      domain.HighlightTarget
	from, to    int // stage box indexes
	dashedFrom  int // stage box index where the dashed part starts, -1 for none
	dashedUntil int
}

// One row per transition, top to bottom
var transitions = []transition{
	{domain.StagingArea, 0, 1, -1, -1},
	{domain.LocalBranch, 1, 2, -1, -1},
	{domain.RemoteBranch, 2, 4, -1, -1},
	{domain.RemoteTrackingRef, 4, 3, -1, -1},
	{domain.Pull, 4, 0, -1, -1},
	{domain.Checkout, 2, 0, -1, -1},
	{domain.MergeRebase, 3, 0, 3, 2},
}

// DiagramRenderer draws the workflow diagram
type DiagramRenderer struct {
	styles *Styles
}

// NewDiagramRenderer creates a new diagram renderer
func NewDiagramRenderer(styles *Styles) *DiagramRenderer {
	return &DiagramRenderer{styles: styles}
}

// RenderFull draws boxes and arrows. Regions are relative to the block.
func (r *DiagramRenderer) RenderFull(highlight domain.HighlightTarget) (string, []Region) {
	var rows []string
	var regions []Region

	// header
	local := lipgloss.PlaceHorizontal(localWidth, lipgloss.Center, r.styles.Section.Render("Local Repo"))
	remote := lipgloss.PlaceHorizontal(boxWidth, lipgloss.Center, r.styles.Section.Render("Remote Repo"))
	rows = append(rows, local+r.styles.Timeline.Render(separator)+remote)

	// stage boxes
	top := len(rows)
	parts := make([]string, 0, len(stageBoxes)*2)
	for i, b := range stageBoxes {
		if i > 0 {
			if i == localBoxes {
				parts = append(parts, r.styles.Timeline.Render(strings.TrimSuffix(strings.Repeat(separator+"\n", boxHeight), "\n")))
			} else {
				parts = append(parts, strings.Repeat(" ", boxGap))
			}
		}
		parts = append(parts, r.renderBox(b, b.target == highlight))
		regions = append(regions, Region{
			Kind:   RegionZone,
			Target: b.target,
			Rect:   Rect{X0: boxX(i), Y0: top, X1: boxX(i) + boxWidth - 1, Y1: top + boxHeight - 1},
		})
	}
	rows = append(rows, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n")...)

	// transitions
	rows = append(rows, r.timeline())
	for _, tr := range transitions {
		line, rect := r.renderTransition(tr, tr.target == highlight)
		rect.Y0, rect.Y1 = len(rows), len(rows)
		regions = append(regions, Region{Kind: RegionZone, Target: tr.target, Rect: rect})
		rows = append(rows, line)
	}
	rows = append(rows, r.timeline())

	return strings.Join(rows, "\n"), regions
}

func (r *DiagramRenderer) renderBox(b stageBox, highlighted bool) string {
	style := r.styles.Box.BorderForeground(ZoneColor(b.target))
	if highlighted {
		style = r.styles.BoxHighlight
	}
	return style.Render(b.label + "\n" + b.subLabel)
}

// background returns an empty diagram row with the stage timelines drawn
func background() []rune {
	row := []rune(strings.Repeat(" ", DiagramWidth))
	for i := range stageBoxes {
		row[center(i)] = '┆'
	}
	row[separatorX] = '┊'
	return row
}

func (r *DiagramRenderer) timeline() string {
	return r.styles.Timeline.Render(string(background()))
}

func (r *DiagramRenderer) renderTransition(tr transition, highlighted bool) (string, Rect) {
	row := background()
	from, to := center(tr.from), center(tr.to)
	lo, hi := min(from, to), max(from, to)

	arrow := []rune(strings.Repeat("─", hi-lo+1))
	if to > from {
		arrow[len(arrow)-1] = '▶'
	} else {
		arrow[0] = '◀'
	}
	if tr.dashedFrom >= 0 {
		a, b := center(tr.dashedFrom), center(tr.dashedUntil)
		for x := min(a, b) + 1; x < max(a, b); x++ {
			arrow[x-lo] = '╌'
		}
	}
	label := []rune(" " + tr.target.Command() + " ")
	start := (len(arrow) - len(label)) / 2
	copy(arrow[start:], label)

	style := r.styles.Arrow
	if highlighted {
		style = r.styles.ArrowHighlight
	}
	line := r.styles.Timeline.Render(string(row[:lo])) +
		style.Render(string(arrow)) +
		r.styles.Timeline.Render(string(row[hi+1:]))

	return line, Rect{X0: lo, X1: hi}
}

// RenderCompact lists the zones one per line for narrow terminals
func (r *DiagramRenderer) RenderCompact(highlight domain.HighlightTarget) (string, []Region) {
	var rows []string
	var regions []Region

	rows = append(rows, r.styles.Section.Render("Zones"))
	for _, t := range domain.AllHighlightTargets() {
		marker := " "
		style := r.styles.ZoneLine
		if t == highlight {
			marker = "▶"
			style = r.styles.ZoneHighlight
		}
		text := fmt.Sprintf("%s %d %s", marker, t.Ordinal(), t.Label())
		if cmd := t.Command(); cmd != "" && cmd != t.Label() {
			text += "  (" + cmd + ")"
		}
		line := style.Render(text)
		regions = append(regions, Region{
			Kind:   RegionZone,
			Target: t,
			Rect:   Rect{X0: 0, Y0: len(rows), X1: lipgloss.Width(line) - 1, Y1: len(rows)},
		})
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n"), regions
}
