package views

import (
	"strings"

	"gitguide/internal/domain"
)

// RegionKind says what a click on a region means
type RegionKind int

const (
	RegionZone RegionKind = iota
	RegionPrev
	RegionNext
)

// Rect is an inclusive cell rectangle
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

func (r Rect) offset(dx, dy int) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Region is a clickable area of a rendered frame
type Region struct {
	Kind   RegionKind
	Target domain.HighlightTarget // set for RegionZone
	Rect   Rect
}

// Frame is a rendered screen plus its clickable regions in screen cells
type Frame struct {
	Content string
	Regions []Region
}

// RegionAt returns the region under (x, y)
func (f Frame) RegionAt(x, y int) (Region, bool) {
	for _, r := range f.Regions {
		if r.Rect.Contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}

// canvas stacks blocks vertically and keeps region coordinates absolute
type canvas struct {
	lines   []string
	regions []Region
}

func (c *canvas) add(block string, x int, regions ...Region) {
	y := len(c.lines)
	indent := strings.Repeat(" ", x)
	for _, line := range strings.Split(block, "\n") {
		c.lines = append(c.lines, indent+line)
	}
	for _, r := range regions {
		r.Rect = r.Rect.offset(x, y)
		c.regions = append(c.regions, r)
	}
}

func (c *canvas) blank() {
	c.lines = append(c.lines, "")
}

// frame joins the canvas into a screen of at most height lines.
// The terminal keeps the bottom of a view that is too tall, so the top is
// cut here and regions move up with the remaining lines.
func (c *canvas) frame(height int) Frame {
	lines, regions := c.lines, c.regions
	if cut := len(lines) - height; height > 0 && cut > 0 {
		lines = lines[cut:]
		regions = make([]Region, 0, len(c.regions))
		for _, r := range c.regions {
			r.Rect = r.Rect.offset(0, -cut)
			if r.Rect.Y1 < 0 {
				continue
			}
			r.Rect.Y0 = max(r.Rect.Y0, 0)
			regions = append(regions, r)
		}
	}
	return Frame{
		Content: strings.Join(lines, "\n"),
		Regions: regions,
	}
}
