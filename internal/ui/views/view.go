package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitguide/internal/config"
	"gitguide/internal/domain"
)

// Padding of the whole screen, in cells
const (
	padX = 2
	padY = 1
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Layout      config.Layout
	Step        domain.Step
	Highlight   domain.HighlightTarget
	Index       int // 1-based
	Total       int
	AtStart     bool
	AtEnd       bool
	Status      string
	StatusError bool
	HelpView    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	diagram  *DiagramRenderer
	info     *InfoRenderer
	controls *ControlsRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{
		styles:   styles,
		diagram:  NewDiagramRenderer(styles),
		info:     NewInfoRenderer(styles),
		controls: NewControlsRenderer(styles),
	}
}

// Styles exposes the styles the renderer was built with
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Info exposes the info panel renderer for plain output
func (r *Renderer) Info() *InfoRenderer {
	return r.info
}

// UseCompact reports whether the zone list replaces the drawn diagram
func UseCompact(layout config.Layout, width int) bool {
	switch layout {
	case config.LayoutCompact:
		return true
	case config.LayoutFull:
		return false
	default:
		return width > 0 && width < DiagramWidth+2*padX
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) Frame {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	contentWidth := termWidth - 2*padX
	compact := UseCompact(state.Layout, state.Width)
	if !compact {
		contentWidth = min(contentWidth, DiagramWidth)
	}
	contentWidth = max(contentWidth, 30)

	c := &canvas{}
	for i := 0; i < padY; i++ {
		c.blank()
	}

	c.add(r.renderTitle(contentWidth), padX)
	c.blank()

	var diagram string
	var regions []Region
	if compact {
		diagram, regions = r.diagram.RenderCompact(state.Highlight)
	} else {
		diagram, regions = r.diagram.RenderFull(state.Highlight)
	}
	c.add(diagram, padX, regions...)
	c.blank()

	c.add(r.info.Render(state.Step, contentWidth), padX)
	c.blank()

	controls, controlRegions := r.controls.Render(state.Index, state.Total, state.AtStart, state.AtEnd, contentWidth)
	c.add(controls, padX, controlRegions...)

	if state.Status != "" {
		style := r.styles.Status
		if state.StatusError {
			style = r.styles.StatusError
		}
		c.add(style.Render(state.Status), padX)
	}

	// the help line is the first thing dropped on a short terminal
	if state.HelpView != "" && (state.Height <= 0 || len(c.lines) < state.Height) {
		// push the help line to the bottom when there is room
		if state.Height > 0 {
			for len(c.lines) < state.Height-2 {
				c.blank()
			}
		} else {
			c.blank()
		}
		c.add(r.styles.Help.Render(state.HelpView), padX)
	}

	return c.frame(state.Height)
}

func (r *Renderer) renderTitle(width int) string {
	logo := r.styles.Title.Render("gitguide")
	subtitle := r.styles.Subtitle.Render("the git workflow, step by step")

	gap := width - lipgloss.Width(logo) - lipgloss.Width(subtitle)
	if gap < 2 {
		return logo
	}
	return logo + strings.Repeat(" ", gap) + subtitle
}
