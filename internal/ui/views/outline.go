package views

import (
	"fmt"
	"strings"

	"gitguide/internal/domain"
)

// OutlineRenderer lists a whole catalog, one entry per step
type OutlineRenderer struct {
	styles *Styles
}

// NewOutlineRenderer creates a new outline renderer
func NewOutlineRenderer(styles *Styles) *OutlineRenderer {
	return &OutlineRenderer{styles: styles}
}

// Render lists steps with the step at current marked; current < 0 marks nothing.
// Verbose adds descriptions and commands under every title.
func (r *OutlineRenderer) Render(steps []domain.Step, current int, verbose bool) string {
	var b strings.Builder
	for i, step := range steps {
		marker := "  "
		titleStyle := r.styles.ZoneLine
		if i == current {
			marker = "▶ "
			titleStyle = r.styles.ZoneHighlight
		}

		title := step.Title
		if step.Emoji != "" {
			title = step.Emoji + "  " + title
		}
		zone := r.styles.Dim.Render("[" + step.Highlight.String() + "]")
		fmt.Fprintf(&b, "%s%2d. %s  %s\n", marker, i+1, titleStyle.Render(title), zone)

		if !verbose {
			continue
		}
		if step.Description != "" {
			fmt.Fprintf(&b, "      %s\n", r.styles.InfoBody.Render(step.Description))
		}
		if step.HasCommand() {
			fmt.Fprintf(&b, "      $ %s\n", r.styles.Command.UnsetBackground().UnsetPadding().Render(step.Command))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
