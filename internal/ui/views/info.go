package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitguide/internal/domain"
)

// InfoRenderer draws the narrative panel of the active step
type InfoRenderer struct {
	styles *Styles
}

// NewInfoRenderer creates a new info panel renderer
func NewInfoRenderer(styles *Styles) *InfoRenderer {
	return &InfoRenderer{styles: styles}
}

// Render draws step inside a box of the given outer width
func (r *InfoRenderer) Render(step domain.Step, width int) string {
	// border (2) + padding (2)
	inner := max(width-4, 20)

	var b strings.Builder
	title := step.Title
	if step.Emoji != "" {
		title = step.Emoji + "  " + title
	}
	b.WriteString(r.styles.InfoTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(r.styles.InfoBody.Width(inner).Render(step.Description))

	if step.Example != "" {
		b.WriteString("\n\n")
		b.WriteString(r.styles.InfoExample.Width(inner).Render(step.Example))
	}

	if step.CommandLabel != "" || step.HasCommand() {
		b.WriteString("\n")
	}
	if step.CommandLabel != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.CommandLabel.Width(inner).Render(step.CommandLabel))
	}
	if step.HasCommand() {
		b.WriteString("\n")
		b.WriteString(r.styles.Command.Render(step.Command))
	}

	return r.styles.InfoBox.Width(width - 2).Render(b.String())
}

// RenderPlain draws step for line-oriented output, without a box
func (r *InfoRenderer) RenderPlain(step domain.Step, width int) string {
	var lines []string
	title := step.Title
	if step.Emoji != "" {
		title = step.Emoji + "  " + title
	}
	lines = append(lines, r.styles.InfoTitle.Render(title))
	lines = append(lines, lipgloss.NewStyle().Width(width).Render(step.Description))
	if step.Example != "" {
		lines = append(lines, r.styles.InfoExample.Width(width).Render(step.Example))
	}
	if step.CommandLabel != "" {
		lines = append(lines, r.styles.CommandLabel.Render(step.CommandLabel))
	}
	if step.HasCommand() {
		lines = append(lines, "  $ "+r.styles.Command.UnsetBackground().UnsetPadding().Render(step.Command))
	}
	return strings.Join(lines, "\n")
}
