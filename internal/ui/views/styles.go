package views

import (
	"github.com/charmbracelet/lipgloss"

	"gitguide/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Accent          lipgloss.Color
	Title           lipgloss.Style
	Subtitle        lipgloss.Style
	Section         lipgloss.Style
	Dim             lipgloss.Style
	Timeline        lipgloss.Style
	Box             lipgloss.Style
	BoxHighlight    lipgloss.Style
	Arrow           lipgloss.Style
	ArrowHighlight  lipgloss.Style
	ZoneLine        lipgloss.Style
	ZoneHighlight   lipgloss.Style
	InfoBox         lipgloss.Style
	InfoTitle       lipgloss.Style
	InfoBody        lipgloss.Style
	InfoExample     lipgloss.Style
	CommandLabel    lipgloss.Style
	Command         lipgloss.Style
	Control         lipgloss.Style
	ControlDisabled lipgloss.Style
	Position        lipgloss.Style
	Status          lipgloss.Style
	StatusError     lipgloss.Style
	Help            lipgloss.Style
}

// NewStyles creates a new Styles instance; accent is the emphasis color
func NewStyles(accent string) *Styles {
	if accent == "" {
		accent = "51"
	}
	a := lipgloss.Color(accent)
	return &Styles{
		Accent: a,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Timeline: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(boxInnerWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("252")),
		BoxHighlight: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(a).
			Width(boxInnerWidth).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(a),
		Arrow:          lipgloss.NewStyle().Foreground(lipgloss.Color("30")), // teal
		ArrowHighlight: lipgloss.NewStyle().Foreground(a).Bold(true),
		ZoneLine:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ZoneHighlight:  lipgloss.NewStyle().Foreground(a).Bold(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InfoTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		InfoBody:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		InfoExample:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		CommandLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		Command: lipgloss.NewStyle().
			Foreground(a).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Control:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		ControlDisabled: lipgloss.NewStyle().Faint(true),
		Position:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:            lipgloss.NewStyle().Faint(true),
	}
}

// ZoneColor returns the border color of a stage box
func ZoneColor(t domain.HighlightTarget) lipgloss.Color {
	switch t {
	case domain.WorkingTree:
		return lipgloss.Color("78") // green
	case domain.StagingArea:
		return lipgloss.Color("214") // yellow
	case domain.LocalBranch:
		return lipgloss.Color("33") // blue
	case domain.RemoteTrackingRef:
		return lipgloss.Color("245") // gray
	case domain.RemoteBranch:
		return lipgloss.Color("203") // red
	default:
		return lipgloss.Color("30")
	}
}
