package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"gitguide/internal/domain"
	"gitguide/internal/ui/input"
)

var errNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	noteStyle    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noteStyle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// RenderHelp generates the full help text for the pager
func (r *HelpRenderer) RenderHelp(keys input.KeyMap, mouse bool) string {
	var help strings.Builder

	help.WriteString(r.titleStyle.Render("gitguide Help"))
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	r.writeBinding(&help, "→ l n space", keys.Next.Help().Desc)
	r.writeBinding(&help, "← h p bksp", keys.Prev.Help().Desc)
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Zones"))
	help.WriteString("\n")
	for _, t := range domain.AllHighlightTargets() {
		desc := t.Label()
		if cmd := t.Command(); cmd != "" {
			desc += "  (" + cmd + ")"
		}
		r.writeBinding(&help, fmt.Sprintf("%d", t.Ordinal()), desc)
	}
	help.WriteString(r.noteStyle.Render("  A zone jumps to the first step that explains it."))
	help.WriteString("\n")

	if mouse {
		help.WriteString(r.sectionStyle.Render("Mouse"))
		help.WriteString("\n")
		r.writeBinding(&help, "click", "a box or arrow jumps to its zone")
		r.writeBinding(&help, "click", "◀ prev / next ▶ move one step")
		help.WriteString("\n")
	}

	help.WriteString(r.sectionStyle.Render("Other"))
	help.WriteString("\n")
	r.writeBinding(&help, keys.Outline.Help().Key, "Show every step")
	r.writeBinding(&help, keys.Help.Help().Key, "Show this help")
	r.writeBinding(&help, "q ctrl+c", "Quit")

	return strings.TrimRight(help.String(), "\n")
}

func (r *HelpRenderer) writeBinding(b *strings.Builder, keys, desc string) {
	// pad on the raw text so styled keys stay aligned
	pad := strings.Repeat(" ", max(12-lipgloss.Width(keys), 1))
	fmt.Fprintf(b, "  %s%s %s\n", r.keyStyle.Render(keys), pad, r.descStyle.Render(desc))
}

// PagerOps hands content to the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays content using ov
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// don't write the document back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
