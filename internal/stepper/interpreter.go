package stepper

import (
	"fmt"
	"strconv"
	"strings"

	"gitguide/internal/domain"
	"gitguide/internal/navigation"
	"gitguide/internal/ui/views"
)

// UnknownCommandError is returned for input that names no command
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (type help for commands)", e.Input)
}

// Commands lists the command words for completion
var Commands = []string{"next", "prev", "show", "zone", "list", "help", "quit"}

// Interpreter executes stepper commands against a navigation session.
// It never touches a terminal, so it can be driven line by line.
type Interpreter struct {
	nav     *navigation.Service
	styles  *views.Styles
	info    *views.InfoRenderer
	outline *views.OutlineRenderer
	width   int
}

// NewInterpreter creates an interpreter; width wraps step descriptions
func NewInterpreter(nav *navigation.Service, styles *views.Styles, width int) *Interpreter {
	if width <= 0 {
		width = 80
	}
	return &Interpreter{
		nav:     nav,
		styles:  styles,
		info:    views.NewInfoRenderer(styles),
		outline: views.NewOutlineRenderer(styles),
		width:   width,
	}
}

// Exec runs one input line. It returns the text to print and whether the session should end.
func (in *Interpreter) Exec(line string) (string, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, nil
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "next", "n":
		in.nav.Advance()
		return in.Show(), false, nil

	case "prev", "p":
		in.nav.Retreat()
		return in.Show(), false, nil

	case "show", "s":
		return in.Show(), false, nil

	case "zone", "z":
		if len(args) == 0 {
			return "", false, fmt.Errorf("usage: zone <name|1-8>")
		}
		target, err := parseZone(strings.Join(args, "-"))
		if err != nil {
			return "", false, err
		}
		return in.selectZone(target), false, nil

	case "list", "ls":
		return in.outline.Render(in.nav.Catalog().Steps(), in.nav.Cursor(), false), false, nil

	case "help", "?":
		return HelpText(), false, nil

	case "quit", "q", "exit":
		return "", true, nil
	}

	if n, err := strconv.Atoi(command); err == nil && len(args) == 0 {
		if target, ok := domain.HighlightTargetFromOrdinal(n); ok {
			return in.selectZone(target), false, nil
		}
	}
	return "", false, &UnknownCommandError{Input: fields[0]}
}

// Show renders the current step with its position
func (in *Interpreter) Show() string {
	index, total := in.nav.Position()
	header := in.styles.Position.Render(fmt.Sprintf("%s  ·  %s", views.PositionText(index, total), in.nav.CurrentHighlight().Label()))
	return header + "\n" + in.info.RenderPlain(in.nav.Current(), in.width)
}

func (in *Interpreter) selectZone(target domain.HighlightTarget) string {
	if !in.nav.SelectByHighlight(target) {
		index, total := in.nav.Position()
		return fmt.Sprintf("no step covers %s; still on %s", target.Label(), views.PositionText(index, total))
	}
	return in.Show()
}

func parseZone(s string) (domain.HighlightTarget, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if target, ok := domain.HighlightTargetFromOrdinal(n); ok {
			return target, nil
		}
		return 0, fmt.Errorf("zone number must be 1-8, got %d", n)
	}
	return domain.ParseHighlightTarget(s)
}

// HelpText lists the stepper commands
func HelpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	b.WriteString("  next, n             Next step\n")
	b.WriteString("  prev, p             Previous step\n")
	b.WriteString("  show, s             Show the current step again\n")
	b.WriteString("  zone, z <name>      Jump to the first step about a zone\n")
	b.WriteString("  1-8                 Jump to a zone by number\n")
	b.WriteString("  list, ls            List every step\n")
	b.WriteString("  help, ?             Show this help\n")
	b.WriteString("  quit, q, exit       Leave\n")
	b.WriteString("\nZones:\n")
	for _, t := range domain.AllHighlightTargets() {
		fmt.Fprintf(&b, "  %d  %-20s %s\n", t.Ordinal(), t.String(), t.Label())
	}
	return strings.TrimRight(b.String(), "\n")
}
