package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitguide/internal/domain"
	"gitguide/internal/navigation"
	"gitguide/internal/ui/input/types"
	"gitguide/internal/ui/views"
)

// KeyMap lists every binding of the guide
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Zone    key.Binding
	Outline key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", " "),
			key.WithHelp("→/n", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p", "backspace"),
			key.WithHelp("←/p", "prev"),
		),
		Zone: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "jump to zone"),
		),
		Outline: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "outline"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Zone, k.Outline, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Zone},
		{k.Outline, k.Help, k.Quit},
	}
}

// Handler turns terminal input into actions
type Handler struct {
	keys  KeyMap
	mouse bool
}

// New creates an input handler; mouse enables click handling
func New(keys KeyMap, mouse bool) *Handler {
	return &Handler{keys: keys, mouse: mouse}
}

// Keys returns the key map, for help rendering
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey maps a key press to actions
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}
	case key.Matches(msg, h.keys.Next):
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionNext}}
	case key.Matches(msg, h.keys.Prev):
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionPrev}}
	case key.Matches(msg, h.keys.Zone):
		if len(msg.Runes) == 1 {
			if target, ok := domain.HighlightTargetFromOrdinal(int(msg.Runes[0] - '0')); ok {
				return []types.Action{types.SelectZoneAction{Target: target}}
			}
		}
	case key.Matches(msg, h.keys.Outline):
		return []types.Action{types.ShowOutlineAction{}}
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ShowHelpAction{}}
	}
	return nil
}

// HandleMouse maps a left click on a frame region to actions
func (h *Handler) HandleMouse(msg tea.MouseMsg, frame views.Frame) []types.Action {
	if !h.mouse {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	region, ok := frame.RegionAt(msg.X, msg.Y)
	if !ok {
		return nil
	}
	switch region.Kind {
	case views.RegionPrev:
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionPrev}}
	case views.RegionNext:
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionNext}}
	default:
		return []types.Action{types.SelectZoneAction{Target: region.Target}}
	}
}
