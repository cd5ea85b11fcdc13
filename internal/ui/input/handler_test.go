package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitguide/internal/domain"
	"gitguide/internal/navigation"
	"gitguide/internal/ui/input/types"
	"gitguide/internal/ui/views"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHandleKey(t *testing.T) {
	h := New(DefaultKeyMap(), true)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []types.Action
	}{
		{"right", tea.KeyMsg{Type: tea.KeyRight}, []types.Action{types.NavigateAction{Direction: navigation.DirectionNext}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []types.Action{types.NavigateAction{Direction: navigation.DirectionNext}}},
		{"n", runeKey('n'), []types.Action{types.NavigateAction{Direction: navigation.DirectionNext}}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, []types.Action{types.NavigateAction{Direction: navigation.DirectionPrev}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []types.Action{types.NavigateAction{Direction: navigation.DirectionPrev}}},
		{"1", runeKey('1'), []types.Action{types.SelectZoneAction{Target: domain.WorkingTree}}},
		{"8", runeKey('8'), []types.Action{types.SelectZoneAction{Target: domain.MergeRebase}}},
		{"9", runeKey('9'), nil},
		{"o", runeKey('o'), []types.Action{types.ShowOutlineAction{}}},
		{"?", runeKey('?'), []types.Action{types.ShowHelpAction{}}},
		{"q", runeKey('q'), []types.Action{types.QuitAction{}}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []types.Action{types.QuitAction{}}},
		{"x", runeKey('x'), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.HandleKey(tt.msg))
		})
	}
}

func TestHandleMouse(t *testing.T) {
	frame := views.Frame{Regions: []views.Region{
		{Kind: views.RegionZone, Target: domain.Checkout, Rect: views.Rect{X0: 2, Y0: 5, X1: 20, Y1: 5}},
		{Kind: views.RegionPrev, Rect: views.Rect{X0: 2, Y0: 10, X1: 7, Y1: 10}},
		{Kind: views.RegionNext, Rect: views.Rect{X0: 30, Y0: 10, X1: 35, Y1: 10}},
	}}
	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	h := New(DefaultKeyMap(), true)
	assert.Equal(t, []types.Action{types.SelectZoneAction{Target: domain.Checkout}}, h.HandleMouse(click(10, 5), frame))
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: navigation.DirectionPrev}}, h.HandleMouse(click(2, 10), frame))
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: navigation.DirectionNext}}, h.HandleMouse(click(35, 10), frame))
	assert.Nil(t, h.HandleMouse(click(25, 10), frame))

	release := click(10, 5)
	release.Action = tea.MouseActionRelease
	assert.Nil(t, h.HandleMouse(release, frame))

	right := click(10, 5)
	right.Button = tea.MouseButtonRight
	assert.Nil(t, h.HandleMouse(right, frame))

	disabled := New(DefaultKeyMap(), false)
	assert.Nil(t, disabled.HandleMouse(click(10, 5), frame))
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	require.Len(t, keys.ShortHelp(), 6)
	assert.Len(t, keys.FullHelp(), 3)
	assert.Equal(t, "quit", keys.Quit.Help().Desc)
}
