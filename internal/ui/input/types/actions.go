package types

import (
	"gitguide/internal/domain"
	"gitguide/internal/navigation"
)

// Navigation actions
type NavigateAction struct {
	Direction navigation.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// SelectZoneAction jumps to the first step for a diagram zone
type SelectZoneAction struct {
	Target domain.HighlightTarget
}

func (a SelectZoneAction) Type() string { return "select_zone" }

// Pager actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ShowOutlineAction struct{}

func (a ShowOutlineAction) Type() string { return "show_outline" }

// QuitAction ends the session
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
