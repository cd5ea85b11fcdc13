package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"gitguide/internal/config"
	"gitguide/internal/eventbus"
	"gitguide/internal/navigation"
	"gitguide/internal/ui/input"
	inputtypes "gitguide/internal/ui/input/types"
	"gitguide/internal/ui/views"
)

// ReadyMarker is printed with every frame when the ready marker is enabled
const ReadyMarker = "__READY__"

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	nav    *navigation.Service

	width       int
	height      int
	help        help.Model
	status      string
	statusError bool
	inPagerMode bool // tracks if we're currently in pager mode
	ready       bool
	readyMarker bool

	renderer     *views.Renderer
	outline      *views.OutlineRenderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	pager        *PagerOps

	// last rendered frame, used to resolve mouse clicks
	frame views.Frame
}

// NewModel creates a new UI model around a navigation session
func NewModel(nav *navigation.Service, bus eventbus.EventBus, cfg *config.Config) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	styles := views.NewStyles(cfg.UISettings.AccentColor)
	return &Model{
		bus:          bus,
		config:       cfg,
		nav:          nav,
		help:         help.New(),
		renderer:     views.NewRenderer(styles),
		outline:      views.NewOutlineRenderer(styles),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(input.DefaultKeyMap(), cfg.UISettings.Mouse),
		pager:        NewPagerOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// SetReadyMarker makes every frame carry ReadyMarker
func (m *Model) SetReadyMarker(enabled bool) {
	m.readyMarker = enabled
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.ready = true
			m.bus.Publish(eventbus.AppReadyEvent{})
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.processActions(m.inputHandler.HandleKey(msg))

	case tea.MouseMsg:
		return m, m.processActions(m.inputHandler.HandleMouse(msg, m.frame))

	case pagerMsg:
		if msg.err != nil {
			m.bus.Publish(eventbus.ErrorEvent{Message: msg.content + " pager failed", Err: msg.err})
			return m, m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.content, msg.err), true)
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil
	}

	return m, nil
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Navigate(a.Direction)

	case inputtypes.SelectZoneAction:
		// no matching step leaves the cursor where it is
		m.nav.SelectByHighlight(a.Target)

	case inputtypes.ShowHelpAction:
		content := m.helpRenderer.RenderHelp(m.inputHandler.Keys(), m.config.UISettings.Mouse)
		return m.openPager("help", content)

	case inputtypes.ShowOutlineAction:
		content := m.outline.Render(m.nav.Catalog().Steps(), m.nav.Cursor(), true)
		return m.openPager("outline", content)

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// openPager returns a command that shows content using ov pager
func (m *Model) openPager(name, content string) tea.Cmd {
	m.bus.Publish(eventbus.PagerOpenedEvent{Content: name})
	program := m.pager.program
	if program == nil {
		return func() tea.Msg {
			return pagerMsg{content: name, err: errNoProgram}
		}
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{content: name, err: err}
	}
}

func (m *Model) setStatus(status string, isError bool) tea.Cmd {
	m.status = status
	m.statusError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return m.frame.Content
	}
	if m.width == 0 {
		return "Loading..."
	}

	index, total := m.nav.Position()
	state := views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Layout:      m.config.UISettings.Layout,
		Step:        m.nav.Current(),
		Highlight:   m.nav.CurrentHighlight(),
		Index:       index,
		Total:       total,
		AtStart:     m.nav.AtStart(),
		AtEnd:       m.nav.AtEnd(),
		Status:      m.status,
		StatusError: m.statusError,
	}
	if m.config.UISettings.ShowHelp {
		state.HelpView = m.help.View(m.inputHandler.Keys())
	}

	if m.readyMarker {
		// the marker takes the last row
		state.Height = max(state.Height-1, 1)
	}
	m.frame = m.renderer.Render(state)
	if m.readyMarker {
		return m.frame.Content + "\n" + ReadyMarker
	}
	return m.frame.Content
}
