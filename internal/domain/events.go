package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded EventType = "CatalogLoaded"
	EventStepChanged   EventType = "StepChanged"
	EventZoneSelected  EventType = "ZoneSelected"
	EventPagerOpened   EventType = "PagerOpened"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventAppReady      EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// StepCause records which intent moved the cursor
type StepCause string

const (
	CauseAdvance StepCause = "advance"
	CauseRetreat StepCause = "retreat"
	CauseSelect  StepCause = "select"
)

// CatalogLoadedEvent is emitted once the step catalog is ready
type CatalogLoadedEvent struct {
	Source  string // file path, or "embedded"
	Steps   int
	Missing []HighlightTarget // targets without any step
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// StepChangedEvent is emitted when the cursor moves
type StepChangedEvent struct {
	From  int
	To    int
	Cause StepCause
}

func (e StepChangedEvent) Type() EventType { return EventStepChanged }

// ZoneSelectedEvent is emitted for every select-by-highlight request,
// including ones that matched no step
type ZoneSelectedEvent struct {
	Target  HighlightTarget
	Matched bool
	Index   int // -1 when nothing matched
}

func (e ZoneSelectedEvent) Type() EventType { return EventZoneSelected }

// PagerOpenedEvent is emitted when content is handed to the pager
type PagerOpenedEvent struct {
	Content string // "help" or "outline"
}

func (e PagerOpenedEvent) Type() EventType { return EventPagerOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Catalog string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted after the first frame is drawn
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
