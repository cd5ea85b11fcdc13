package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"gitguide/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogLoaded = domain.EventCatalogLoaded
	EventStepChanged   = domain.EventStepChanged
	EventZoneSelected  = domain.EventZoneSelected
	EventPagerOpened   = domain.EventPagerOpened
	EventError         = domain.EventError
	EventConfigLoaded  = domain.EventConfigLoaded
	EventConfigSaved   = domain.EventConfigSaved
	EventAppReady      = domain.EventAppReady
)

// Re-export domain event types
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type StepChangedEvent = domain.StepChangedEvent
type ZoneSelectedEvent = domain.ZoneSelectedEvent
type PagerOpenedEvent = domain.PagerOpenedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

const queueSize = 256

// Bus is the channel backed EventBus
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]*subscription
	eventChan chan DomainEvent
	logger    *slog.Logger
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once

	// held for reading across the closed check and the send, so Close
	// cannot slip in between and strand a queued event
	sendMu sync.RWMutex
	closed bool
}

type subscription struct {
	handler EventHandler
}

// New creates a new event bus and starts its dispatcher
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &Bus{
		handlers:  make(map[EventType][]*subscription),
		eventChan: make(chan DomainEvent, queueSize),
		logger:    logger,
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for the subscribers. It never blocks: when the
// queue is full the event is dropped.
func (b *Bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", "type", event.Type())
	b.enqueue(event)
}

// enqueue reports whether the event will reach the dispatcher
func (b *Bus) enqueue(event DomainEvent) bool {
	b.sendMu.RLock()
	defer b.sendMu.RUnlock()

	if b.closed {
		return false
	}

	select {
	case b.eventChan <- event:
		return true
	default:
		b.logger.Warn("event bus queue full, dropping event", "type", event.Type())
		return false
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscription{handler: handler}
	b.handlers[eventType] = append(b.handlers[eventType], sub)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s == sub {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close drains queued events to their handlers and stops the dispatcher
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		b.sendMu.Lock()
		b.closed = true
		close(b.quit)
		b.sendMu.Unlock()

		b.wg.Wait()
	})
}

func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

// deliver calls handlers in subscription order on the dispatcher goroutine
func (b *Bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]*subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *Bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				"type", event.Type(),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	h(event)
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
