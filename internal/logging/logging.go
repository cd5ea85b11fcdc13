// Package logging builds the application logger.
//
// The TUI owns the terminal, so by default records only go to a log file.
// Stderr output is opt-in and meant for the plain stepper.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"gitguide/internal/eventbus"
)

// Options selects log destinations
type Options struct {
	File   string // empty disables the file handler
	Level  string
	Stderr io.Writer // nil disables the stderr handler
}

// ParseLevel maps a config level name to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// New returns a logger and a closer for the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, handlerOpts))
		closer = f
	}
	if opts.Stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Stderr, handlerOpts))
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler), closer, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Subscribe logs the bus events worth keeping in the log file
func Subscribe(bus eventbus.EventBus, logger *slog.Logger) {
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.CatalogLoadedEvent)
		logger.Info("catalog loaded", "source", ev.Source, "steps", ev.Steps)
		for _, t := range ev.Missing {
			logger.Warn("no step highlights zone; clicking it does nothing", "zone", t.String())
		}
	})
	bus.Subscribe(eventbus.EventStepChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.StepChangedEvent)
		logger.Debug("step changed", "from", ev.From, "to", ev.To, "cause", string(ev.Cause))
	})
	bus.Subscribe(eventbus.EventZoneSelected, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ZoneSelectedEvent)
		if !ev.Matched {
			logger.Warn("zone has no step", "zone", ev.Target.String())
			return
		}
		logger.Debug("zone selected", "zone", ev.Target.String(), "step", ev.Index)
	})
	bus.Subscribe(eventbus.EventPagerOpened, func(e eventbus.DomainEvent) {
		logger.Debug("pager opened", "content", e.(eventbus.PagerOpenedEvent).Content)
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ConfigLoadedEvent)
		logger.Info("config loaded", "path", ev.Path)
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		logger.Info("config saved", "path", e.(eventbus.ConfigSavedEvent).Path)
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ErrorEvent)
		logger.Error(ev.Message, "error", ev.Err)
	})
	bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
		logger.Info("ui ready")
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
