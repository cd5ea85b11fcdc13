package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"gitguide/internal/eventbus"
)

// FileName is the name of the config file inside the config directory
const FileName = "config.toml"

// Layout selects how the diagram is drawn
type Layout string

const (
	LayoutAuto    Layout = "auto"
	LayoutFull    Layout = "full"
	LayoutCompact Layout = "compact"
)

// Config represents the application configuration
type Config struct {
	Version    int         `toml:"version"`
	Catalog    string      `toml:"catalog"` // empty uses the embedded catalog
	UISettings UISettings  `toml:"ui"`
	Log        LogSettings `toml:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Layout      Layout `toml:"layout"`
	Mouse       bool   `toml:"mouse"`
	ShowHelp    bool   `toml:"show_help"`
	AccentColor string `toml:"accent_color"`
}

// LogSettings controls where diagnostics go
type LogSettings struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Stderr bool   `toml:"stderr"`
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	var errs []error
	switch c.UISettings.Layout {
	case LayoutAuto, LayoutFull, LayoutCompact:
	default:
		errs = append(errs, fmt.Errorf("ui.layout: unknown value %q (want auto, full or compact)", c.UISettings.Layout))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown value %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "gitguide", FileName)
}

// NewConfigService creates a config service for path; an empty path uses DefaultPath.
// bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Path:    cs.filePath,
		Catalog: cfg.Catalog,
	})
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	// relative catalog paths are relative to the config file
	if cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(filepath.Dir(path), cfg.Catalog)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Layout:      LayoutAuto,
			Mouse:       true,
			ShowHelp:    true,
			AccentColor: "51",
		},
		Log: LogSettings{
			File:  "gitguide.log",
			Level: "info",
		},
	}
}
