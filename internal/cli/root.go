// Package cli provides the command-line interface for gitguide.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gitguide/internal/catalog"
	"gitguide/internal/config"
	"gitguide/internal/eventbus"
	"gitguide/internal/logging"
)

// Version information (set at build time).
var Version = "dev"

// skipSetup marks commands that run without loading the config file
const skipSetup = "gitguide/skip-setup"

// app holds what the root command prepares for its subcommands
type app struct {
	cfgFile  string
	catalog  string
	plain    bool
	logFile  string
	logLevel string

	configSvc config.ConfigService
	cfg       *config.Config
	logger    *slog.Logger
	bus       *eventbus.Bus
	logCloser io.Closer
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gitguide",
		Short: "gitguide - an interactive tour of the git workflow",
		Long: `gitguide walks through the everyday git workflow one step at a time.

A diagram of the working tree, the index, the local and remote branches
shows where each command moves your changes. Step with the arrow keys,
jump to a zone with 1-8, or click the diagram.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		}),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: "+config.DefaultPath()+")")
	flags.StringVar(&a.catalog, "catalog", "", "step catalog TOML file (default: built-in tour)")
	flags.BoolVar(&a.plain, "plain", false, "line-oriented stepper instead of the full-screen UI")
	flags.StringVar(&a.logFile, "log-file", "", "log file, empty string disables file logging")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newStepsCommand(a))
	rootCmd.AddCommand(newValidateCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))
	rootCmd.AddCommand(newVersionCommand(a))

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// setup loads configuration, applies flag overrides and starts logging
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Annotations[skipSetup] == "true" {
		a.cfg = config.DefaultConfig()
		a.logger = slog.New(slog.DiscardHandler)
		a.bus = eventbus.New(a.logger)
		a.configSvc = config.NewConfigService(a.cfgFile, a.bus)
		return nil
	}

	// the bus needs the logger, which needs the config
	a.configSvc = config.NewConfigService(a.cfgFile, nil)

	cfg, err := a.configSvc.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd.Root().PersistentFlags(), a, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	var stderr io.Writer
	if cfg.Log.Stderr {
		stderr = cmd.ErrOrStderr()
	}
	logger, closer, err := logging.New(logging.Options{
		File:   cfg.Log.File,
		Level:  cfg.Log.Level,
		Stderr: stderr,
	})
	if err != nil {
		return err
	}
	a.logger = logger
	a.logCloser = closer

	a.bus = eventbus.New(logger)
	logging.Subscribe(a.bus, logger)
	a.logger.Debug("config resolved", "path", a.configSvc.Path(), "catalog", cfg.Catalog)
	return nil
}

// applyFlags overrides config values with flags the user set explicitly
func applyFlags(flags *pflag.FlagSet, a *app, cfg *config.Config) {
	if flags.Changed("catalog") {
		cfg.Catalog = a.catalog
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
}

// loadCatalog resolves the configured catalog and announces it
func (a *app) loadCatalog() (*catalog.Catalog, error) {
	c, source, err := catalog.Resolve(a.cfg.Catalog)
	if err != nil {
		a.bus.Publish(eventbus.ErrorEvent{Message: "catalog load failed", Err: err})
		return nil, err
	}
	a.bus.Publish(eventbus.CatalogLoadedEvent{
		Source:  source,
		Steps:   c.Len(),
		Missing: catalog.MissingTargets(c),
	})
	return c, nil
}

// runE wraps a command body so the bus and log file are released however it ends
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.close()
		return fn(cmd, args)
	}
}

func (a *app) close() {
	if a.bus != nil {
		// drain pending events before the log file goes away
		a.bus.Close()
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}
