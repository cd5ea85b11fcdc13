package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gitguide/internal/navigation"
	"gitguide/internal/stepper"
	"gitguide/internal/ui"
	"gitguide/internal/ui/views"
)

// E2EEnv enables the ready marker used by terminal tests
const E2EEnv = "GITGUIDE_E2E_TEST"

// run starts the full-screen guide, or the plain stepper when asked or when stdin is not a terminal
func (a *app) run(cmd *cobra.Command) error {
	c, err := a.loadCatalog()
	if err != nil {
		return err
	}
	nav := navigation.NewService(c, a.bus)

	if a.plain || !stepper.IsTerminal(cmd.InOrStdin()) {
		return a.runPlain(cmd, nav)
	}
	return a.runTUI(cmd, nav)
}

func (a *app) runTUI(cmd *cobra.Command, nav *navigation.Service) error {
	model := ui.NewModel(nav, a.bus, a.cfg)
	model.SetReadyMarker(os.Getenv(E2EEnv) == "1")

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if a.cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	a.logger.Info("starting guide", "steps", nav.Len(), "layout", a.cfg.UISettings.Layout)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

func (a *app) runPlain(cmd *cobra.Command, nav *navigation.Service) error {
	out := cmd.OutOrStdout()
	stepper.ConfigureColor(out)

	interp := stepper.NewInterpreter(nav, views.NewStyles(a.cfg.UISettings.AccentColor), outputWidth(out))
	repl := stepper.NewREPL(interp, stepper.Options{
		In:          cmd.InOrStdin(),
		Out:         out,
		Err:         cmd.ErrOrStderr(),
		HistoryFile: filepath.Join(filepath.Dir(a.configSvc.Path()), "history"),
		Logger:      a.logger,
	})

	a.logger.Info("starting plain stepper", "steps", nav.Len())
	return repl.Run(cmd.Context())
}

// outputWidth is the terminal width capped for readable paragraphs
func outputWidth(w io.Writer) int {
	const fallback = 80
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return min(width-2, 100)
}
