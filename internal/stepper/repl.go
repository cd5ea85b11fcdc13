package stepper

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"gitguide/internal/domain"
)

const prompt = "gitguide> "

// Options configures a stepper session
type Options struct {
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	HistoryFile string
	Logger      *slog.Logger
}

// REPL reads commands and prints steps until quit or end of input
type REPL struct {
	interp *Interpreter
	opts   Options
	logger *slog.Logger
}

// NewREPL creates a REPL around an interpreter
func NewREPL(interp *Interpreter, opts Options) *REPL {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &REPL{interp: interp, opts: opts, logger: logger}
}

// ConfigureColor matches lipgloss output to what w can display
func ConfigureColor(w io.Writer) {
	lipgloss.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
}

// IsTerminal reports whether r is an interactive terminal
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run drives the session. Terminal input gets line editing and completion;
// anything else is read line by line.
func (r *REPL) Run(ctx context.Context) error {
	_, _ = fmt.Fprintln(r.opts.Out, r.interp.Show())
	_, _ = fmt.Fprintln(r.opts.Out)

	if IsTerminal(r.opts.In) {
		return r.runReadline(ctx)
	}
	return r.runScanner(ctx)
}

func (r *REPL) runReadline(ctx context.Context) error {
	in, ok := r.opts.In.(io.ReadCloser)
	if !ok {
		in = io.NopCloser(r.opts.In)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     r.opts.HistoryFile,
		AutoComplete:    NewCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           in,
		Stdout:          r.opts.Out,
		Stderr:          r.opts.Err,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if r.exec(line) {
			return nil
		}
	}
}

func (r *REPL) runScanner(ctx context.Context) error {
	scanner := bufio.NewScanner(r.opts.In)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if r.exec(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// exec runs one line and reports whether the session is over
func (r *REPL) exec(line string) bool {
	line = strings.TrimSpace(line)
	out, quit, err := r.interp.Exec(line)
	if err != nil {
		r.logger.Debug("stepper command failed", "input", line, "error", err)
		_, _ = fmt.Fprintf(r.opts.Err, "Error: %v\n", err)
		return false
	}
	if out != "" {
		_, _ = fmt.Fprintln(r.opts.Out, out)
		_, _ = fmt.Fprintln(r.opts.Out)
	}
	return quit
}

// NewCompleter completes command words and zone names
func NewCompleter() *readline.PrefixCompleter {
	zones := make([]readline.PrefixCompleterInterface, 0, len(domain.AllHighlightTargets()))
	for _, t := range domain.AllHighlightTargets() {
		zones = append(zones, readline.PcItem(t.String()))
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(Commands))
	for _, c := range Commands {
		if c == "zone" {
			items = append(items, readline.PcItem(c, zones...))
			continue
		}
		items = append(items, readline.PcItem(c))
	}
	return readline.NewPrefixCompleter(items...)
}
