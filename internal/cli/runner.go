// Package cli is the command-line host: it wires configuration, logging and
// the reorder controller into either the terminal UI or one-shot commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/idilsaglam/dragsort/internal/reorder"
	"github.com/idilsaglam/dragsort/internal/shared"
	"github.com/idilsaglam/dragsort/internal/tui"
	"github.com/idilsaglam/dragsort/internal/ui"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "dragsort.toml"

// Runner holds the dependencies shared by every command.
type Runner struct {
	output    io.Writer
	errOutput io.Writer
	clipboard func(string) error
	runTUI    func(context.Context, tui.Model) error
}

// RunnerOpts configures a [Runner]. Nil fields use the process defaults.
type RunnerOpts struct {
	Output    io.Writer
	ErrOutput io.Writer
	Clipboard func(string) error
	RunTUI    func(context.Context, tui.Model) error
}

func NewRunner(opts RunnerOpts) *Runner {
	r := &Runner{
		output:    opts.Output,
		errOutput: opts.ErrOutput,
		clipboard: opts.Clipboard,
		runTUI:    opts.RunTUI,
	}
	if r.output == nil {
		r.output = os.Stdout
	}
	if r.errOutput == nil {
		r.errOutput = os.Stderr
	}
	if r.clipboard == nil {
		r.clipboard = clipboard.WriteAll
	}
	if r.runTUI == nil {
		r.runTUI = tui.Run
	}
	return r
}

// session is what one command invocation works with.
type session struct {
	config *shared.Config
	logger *log.Logger
	theme  ui.Theme
}

// loadConfig reads the config named by --config and applies flag overrides.
func loadConfig(cmd *cli.Command) (*shared.Config, error) {
	config, err := shared.LoadConfigOrDefault(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if theme := cmd.String("theme"); theme != "" {
		config.TUI.Theme = theme
	}
	if cmd.Bool("debug") {
		config.Log.Level = "debug"
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// newSession builds the logger and theme for an already loaded config.
func newSession(config *shared.Config, logOut io.Writer) (*session, error) {
	level, err := config.LogLevel()
	if err != nil {
		return nil, err
	}

	logger := shared.NewLogger(logOut)
	shared.SetLogLevel(logger, level)
	return &session{
		config: config,
		logger: logger,
		theme:  ui.NewTheme(config.TUI.Theme),
	}, nil
}

// load reads the config and logs to logOut.
func (r *Runner) load(cmd *cli.Command, logOut io.Writer) (*session, error) {
	config, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return newSession(config, logOut)
}

func (s *session) controller(sink io.Writer) *reorder.Controller {
	return reorder.New(reorder.Options{Items: s.config.List.Items, Sink: sink, Logger: s.logger})
}

// TUI runs the interactive list host. Diagnostics and logs go to the log
// file since the terminal belongs to the UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if path := cmd.String("log"); path != "" {
		config.Log.File = path
	}
	logOut, closeLog, err := shared.OpenLogFile(config.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := newSession(config, logOut)
	if err != nil {
		return err
	}
	if cmd.Bool("no-drag") {
		s.config.TUI.DragEnabled = false
	}

	c := s.controller(logOut)
	s.logger.Info("starting list host", "rows", c.NumberOfRows(), "drag", s.config.TUI.DragEnabled)
	m := tui.New(c, c, tui.Options{
		DragInteractionEnabled: s.config.TUI.DragEnabled,
		Theme:                  s.theme,
		Logger:                 s.logger,
		Clipboard:              r.clipboard,
	})
	return r.runTUI(ctx, m)
}

// List prints the seed list in a frame.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	s, err := r.load(cmd, r.errOutput)
	if err != nil {
		return err
	}
	c := s.controller(io.Discard)

	rows := make([]string, c.NumberOfRows())
	for i := range rows {
		rows[i] = c.CellForRow(i).Text
	}
	header := fmt.Sprintf("%s   %s %d", s.theme.Title.Render("Items"), s.theme.Accent.Render(s.theme.Grip), len(rows))
	lines := append([]string{header, ""}, ui.RowLines(s.theme, rows)...)
	return ui.Panel(r.output, s.theme, lines)
}

// Move applies one reorder to the seed list and prints the diagnostic listing.
func (r *Runner) Move(ctx context.Context, cmd *cli.Command) error {
	s, err := r.load(cmd, r.errOutput)
	if err != nil {
		return err
	}
	c := s.controller(r.output)

	source, err := rowArg(cmd, "source", c)
	if err != nil {
		return err
	}
	destination, err := rowArg(cmd, "destination", c)
	if err != nil {
		return err
	}
	if source == destination {
		s.logger.Info("source equals destination, nothing to move", "row", source)
	}
	c.MoveRow(source, destination)
	return nil
}

// Drag prints the payload a drag beginning on the given row would carry.
func (r *Runner) Drag(ctx context.Context, cmd *cli.Command) error {
	s, err := r.load(cmd, r.errOutput)
	if err != nil {
		return err
	}
	c := s.controller(io.Discard)

	row, err := rowArg(cmd, "row", c)
	if err != nil {
		return err
	}
	items := c.ItemsForBeginning(row)
	for _, item := range items {
		if _, err := fmt.Fprintf(r.output, "%s\t%s\n", item.Kind, item.Text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if cmd.Bool("copy") && len(items) > 0 {
		if err := r.clipboard(items[0].Text); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrClipboard, err)
		}
		ui.OK(r.errOutput, s.theme, "copied")
	}
	return nil
}

// Init writes the example configuration.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	ui.OK(r.output, ui.NewTheme(""), "wrote "+path)
	return nil
}

func rowArg(cmd *cli.Command, name string, c *reorder.Controller) (int, error) {
	raw := cmd.StringArg(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: <%s>", shared.ErrMissingArgument, name)
	}
	row, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: not a number: %s", shared.ErrInvalidArgument, name, raw)
	}
	if err := c.CheckRow(row); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return row, nil
}
