package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/todoodler/internal/terminal"
	"github.com/atomicstack/todoodler/internal/ui"
	"github.com/atomicstack/todoodler/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
}

// Run takes over the controlling terminal and executes the Bubble Tea program
// until the user quits. The terminal is restored before Run returns.
func Run(cfg Config) error {
	_, err := run(cfg, terminal.NewTTY(os.Stdin, os.Stdout), os.Stdin, os.Stdout)
	return err
}

// run executes the program inside a terminal session and reports the popup
// state the program ended with.
func run(cfg Config, console terminal.Console, in io.Reader, out io.Writer, opts ...tea.ProgramOption) (state.Popup, error) {
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	final := model.Popup()

	session := terminal.NewSession(console)
	err := session.Run(func() error {
		opts = append([]tea.ProgramOption{
			tea.WithInput(in),
			tea.WithOutput(out),
			tea.WithoutBracketedPaste(),
		}, opts...)
		result, err := tea.NewProgram(model, opts...).Run()
		if m, ok := result.(*ui.Model); ok {
			final = m.Popup()
		}
		if cleanExit(err) {
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	})
	return final, err
}

// cleanExit reports whether err ends the program the way a quit would: no
// error, an external interrupt, or a kill with no underlying cause.
func cleanExit(err error) bool {
	if err == nil || errors.Is(err, tea.ErrInterrupted) {
		return true
	}
	// Kills caused by a read failure or a panic wrap ErrProgramKilled together
	// with the cause and must surface.
	return err == tea.ErrProgramKilled //nolint:errorlint
}
