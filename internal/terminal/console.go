package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on something that is
// not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Console is the set of terminal controls a Session acquires and releases.
type Console interface {
	EnableRawMode() error
	DisableRawMode() error
	EnterAltScreen() error
	LeaveAltScreen() error
	EnableMouseCapture() error
	DisableMouseCapture() error
	ShowCursor() error
}

// TTY drives a real terminal: raw mode on the input descriptor, control
// sequences on the output.
type TTY struct {
	in    *os.File
	out   io.Writer
	saved *term.State
}

// NewTTY returns a console for the given input file and output stream.
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{in: in, out: out}
}

// EnableRawMode switches the input to raw mode, remembering the previous
// state for DisableRawMode.
func (t *TTY) EnableRawMode() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("make raw: %w", err)
	}
	t.saved = state
	return nil
}

// DisableRawMode restores the input state captured by EnableRawMode. It is a
// no-op when raw mode was never enabled.
func (t *TTY) DisableRawMode() error {
	if t.saved == nil {
		return nil
	}
	state := t.saved
	t.saved = nil
	return term.Restore(int(t.in.Fd()), state)
}

// EnterAltScreen switches to the alternate buffer and clears it.
func (t *TTY) EnterAltScreen() error {
	return t.write(ansi.SetModeAltScreenSaveCursor + ansi.EraseEntireScreen + ansi.CursorHomePosition)
}

func (t *TTY) LeaveAltScreen() error {
	return t.write(ansi.ResetModeAltScreenSaveCursor)
}

// EnableMouseCapture turns on button-event tracking with SGR encoding.
func (t *TTY) EnableMouseCapture() error {
	return t.write(ansi.SetModeMouseButtonEvent + ansi.SetModeMouseExtSgr)
}

func (t *TTY) DisableMouseCapture() error {
	return t.write(ansi.ResetModeMouseButtonEvent + ansi.ResetModeMouseExtSgr)
}

func (t *TTY) ShowCursor() error {
	return t.write(ansi.ShowCursor)
}

func (t *TTY) write(seq string) error {
	_, err := io.WriteString(t.out, seq)
	return err
}
