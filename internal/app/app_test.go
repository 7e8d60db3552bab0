package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/atomicstack/todoodler/internal/terminal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConsole struct {
	calls []string
}

func (c *recordingConsole) record(name string) error {
	c.calls = append(c.calls, name)
	return nil
}

func (c *recordingConsole) EnableRawMode() error       { return c.record("raw+") }
func (c *recordingConsole) DisableRawMode() error      { return c.record("raw-") }
func (c *recordingConsole) EnterAltScreen() error      { return c.record("alt+") }
func (c *recordingConsole) LeaveAltScreen() error      { return c.record("alt-") }
func (c *recordingConsole) EnableMouseCapture() error  { return c.record("mouse+") }
func (c *recordingConsole) DisableMouseCapture() error { return c.record("mouse-") }
func (c *recordingConsole) ShowCursor() error          { return c.record("cursor") }

var fullCycle = []string{"raw+", "alt+", "mouse+", "raw-", "alt-", "mouse-", "cursor"}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestRunQuitsOnQ(t *testing.T) {
	console := &recordingConsole{}
	var out strings.Builder

	popup, err := run(Config{Width: 40, Height: 5}, console, strings.NewReader("pq"), &out, tea.WithoutSignalHandler())
	require.NoError(t, err)
	assert.True(t, popup.Shown)
	assert.Equal(t, fullCycle, console.calls)
	assert.Contains(t, out.String(), "Todoodler")
	assert.NotContains(t, out.String(), "\x1b[?2004h", "bracketed paste must stay off")
}

func TestRunEvenTogglesLeavePopupHidden(t *testing.T) {
	console := &recordingConsole{}

	popup, err := run(Config{Width: 40, Height: 5}, console, strings.NewReader("ppq"), io.Discard, tea.WithoutSignalHandler())
	require.NoError(t, err)
	assert.False(t, popup.Shown)
}

func TestRunReturnsReadErrorAfterRelease(t *testing.T) {
	console := &recordingConsole{}
	readErr := errors.New("input/output error")

	_, err := run(Config{Width: 40, Height: 5}, console, failingReader{err: readErr}, io.Discard, tea.WithoutSignalHandler())
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "run program")
	assert.NotErrorIs(t, err, terminal.ErrRestore)
	assert.Equal(t, fullCycle, console.calls)
}

func TestRunSkipsProgramWhenAcquireFails(t *testing.T) {
	console := &failingConsole{err: terminal.ErrNotTerminal}

	_, err := run(Config{}, console, strings.NewReader("q"), io.Discard, tea.WithoutSignalHandler())
	require.ErrorIs(t, err, terminal.ErrNotTerminal)
	assert.Equal(t, []string{"raw+"}, console.calls)
}

type failingConsole struct {
	recordingConsole
	err error
}

func (c *failingConsole) EnableRawMode() error {
	c.record("raw+")
	return c.err
}

func TestCleanExit(t *testing.T) {
	cases := []struct {
		err   error
		clean bool
	}{
		{nil, true},
		{tea.ErrInterrupted, true},
		{tea.ErrProgramKilled, true},
		{fmt.Errorf("%w: %w", tea.ErrProgramKilled, tea.ErrProgramPanic), false},
		{fmt.Errorf("%w: %w", tea.ErrProgramKilled, io.ErrUnexpectedEOF), false},
		{errors.New("boom"), false},
	}
	for _, tc := range cases {
		if got := cleanExit(tc.err); got != tc.clean {
			t.Fatalf("cleanExit(%v) = %v, want %v", tc.err, got, tc.clean)
		}
	}
}
