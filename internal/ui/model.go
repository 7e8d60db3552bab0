package ui

import (
	"reflect"

	"github.com/atomicstack/todoodler/internal/logging/events"
	"github.com/atomicstack/todoodler/internal/theme"
	"github.com/atomicstack/todoodler/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	labelText = "The Todoodler"
	boxTitle  = "Enter a todo item"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Width and Height pin the viewport; zero follows the terminal.
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the two-pane screen.
type Model struct {
	popup       state.Popup
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	keys        keyMap
	help        help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with the popup hidden.
func NewModel(opts Options) *Model {
	h := help.New()
	h.Styles.ShortKey = *styles.FooterKey
	h.Styles.ShortDesc = *styles.FooterDesc
	h.Styles.ShortSeparator = *styles.FooterSep
	h.Styles.Ellipsis = *styles.FooterSep
	m := &Model{
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       h,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Popup returns the current popup state.
func (m *Model) Popup() state.Popup {
	return m.popup
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	var keyMsg tea.KeyMsg
	switch v := msg.(type) {
	case tea.KeyMsg:
		keyMsg = v
	case *tea.KeyMsg:
		keyMsg = *v
	default:
		return nil
	}
	for _, k := range splitRunes(keyMsg) {
		next, done := m.popup.Step(m.keys.input(k))
		if done {
			events.UI.Quit(next.Shown)
			return tea.Quit
		}
		if next != m.popup {
			m.popup = next
			events.UI.Popup(next.Shown)
		}
	}
	return nil
}

// splitRunes breaks a burst of runes into one key press per rune so fast
// typing and pasted text behave like separate presses.
func splitRunes(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Type != tea.KeyRunes || (len(msg.Runes) < 2 && !msg.Paste) {
		return []tea.KeyMsg{msg}
	}
	keys := make([]tea.KeyMsg, len(msg.Runes))
	for i, r := range msg.Runes {
		keys[i] = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
	}
	return keys
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	var size tea.WindowSizeMsg
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		size = v
	case *tea.WindowSizeMsg:
		size = *v
	default:
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}
