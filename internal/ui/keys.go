package ui

import (
	"github.com/atomicstack/todoodler/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		// Modifiers are ignored: alt+q and ctrl+q quit like a bare q.
		Toggle: key.NewBinding(key.WithKeys("p", "alt+p", "ctrl+p"), key.WithHelp("p", "popup")),
		Quit:   key.NewBinding(key.WithKeys("q", "alt+q", "ctrl+q"), key.WithHelp("q", "quit")),
	}
}

// input maps a key press onto the popup state machine.
func (k keyMap) input(msg tea.KeyMsg) state.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return state.InputQuit
	case key.Matches(msg, k.Toggle):
		return state.InputToggle
	default:
		return state.InputOther
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
