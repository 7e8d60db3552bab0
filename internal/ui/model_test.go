package ui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelStartsHidden(t *testing.T) {
	m := NewModel(Options{})
	if m.Popup().Shown {
		t.Fatalf("expected popup hidden at startup")
	}
}

func TestToggleScenario(t *testing.T) {
	h := NewHarness(NewModel(Options{}))

	h.Type("p")
	if got := h.Model().Popup().String(); got != "popup_shown" {
		t.Fatalf("expected popup_shown after first p, got %s", got)
	}
	h.Type("p")
	if got := h.Model().Popup().String(); got != "popup_hidden" {
		t.Fatalf("expected popup_hidden after second p, got %s", got)
	}
	if h.Quit() {
		t.Fatalf("toggling must not quit")
	}
	h.Type("q")
	if !h.Quit() {
		t.Fatalf("expected q to quit")
	}
}

func TestQuitReturnsTeaQuit(t *testing.T) {
	m := NewModel(Options{})
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg from q")
	}
}

func TestQuitAfterTogglesKeepsFlag(t *testing.T) {
	h := NewHarness(NewModel(Options{}))
	h.Type("ppp")
	h.Type("q")
	if !h.Quit() {
		t.Fatalf("expected q to quit after toggles")
	}
	if !h.Model().Popup().Shown {
		t.Fatalf("expected odd toggles to leave popup shown")
	}
	h.Type("p")
	if !h.Model().Popup().Shown {
		t.Fatalf("keys after quit must be dropped")
	}
}

func TestRandomInputWithoutQNeverQuits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcdefghijklmnoprstuvwxyzP Q1!")
	m := NewModel(Options{})
	toggles := 0
	for i := 0; i < 1000; i++ {
		r := alphabet[rng.Intn(len(alphabet))]
		if r == 'p' {
			toggles++
		}
		_, cmd := m.Update(runeKey(r))
		if cmd != nil {
			t.Fatalf("key %q at step %d returned a command", r, i)
		}
	}
	if want := toggles%2 == 1; m.Popup().Shown != want {
		t.Fatalf("after %d toggles expected shown=%v", toggles, want)
	}
}

func TestNonRuneKeysIgnored(t *testing.T) {
	m := NewModel(Options{})
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'Q'}},
		{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
	} {
		if _, cmd := m.Update(msg); cmd != nil {
			t.Fatalf("expected %q to be ignored", msg.String())
		}
	}
	if m.Popup().Shown {
		t.Fatalf("expected popup untouched")
	}
}

func TestMouseMessagesIgnored(t *testing.T) {
	m := NewModel(Options{})
	_, cmd := m.Update(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil || m.Popup().Shown {
		t.Fatalf("expected mouse event to be ignored")
	}
}

func TestWindowSizeUpdatesViewport(t *testing.T) {
	m := NewModel(Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 100 || m.height != 30 {
		t.Fatalf("expected 100x30, got %dx%d", m.width, m.height)
	}
}

func TestFixedSizeIgnoresWindowSize(t *testing.T) {
	m := NewModel(Options{Width: 60, Height: 0})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 60 {
		t.Fatalf("expected fixed width 60, got %d", m.width)
	}
	if m.height != 30 {
		t.Fatalf("expected height to follow terminal, got %d", m.height)
	}
}

func TestHandlerForPointerMessage(t *testing.T) {
	m := NewModel(Options{})
	msg := runeKey('p')
	m.Update(&msg)
	if !m.Popup().Shown {
		t.Fatalf("expected pointer key message to toggle")
	}
}

func TestRuneBurstActsAsSeparatePresses(t *testing.T) {
	m := NewModel(Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ppp")})
	if cmd != nil {
		t.Fatalf("expected no command for toggles")
	}
	if !m.Popup().Shown {
		t.Fatalf("expected three toggles to leave popup shown")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pqp")})
	if cmd == nil {
		t.Fatalf("expected q inside a burst to quit")
	}
	if m.Popup().Shown {
		t.Fatalf("expected the p before q to apply and the one after to be dropped")
	}
}

func TestModifiedKeysActLikeBareKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'p'}, Alt: true},
		{Type: tea.KeyCtrlP},
	} {
		m := NewModel(Options{})
		if _, cmd := m.Update(msg); cmd != nil {
			t.Fatalf("expected %q not to quit", msg.String())
		}
		if !m.Popup().Shown {
			t.Fatalf("expected %q to toggle the popup", msg.String())
		}
	}
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}, Alt: true},
		{Type: tea.KeyCtrlQ},
	} {
		m := NewModel(Options{})
		if _, cmd := m.Update(msg); cmd == nil {
			t.Fatalf("expected %q to quit", msg.String())
		}
	}
}

func TestPastedRunesActAsSeparatePresses(t *testing.T) {
	m := NewModel(Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pq"), Paste: true})
	if cmd == nil {
		t.Fatalf("expected pasted q to quit")
	}
	if !m.Popup().Shown {
		t.Fatalf("expected pasted p to toggle before quitting")
	}

	m = NewModel(Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Paste: true})
	if !m.Popup().Shown {
		t.Fatalf("expected single pasted p to toggle")
	}
}

func TestFooterHelpUsesThemeStyles(t *testing.T) {
	m := NewModel(Options{ShowFooter: true})
	if !m.help.Styles.ShortKey.GetBold() {
		t.Fatalf("expected footer keys to use the bold theme style")
	}
	if got, want := m.help.Styles.ShortDesc.GetForeground(), styles.FooterDesc.GetForeground(); got != want {
		t.Fatalf("expected footer description colour %v, got %v", want, got)
	}
}
