// Package ui contains the Bubble Tea model that draws the two-pane screen.
//
// Message flow:
//   - Bubble Tea renders View, blocks for the next input event, and hands it
//     to Model.Update, which routes it through a typed handler registry.
//   - Key presses are decoded against the key map (internal/ui/keys.go) into
//     state.Input values and applied to the popup state with state.Popup.Step.
//     The state value is replaced, never shared. q quits, p toggles, every
//     other event leaves it alone.
//   - Window size messages update the viewport unless a fixed size was
//     configured.
//
// Rendering:
//   - The screen is cut in two equal columns by internal/ui/layout. The left
//     column holds the bold, centred, word-wrapped label; the right column a
//     bordered box titled "Enter a todo item".
//   - The popup flag is tracked but has no visual effect yet.
//   - An optional footer row lists the key bindings via bubbles/help.
//
// The terminal itself (raw mode, alternate screen, mouse capture) is owned by
// internal/terminal; this package never touches it.
package ui
