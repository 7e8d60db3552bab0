// Package terminal owns the terminal for the lifetime of the UI.
//
// A Session takes over a Console (raw input, alternate screen, mouse
// capture), runs a body, and always hands the console back in its original
// state, whether the body returns normally, fails, or panics. Release
// happens exactly once; failures while releasing are reported wrapped in
// ErrRestore after every step has been attempted.
package terminal
