package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Label      *lipgloss.Style
	Box        *lipgloss.Style
	BoxTitle   *lipgloss.Style
	Footer     *lipgloss.Style
	FooterKey  *lipgloss.Style
	FooterDesc *lipgloss.Style
	FooterSep  *lipgloss.Style
	Border     lipgloss.Border
}

var defaultStyles = Styles{
	Label: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Box: ptr(
		lipgloss.NewStyle(),
	),
	BoxTitle: ptr(
		lipgloss.NewStyle(),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FooterKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	FooterDesc: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FooterSep: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Border: lipgloss.NormalBorder(),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
