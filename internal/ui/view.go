package ui

import (
	"strings"

	"github.com/atomicstack/todoodler/internal/ui/layout"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// View implements tea.Model. The popup flag is not drawn.
func (m *Model) View() string {
	area := layout.Rect{Width: m.width, Height: m.height}
	if area.Empty() {
		return ""
	}
	body := area
	footer := ""
	if m.showFooter {
		rows := layout.Split(area, layout.Vertical, layout.Fill(), layout.Length(1))
		body = rows[0]
		footer = m.renderFooter(rows[1])
	}
	if body.Empty() {
		return footer
	}

	panes := layout.Split(body, layout.Horizontal, layout.Percentage(50), layout.Percentage(50))
	blocks := make([]string, 0, len(panes))
	if !panes[0].Empty() {
		blocks = append(blocks, renderParagraph(labelText, styles.Label, panes[0]))
	}
	if !panes[1].Empty() {
		blocks = append(blocks, renderBox(boxTitle, panes[1]))
	}
	view := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	if footer != "" {
		view += "\n" + footer
	}
	return view
}

// renderParagraph word-wraps text to the region width and centres each line.
// Words longer than the region are broken. Rows beyond the region are cut.
func renderParagraph(text string, style *lipgloss.Style, r layout.Rect) string {
	wrapped := wrap.String(wordwrap.String(text, r.Width), r.Width)
	lines := strings.Split(wrapped, "\n")
	rows := make([]string, 0, r.Height)
	for _, line := range lines {
		if len(rows) == r.Height {
			break
		}
		line = strings.TrimSpace(line)
		pad := max(r.Width-ansi.StringWidth(line), 0)
		left := pad / 2
		rows = append(rows, blank(left)+style.Render(line)+blank(pad-left))
	}
	for len(rows) < r.Height {
		rows = append(rows, blank(r.Width))
	}
	return strings.Join(rows, "\n")
}

// renderBox draws a bordered box filling the region with title set into the
// top edge. Regions too small for both edges are left blank.
func renderBox(title string, r layout.Rect) string {
	if r.Width < 2 || r.Height < 2 {
		rows := make([]string, r.Height)
		for i := range rows {
			rows[i] = blank(r.Width)
		}
		return strings.Join(rows, "\n")
	}
	b := styles.Border
	inner := r.Width - 2
	label := truncate.String(title, uint(inner))
	rows := make([]string, 0, r.Height)
	rows = append(rows, b.TopLeft+styles.BoxTitle.Render(label)+strings.Repeat(b.Top, inner-ansi.StringWidth(label))+b.TopRight)
	for i := 0; i < r.Height-2; i++ {
		rows = append(rows, b.Left+blank(inner)+b.Right)
	}
	rows = append(rows, b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight)
	for i, row := range rows {
		rows[i] = styles.Box.Render(row)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderFooter(r layout.Rect) string {
	m.help.Width = r.Width
	line := truncate.String(m.help.View(m.keys), uint(r.Width))
	pad := max(r.Width-ansi.StringWidth(line), 0)
	return styles.Footer.Render(line) + blank(pad)
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
