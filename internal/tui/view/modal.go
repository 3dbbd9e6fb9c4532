package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles of a puzzle dialog.
type ModalStyles struct {
	Frame        lipgloss.Style
	Title        lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Gap          lipgloss.Style // fills the space between buttons
}

// Dialog is the content of a modal box.
type Dialog struct {
	Title  string
	Body   string
	Footer string // already styled, e.g. a button row
}

// Button is a key shortcut offered in a dialog footer.
type Button struct {
	Key   string
	Label string
}

// Render draws the dialog with the title on top and the footer set apart by
// a blank line. Empty sections are left out.
func (d Dialog) Render(st ModalStyles) string {
	parts := []string{st.Title.Render(d.Title)}
	if d.Body != "" {
		parts = append(parts, d.Body)
	}
	if d.Footer != "" {
		parts = append(parts, st.Footer.Render(d.Footer))
	}
	return st.Frame.Render(strings.Join(parts, "\n\n"))
}

// RenderButtons renders a row of key shortcuts, highlighting the one at
// index active.
func RenderButtons(st ModalStyles, active int, buttons ...Button) string {
	parts := make([]string, 0, len(buttons))
	for i, b := range buttons {
		style := st.Button
		if i == active {
			style = st.ButtonActive
		}
		parts = append(parts, style.Render(b.Key+"  "+b.Label))
	}
	return strings.Join(parts, st.Gap.Render(" "))
}
