package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// OverlayModel dims the screen and centers a modal box over it.
type OverlayModel struct {
	active   bool
	bgColor  lipgloss.Color
	backdrop lipgloss.Style
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{
		active:   false,
		bgColor:  lipgloss.Color(""),
		backdrop: lipgloss.NewStyle(),
	}
}

// Toggle flips the overlay visibility.
func (o *OverlayModel) Toggle() {
	o.active = !o.active
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the color that fills gaps around modal lines.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// SetBackdrop sets the style used to repaint the screen behind the modal.
func (o *OverlayModel) SetBackdrop(style lipgloss.Style) {
	o.backdrop = style
}

// Render draws the modal on top of a dimmed copy of base content.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active {
		return base
	}
	if width <= 0 || height <= 0 || strings.TrimSpace(content) == "" {
		return base
	}
	dimmed := strings.Join(o.dim(base, width, height), "\n")
	return view.RenderModalOverlay(dimmed, content, width, height, o.bgColor)
}

// dim strips base styling and repaints every line with the backdrop style,
// cut or padded to width.
func (o OverlayModel) dim(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		plain := ansi.Strip(line)
		if w := ansi.StringWidth(plain); w > width {
			plain = ansi.Truncate(plain, width, "")
		} else if w < width {
			plain += strings.Repeat(" ", width-w)
		}
		lines[i] = o.backdrop.Render(plain)
	}
	return lines
}
