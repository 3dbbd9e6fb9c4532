package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ToastStyles groups the styles of a toast.
type ToastStyles struct {
	Box     lipgloss.Style // border colored by kind
	Title   lipgloss.Style
	Message lipgloss.Style
}

// RenderToast renders a toast of the given outer width, wrapping the message.
func RenderToast(title, message string, width int, st ToastStyles) string {
	inner := max(width-4, 1)
	var b strings.Builder
	b.WriteString(st.Title.Render(FitWidth(title, inner)))
	if message != "" {
		for _, line := range strings.Split(wordwrap.String(message, inner), "\n") {
			b.WriteString("\n")
			b.WriteString(st.Message.Render(FitWidth(line, inner)))
		}
	}
	return st.Box.Width(width - 2).Render(b.String())
}
