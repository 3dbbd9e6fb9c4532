package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// WindowStyles groups the styles of a framed window.
type WindowStyles struct {
	Frame lipgloss.Style // border and body background
	Title lipgloss.Style
	Close lipgloss.Style
	Body  lipgloss.Style
	Hint  lipgloss.Style
}

// Window chrome: a border on each side, a title bar and a hint line.
const (
	windowChromeW = 2
	windowChromeH = 4
)

// WindowBodySize returns the body area of a w x h window.
func WindowBodySize(w, h int) (int, int) {
	return max(w-windowChromeW, 0), max(h-windowChromeH, 0)
}

// WindowBodyOrigin returns the screen position of the first body cell of a
// window whose top-left corner is (left, top).
func WindowBodyOrigin(left, top int) (int, int) {
	return left + 1, top + 2
}

// WindowCloseHit reports whether (x, y) is on the close button of a w-wide
// window at (left, top).
func WindowCloseHit(x, y, left, top, w int) bool {
	return y == top+1 && x >= left+w-4 && x < left+w-1
}

// RenderWindow renders a framed window of exactly w x h cells. Body lines
// beyond the body area are dropped and short lines are padded.
func RenderWindow(title, hint string, body []string, w, h int, st WindowStyles) string {
	bodyW, bodyH := WindowBodySize(w, h)
	if bodyW <= 0 || h < windowChromeH {
		return ""
	}

	closeBtn := "[x]"
	titleW := max(bodyW-ansi.StringWidth(closeBtn), 0)
	bar := st.Title.Render(FitWidth(" "+title, titleW)) + st.Close.Render(closeBtn)

	lines := make([]string, 0, bodyH+2)
	lines = append(lines, bar)
	for i := 0; i < bodyH; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, FitStyled(line, bodyW, st.Body))
	}
	lines = append(lines, st.Hint.Render(FitWidth(" "+hint, bodyW)))

	return st.Frame.Render(strings.Join(lines, "\n"))
}

// FitWidth truncates or pads plain text to exactly w cells.
func FitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > w {
		return ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-ansi.StringWidth(s))
}

// FitStyled cuts a styled line to w cells and pads it with pad's background.
func FitStyled(line string, w int, pad lipgloss.Style) string {
	lw := lipgloss.Width(line)
	if lw > w {
		return ansi.Truncate(line, w, "")
	}
	return line + pad.Render(strings.Repeat(" ", w-lw))
}
