package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// taskbarTitleW caps a window button label.
const taskbarTitleW = 18

// taskbarButton is a clickable span of the taskbar row.
type taskbarButton struct {
	label  string
	x, w   int
	active bool
	start  bool
	action func()
}

// taskbarButtons lays out the start button and one button per open window.
func taskbarButtons(wd *world) []taskbarButton {
	x := 0
	start := " ◆ Start "
	buttons := []taskbarButton{{
		label:  start,
		x:      x,
		w:      ansi.StringWidth(start),
		start:  true,
		action: func() { wd.openExplorer() },
	}}
	x += buttons[0].w + 1

	for i, win := range wd.windows {
		label := " " + view.FitWidth(win.Title(), min(ansi.StringWidth(win.Title()), taskbarTitleW)) + " "
		b := taskbarButton{
			label:  label,
			x:      x,
			w:      ansi.StringWidth(label),
			active: i == len(wd.windows)-1,
			action: func() { wd.raise(i) },
		}
		buttons = append(buttons, b)
		x += b.w + 1
	}
	return buttons
}

// renderTaskbar draws the bottom row: buttons on the left, the unread mail
// badge and the wall clock on the right.
func renderTaskbar(wd *world, st *Styles, width int) string {
	if width <= 0 {
		return ""
	}
	var left strings.Builder
	used := 0
	for _, b := range taskbarButtons(wd) {
		if used+b.w+1 > width {
			break
		}
		if b.start || b.active {
			left.WriteString(st.TaskbarActiveStyle.Render(b.label))
		} else {
			left.WriteString(st.TaskbarItemStyle.Render(b.label))
		}
		left.WriteString(st.TaskbarStyle.Render(" "))
		used += b.w + 1
	}

	var right strings.Builder
	rightW := 0
	if n := wd.mailbox.Unread(""); n > 0 {
		badge := fmt.Sprintf(" ✉ %d ", n)
		right.WriteString(st.TaskbarBadgeStyle.Render(badge))
		rightW += ansi.StringWidth(badge)
	}
	clk := " " + wd.now().Format("15:04") + " "
	right.WriteString(st.TaskbarClockStyle.Render(clk))
	rightW += ansi.StringWidth(clk)

	gap := width - used - rightW
	if gap < 0 {
		return view.FitStyled(left.String(), width, st.TaskbarStyle)
	}
	return left.String() + st.TaskbarStyle.Render(strings.Repeat(" ", gap)) + right.String()
}
