package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/murkoff/internal/desktop"
	"github.com/javiermolinar/murkoff/internal/grid"
	"github.com/javiermolinar/murkoff/internal/session"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// handleMouseMsg routes pointer events. The modal swallows them, the top
// window takes presses inside its frame, the taskbar takes its row and the
// desktop gets the rest.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wd := m.world
	if wd.session.Stage() != session.StageDesktop || wd.modal != nil {
		return m, nil
	}
	wd.ensureDesktop()
	d := wd.desktop
	LogMouse(msg, d.Mode())

	// A gesture keeps the pointer until release.
	if d.Mode() != desktop.ModeIdle {
		m.desktopPointer(msg)
		return m, wd.drain()
	}

	if msg.Action == tea.MouseActionPress && msg.Y == m.height-1 {
		m.taskbarClick(msg.X)
		return m, wd.drain()
	}

	if win, ok := wd.top(); ok {
		left, top, w, h := windowRect(m.width, m.height)
		inside := msg.X >= left && msg.X < left+w && msg.Y >= top && msg.Y < top+h
		if inside {
			m.windowPointer(win, msg, left, top, w)
			return m, wd.drain()
		}
	}

	m.desktopPointer(msg)
	return m, wd.drain()
}

func (m Model) windowPointer(win window, msg tea.MouseMsg, left, top, w int) {
	wd := m.world
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		win.Key(tea.KeyMsg{Type: tea.KeyUp}, wd)
		return
	case tea.MouseButtonWheelDown:
		win.Key(tea.KeyMsg{Type: tea.KeyDown}, wd)
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if view.WindowCloseHit(msg.X, msg.Y, left, top, w) {
		wd.closeTop()
		return
	}
	_, bodyTop := view.WindowBodyOrigin(left, top)
	if row := msg.Y - bodyTop; row >= 0 {
		win.Click(row, wd)
	}
}

func (m Model) desktopPointer(msg tea.MouseMsg) {
	wd := m.world
	d := wd.desktop
	p := grid.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := pointerButton(msg.Button)
		if !ok {
			return
		}
		if menu, open := d.Menu(); open && button == desktop.ButtonPrimary {
			if i, hit := menu.ItemAt(p); hit {
				if err := d.ChooseMenu(i); err != nil {
					wd.fail("running menu entry", err)
				}
				return
			}
		}
		if err := d.PointerDown(p, button, pointerMods(msg)); err != nil {
			wd.fail("opening icon", err)
		}
	case tea.MouseActionMotion:
		d.PointerMove(p)
	case tea.MouseActionRelease:
		selecting := d.Mode() == desktop.ModeSelecting
		if drop, ok := d.PointerUp(p); ok {
			LogDrop(drop)
		}
		if selecting {
			LogMarquee(d.Selected())
		}
	}
}

func pointerButton(b tea.MouseButton) (desktop.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return desktop.ButtonPrimary, true
	case tea.MouseButtonRight:
		return desktop.ButtonSecondary, true
	case tea.MouseButtonMiddle:
		return desktop.ButtonMiddle, true
	default:
		return 0, false
	}
}

func pointerMods(msg tea.MouseMsg) desktop.Mod {
	var mod desktop.Mod
	if msg.Shift {
		mod |= desktop.ModShift
	}
	if msg.Ctrl {
		mod |= desktop.ModCtrl
	}
	if msg.Alt {
		mod |= desktop.ModAlt
	}
	return mod
}

// taskbarClick raises the window whose taskbar button is at column x.
func (m Model) taskbarClick(x int) {
	for _, b := range taskbarButtons(m.world) {
		if x >= b.x && x < b.x+b.w {
			if b.action != nil {
				b.action()
			}
			return
		}
	}
}
