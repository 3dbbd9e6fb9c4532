package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/murkoff/internal/desktop"
	"github.com/javiermolinar/murkoff/internal/session"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work on every screen)
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.world.session.Stage() {
	case session.StageBoot, session.StageStartup:
		m.world.session.Skip()
		return m, nil
	case session.StageLogin:
		return m.handleLoginKeys(msg)
	default:
		return m.handleDesktopKeys(msg)
	}
}

// handleLoginKeys feeds the password field.
func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}

	err := m.world.session.Login(m.login.Value())
	m.login.Reset()
	if errors.Is(err, session.ErrInvalidCredential) {
		LogError("login", err)
		m.loginErr = fmt.Sprintf("Incorrect password (attempt %d)", m.world.session.FailedAttempts())
		return m, nil
	}
	m.loginErr = ""
	m.login.Blur()
	return m, nil
}

// handleDesktopKeys routes a key to the modal, the top window or the
// desktop, in that order.
func (m Model) handleDesktopKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wd := m.world
	wd.ensureDesktop()

	if wd.modal != nil {
		wd.modal.Key(msg, wd)
		return m, wd.drain()
	}

	if win, ok := wd.top(); ok {
		switch msg.String() {
		case "tab":
			wd.raise(0)
			return m, nil
		}
		if !win.Key(msg, wd) && msg.String() == "esc" {
			wd.closeTop()
		}
		return m, wd.drain()
	}

	d := wd.desktop
	var err error
	switch msg.String() {
	case "q":
		return m.quit()
	case "up", "k":
		d.MoveFocus(desktop.Up)
	case "down", "j":
		d.MoveFocus(desktop.Down)
	case "left", "h":
		d.MoveFocus(desktop.Left)
	case "right", "l":
		d.MoveFocus(desktop.Right)
	case "enter":
		err = d.ActivateFocus()
	case "a", "ctrl+a":
		d.SelectAll()
	case "esc":
		d.Escape()
	case "e":
		wd.openExplorer()
	case "r":
		wd.openRecycle()
	case "m":
		wd.openMail()
	case "x":
		for _, n := range wd.notes.Active() {
			wd.notes.Dismiss(n.ID)
		}
	}
	if err != nil {
		wd.fail("opening icon", err)
	}
	return m, wd.drain()
}
