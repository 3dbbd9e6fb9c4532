package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/murkoff/internal/notify"
	"github.com/javiermolinar/murkoff/internal/session"
	"github.com/javiermolinar/murkoff/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.world.width = msg.Width
		m.world.height = msg.Height
		bw, bh := m.world.windowBodySize()
		for _, win := range m.world.windows {
			win.Resize(bw, bh)
		}
		if m.world.session.Stage() == session.StageDesktop {
			m.world.ensureDesktop()
		}
		return m, nil

	case commands.TickMsg:
		m.world.advance(msg.At)
		if m.world.modal != nil {
			m.world.modal.sync()
		}
		return m, tea.Batch(commands.Tick(m.config.Tick()), m.world.drain())

	case commands.ReportLoadedMsg:
		for _, win := range m.world.windows {
			if r, ok := win.(*reportWindow); ok && r.path == msg.Path && !r.loaded {
				r.setReport(msg)
			}
		}
		return m, nil

	case commands.ErrMsg:
		for _, win := range m.world.windows {
			if r, ok := win.(*reportWindow); ok && !r.loaded && msg.Context == "opening "+r.name {
				r.err = msg.Err
			}
		}
		m.world.fail(msg.Context, msg.Err)
		return m, nil

	case commands.CopiedMsg:
		m.world.notes.Notify(notify.KindInfo, "Copied", "The "+msg.What+" is on the clipboard.")
		return m, nil
	}

	return m, nil
}

// quit stops the simulation and ends the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.world.close()
	return m, tea.Quit
}
