package tui

import (
	"github.com/javiermolinar/murkoff/internal/session"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// Toast layout.
const (
	toastWidth  = 36
	toastMargin = 1
)

// View renders the current screen, with the puzzle modal on top when one
// is open.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	state := view.ViewState{
		Width:            m.width,
		Height:           m.height,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
	if m.width > 0 && m.height > 0 {
		switch m.world.session.Stage() {
		case session.StageBoot:
			state.Canvas = m.renderBoot()
		case session.StageLogin:
			state.Canvas = m.renderLogin()
		case session.StageStartup:
			state.Canvas = m.renderStartup()
		default:
			m.layoutDesktop(&state)
		}
	}

	state.ShowModal = m.world.modal != nil && m.world.session.Stage() == session.StageDesktop
	if state.ShowModal {
		state.ModalContent = m.world.modal.View(m.styles)
	}
	m.overlay.SetActive(state.ShowModal)
	return state
}

// layoutDesktop fills the icon canvas with the top window spliced in, the
// toasts and the taskbar.
func (m Model) layoutDesktop(state *view.ViewState) {
	wd := m.world
	wd.ensureDesktop()
	state.Taskbar = renderTaskbar(wd, m.styles, m.width)
	dh := wd.desktopHeight()
	if dh <= 0 {
		return
	}

	canvas := drawDesktop(wd.desktop, m.width, dh).render(m.styles.canvas)
	if win, ok := wd.top(); ok {
		left, top, w, h := windowRect(m.width, m.height)
		bw, bh := view.WindowBodySize(w, h)
		frame := view.RenderWindow(win.Title(), win.Hint(), win.Body(bw, bh, m.styles), w, h, m.styles.Window)
		if frame != "" {
			canvas = view.SpliceAt(canvas, frame, left, top, m.width, dh, m.styles.colorPanel)
		}
	}
	state.Canvas = canvas
	state.CanvasHeight = dh
	state.Toasts = view.ToastLayer{
		Toasts:     m.renderToasts(),
		Margin:     toastMargin,
		Background: m.styles.colorBg,
	}
}

// renderToasts renders the visible toasts, oldest first. None are shown on
// terminals too narrow to hold one.
func (m Model) renderToasts() []string {
	width := min(toastWidth, m.width-2*toastMargin)
	if width < 12 {
		return nil
	}
	active := m.world.notes.Active()
	out := make([]string, 0, len(active))
	for _, n := range active {
		out = append(out, view.RenderToast(n.Title, n.Message, width, m.styles.Toast(n.Kind)))
	}
	return out
}
