package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/mail"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// mailHeader is the search line and a blank line.
const mailHeader = 2

// mailWindow shows the inbox and one message at a time.
type mailWindow struct {
	box    *mail.Mailbox
	list   list
	search textinput.Model

	searching bool
	reading   *catalog.Message
	scroll    int
}

func newMailWindow(box *mail.Mailbox) *mailWindow {
	ti := textinput.New()
	ti.Placeholder = "search mail"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 30
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &mailWindow{box: box, search: ti}
}

func (m *mailWindow) Title() string {
	return fmt.Sprintf("Mail (%d unread)", m.box.Unread(""))
}

func (m *mailWindow) Hint() string {
	switch {
	case m.searching:
		return "type to filter  enter done  esc clear"
	case m.reading != nil:
		return "↑↓ scroll  f flag  backspace inbox  esc close"
	default:
		return "↑↓ move  enter read  / search  f flag  esc close"
	}
}

func (m *mailWindow) Resize(_, h int) {
	m.list.rows = max(h-mailHeader, 1)
	m.list.clamp(len(m.messages()))
}

func (m *mailWindow) messages() []catalog.Message {
	return m.box.Messages(m.search.Value())
}

func (m *mailWindow) Body(w, h int, st *Styles) []string {
	if m.reading != nil {
		lines := m.readingLines(w, st)
		m.scroll = max(0, min(m.scroll, len(lines)-h))
		return lines[m.scroll:]
	}

	search := st.MutedStyle.Render(view.FitWidth(" / search", w))
	if m.searching || m.search.Value() != "" {
		search = st.ListStyle.Render(" ") + m.search.View()
	}
	lines := []string{search, ""}

	msgs := m.messages()
	if len(msgs) == 0 {
		return append(lines, st.MutedStyle.Render(" No messages match."))
	}
	text := make([]string, len(msgs))
	for i, msg := range msgs {
		text[i] = mailLine(msg, w)
	}
	return append(lines, m.list.render(text, w, st)...)
}

func mailLine(msg catalog.Message, w int) string {
	mark := " "
	if !msg.Read {
		mark = "●"
	}
	flag := " "
	if msg.Flagged {
		flag = "⚑"
	}
	right := " " + msg.Date + " "
	sender := view.FitWidth(msg.Sender(), 20)
	left := fmt.Sprintf(" %s%s %s  %s", mark, flag, sender, msg.Subject)
	return view.FitWidth(left, max(w-len([]rune(right)), 0)) + right
}

func (m *mailWindow) readingLines(w int, st *Styles) []string {
	msg := m.reading
	flag := ""
	if msg.Flagged {
		flag = "  ⚑ flagged"
	}
	lines := []string{
		st.AccentStyle.Render(view.FitWidth(" "+msg.Subject, w)),
		st.ListStyle.Render(view.FitWidth(" From: "+msg.From, w)),
		st.MutedStyle.Render(view.FitWidth(" Date: "+msg.Date+flag, w)),
	}
	if msg.Classification != "" {
		lines = append(lines, st.DangerStyle.Render(view.FitWidth(" Classification: "+msg.Classification, w)))
	}
	lines = append(lines, "")
	for _, line := range strings.Split(wordwrap.String(msg.Body, max(w-2, 10)), "\n") {
		lines = append(lines, st.ListStyle.Render(" "+line))
	}
	return lines
}

func (m *mailWindow) Key(msg tea.KeyMsg, wd *world) bool {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Reset()
			m.search.Blur()
		case "enter":
			m.searching = false
			m.search.Blur()
		default:
			m.search, _ = m.search.Update(msg)
		}
		m.list.reset()
		return true
	}

	if m.reading != nil {
		switch msg.String() {
		case "up", "k":
			m.scroll = max(m.scroll-1, 0)
		case "down", "j":
			m.scroll++
		case "f":
			m.reading.Flagged = m.box.ToggleFlag(m.reading.ID)
		case "backspace", "left", "h":
			m.reading = nil
		default:
			return false
		}
		return true
	}

	msgs := m.messages()
	switch msg.String() {
	case "up", "k":
		m.list.move(-1, len(msgs))
	case "down", "j":
		m.list.move(1, len(msgs))
	case "enter", "right", "l":
		m.read()
	case "/":
		m.searching = true
		m.search.Focus()
	case "f":
		if m.list.cursor < len(msgs) {
			m.box.ToggleFlag(msgs[m.list.cursor].ID)
		}
	default:
		return false
	}
	return true
}

func (m *mailWindow) Click(row int, _ *world) {
	if m.reading != nil || m.searching {
		return
	}
	if m.list.pick(row-mailHeader, len(m.messages())) {
		m.read()
	}
}

func (m *mailWindow) read() {
	msgs := m.messages()
	if m.list.cursor >= len(msgs) {
		return
	}
	msg, ok := m.box.Open(msgs[m.list.cursor].ID)
	if !ok {
		return
	}
	m.reading = &msg
	m.scroll = 0
}
