package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// chatWindow replays a phone conversation.
type chatWindow struct {
	chat   catalog.Chat
	scroll int
}

func newChatWindow(chat catalog.Chat) *chatWindow {
	return &chatWindow{chat: chat}
}

func (c *chatWindow) Title() string {
	return "Messages · " + c.chat.Contact
}

func (c *chatWindow) Hint() string {
	return "↑↓ scroll  esc close"
}

func (c *chatWindow) Resize(int, int) {}

func (c *chatWindow) Body(w, h int, st *Styles) []string {
	lines := []string{
		st.AccentStyle.Render(view.FitWidth(" "+c.chat.Contact, w)),
		st.MutedStyle.Render(view.FitWidth(" "+c.chat.Date+" · "+c.chat.Time, w)),
		"",
	}
	bubbleW := max(w*3/5, 12)
	for _, msg := range c.chat.Messages {
		lines = append(lines, chatBubble(msg, w, bubbleW, st)...)
	}
	c.scroll = max(0, min(c.scroll, len(lines)-h))
	return lines[c.scroll:]
}

// chatBubble renders one message, sent ones aligned right.
func chatBubble(msg catalog.ChatLine, w, bubbleW int, st *Styles) []string {
	style := st.RecvBubbleStyle
	if msg.Sent {
		style = st.SentBubbleStyle
	}
	text := wordwrap.String(msg.Text, bubbleW-2)
	bubble := style.Render(text)
	stamp := st.MutedStyle.Render(msg.Time)

	pos := lipgloss.Left
	if msg.Sent {
		pos = lipgloss.Right
	}
	block := lipgloss.JoinVertical(pos, bubble, stamp)
	placed := lipgloss.PlaceHorizontal(max(w-2, 1), pos, block,
		lipgloss.WithWhitespaceBackground(st.colorPanel))

	var out []string
	for _, line := range strings.Split(placed, "\n") {
		out = append(out, st.ListStyle.Render(" ")+line)
	}
	return append(out, "")
}

func (c *chatWindow) Key(msg tea.KeyMsg, _ *world) bool {
	switch msg.String() {
	case "up", "k":
		c.scroll = max(c.scroll-1, 0)
	case "down", "j":
		c.scroll++
	default:
		return false
	}
	return true
}

func (c *chatWindow) Click(int, *world) {}
