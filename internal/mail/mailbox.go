// Package mail keeps the inbox state on top of the bundled messages: read
// marks, flags and search.
package mail

import (
	"strings"

	"github.com/javiermolinar/murkoff/internal/catalog"
)

// Mailbox is a mutable view of the bundled inbox.
type Mailbox struct {
	messages []catalog.Message
}

// New creates a mailbox from the bundled messages.
func New(messages []catalog.Message) *Mailbox {
	return &Mailbox{messages: append([]catalog.Message(nil), messages...)}
}

// Messages returns the messages matching query on subject, sender or
// preview, case-insensitively. An empty query matches everything.
func (m *Mailbox) Messages(query string) []catalog.Message {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []catalog.Message
	for _, msg := range m.messages {
		if q == "" ||
			strings.Contains(strings.ToLower(msg.Subject), q) ||
			strings.Contains(strings.ToLower(msg.From), q) ||
			strings.Contains(strings.ToLower(msg.Preview), q) {
			out = append(out, msg)
		}
	}
	return out
}

// Open returns a message and marks it read.
func (m *Mailbox) Open(id string) (catalog.Message, bool) {
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].Read = true
			return m.messages[i], true
		}
	}
	return catalog.Message{}, false
}

// ToggleFlag flips the flag of a message and returns the new state.
func (m *Mailbox) ToggleFlag(id string) bool {
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].Flagged = !m.messages[i].Flagged
			return m.messages[i].Flagged
		}
	}
	return false
}

// Unread counts unread messages among those matching query.
func (m *Mailbox) Unread(query string) int {
	n := 0
	for _, msg := range m.Messages(query) {
		if !msg.Read {
			n++
		}
	}
	return n
}
