// Package notify provides transient toast notifications and the sound capability.
package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/murkoff/internal/clock"
)

// DefaultDuration is how long a toast stays up when no duration is given.
const DefaultDuration = 5 * time.Second

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Notification is one toast.
type Notification struct {
	ID       string
	Kind     Kind
	Title    string
	Message  string
	Duration time.Duration
	Created  time.Duration // clock time at creation
}

// Remaining returns how long the toast stays visible at clock time now.
func (n Notification) Remaining(now time.Duration) time.Duration {
	left := n.Created + n.Duration - now
	if left < 0 {
		return 0
	}
	return left
}

// Notifier is the capability components use to surface a toast.
type Notifier interface {
	Notify(kind Kind, title, message string) string
}

// Center keeps the active toasts and dismisses them when they expire.
type Center struct {
	clock  *clock.Clock
	items  []Notification
	timers map[string]*clock.Timer
	newID  func() string
	sounds Player
}

// Option configures a Center.
type Option func(*Center)

// WithIDFunc replaces the uuid generator, mostly for tests.
func WithIDFunc(fn func() string) Option {
	return func(c *Center) {
		c.newID = fn
	}
}

// WithSounds plays a sound for each notification kind.
func WithSounds(p Player) Option {
	return func(c *Center) {
		c.sounds = p
	}
}

// NewCenter creates a notification center driven by clk.
func NewCenter(clk *clock.Clock, opts ...Option) *Center {
	c := &Center{
		clock:  clk,
		timers: make(map[string]*clock.Timer),
		newID:  uuid.NewString,
		sounds: Mute{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify shows a toast with the default duration and returns its id.
func (c *Center) Notify(kind Kind, title, message string) string {
	return c.NotifyFor(kind, title, message, DefaultDuration)
}

// NotifyFor shows a toast for d and returns its id.
func (c *Center) NotifyFor(kind Kind, title, message string, d time.Duration) string {
	if d <= 0 {
		d = DefaultDuration
	}
	n := Notification{
		ID:       c.newID(),
		Kind:     kind,
		Title:    title,
		Message:  message,
		Duration: d,
		Created:  c.clock.Now(),
	}
	c.items = append(c.items, n)
	id := n.ID
	c.timers[id] = c.clock.After(d, func() {
		delete(c.timers, id)
		c.remove(id)
	})
	c.sounds.Play(soundFor(kind))
	return id
}

// Dismiss removes a toast before it expires.
func (c *Center) Dismiss(id string) bool {
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	return c.remove(id)
}

// Active returns the visible toasts, oldest first.
func (c *Center) Active() []Notification {
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Close cancels every pending dismissal and clears the toasts.
func (c *Center) Close() {
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.items = nil
}

func (c *Center) remove(id string) bool {
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func soundFor(kind Kind) Sound {
	switch kind {
	case KindError:
		return SoundError
	case KindSuccess:
		return SoundSuccess
	default:
		return SoundNotification
	}
}
