// Package clock provides a manually advanced timeline for scripted delays.
//
// Nothing in this package starts goroutines. Callbacks run synchronously inside
// Advance, so whoever advances the clock (the TUI tick loop, or a test) owns
// every state change the callbacks make.
package clock

import (
	"sort"
	"time"
)

// Clock is a monotonic timeline measured from zero.
type Clock struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// Timer is a one-shot callback scheduled on a Clock.
type Timer struct {
	clock    *Clock
	deadline time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// New creates a clock positioned at zero.
func New() *Clock {
	return &Clock{}
}

// Now returns the elapsed time on the clock.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once d has elapsed. Non-positive durations fire on
// the next Advance call, even Advance(0).
func (c *Clock) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Timer{
		clock:    c,
		deadline: c.now + d,
		seq:      c.seq,
		fn:       fn,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that falls due,
// in deadline order. Timers scheduled by callbacks fire too if they land
// inside the window.
func (c *Clock) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		if next.deadline > c.now {
			c.now = next.deadline
		}
		next.done = true
		c.remove(next)
		if next.fn != nil {
			next.fn()
		}
	}
	c.now = target
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// StopAll cancels every pending timer.
func (c *Clock) StopAll() {
	for _, t := range c.timers {
		t.done = true
	}
	c.timers = nil
}

func (c *Clock) nextDue(target time.Duration) *Timer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].deadline != c.timers[j].deadline {
			return c.timers[i].deadline < c.timers[j].deadline
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	if c.timers[0].deadline > target {
		return nil
	}
	return c.timers[0]
}

func (c *Clock) remove(t *Timer) {
	for i, cur := range c.timers {
		if cur == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}

// Group tracks timers owned by one component so they can be cancelled together
// when the component is torn down.
type Group struct {
	clock  *Clock
	timers []*Timer
}

// NewGroup creates a timer group on the given clock.
func NewGroup(c *Clock) *Group {
	return &Group{clock: c}
}

// After schedules fn on the underlying clock and tracks the timer.
func (g *Group) After(d time.Duration, fn func()) *Timer {
	g.compact()
	t := g.clock.After(d, fn)
	g.timers = append(g.timers, t)
	return t
}

// Now returns the underlying clock time.
func (g *Group) Now() time.Duration {
	return g.clock.Now()
}

// Stop cancels every pending timer in the group.
func (g *Group) Stop() {
	for _, t := range g.timers {
		t.Stop()
	}
	g.timers = nil
}

// Pending returns the number of pending timers in the group.
func (g *Group) Pending() int {
	g.compact()
	return len(g.timers)
}

func (g *Group) compact() {
	live := g.timers[:0]
	for _, t := range g.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	g.timers = live
}
