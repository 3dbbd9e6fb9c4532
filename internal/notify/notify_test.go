package notify

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/javiermolinar/murkoff/internal/clock"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

func TestCenter_AutoDismiss(t *testing.T) {
	clk := clock.New()
	c := NewCenter(clk, WithIDFunc(seqIDs()))

	id := c.Notify(KindError, "Error", "Error loading file")
	if id != "n1" {
		t.Fatalf("expected id n1, got %s", id)
	}
	if len(c.Active()) != 1 {
		t.Fatalf("expected 1 active toast")
	}

	clk.Advance(DefaultDuration - time.Millisecond)
	if len(c.Active()) != 1 {
		t.Fatalf("expected toast to still be visible before expiry")
	}
	clk.Advance(time.Millisecond)
	if len(c.Active()) != 0 {
		t.Fatalf("expected toast to be dismissed at expiry")
	}
}

func TestCenter_Dismiss(t *testing.T) {
	clk := clock.New()
	c := NewCenter(clk, WithIDFunc(seqIDs()))
	a := c.Notify(KindInfo, "A", "")
	b := c.NotifyFor(KindWarning, "B", "", time.Second)

	if !c.Dismiss(a) {
		t.Fatalf("expected dismiss to remove toast a")
	}
	if c.Dismiss(a) {
		t.Fatalf("expected second dismiss to be a no-op")
	}
	active := c.Active()
	if len(active) != 1 || active[0].ID != b {
		t.Fatalf("expected only toast b, got %+v", active)
	}
	if clk.Pending() != 1 {
		t.Fatalf("expected dismissed toast timer to be stopped, pending=%d", clk.Pending())
	}
}

func TestCenter_Close(t *testing.T) {
	clk := clock.New()
	c := NewCenter(clk)
	c.Notify(KindSuccess, "Restored", "")
	c.Notify(KindInfo, "Hello", "")
	c.Close()
	if len(c.Active()) != 0 || clk.Pending() != 0 {
		t.Fatalf("expected close to clear toasts and timers")
	}
}

func TestCenter_PlaysSoundPerKind(t *testing.T) {
	rec := &Recorder{}
	c := NewCenter(clock.New(), WithSounds(rec))
	c.Notify(KindError, "x", "")
	c.Notify(KindSuccess, "x", "")
	c.Notify(KindInfo, "x", "")

	want := []Sound{SoundError, SoundSuccess, SoundNotification}
	if len(rec.Played) != len(want) {
		t.Fatalf("expected %d sounds, got %v", len(want), rec.Played)
	}
	for i := range want {
		if rec.Played[i] != want[i] {
			t.Fatalf("sound %d: expected %s, got %s", i, want[i], rec.Played[i])
		}
	}
}

func TestNotification_Remaining(t *testing.T) {
	n := Notification{Created: time.Second, Duration: 5 * time.Second}
	if got := n.Remaining(2 * time.Second); got != 4*time.Second {
		t.Fatalf("expected 4s remaining, got %v", got)
	}
	if got := n.Remaining(time.Minute); got != 0 {
		t.Fatalf("expected 0 remaining, got %v", got)
	}
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)
	b.Play(SoundClick)
	b.Play(SoundError)
	b.Play(SoundOpen)
	b.Play(SoundSuccess)
	if buf.String() != "\a\a" {
		t.Fatalf("expected two bells, got %q", buf.String())
	}
}
