package clock

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAdvance_FiresInDeadlineOrder(t *testing.T) {
	c := New()
	var got []string
	c.After(300*time.Millisecond, func() { got = append(got, "c") })
	c.After(100*time.Millisecond, func() { got = append(got, "a") })
	c.After(200*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(250 * time.Millisecond)
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("fired mismatch (-want +got):\n%s", diff)
	}
	if c.Now() != 250*time.Millisecond {
		t.Fatalf("expected now 250ms, got %v", c.Now())
	}

	c.Advance(time.Second)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("fired mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvance_TiesFireInScheduleOrder(t *testing.T) {
	c := New()
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		c.After(time.Second, func() { got = append(got, i) })
	}
	c.Advance(time.Second)
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvance_ChainedTimersInsideWindow(t *testing.T) {
	c := New()
	var at []time.Duration
	c.After(100*time.Millisecond, func() {
		at = append(at, c.Now())
		c.After(100*time.Millisecond, func() {
			at = append(at, c.Now())
		})
	})

	c.Advance(500 * time.Millisecond)
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if diff := cmp.Diff(want, at); diff != "" {
		t.Fatalf("callback times mismatch (-want +got):\n%s", diff)
	}
}

func TestTimerStop(t *testing.T) {
	c := New()
	fired := false
	timer := c.After(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatalf("expected Stop to report pending timer")
	}
	if timer.Stop() {
		t.Fatalf("expected second Stop to report false")
	}
	c.Advance(2 * time.Second)
	if fired {
		t.Fatalf("stopped timer fired")
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", c.Pending())
	}
}

func TestGroupStop(t *testing.T) {
	c := New()
	g := NewGroup(c)
	count := 0
	g.After(time.Second, func() { count++ })
	g.After(2*time.Second, func() { count++ })
	c.After(3*time.Second, func() { count += 10 })

	if g.Pending() != 2 {
		t.Fatalf("expected 2 pending in group, got %d", g.Pending())
	}
	g.Stop()
	c.Advance(5 * time.Second)
	if count != 10 {
		t.Fatalf("expected only the ungrouped timer to fire, count=%d", count)
	}
}

func TestStopAll(t *testing.T) {
	c := New()
	fired := 0
	c.After(time.Millisecond, func() { fired++ })
	c.After(time.Hour, func() { fired++ })
	c.StopAll()
	c.Advance(2 * time.Hour)
	if fired != 0 {
		t.Fatalf("expected no timers to fire, got %d", fired)
	}
}
