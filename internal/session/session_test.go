package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/murkoff/internal/clock"
	"github.com/javiermolinar/murkoff/internal/notify"
)

func TestVisibleBootLines(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		gap     time.Duration
		want    int
	}{
		{0, 100 * time.Millisecond, 0},
		{99 * time.Millisecond, 100 * time.Millisecond, 0},
		{100 * time.Millisecond, 100 * time.Millisecond, 1},
		{1050 * time.Millisecond, 100 * time.Millisecond, 10},
		{time.Minute, 100 * time.Millisecond, len(BootLines)},
		{time.Second, 0, len(BootLines)},
	}
	for _, tt := range tests {
		if got := VisibleBootLines(tt.elapsed, tt.gap); got != tt.want {
			t.Errorf("VisibleBootLines(%v, %v) = %d, want %d", tt.elapsed, tt.gap, got, tt.want)
		}
	}
}

func TestStartupProgress(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{-time.Second, 0},
		{0, 0},
		{29 * time.Millisecond, 0},
		{30 * time.Millisecond, 2},
		{750 * time.Millisecond, 50},
		{1500 * time.Millisecond, 100},
		{3 * time.Second, 100},
	}
	for _, tt := range tests {
		if got := StartupProgress(tt.elapsed); got != tt.want {
			t.Errorf("StartupProgress(%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestStartupMessage(t *testing.T) {
	if got := StartupMessage(0); got != StartupMessages[0] {
		t.Fatalf("got %q at 0%%", got)
	}
	if got := StartupMessage(50); got != StartupMessages[3] {
		t.Fatalf("got %q at 50%%", got)
	}
	if got := StartupMessage(120); got != StartupMessages[len(StartupMessages)-1] {
		t.Fatalf("got %q past 100%%", got)
	}
}

func TestFlow(t *testing.T) {
	clk := clock.New()
	var stages []Stage
	sounds := &notify.Recorder{}
	s := New(Options{
		Clock:   clk,
		Sounds:  sounds,
		OnStage: func(st Stage) { stages = append(stages, st) },
	})

	if s.Stage() != StageBoot || len(s.BootLines()) != 0 {
		t.Fatalf("expected empty boot screen")
	}
	clk.Advance(250 * time.Millisecond)
	if len(s.BootLines()) != 2 {
		t.Fatalf("expected 2 boot lines, got %d", len(s.BootLines()))
	}
	if err := s.Login(DefaultPassword); err != nil || s.Stage() != StageBoot {
		t.Fatalf("expected login to be ignored during boot")
	}
	clk.Advance(DefaultBootDuration)
	if s.Stage() != StageLogin {
		t.Fatalf("expected login after boot, got %s", s.Stage())
	}

	if err := s.Login("0000"); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if err := s.Login(""); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if s.FailedAttempts() != 2 || s.Stage() != StageLogin {
		t.Fatalf("expected two failures and no lockout")
	}
	if err := s.Login(DefaultPassword); err != nil {
		t.Fatal(err)
	}
	clk.Advance(750 * time.Millisecond)
	if s.Progress() != 50 {
		t.Fatalf("expected 50%% progress, got %d", s.Progress())
	}
	clk.Advance(DefaultStartup)
	if s.Stage() != StageDesktop || s.Progress() != 100 {
		t.Fatalf("expected desktop, got %s", s.Stage())
	}

	want := []Stage{StageLogin, StageStartup, StageDesktop}
	if diff := cmp.Diff(want, stages); diff != "" {
		t.Fatalf("stage mismatch (-want +got):\n%s", diff)
	}
	if sounds.Last() != notify.SoundStartup {
		t.Fatalf("expected startup sound, got %q", sounds.Last())
	}
	if clk.Pending() != 0 {
		t.Fatalf("expected no pending timers")
	}
}

func TestSkipBoot(t *testing.T) {
	clk := clock.New()
	s := New(Options{Clock: clk, SkipBoot: true, Password: "open"})
	if s.Stage() != StageLogin || clk.Pending() != 0 {
		t.Fatalf("expected login without boot timer")
	}
	if err := s.Login(DefaultPassword); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected custom password to be enforced")
	}
	if err := s.Login("open"); err != nil {
		t.Fatal(err)
	}
	s.Skip()
	if s.Stage() != StageDesktop || clk.Pending() != 0 {
		t.Fatalf("expected skip to reach the desktop and cancel the timer")
	}
}

func TestSkipDuringBoot(t *testing.T) {
	clk := clock.New()
	s := New(Options{Clock: clk})
	s.Skip()
	if s.Stage() != StageLogin || clk.Pending() != 0 {
		t.Fatalf("expected skip to reach login")
	}
	if len(s.BootLines()) != len(BootLines) {
		t.Fatalf("expected the full boot log after boot")
	}
}

func TestClose(t *testing.T) {
	clk := clock.New()
	s := New(Options{Clock: clk})
	s.Close()
	clk.Advance(time.Minute)
	if s.Stage() != StageBoot {
		t.Fatalf("expected closed session to stay put")
	}
}
