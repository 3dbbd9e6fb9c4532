// Package session drives the boot, login and startup screens that come before
// the desktop.
package session

import (
	"errors"
	"time"

	"github.com/javiermolinar/murkoff/internal/clock"
	"github.com/javiermolinar/murkoff/internal/notify"
)

// ErrInvalidCredential is returned by Login on a wrong password.
var ErrInvalidCredential = errors.New("incorrect password")

// Stage is the screen the session is on.
type Stage int

const (
	StageBoot Stage = iota
	StageLogin
	StageStartup
	StageDesktop
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageBoot:
		return "boot"
	case StageLogin:
		return "login"
	case StageStartup:
		return "startup"
	case StageDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Defaults.
const (
	DefaultPassword     = "1234"
	DefaultBootDuration = 4 * time.Second
	DefaultStartup      = 3 * time.Second
	DefaultBootLineGap  = 100 * time.Millisecond
)

// BootLines is the scripted boot log.
var BootLines = []string{
	"Initializing BIOS v4.2.1...",
	"Loading kernel modules...",
	"[OK] CPU: 8-Core Intel i9-12900K @ 5.2GHz",
	"[OK] RAM: 32GB DDR5-6000 detected",
	"[OK] GPU: NVIDIA RTX 4090 initialized",
	"Mounting file systems...",
	"[OK] /dev/sda1 mounted at /",
	"[OK] /dev/sda2 mounted at /home",
	"Starting system services...",
	"[OK] NetworkManager.service",
	"[OK] bluetooth.service",
	"[OK] systemd-logind.service",
	"[OK] android-bridge.service",
	"Loading AI kernel extensions...",
	"[OK] neural_processor.ko loaded",
	"[OK] quantum_encryption.ko loaded",
	"Initializing Android subsystem...",
	"[OK] Android 26.0 kernel bridge active",
	"Starting graphical environment...",
	"[OK] Display server initialized",
	"Boot sequence complete.",
}

// StartupMessages caption the startup progress bar.
var StartupMessages = []string{
	"Initializing GP-TWO system core...",
	"Loading android neural pathways...",
	"Activating quantum processors...",
	"Establishing secure connection...",
	"Loading user profile data...",
	"Initializing desktop environment...",
	"System ready. Launching interface...",
}

// Startup progress advances 2% every 30ms.
const (
	startupStep     = 2
	startupStepTime = 30 * time.Millisecond
)

// VisibleBootLines returns how many boot lines are shown after elapsed, one
// every gap.
func VisibleBootLines(elapsed, gap time.Duration) int {
	if gap <= 0 {
		return len(BootLines)
	}
	n := int(elapsed / gap)
	if n > len(BootLines) {
		return len(BootLines)
	}
	if n < 0 {
		return 0
	}
	return n
}

// StartupProgress returns the startup percentage after elapsed, in [0,100].
func StartupProgress(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	p := int(elapsed/startupStepTime) * startupStep
	if p > 100 {
		return 100
	}
	return p
}

// StartupMessage returns the caption for a progress percentage.
func StartupMessage(progress int) string {
	progress = max(0, min(progress, 100))
	return StartupMessages[progress*(len(StartupMessages)-1)/100]
}

// Options configures a Session.
type Options struct {
	Clock    *clock.Clock
	Sounds   notify.Player
	Password string
	Boot     time.Duration
	Startup  time.Duration
	LineGap  time.Duration
	SkipBoot bool
	// OnStage is called after every stage change.
	OnStage func(Stage)
}

// Session is the pre-desktop stage machine.
type Session struct {
	opts       Options
	timers     *clock.Group
	stage      Stage
	stageStart time.Duration
	failed     int
}

// New creates a session at Boot, or at Login when SkipBoot is set.
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Sounds == nil {
		opts.Sounds = notify.Mute{}
	}
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	if opts.Boot <= 0 {
		opts.Boot = DefaultBootDuration
	}
	if opts.Startup <= 0 {
		opts.Startup = DefaultStartup
	}
	if opts.LineGap <= 0 {
		opts.LineGap = DefaultBootLineGap
	}
	s := &Session{opts: opts, timers: clock.NewGroup(opts.Clock)}
	if opts.SkipBoot {
		s.stage = StageLogin
		s.stageStart = opts.Clock.Now()
		return s
	}
	s.stageStart = opts.Clock.Now()
	s.timers.After(opts.Boot, func() {
		s.enter(StageLogin)
	})
	return s
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// Elapsed returns the time spent in the current stage.
func (s *Session) Elapsed() time.Duration {
	return s.opts.Clock.Now() - s.stageStart
}

// BootLines returns the boot lines visible now.
func (s *Session) BootLines() []string {
	if s.stage != StageBoot {
		return BootLines
	}
	return BootLines[:VisibleBootLines(s.Elapsed(), s.opts.LineGap)]
}

// Progress returns the startup percentage, 100 once the desktop is up.
func (s *Session) Progress() int {
	switch s.stage {
	case StageStartup:
		return StartupProgress(s.Elapsed())
	case StageDesktop:
		return 100
	default:
		return 0
	}
}

// FailedAttempts returns the number of rejected logins.
func (s *Session) FailedAttempts() int {
	return s.failed
}

// Login checks the password and starts the startup animation. There is no
// lockout.
func (s *Session) Login(password string) error {
	if s.stage != StageLogin {
		return nil
	}
	if password != s.opts.Password {
		s.failed++
		s.opts.Sounds.Play(notify.SoundError)
		return ErrInvalidCredential
	}
	s.enter(StageStartup)
	s.opts.Sounds.Play(notify.SoundStartup)
	s.timers.After(s.opts.Startup, func() {
		s.enter(StageDesktop)
	})
	return nil
}

// Skip jumps ahead to the next stage that waits on the user: Boot goes to
// Login and Startup goes to Desktop.
func (s *Session) Skip() {
	switch s.stage {
	case StageBoot:
		s.timers.Stop()
		s.enter(StageLogin)
	case StageStartup:
		s.timers.Stop()
		s.enter(StageDesktop)
	}
}

// Close cancels pending stage timers.
func (s *Session) Close() {
	s.timers.Stop()
}

func (s *Session) enter(stage Stage) {
	s.stage = stage
	s.stageStart = s.opts.Clock.Now()
	if s.opts.OnStage != nil {
		s.opts.OnStage(stage)
	}
}
