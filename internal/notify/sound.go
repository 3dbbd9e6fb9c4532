package notify

import (
	"io"
	"sync"
)

// Sound names a UI cue.
type Sound string

const (
	SoundClick        Sound = "click"
	SoundOpen         Sound = "open"
	SoundClose        Sound = "close"
	SoundError        Sound = "error"
	SoundSuccess      Sound = "success"
	SoundNotification Sound = "notification"
	SoundStartup      Sound = "startup"
)

// Player plays sound cues.
type Player interface {
	Play(s Sound)
}

// Mute drops every cue.
type Mute struct{}

// Play does nothing.
func (Mute) Play(Sound) {}

// Bell rings the terminal bell for cues that need attention.
// Clicks and window sounds are silent; a terminal has one tone.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes BEL for error, success, notification and startup cues.
func (b *Bell) Play(s Sound) {
	switch s {
	case SoundError, SoundSuccess, SoundNotification, SoundStartup:
	default:
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}

// Recorder keeps the cues it was asked to play.
type Recorder struct {
	Played []Sound
}

// Play appends s.
func (r *Recorder) Play(s Sound) {
	r.Played = append(r.Played, s)
}

// Last returns the most recent cue, or "".
func (r *Recorder) Last() Sound {
	if len(r.Played) == 0 {
		return ""
	}
	return r.Played[len(r.Played)-1]
}
