// Package puzzle implements the round-based mini-games that gate restoring a
// deleted folder.
//
// Every game shares one shape: a presentation phase, an input phase, a
// feedback pause, then the next round, a full reset or the terminal Won phase.
// Running out of lives resets the whole game to round 0 with full lives, not
// just the current round. Pacing comes from a clock.Clock so tests can step
// through phases without sleeping.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/javiermolinar/murkoff/internal/clock"
	"github.com/javiermolinar/murkoff/internal/notify"
)

// Puzzle errors.
var (
	ErrNotAccepting    = errors.New("game is not accepting input")
	ErrIncompleteGuess = errors.New("guess is incomplete")
	ErrInvalidSymbol   = errors.New("symbol is not on the pad")
	ErrUnknownKind     = errors.New("unknown puzzle kind")
)

// Kind names a mini-game variant.
type Kind string

const (
	KindSequence    Kind = "sequence"
	KindTranslation Kind = "translation"
	KindCipher      Kind = "cipher"
)

// ParseKind accepts the variant names and their legacy aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequence", "simon":
		return KindSequence, nil
	case "translation", "memory":
		return KindTranslation, nil
	case "cipher", "codebreaker":
		return KindCipher, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Title returns the display name of a kind.
func (k Kind) Title() string {
	switch k {
	case KindSequence:
		return "Glyph Sequence"
	case KindTranslation:
		return "Glyph Translation"
	case KindCipher:
		return "Alchemical Cipher"
	default:
		return string(k)
	}
}

// Phase is the step of the current round.
type Phase int

const (
	// PhaseShowing presents the secret (sequence reveal, translation study).
	PhaseShowing Phase = iota
	// PhaseInput accepts answers.
	PhaseInput
	// PhaseFeedback pauses after a verdict.
	PhaseFeedback
	// PhaseWon is terminal.
	PhaseWon
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseShowing:
		return "showing"
	case PhaseInput:
		return "input"
	case PhaseFeedback:
		return "feedback"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome is the verdict shown during feedback.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeWrong
)

// Round is a snapshot of a game's progress.
type Round struct {
	Kind        Kind
	Index       int
	RoundsToWin int
	Lives       int
	LivesTotal  int
	Phase       Phase
	Outcome     Outcome
	Progress    int // symbols entered, letters filled or letters revealed
}

// Game is the common surface of every variant.
type Game interface {
	Kind() Kind
	Snapshot() Round
	Won() bool
	// Close cancels pending timers; further input is rejected.
	Close()
}

// Defaults per variant.
const (
	DefaultLives             = 3
	DefaultSequenceRounds    = 4
	DefaultTranslationRounds = 3
	DefaultCipherRounds      = 3
	DefaultStudyDuration     = 10 * time.Second
	DefaultRevealInterval    = 5 * time.Second
)

// Options configures a game.
type Options struct {
	Clock     *clock.Clock
	Rand      *rand.Rand
	Sounds    notify.Player
	OnSuccess func()

	RoundsToWin    int
	Lives          int
	StudyDuration  time.Duration // translation only
	RevealInterval time.Duration // cipher only
}

func (o Options) withDefaults(kind Kind) Options {
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Sounds == nil {
		o.Sounds = notify.Mute{}
	}
	if o.Lives <= 0 {
		o.Lives = DefaultLives
	}
	if o.RoundsToWin <= 0 {
		switch kind {
		case KindSequence:
			o.RoundsToWin = DefaultSequenceRounds
		case KindTranslation:
			o.RoundsToWin = DefaultTranslationRounds
		default:
			o.RoundsToWin = DefaultCipherRounds
		}
	}
	if o.StudyDuration <= 0 {
		o.StudyDuration = DefaultStudyDuration
	}
	if o.RevealInterval <= 0 {
		o.RevealInterval = DefaultRevealInterval
	}
	return o
}

// New builds a game of the given kind and starts round 0.
func New(kind Kind, opts Options) (Game, error) {
	switch kind {
	case KindSequence:
		return NewSequence(opts), nil
	case KindTranslation:
		return NewTranslation(opts), nil
	case KindCipher:
		return NewCipher(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// machine holds the round/lives bookkeeping shared by the variants.
type machine struct {
	kind      Kind
	clock     *clock.Clock
	timers    *clock.Group
	rng       *rand.Rand
	sounds    notify.Player
	onSuccess func()

	roundsToWin int
	livesTotal  int
	round       int
	lives       int
	phase       Phase
	outcome     Outcome
	won         bool
	closed      bool

	// refillPerRound restores full lives whenever a new round begins.
	refillPerRound bool

	start   func()
	onReset func()
}

func newMachine(kind Kind, opts Options) machine {
	opts = opts.withDefaults(kind)
	return machine{
		kind:        kind,
		clock:       opts.Clock,
		timers:      clock.NewGroup(opts.Clock),
		rng:         opts.Rand,
		sounds:      opts.Sounds,
		onSuccess:   opts.OnSuccess,
		roundsToWin: opts.RoundsToWin,
		livesTotal:  opts.Lives,
		lives:       opts.Lives,
	}
}

func (m *machine) Kind() Kind {
	return m.kind
}

func (m *machine) Won() bool {
	return m.won
}

func (m *machine) Close() {
	m.closed = true
	m.timers.Stop()
}

func (m *machine) accepting() bool {
	return !m.closed && !m.won && m.phase == PhaseInput
}

func (m *machine) snapshot(progress int) Round {
	return Round{
		Kind:        m.kind,
		Index:       m.round,
		RoundsToWin: m.roundsToWin,
		Lives:       m.lives,
		LivesTotal:  m.livesTotal,
		Phase:       m.phase,
		Outcome:     m.outcome,
		Progress:    progress,
	}
}

// elapsed returns the time since the given clock mark.
func (m *machine) elapsed(since time.Duration) time.Duration {
	return m.clock.Now() - since
}

// correct enters feedback and, after delay, advances or wins.
func (m *machine) correct(delay time.Duration) {
	m.sounds.Play(notify.SoundSuccess)
	m.phase = PhaseFeedback
	m.outcome = OutcomeCorrect
	m.timers.After(delay, func() {
		next := m.round + 1
		if next >= m.roundsToWin {
			m.win()
			return
		}
		m.round = next
		if m.refillPerRound {
			m.lives = m.livesTotal
		}
		m.start()
	})
}

// loseLife decrements lives and reports whether they ran out.
func (m *machine) loseLife() bool {
	m.sounds.Play(notify.SoundError)
	m.lives--
	return m.lives <= 0
}

// wrong enters feedback and, after delay, replays the round or resets the game.
func (m *machine) wrong(delay time.Duration, exhausted bool) {
	m.phase = PhaseFeedback
	m.outcome = OutcomeWrong
	m.timers.After(delay, func() {
		if exhausted {
			m.reset()
			return
		}
		m.start()
	})
}

func (m *machine) reset() {
	m.round = 0
	m.lives = m.livesTotal
	if m.onReset != nil {
		m.onReset()
	}
	m.start()
}

func (m *machine) win() {
	if m.won {
		return
	}
	m.won = true
	m.phase = PhaseWon
	m.outcome = OutcomeCorrect
	m.timers.Stop()
	if m.onSuccess != nil {
		m.onSuccess()
	}
}

func (m *machine) beginRound() {
	m.phase = PhaseShowing
	m.outcome = OutcomeNone
	m.timers.Stop()
}

func (m *machine) shuffled(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	m.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func uniqueLetters(word string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range word {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
