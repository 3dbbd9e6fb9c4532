package puzzle

import (
	"time"

	"github.com/javiermolinar/murkoff/internal/notify"
)

// Sequence pacing.
const (
	SequencePadSize     = 6
	SequenceMaxLength   = 5
	sequenceLead        = 600 * time.Millisecond
	sequenceTail        = 300 * time.Millisecond
	sequenceMinInterval = 600 * time.Millisecond
	sequenceCorrectWait = 1000 * time.Millisecond
	sequenceWrongWait   = 1500 * time.Millisecond
)

var glyphs = []string{
	"ᚠ", "ᚢ", "ᚦ", "ᚨ", "ᚱ", "ᚲ", "ᚷ", "ᚹ", "ᚺ", "ᚾ", "ᛁ", "ᛃ",
}

// SequenceLength is the number of glyphs to recall in a round.
func SequenceLength(round int) int {
	n := 2 + round
	if n > SequenceMaxLength {
		return SequenceMaxLength
	}
	return n
}

// RevealInterval is the time each glyph stays highlighted in a round.
func RevealInterval(round int) time.Duration {
	d := time.Second - time.Duration(round)*50*time.Millisecond
	if d < sequenceMinInterval {
		return sequenceMinInterval
	}
	return d
}

// ShowDuration is the length of the reveal phase for a round.
func ShowDuration(round, length int) time.Duration {
	return sequenceLead + time.Duration(length+1)*RevealInterval(round) + sequenceTail
}

// ShowingIndexAt returns which glyph of the sequence is highlighted after
// elapsed time in the reveal phase, or -1 when none is. done reports that the
// reveal phase is over.
func ShowingIndexAt(round, length int, elapsed time.Duration) (idx int, done bool) {
	interval := RevealInterval(round)
	if elapsed < sequenceLead+interval {
		return -1, false
	}
	k := int((elapsed-sequenceLead)/interval) - 1
	if k < length {
		return k, false
	}
	if elapsed < ShowDuration(round, length) {
		return -1, false
	}
	return -1, true
}

// Sequence is the recall game: glyphs light up one by one, then the player
// repeats them on the pad. Each entry is checked as soon as it is made.
type Sequence struct {
	machine
	pad       []string
	target    []string
	input     []string
	showStart time.Duration
}

// NewSequence creates a sequence game and starts round 0.
func NewSequence(opts Options) *Sequence {
	s := &Sequence{machine: newMachine(KindSequence, opts)}
	s.start = s.startRound
	s.startRound()
	return s
}

func (s *Sequence) startRound() {
	s.beginRound()
	s.pad = s.shuffled(glyphs)[:SequencePadSize]
	length := SequenceLength(s.round)
	s.target = make([]string, length)
	for i := range s.target {
		s.target[i] = s.pad[s.rng.IntN(len(s.pad))]
	}
	s.input = nil
	s.showStart = s.clock.Now()

	interval := RevealInterval(s.round)
	for i := 0; i < length; i++ {
		s.timers.After(sequenceLead+time.Duration(i+1)*interval, func() {
			s.sounds.Play(notify.SoundClick)
		})
	}
	s.timers.After(ShowDuration(s.round, length), func() {
		s.phase = PhaseInput
	})
}

// Snapshot returns the current round state.
func (s *Sequence) Snapshot() Round {
	return s.snapshot(len(s.input))
}

// Pad returns the selectable glyphs.
func (s *Sequence) Pad() []string {
	return append([]string(nil), s.pad...)
}

// Target returns the sequence to recall.
func (s *Sequence) Target() []string {
	return append([]string(nil), s.target...)
}

// Input returns the glyphs entered so far.
func (s *Sequence) Input() []string {
	return append([]string(nil), s.input...)
}

// ShowingIndex returns the highlighted position during the reveal phase.
func (s *Sequence) ShowingIndex() int {
	if s.phase != PhaseShowing {
		return -1
	}
	idx, _ := ShowingIndexAt(s.round, len(s.target), s.elapsed(s.showStart))
	return idx
}

// PressIndex enters the glyph at pad position i.
func (s *Sequence) PressIndex(i int) error {
	if i < 0 || i >= len(s.pad) {
		return ErrInvalidSymbol
	}
	return s.Press(s.pad[i])
}

// Press enters one glyph.
func (s *Sequence) Press(glyph string) error {
	if !s.accepting() {
		return ErrNotAccepting
	}
	if !contains(s.pad, glyph) {
		return ErrInvalidSymbol
	}
	s.sounds.Play(notify.SoundClick)
	s.input = append(s.input, glyph)

	i := len(s.input) - 1
	if s.input[i] != s.target[i] {
		exhausted := s.loseLife()
		s.wrong(sequenceWrongWait, exhausted)
		return nil
	}
	if len(s.input) == len(s.target) {
		s.correct(sequenceCorrectWait)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
