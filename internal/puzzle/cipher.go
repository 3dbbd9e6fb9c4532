package puzzle

import (
	"strings"
	"time"

	"github.com/javiermolinar/murkoff/internal/notify"
)

const (
	cipherCorrectWait = 1200 * time.Millisecond
	cipherResetWait   = 2000 * time.Millisecond
)

var alchemy = []string{"☉", "☽", "☿", "♀", "♂", "♃", "♄", "♅", "♆", "♇"}

type cipherWord struct {
	word string
	hint string
}

var cipherWords = []cipherWord{
	{"VIRUS", "Self-replicating code"},
	{"NEXUS", "A central connection point"},
	{"OMEGA", "The last letter, the end"},
	{"GHOST", "A presence that should not be here"},
	{"PULSE", "The beat of something alive"},
	{"CRYPT", "Where the dead are kept"},
	{"TITAN", "A giant of old myths"},
	{"HYDRA", "Cut one head, two grow back"},
	{"ROGUE", "Acting outside of control"},
	{"CYBER", "Of computers and networks"},
	{"VENOM", "Poison delivered by a bite"},
	{"CHAOS", "Complete disorder"},
}

// RevealedCount returns how many letters a cipher round has revealed after
// elapsed time, capped at total.
func RevealedCount(elapsed, interval time.Duration, total int) int {
	if interval <= 0 || elapsed < 0 {
		return 0
	}
	n := int(elapsed / interval)
	if n > total {
		return total
	}
	return n
}

// Cipher is the progressive-reveal game: a word is written with one symbol
// per distinct letter and letters are revealed over time. Wrong guesses cost
// a life but the round goes on.
type Cipher struct {
	machine
	interval time.Duration
	word     cipherWord
	symbols  map[rune]string
	order    []rune
	revealed map[rune]bool
	used     map[string]bool
}

// NewCipher creates a cipher game and starts round 0.
func NewCipher(opts Options) *Cipher {
	opts = opts.withDefaults(KindCipher)
	c := &Cipher{
		machine:  newMachine(KindCipher, opts),
		interval: opts.RevealInterval,
		used:     make(map[string]bool),
	}
	c.refillPerRound = true
	c.start = c.startRound
	c.onReset = func() {
		c.used = make(map[string]bool)
	}
	c.startRound()
	return c
}

func (c *Cipher) startRound() {
	c.beginRound()
	c.word = c.pickWord()
	c.used[c.word.word] = true

	letters := uniqueLetters(c.word.word)
	pool := c.shuffled(alchemy)
	c.symbols = make(map[rune]string, len(letters))
	for i, r := range letters {
		c.symbols[r] = pool[i%len(pool)]
	}
	c.order = append([]rune(nil), letters...)
	c.rng.Shuffle(len(c.order), func(i, j int) {
		c.order[i], c.order[j] = c.order[j], c.order[i]
	})
	c.revealed = make(map[rune]bool, len(letters))
	c.phase = PhaseInput
	c.scheduleReveal()
}

func (c *Cipher) pickWord() cipherWord {
	var fresh []cipherWord
	for _, w := range cipherWords {
		if !c.used[w.word] {
			fresh = append(fresh, w)
		}
	}
	if len(fresh) == 0 {
		c.used = make(map[string]bool)
		fresh = cipherWords
	}
	return fresh[c.rng.IntN(len(fresh))]
}

func (c *Cipher) scheduleReveal() {
	if len(c.revealed) >= len(c.order) {
		return
	}
	c.timers.After(c.interval, func() {
		c.revealed[c.order[len(c.revealed)]] = true
		c.sounds.Play(notify.SoundNotification)
		c.scheduleReveal()
	})
}

// Snapshot returns the current round state.
func (c *Cipher) Snapshot() Round {
	return c.snapshot(len(c.revealed))
}

// Word returns the plain word of the round.
func (c *Cipher) Word() string {
	return c.word.word
}

// Hint returns the clue for the word.
func (c *Cipher) Hint() string {
	return c.word.hint
}

// Encoded returns one symbol per letter of the word.
func (c *Cipher) Encoded() []string {
	out := make([]string, 0, len(c.word.word))
	for _, r := range c.word.word {
		out = append(out, c.symbols[r])
	}
	return out
}

// IsRevealed reports whether letter r has been revealed.
func (c *Cipher) IsRevealed(r rune) bool {
	return c.revealed[r]
}

// Revealed returns the word with unrevealed letters replaced by '_'.
func (c *Cipher) Revealed() string {
	var b strings.Builder
	for _, r := range c.word.word {
		if c.revealed[r] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Guess checks a full-word answer.
func (c *Cipher) Guess(word string) error {
	if !c.accepting() {
		return ErrNotAccepting
	}
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) != len(c.word.word) {
		return ErrIncompleteGuess
	}
	if word == c.word.word {
		c.timers.Stop()
		c.correct(cipherCorrectWait)
		return nil
	}
	c.outcome = OutcomeWrong
	if c.loseLife() {
		c.timers.Stop()
		c.wrong(cipherResetWait, true)
	}
	return nil
}
