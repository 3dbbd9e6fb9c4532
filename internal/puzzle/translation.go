package puzzle

import (
	"strings"
	"time"
	"unicode"
)

const (
	translationCorrectWait = 1200 * time.Millisecond
	translationWrongWait   = 1500 * time.Millisecond
	translationDecoys      = 2
)

var alphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

var greek = []string{
	"α", "β", "γ", "δ", "ε", "ζ", "η", "θ", "ι", "κ", "λ", "μ", "ν",
	"ξ", "ο", "π", "ρ", "σ", "τ", "υ", "φ", "χ", "ψ", "ω", "ϝ", "ϙ",
}

var translationWords = []string{
	"OMEGA", "ALPHA", "GHOST", "NEXUS", "HYDRA", "TITAN", "PULSE", "VENOM",
	"RUNE", "CODE", "NOIR", "FLUX", "DATA", "ZONE", "IRIS",
}

// HintEntry pairs a letter with its symbol in the translation table.
type HintEntry struct {
	Letter rune
	Symbol string
}

// TranslationPhaseAt returns the phase of a translation round after elapsed
// time, given the study duration.
func TranslationPhaseAt(elapsed, study time.Duration) Phase {
	if elapsed < study {
		return PhaseShowing
	}
	return PhaseInput
}

// Translation is the table game: the player studies a partial letter table,
// then decodes a word written in symbols from memory.
type Translation struct {
	machine
	study      time.Duration
	table      map[rune]string
	word       string
	hint       []HintEntry
	guess      []rune
	studyStart time.Duration
}

// NewTranslation creates a translation game and starts round 0.
func NewTranslation(opts Options) *Translation {
	opts = opts.withDefaults(KindTranslation)
	t := &Translation{
		machine: newMachine(KindTranslation, opts),
		study:   opts.StudyDuration,
	}
	t.start = t.startRound
	t.startRound()
	return t
}

func (t *Translation) startRound() {
	t.beginRound()

	symbols := t.shuffled(greek)
	t.table = make(map[rune]string, len(alphabet))
	for i, r := range alphabet {
		t.table[r] = symbols[i]
	}

	t.word = translationWords[t.rng.IntN(len(translationWords))]
	letters := uniqueLetters(t.word)
	inWord := make(map[rune]bool, len(letters))
	t.hint = t.hint[:0]
	for _, r := range letters {
		inWord[r] = true
		t.hint = append(t.hint, HintEntry{Letter: r, Symbol: t.table[r]})
	}
	for _, i := range t.rng.Perm(len(alphabet)) {
		if len(t.hint) == len(letters)+translationDecoys {
			break
		}
		r := alphabet[i]
		if !inWord[r] {
			t.hint = append(t.hint, HintEntry{Letter: r, Symbol: t.table[r]})
		}
	}
	t.rng.Shuffle(len(t.hint), func(i, j int) {
		t.hint[i], t.hint[j] = t.hint[j], t.hint[i]
	})

	t.guess = make([]rune, len([]rune(t.word)))
	t.studyStart = t.clock.Now()
	t.timers.After(t.study, func() {
		t.phase = PhaseInput
	})
}

// Snapshot returns the current round state.
func (t *Translation) Snapshot() Round {
	filled := 0
	for _, r := range t.guess {
		if r != 0 {
			filled++
		}
	}
	return t.snapshot(filled)
}

// Word returns the plain word of the round.
func (t *Translation) Word() string {
	return t.word
}

// Encoded returns the word written in symbols.
func (t *Translation) Encoded() []string {
	out := make([]string, 0, len(t.word))
	for _, r := range t.word {
		out = append(out, t.table[r])
	}
	return out
}

// Hint returns the study table: the word's letters plus decoys.
func (t *Translation) Hint() []HintEntry {
	return append([]HintEntry(nil), t.hint...)
}

// Guess returns the letters entered so far; empty slots are zero.
func (t *Translation) Guess() []rune {
	return append([]rune(nil), t.guess...)
}

// StudyTimeLeft returns the whole seconds left in the study countdown.
func (t *Translation) StudyTimeLeft() int {
	if t.phase != PhaseShowing {
		return 0
	}
	left := t.study - t.elapsed(t.studyStart)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// SetLetter fills slot i. A zero rune clears it.
func (t *Translation) SetLetter(i int, r rune) error {
	if !t.accepting() {
		return ErrNotAccepting
	}
	if i < 0 || i >= len(t.guess) {
		return ErrInvalidSymbol
	}
	if r != 0 {
		var ok bool
		if r, ok = guessLetter(r); !ok {
			return ErrInvalidSymbol
		}
	}
	t.guess[i] = r
	return nil
}

// guessLetter uppercases r and reports whether it is a Latin letter.
func guessLetter(r rune) (rune, bool) {
	r = unicode.ToUpper(r)
	return r, r >= 'A' && r <= 'Z'
}

// SubmitWord fills every slot from word and submits it. The guess is left
// untouched when any letter is rejected.
func (t *Translation) SubmitWord(word string) error {
	if !t.accepting() {
		return ErrNotAccepting
	}
	letters := []rune(strings.TrimSpace(word))
	if len(letters) != len(t.guess) {
		return ErrIncompleteGuess
	}
	for i, r := range letters {
		var ok bool
		if letters[i], ok = guessLetter(r); !ok {
			return ErrInvalidSymbol
		}
	}
	copy(t.guess, letters)
	return t.Submit()
}

// Submit checks the full guess.
func (t *Translation) Submit() error {
	if !t.accepting() {
		return ErrNotAccepting
	}
	for _, r := range t.guess {
		if r == 0 {
			return ErrIncompleteGuess
		}
	}
	if string(t.guess) == t.word {
		t.correct(translationCorrectWait)
		return nil
	}
	exhausted := t.loseLife()
	t.wrong(translationWrongWait, exhausted)
	return nil
}
