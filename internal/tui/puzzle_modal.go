package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/puzzle"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// modalWidth is the text width of the puzzle modal.
const modalWidth = 54

type modalStage int

const (
	modalIntro modalStage = iota
	modalPlaying
	modalSuccess
)

// puzzleModal walks a restore through briefing, game and success screens.
type puzzleModal struct {
	item  catalog.Item
	kind  puzzle.Kind
	brief catalog.Briefing
	game  puzzle.Game
	stage modalStage
	input textinput.Model
	last  puzzle.Round
}

func newPuzzleModal(it catalog.Item, kind puzzle.Kind, brief catalog.Briefing) *puzzleModal {
	ti := textinput.New()
	ti.Placeholder = "answer"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Cursor.SetMode(cursor.CursorStatic)
	if brief.Title == "" {
		brief.Title = strings.ToUpper(kind.Title())
	}
	return &puzzleModal{item: it, kind: kind, brief: brief, input: ti}
}

// begin starts the restore puzzle.
func (p *puzzleModal) begin(wd *world) {
	game, err := wd.bin.BeginRestore(p.item.ID)
	if err != nil {
		wd.fail("restoring "+p.item.Name, err)
		wd.modal = nil
		return
	}
	if game == nil {
		wd.modal = nil
		return
	}
	p.game = game
	p.stage = modalPlaying
	p.input.Focus()
	p.sync()
}

// sync follows the game after the clock moved or input was entered.
func (p *puzzleModal) sync() {
	if p.game == nil {
		return
	}
	snap := p.game.Snapshot()
	if snap != p.last {
		LogPuzzle(snap)
		if snap.Index != p.last.Index || snap.Phase == puzzle.PhaseShowing {
			p.input.Reset()
		}
		p.last = snap
	}
	if p.stage == modalPlaying && p.game.Won() {
		p.stage = modalSuccess
		p.input.Blur()
	}
}

// Key handles a key press while the modal is open.
func (p *puzzleModal) Key(msg tea.KeyMsg, wd *world) {
	key := msg.String()
	switch p.stage {
	case modalIntro:
		switch key {
		case "enter":
			p.begin(wd)
		case "esc":
			wd.closeModal()
		}
		return
	case modalSuccess:
		if key == "enter" || key == "esc" {
			wd.closeModal()
		}
		return
	}

	if key == "esc" {
		wd.closeModal()
		return
	}
	var err error
	switch g := p.game.(type) {
	case *puzzle.Sequence:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			err = g.PressIndex(int(key[0] - '1'))
		}
	case *puzzle.Translation:
		err = p.text(msg, g.SubmitWord)
	case *puzzle.Cipher:
		err = p.text(msg, g.Guess)
	}
	if err != nil && !errors.Is(err, puzzle.ErrNotAccepting) {
		wd.fail("answering puzzle", err)
	}
	p.sync()
}

// text feeds the answer input and submits it on enter.
func (p *puzzleModal) text(msg tea.KeyMsg, submit func(string) error) error {
	if msg.String() != "enter" {
		p.input, _ = p.input.Update(msg)
		p.input.SetValue(strings.ToUpper(p.input.Value()))
		return nil
	}
	err := submit(p.input.Value())
	if !errors.Is(err, puzzle.ErrIncompleteGuess) {
		p.input.Reset()
	}
	return err
}

// View renders the modal content.
func (p *puzzleModal) View(st *Styles) string {
	switch p.stage {
	case modalIntro:
		return p.viewIntro(st)
	case modalSuccess:
		body := strings.Join([]string{
			st.Accent("green").Render("ACCESS GRANTED"),
			"",
			st.ModalTextStyle.Render(wordwrap.String(p.item.Name+" has been restored to the desktop.", modalWidth)),
		}, "\n")
		return view.Dialog{
			Title:  p.brief.Title,
			Body:   body,
			Footer: view.RenderButtons(st.Modal, 0, view.Button{Key: "Enter", Label: "Close"}),
		}.Render(st.Modal)
	}
	return view.Dialog{
		Title:  p.kind.Title() + " · " + p.item.Name,
		Body:   p.viewGame(st),
		Footer: st.ModalHintStyle.Render("esc abort restore"),
	}.Render(st.Modal)
}

func (p *puzzleModal) viewIntro(st *Styles) string {
	accent := st.Accent(p.brief.Accent)
	lines := []string{
		st.ModalMutedStyle.Render("Clearance required: ") + accent.Render(p.brief.Clearance),
		"",
		st.ModalTextStyle.Render(wordwrap.String(p.brief.Description, modalWidth)),
		"",
	}
	for _, rule := range p.brief.Rules {
		lines = append(lines, accent.Render("› ")+st.ModalTextStyle.Render(wordwrap.String(rule, modalWidth-2)))
	}
	return view.Dialog{
		Title: p.brief.Title,
		Body:  strings.Join(lines, "\n"),
		Footer: view.RenderButtons(st.Modal, 0,
			view.Button{Key: "Enter", Label: "Begin"},
			view.Button{Key: "Esc", Label: "Cancel"}),
	}.Render(st.Modal)
}

func (p *puzzleModal) viewGame(st *Styles) string {
	snap := p.game.Snapshot()
	lives := strings.Repeat("♥", snap.Lives) + strings.Repeat("♡", max(snap.LivesTotal-snap.Lives, 0))
	lines := []string{
		st.ModalMutedStyle.Render(fmt.Sprintf("Round %d/%d   ", min(snap.Index+1, snap.RoundsToWin), snap.RoundsToWin)) +
			st.Accent("red").Render(lives),
		"",
	}

	switch g := p.game.(type) {
	case *puzzle.Sequence:
		lines = append(lines, p.viewSequence(g, snap, st)...)
	case *puzzle.Translation:
		lines = append(lines, p.viewTranslation(g, snap, st)...)
	case *puzzle.Cipher:
		lines = append(lines, p.viewCipher(g, snap, st)...)
	}

	lines = append(lines, "", outcomeLine(snap, st))
	return strings.Join(lines, "\n")
}

func outcomeLine(snap puzzle.Round, st *Styles) string {
	switch snap.Outcome {
	case puzzle.OutcomeCorrect:
		if snap.Phase == puzzle.PhaseFeedback {
			return st.Accent("green").Render("✓ Correct")
		}
	case puzzle.OutcomeWrong:
		if snap.Lives <= 0 {
			return st.Accent("red").Render("✗ Out of lives. Restarting from round 1.")
		}
		return st.Accent("red").Render("✗ Wrong answer")
	}
	return ""
}

func (p *puzzleModal) viewSequence(g *puzzle.Sequence, snap puzzle.Round, st *Styles) []string {
	target := g.Target()
	var b strings.Builder
	switch snap.Phase {
	case puzzle.PhaseShowing:
		idx := g.ShowingIndex()
		for i, glyph := range target {
			if i == idx {
				b.WriteString(st.Accent("amber").Render("[" + glyph + "]"))
			} else {
				b.WriteString(st.ModalMutedStyle.Render(" · "))
			}
		}
		return []string{st.ModalTextStyle.Render("Memorize the sequence"), "", b.String()}
	default:
		input := g.Input()
		for i := range target {
			if i < len(input) {
				b.WriteString(st.ModalTextStyle.Render(" " + input[i] + " "))
			} else {
				b.WriteString(st.ModalMutedStyle.Render(" _ "))
			}
		}
		var pad strings.Builder
		for i, glyph := range g.Pad() {
			pad.WriteString(st.ModalMutedStyle.Render(fmt.Sprintf("%d ", i+1)))
			pad.WriteString(st.Accent("cyan").Render(glyph + "   "))
		}
		return []string{st.ModalTextStyle.Render("Repeat the sequence"), "", b.String(), "", pad.String()}
	}
}

func (p *puzzleModal) viewTranslation(g *puzzle.Translation, snap puzzle.Round, st *Styles) []string {
	encoded := st.Accent("amber").Render(strings.Join(g.Encoded(), "  "))
	if snap.Phase == puzzle.PhaseShowing {
		var rows []string
		var row strings.Builder
		for i, h := range g.Hint() {
			if i > 0 && i%6 == 0 {
				rows = append(rows, row.String())
				row.Reset()
			}
			row.WriteString(st.ModalTextStyle.Render(fmt.Sprintf("%c=", h.Letter)))
			row.WriteString(st.Accent("cyan").Render(h.Symbol + "  "))
		}
		rows = append(rows, row.String())
		lines := []string{
			st.ModalTextStyle.Render(fmt.Sprintf("Study the table (%ds)", g.StudyTimeLeft())),
			"",
		}
		lines = append(lines, rows...)
		return append(lines, "", encoded)
	}
	return []string{
		st.ModalTextStyle.Render("Translate the word"),
		"",
		encoded,
		"",
		st.ModalMutedStyle.Render("› ") + p.input.View(),
	}
}

func (p *puzzleModal) viewCipher(g *puzzle.Cipher, _ puzzle.Round, st *Styles) []string {
	revealed := strings.Join(strings.Split(g.Revealed(), ""), " ")
	return []string{
		st.ModalMutedStyle.Render("Clue: ") + st.ModalTextStyle.Render(g.Hint()),
		"",
		st.Accent("amber").Render(strings.Join(g.Encoded(), " ")),
		st.ModalTextStyle.Render(revealed),
		"",
		st.ModalMutedStyle.Render("› ") + p.input.View(),
	}
}
