package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/explorer"
	"github.com/javiermolinar/murkoff/internal/notify"
	"github.com/javiermolinar/murkoff/internal/puzzle"
	"github.com/javiermolinar/murkoff/internal/recycle"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// recycleHeader is the path line, a notice line and a blank line.
const recycleHeader = 3

// recycleWindow lists deleted folders and drives unlock and restore.
type recycleWindow struct {
	bin  *recycle.Bin
	list list

	password  textinput.Model
	unlocking string // id of the folder asking for a password
	confirm   string // id of the puzzle-free item awaiting confirmation
}

func newRecycleWindow(bin *recycle.Bin) *recycleWindow {
	ti := textinput.New()
	ti.Placeholder = "password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 32
	ti.Width = 24
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &recycleWindow{bin: bin, password: ti}
}

func (r *recycleWindow) Title() string {
	return recycle.RootName
}

func (r *recycleWindow) Hint() string {
	switch {
	case r.unlocking != "":
		return "enter unlock  esc cancel"
	case r.confirm != "":
		return "y restore  n cancel"
	case r.bin.AtRoot():
		return "↑↓ move  enter open  r restore  esc close"
	default:
		return "↑↓ move  enter open  backspace up  esc close"
	}
}

func (r *recycleWindow) Resize(_, h int) {
	r.list.rows = max(h-recycleHeader-2, 1)
	r.list.clamp(len(r.bin.Items()))
}

func (r *recycleWindow) Body(w, h int, st *Styles) []string {
	items := r.bin.Items()
	lines := []string{
		st.PathStyle.Render(view.FitWidth(" "+strings.Join(r.bin.Path(), " › "), w)),
		st.MutedStyle.Render(view.FitWidth(fmt.Sprintf(" %d deleted item(s). Restoring a folder requires clearance.", len(r.bin.Deleted())), w)),
		"",
	}
	if len(items) == 0 {
		lines = append(lines, st.MutedStyle.Render(" The recycle bin is empty."))
	} else {
		text := make([]string, len(items))
		for i, it := range items {
			text[i] = r.line(it, w)
		}
		lines = append(lines, r.list.render(text, w, st)...)
	}

	for len(lines) < h-2 {
		lines = append(lines, "")
	}
	switch {
	case r.unlocking != "":
		name := r.unlocking
		if it, ok := r.selected(); ok {
			name = it.Name
		}
		lines = append(lines,
			st.WarningStyle.Render(" "+name+" is password protected."),
			st.ListStyle.Render(" Password: ")+r.password.View(),
		)
	case r.confirm != "":
		lines = append(lines,
			st.AccentStyle.Render(" Restore this item to the desktop?"),
			st.ListStyle.Render(" [y] yes   [n] no"),
		)
	}
	return lines
}

func (r *recycleWindow) line(it catalog.Item, w int) string {
	if !r.bin.AtRoot() {
		return itemLine(it, w)
	}
	status := "no clearance needed"
	if it.Puzzle != "" {
		if kind, err := puzzle.ParseKind(it.Puzzle); err == nil {
			status = kind.Title()
		}
	}
	if it.Locked && !r.bin.IsUnlocked(it.ID) {
		status = "locked · " + status
	}
	right := " " + status + " "
	name := " " + itemGlyph(it) + " " + it.Name
	return view.FitWidth(name, max(w-len([]rune(right)), 0)) + right
}

func (r *recycleWindow) selected() (catalog.Item, bool) {
	items := r.bin.Items()
	if r.list.cursor >= len(items) {
		return catalog.Item{}, false
	}
	return items[r.list.cursor], true
}

func (r *recycleWindow) Key(msg tea.KeyMsg, wd *world) bool {
	if r.unlocking != "" {
		return r.keyPassword(msg, wd)
	}
	if r.confirm != "" {
		switch msg.String() {
		case "y", "enter":
			id := r.confirm
			r.confirm = ""
			if it, ok := r.selected(); ok && it.ID == id {
				wd.startRestore(it)
				r.list.clamp(len(r.bin.Items()))
			}
		case "n", "esc":
			r.confirm = ""
		}
		return true
	}

	items := r.bin.Items()
	switch msg.String() {
	case "up", "k":
		r.list.move(-1, len(items))
	case "down", "j":
		r.list.move(1, len(items))
	case "backspace", "left", "h":
		if r.bin.Back() {
			r.list.reset()
		}
	case "enter", "right", "l":
		r.open(wd)
	case "r":
		r.restore(wd)
	default:
		return false
	}
	return true
}

func (r *recycleWindow) keyPassword(msg tea.KeyMsg, wd *world) bool {
	switch msg.String() {
	case "esc":
		r.unlocking = ""
		r.password.Reset()
		r.password.Blur()
	case "enter":
		id := r.unlocking
		err := r.bin.Unlock(id, r.password.Value())
		r.password.Reset()
		if err != nil {
			wd.fail("unlocking folder", err)
			return true
		}
		r.unlocking = ""
		r.password.Blur()
		r.list.reset()
		wd.notes.Notify(notify.KindSuccess, "Access granted", "Folder unlocked.")
	default:
		r.password, _ = r.password.Update(msg)
	}
	return true
}

func (r *recycleWindow) Click(row int, wd *world) {
	if r.unlocking != "" || r.confirm != "" {
		return
	}
	if r.list.pick(row-recycleHeader, len(r.bin.Items())) {
		r.open(wd)
	}
}

func (r *recycleWindow) open(wd *world) {
	it, ok := r.selected()
	if !ok {
		return
	}
	target, err := r.bin.Open(it.ID)
	switch {
	case errors.Is(err, recycle.ErrLocked):
		r.askPassword(it)
		return
	case err != nil:
		wd.fail("opening "+it.Name, err)
		return
	}
	if target.Kind == explorer.TargetFolder {
		r.list.reset()
		return
	}
	wd.openTarget(target)
}

func (r *recycleWindow) restore(wd *world) {
	if !r.bin.AtRoot() {
		wd.notes.Notify(notify.KindInfo, "Restore", "Go back to the recycle bin root to restore a folder.")
		return
	}
	it, ok := r.selected()
	if !ok {
		return
	}
	if it.Locked && !r.bin.IsUnlocked(it.ID) {
		r.askPassword(it)
		return
	}
	if it.Puzzle == "" {
		r.confirm = it.ID
		return
	}
	wd.startRestore(it)
}

func (r *recycleWindow) askPassword(it catalog.Item) {
	r.unlocking = it.ID
	r.password.Reset()
	r.password.Focus()
}
