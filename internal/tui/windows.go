package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/explorer"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// Window size limits.
const (
	maxWindowW = 90
	maxWindowH = 26
)

// window is a framed app drawn over the desktop. Only the top window of the
// stack is shown and receives input.
type window interface {
	Title() string
	Hint() string
	// Body returns the body lines for a w x h body area.
	Body(w, h int, st *Styles) []string
	Resize(w, h int)
	// Key handles a key press and reports whether it was consumed. Esc that
	// is not consumed closes the window.
	Key(msg tea.KeyMsg, wd *world) bool
	// Click handles a primary click on body row.
	Click(row int, wd *world)
}

// windowRect returns the frame of the top window for a terminal of
// width x height, taskbar included.
func windowRect(width, height int) (left, top, w, h int) {
	w = max(min(width-4, maxWindowW), 0)
	h = max(min(height-3, maxWindowH), 0)
	left = max((width-w)/2, 0)
	top = max((height-1-h)/2, 0)
	return left, top, w, h
}

func (w *world) windowBodySize() (int, int) {
	_, _, ww, wh := windowRect(w.width, w.height)
	return view.WindowBodySize(ww, wh)
}

// list is the cursor and scroll state of a vertical list.
type list struct {
	cursor int
	offset int
	rows   int
}

func (l *list) move(delta, total int) {
	if total == 0 {
		l.cursor, l.offset = 0, 0
		return
	}
	l.cursor = max(0, min(l.cursor+delta, total-1))
	l.offset = view.ScrollOffset(l.cursor, l.offset, l.rows, total)
}

func (l *list) reset() {
	l.cursor, l.offset = 0, 0
}

// clamp keeps the cursor valid after the list shrank.
func (l *list) clamp(total int) {
	l.move(0, total)
}

// index maps a list row to an item index.
func (l *list) index(row, total int) (int, bool) {
	i := l.offset + row
	if row < 0 || row >= l.rows || i >= total {
		return 0, false
	}
	return i, true
}

// pick handles a click on row: the first click moves the cursor, a click on
// the cursor row reports true.
func (l *list) pick(row, total int) bool {
	i, ok := l.index(row, total)
	if !ok {
		return false
	}
	if i == l.cursor {
		return true
	}
	l.cursor = i
	return false
}

func (l *list) render(items []string, width int, st *Styles) []string {
	return view.RenderList(items, l.cursor, l.offset, l.rows, width, st.ListStyle, st.ListCursorStyle)
}

func itemGlyph(it catalog.Item) string {
	switch {
	case it.IsFolder():
		return "▆▆"
	case it.Type == catalog.TypeImage:
		return "▨ "
	default:
		return "▤ "
	}
}

func itemLine(it catalog.Item, width int) string {
	kind := string(it.Type)
	switch {
	case it.Locked:
		kind = "locked"
	case !it.IsFolder() && !it.CanOpen:
		kind += ", sealed"
	case it.IsFolder():
		kind = fmt.Sprintf("%d items", len(it.Children))
	}
	right := fmt.Sprintf(" %s ", kind)
	name := " " + itemGlyph(it) + " " + it.Name
	nameW := max(width-ansi.StringWidth(right), 0)
	return view.FitWidth(name, nameW) + right
}

// explorerWindow browses the desktop file tree.
type explorerWindow struct {
	nav  *explorer.Explorer
	list list
}

// explorer header: path line and a blank line.
const explorerHeader = 2

func newExplorerWindow(nav *explorer.Explorer) *explorerWindow {
	return &explorerWindow{nav: nav}
}

func (e *explorerWindow) Title() string {
	return "File Explorer"
}

func (e *explorerWindow) Hint() string {
	return "↑↓ move  enter open  backspace up  esc close"
}

func (e *explorerWindow) Resize(_, h int) {
	e.list.rows = max(h-explorerHeader, 1)
	e.list.clamp(len(e.nav.Items()))
}

func (e *explorerWindow) Body(w, h int, st *Styles) []string {
	items := e.nav.Items()
	lines := []string{
		st.PathStyle.Render(view.FitWidth(" "+strings.Join(e.nav.Path(), " › "), w)),
		"",
	}
	if len(items) == 0 {
		return append(lines, st.MutedStyle.Render(" This folder is empty."))
	}
	text := make([]string, len(items))
	for i, it := range items {
		text[i] = itemLine(it, w)
	}
	return append(lines, e.list.render(text, w, st)...)
}

func (e *explorerWindow) Key(msg tea.KeyMsg, wd *world) bool {
	items := e.nav.Items()
	switch msg.String() {
	case "up", "k":
		e.list.move(-1, len(items))
	case "down", "j":
		e.list.move(1, len(items))
	case "home":
		e.nav.Home()
		e.list.reset()
	case "backspace", "left", "h":
		if e.nav.Back() {
			e.list.reset()
		}
	case "enter", "right", "l":
		e.open(wd)
	default:
		return false
	}
	return true
}

func (e *explorerWindow) Click(row int, wd *world) {
	if e.list.pick(row-explorerHeader, len(e.nav.Items())) {
		e.open(wd)
	}
}

func (e *explorerWindow) open(wd *world) {
	items := e.nav.Items()
	if e.list.cursor >= len(items) {
		return
	}
	it := items[e.list.cursor]
	target, err := e.nav.Open(it.ID)
	if err != nil {
		wd.fail("opening "+it.Name, err)
		return
	}
	if target.Kind == explorer.TargetFolder {
		e.list.reset()
		return
	}
	wd.openTarget(target)
}
