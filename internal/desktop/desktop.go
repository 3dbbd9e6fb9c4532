package desktop

import (
	"sort"
	"time"

	"github.com/javiermolinar/murkoff/internal/clock"
	"github.com/javiermolinar/murkoff/internal/grid"
)

// Gesture defaults.
const (
	DefaultDragThreshold    = 1
	DefaultMarqueeThreshold = 5
	DefaultDoubleClick      = 400 * time.Millisecond
)

// Button is a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Mod is a set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// Toggles reports whether the modifiers turn a click into a selection toggle.
func (m Mod) Toggles() bool {
	return m&(ModShift|ModCtrl) != 0
}

// Mode is the active pointer gesture.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeSelecting
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeSelecting:
		return "selecting"
	default:
		return "unknown"
	}
}

// Desktop is the interactive state of the desktop surface.
type Desktop struct {
	store *grid.Store
	clock *clock.Clock

	icons    []Icon
	index    map[string]int
	restored []RestoredItem

	selected map[string]bool
	focus    string

	mode    Mode
	drag    *Drag
	marquee *Marquee
	menu    *ContextMenu
	items   []MenuItem

	lastClickID string
	lastClickAt time.Duration

	dragThreshold    int
	marqueeThreshold int
	doubleClick      time.Duration

	restoredAction func(RestoredItem) func() error
}

// Option configures a Desktop.
type Option func(*Desktop)

// WithClock sets the clock used for double-click detection.
func WithClock(c *clock.Clock) Option {
	return func(d *Desktop) {
		d.clock = c
	}
}

// WithThresholds sets the drag and marquee movement thresholds in pixels.
// A drag starts once movement exceeds drag; the marquee shows and selects
// while the pointer is at least marquee away from where it was pressed.
func WithThresholds(drag, marquee int) Option {
	return func(d *Desktop) {
		d.dragThreshold = drag
		d.marqueeThreshold = marquee
	}
}

// WithDoubleClick sets the maximum gap between the clicks of a double click.
func WithDoubleClick(gap time.Duration) Option {
	return func(d *Desktop) {
		d.doubleClick = gap
	}
}

// WithMenu sets the background context menu entries.
func WithMenu(items ...MenuItem) Option {
	return func(d *Desktop) {
		d.items = items
	}
}

// WithRestoredAction builds the action of icons appended by Restore.
func WithRestoredAction(fn func(RestoredItem) func() error) Option {
	return func(d *Desktop) {
		d.restoredAction = fn
	}
}

// New creates a desktop over store with the given static icons. Icons that
// have no placement yet are laid out top to bottom from the leftmost column.
func New(store *grid.Store, icons []Icon, opts ...Option) *Desktop {
	d := &Desktop{
		store:            store,
		index:            make(map[string]int, len(icons)),
		selected:         make(map[string]bool),
		dragThreshold:    DefaultDragThreshold,
		marqueeThreshold: DefaultMarqueeThreshold,
		doubleClick:      DefaultDoubleClick,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.clock == nil {
		d.clock = clock.New()
	}

	geo := store.Geometry()
	for i, icon := range icons {
		d.index[icon.ID] = len(d.icons)
		d.icons = append(d.icons, icon)
		if _, ok := store.Get(icon.ID); ok {
			continue
		}
		want := grid.Cell{Col: i / geo.Rows, Row: i % geo.Rows}
		if !geo.InBounds(want) {
			want = firstFreeCell(store, icon.ID)
		}
		store.Place(icon.ID, store.NearestFreeCell(want, icon.ID))
	}
	return d
}

// firstFreeCell scans the grid column by column for an empty cell. On a
// full grid it returns the last cell and the icon stacks there.
func firstFreeCell(store *grid.Store, iconID string) grid.Cell {
	geo := store.Geometry()
	for col := range geo.Cols {
		for row := range geo.Rows {
			c := grid.Cell{Col: col, Row: row}
			if !store.IsOccupied(c, iconID) {
				return c
			}
		}
	}
	return grid.Cell{Col: geo.Cols - 1, Row: geo.Rows - 1}
}

// Store returns the placement store.
func (d *Desktop) Store() *grid.Store {
	return d.store
}

// Mode returns the active gesture.
func (d *Desktop) Mode() Mode {
	return d.mode
}

// Selected returns the selected icon ids in catalog order.
func (d *Desktop) Selected() []string {
	var out []string
	for _, icon := range d.icons {
		if d.selected[icon.ID] {
			out = append(out, icon.ID)
		}
	}
	return out
}

// IsSelected reports whether id is selected.
func (d *Desktop) IsSelected(id string) bool {
	return d.selected[id]
}

// ClearSelection empties the selection.
func (d *Desktop) ClearSelection() {
	d.selected = make(map[string]bool)
}

// SelectAll selects every icon.
func (d *Desktop) SelectAll() {
	for _, icon := range d.icons {
		d.selected[icon.ID] = true
	}
}

func (d *Desktop) selectOnly(id string) {
	d.selected = map[string]bool{id: true}
}

func (d *Desktop) toggle(id string) {
	if d.selected[id] {
		delete(d.selected, id)
		return
	}
	d.selected[id] = true
}

// Layout returns every icon with its render position. A dragged icon is last
// so it draws on top.
func (d *Desktop) Layout() []IconView {
	geo := d.store.Geometry()
	out := make([]IconView, 0, len(d.icons))
	var dragged *IconView
	for _, icon := range d.icons {
		cell, _ := d.store.Get(icon.ID)
		v := IconView{
			Icon:     icon,
			Cell:     cell,
			Pos:      geo.ToPixel(cell),
			Selected: d.selected[icon.ID],
			Focused:  d.focus == icon.ID,
		}
		if d.drag != nil && d.drag.IconID == icon.ID && d.drag.Moved {
			v.Pos = d.drag.Pos
			v.Dragging = true
			dragged = &v
			continue
		}
		out = append(out, v)
	}
	if dragged != nil {
		out = append(out, *dragged)
	}
	return out
}

// Focus returns the keyboard-focused icon id.
func (d *Desktop) Focus() string {
	return d.focus
}

// Direction is a keyboard focus move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// MoveFocus moves keyboard focus to the closest icon in direction dir and
// selects it. With no focus yet the first icon in reading order is focused.
func (d *Desktop) MoveFocus(dir Direction) string {
	if len(d.icons) == 0 {
		return ""
	}
	from, ok := d.store.Get(d.focus)
	if !ok {
		d.focus = d.readingOrder()[0]
		d.selectOnly(d.focus)
		return d.focus
	}

	best := ""
	bestMain, bestCross := 0, 0
	for _, icon := range d.icons {
		if icon.ID == d.focus {
			continue
		}
		c, _ := d.store.Get(icon.ID)
		main, cross := axisDistance(dir, from, c)
		if main <= 0 {
			continue
		}
		if best == "" || main < bestMain || (main == bestMain && cross < bestCross) {
			best, bestMain, bestCross = icon.ID, main, cross
		}
	}
	if best != "" {
		d.focus = best
		d.selectOnly(best)
	}
	return d.focus
}

// ActivateFocus runs the focused icon, or the only selected icon.
func (d *Desktop) ActivateFocus() error {
	id := d.focus
	if id == "" {
		sel := d.Selected()
		if len(sel) != 1 {
			return nil
		}
		id = sel[0]
	}
	return d.Activate(id)
}

func (d *Desktop) readingOrder() []string {
	ids := make([]string, 0, len(d.icons))
	for _, icon := range d.icons {
		ids = append(ids, icon.ID)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := d.store.Get(ids[i])
		b, _ := d.store.Get(ids[j])
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return ids
}

func axisDistance(dir Direction, from, to grid.Cell) (main, cross int) {
	dc := to.Col - from.Col
	dr := to.Row - from.Row
	switch dir {
	case Up:
		return -dr, abs(dc)
	case Down:
		return dr, abs(dc)
	case Left:
		return -dc, abs(dr)
	default:
		return dc, abs(dr)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
