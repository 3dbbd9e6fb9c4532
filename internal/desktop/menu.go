package desktop

import (
	"fmt"

	"github.com/javiermolinar/murkoff/internal/grid"
)

// MenuItem is one context menu entry.
type MenuItem struct {
	ID     string
	Label  string
	Action func() error
}

// ContextMenu is an open context menu anchored at a pixel.
type ContextMenu struct {
	Pos   grid.Point
	Items []MenuItem
}

// Width returns the menu width in pixels, borders included.
func (m ContextMenu) Width() int {
	w := 0
	for _, it := range m.Items {
		if n := len([]rune(it.Label)); n > w {
			w = n
		}
	}
	return w + 4
}

// ItemAt returns the index of the entry under p, assuming one row per entry
// below a one-row border.
func (m ContextMenu) ItemAt(p grid.Point) (int, bool) {
	row := p.Y - m.Pos.Y - 1
	if p.X < m.Pos.X || p.X >= m.Pos.X+m.Width() || row < 0 || row >= len(m.Items) {
		return 0, false
	}
	return row, true
}

// Menu returns the open context menu.
func (d *Desktop) Menu() (ContextMenu, bool) {
	if d.menu == nil {
		return ContextMenu{}, false
	}
	return *d.menu, true
}

// CloseMenu closes the context menu.
func (d *Desktop) CloseMenu() {
	d.menu = nil
}

// ChooseMenu runs entry i of the open menu and closes it.
func (d *Desktop) ChooseMenu(i int) error {
	if d.menu == nil {
		return nil
	}
	items := d.menu.Items
	d.menu = nil
	if i < 0 || i >= len(items) {
		return fmt.Errorf("menu entry %d out of range", i)
	}
	if items[i].Action == nil {
		return nil
	}
	return items[i].Action()
}
