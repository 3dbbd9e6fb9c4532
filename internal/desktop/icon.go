// Package desktop holds the interactive state of the desktop surface: icon
// catalog, selection, drag and marquee gestures, context menu and keyboard
// focus. It never renders; the TUI reads Layout and draws it.
package desktop

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/murkoff/internal/grid"
)

// Desktop errors.
var (
	ErrIconDisabled = errors.New("icon is disabled")
	ErrUnknownIcon  = errors.New("unknown icon")
)

// Kind classifies an icon for rendering.
type Kind string

const (
	KindApp    Kind = "app"
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindTrash  Kind = "trash"
	KindMail   Kind = "mail"
)

// Glyph returns the pictogram drawn above the label.
func (k Kind) Glyph() string {
	switch k {
	case KindFolder:
		return "▆▆"
	case KindFile:
		return "▤"
	case KindTrash:
		return "♻"
	case KindMail:
		return "✉"
	default:
		return "▣"
	}
}

// Icon is one desktop entry. Action runs on activation.
type Icon struct {
	ID       string
	Label    string
	Kind     Kind
	Disabled bool
	Action   func() error
}

// RestoredItem is a folder brought back from the recycle bin.
type RestoredItem struct {
	ID   string
	Name string
}

// RestoredIconID returns the icon id used for a restored item.
func RestoredIconID(itemID string) string {
	return "restored-" + itemID
}

// IconView is the render state of one icon.
type IconView struct {
	Icon     Icon
	Cell     grid.Cell
	Pos      grid.Point // top-left pixel; free-floating while dragged
	Selected bool
	Focused  bool
	Dragging bool
}

func (d *Desktop) activate(icon Icon) error {
	if icon.Disabled {
		return fmt.Errorf("%s: %w", icon.Label, ErrIconDisabled)
	}
	if icon.Action == nil {
		return nil
	}
	return icon.Action()
}

// Activate runs the action of the icon with the given id.
func (d *Desktop) Activate(id string) error {
	icon, ok := d.Icon(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIcon, id)
	}
	return d.activate(icon)
}

// Icon returns the icon with the given id.
func (d *Desktop) Icon(id string) (Icon, bool) {
	i, ok := d.index[id]
	if !ok {
		return Icon{}, false
	}
	return d.icons[i], true
}

// Icons returns the catalog in insertion order.
func (d *Desktop) Icons() []Icon {
	return append([]Icon(nil), d.icons...)
}

// Restore appends an icon for a restored item at the first free cell, scanning
// from the rightmost column. Restoring the same item twice is a no-op. The
// bool is false when the grid had no free cell.
func (d *Desktop) Restore(item RestoredItem) (grid.Cell, bool) {
	id := RestoredIconID(item.ID)
	if c, ok := d.store.Get(id); ok {
		return c, true
	}
	icon := Icon{ID: id, Label: item.Name, Kind: KindFolder}
	if d.restoredAction != nil {
		icon.Action = d.restoredAction(item)
	}
	d.index[id] = len(d.icons)
	d.icons = append(d.icons, icon)
	d.restored = append(d.restored, item)
	return d.store.InsertAtFirstFree(id)
}

// Restored returns the restored items in restore order.
func (d *Desktop) Restored() []RestoredItem {
	return append([]RestoredItem(nil), d.restored...)
}
