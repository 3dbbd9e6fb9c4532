package desktop

import (
	"github.com/javiermolinar/murkoff/internal/grid"
)

// Drag is an in-progress icon drag.
type Drag struct {
	IconID string
	From   grid.Cell
	Offset grid.Point // pointer minus icon top-left at press time
	Start  grid.Point // pointer at press time
	Pos    grid.Point // free-floating icon top-left
	Moved  bool       // movement exceeded the drag threshold
}

// Drop is the result of a committed drag.
type Drop struct {
	IconID string
	From   grid.Cell
	Target grid.Cell // cell under the icon center
	To     grid.Cell // committed cell
}

// Marquee is an in-progress rectangle selection.
type Marquee struct {
	Start   grid.Point
	End     grid.Point
	Visible bool // pointer is at least the marquee threshold from Start
}

// Rect returns the rectangle spanned by the gesture.
func (m Marquee) Rect() grid.Rect {
	return grid.RectFromPoints(m.Start, m.End)
}

// ActiveDrag returns the drag in progress.
func (d *Desktop) ActiveDrag() (Drag, bool) {
	if d.drag == nil {
		return Drag{}, false
	}
	return *d.drag, true
}

// ActiveMarquee returns the marquee in progress.
func (d *Desktop) ActiveMarquee() (Marquee, bool) {
	if d.marquee == nil {
		return Marquee{}, false
	}
	return *d.marquee, true
}

// PointerDown starts a gesture. The primary button on an icon resolves click
// selection, runs the icon on a double click and arms a drag; on the
// background it clears the selection and arms a marquee. The secondary button
// on the background opens the context menu. The returned error comes from an
// activated icon.
func (d *Desktop) PointerDown(p grid.Point, b Button, mod Mod) error {
	if d.mode != ModeIdle {
		return nil
	}
	d.menu = nil
	id, onIcon := d.store.IconAt(p)

	if b == ButtonSecondary {
		if onIcon {
			if !d.selected[id] {
				d.selectOnly(id)
			}
			return nil
		}
		d.ClearSelection()
		d.menu = &ContextMenu{Pos: p, Items: d.items}
		return nil
	}
	if b != ButtonPrimary {
		return nil
	}

	if !onIcon {
		d.ClearSelection()
		d.focus = ""
		d.lastClickID = ""
		d.mode = ModeSelecting
		d.marquee = &Marquee{Start: p, End: p}
		return nil
	}

	if mod.Toggles() {
		d.toggle(id)
	} else {
		d.selectOnly(id)
	}
	d.focus = id

	cell, _ := d.store.Get(id)
	origin := d.store.Geometry().ToPixel(cell)
	d.mode = ModeDragging
	d.drag = &Drag{
		IconID: id,
		From:   cell,
		Offset: p.Sub(origin),
		Start:  p,
		Pos:    origin,
	}

	if !mod.Toggles() && d.lastClickID == id && d.clock.Now()-d.lastClickAt <= d.doubleClick {
		d.lastClickID = ""
		return d.Activate(id)
	}
	d.lastClickID = id
	d.lastClickAt = d.clock.Now()
	return nil
}

// PointerMove updates the active gesture. Dragging only moves the
// free-floating position; nothing is committed until release. The marquee
// selects only while the pointer is at least the marquee threshold away from
// where it started, so moving back toward the start clears the selection.
func (d *Desktop) PointerMove(p grid.Point) {
	switch d.mode {
	case ModeDragging:
		if !d.drag.Moved && grid.PointDistance(p, d.drag.Start) > d.dragThreshold {
			d.drag.Moved = true
			d.lastClickID = ""
		}
		d.drag.Pos = p.Sub(d.drag.Offset)
	case ModeSelecting:
		d.marquee.End = p
		d.marquee.Visible = grid.PointDistance(p, d.marquee.Start) >= d.marqueeThreshold
		if d.marquee.Visible {
			d.selectInside(d.marquee.Rect())
		} else {
			d.ClearSelection()
		}
	}
}

// PointerUp ends the active gesture. A drag whose movement exceeded the
// threshold commits the icon to the free cell nearest the one under its
// center; the bool reports whether that happened.
func (d *Desktop) PointerUp(p grid.Point) (Drop, bool) {
	switch d.mode {
	case ModeDragging:
		d.PointerMove(p)
		drag := *d.drag
		d.drag = nil
		d.mode = ModeIdle
		if !drag.Moved {
			return Drop{}, false
		}
		geo := d.store.Geometry()
		target := geo.ToGrid(drag.Pos.Add(geo.HalfCell()))
		to := d.store.NearestFreeCell(target, drag.IconID)
		d.store.Place(drag.IconID, to)
		return Drop{IconID: drag.IconID, From: drag.From, Target: target, To: to}, true
	case ModeSelecting:
		d.PointerMove(p)
		d.marquee = nil
		d.mode = ModeIdle
	}
	return Drop{}, false
}

// CancelGesture abandons a drag or marquee without committing.
func (d *Desktop) CancelGesture() {
	d.drag = nil
	d.marquee = nil
	d.mode = ModeIdle
}

func (d *Desktop) selectInside(r grid.Rect) {
	geo := d.store.Geometry()
	sel := make(map[string]bool)
	for _, pl := range d.store.Placements() {
		if _, ok := d.index[pl.IconID]; !ok {
			continue
		}
		if geo.IconBounds(geo.ToPixel(pl.Cell)).Overlaps(r) {
			sel[pl.IconID] = true
		}
	}
	d.selected = sel
}

// Escape cancels the gesture, closes the menu and clears selection and focus.
func (d *Desktop) Escape() {
	d.CancelGesture()
	d.menu = nil
	d.focus = ""
	d.ClearSelection()
}
