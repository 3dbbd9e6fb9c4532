// Package grid maps desktop pixels onto the icon placement lattice and keeps
// track of where each icon sits.
package grid

import "errors"

// Geometry errors.
var (
	ErrInvalidGeometry = errors.New("invalid grid geometry")
)

const (
	// DefaultCols is the number of columns on the desktop lattice.
	DefaultCols = 15
	// DefaultRows is the number of rows on the desktop lattice.
	DefaultRows = 8
	// DefaultCellW is the cell width in pixels (terminal columns).
	DefaultCellW = 12
	// DefaultCellH is the cell height in pixels (terminal lines).
	DefaultCellH = 4
	// DefaultPadding is the offset of cell (0,0) from the surface origin.
	DefaultPadding = 1
	// DefaultIconW is the width of an icon's hit box.
	DefaultIconW = 10
	// DefaultIconH is the height of an icon's hit box.
	DefaultIconH = 3
)

// Cell is a logical (column, row) address on the lattice.
type Cell struct {
	Col int
	Row int
}

// Point is a position in surface pixel space.
type Point struct {
	X int
	Y int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle. W and H may be zero.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// RectFromPoints builds the rectangle spanned by two corners in any order.
func RectFromPoints(a, b Point) Rect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether r and o intersect, counting touching edges.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W &&
		r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

// Geometry describes the fixed lattice of the desktop surface.
type Geometry struct {
	Cols    int
	Rows    int
	CellW   int
	CellH   int
	Padding int
	IconW   int
	IconH   int
}

// DefaultGeometry returns the stock 15x8 desktop.
func DefaultGeometry() Geometry {
	return Geometry{
		Cols:    DefaultCols,
		Rows:    DefaultRows,
		CellW:   DefaultCellW,
		CellH:   DefaultCellH,
		Padding: DefaultPadding,
		IconW:   DefaultIconW,
		IconH:   DefaultIconH,
	}
}

// Validate checks the geometry is usable.
func (g Geometry) Validate() error {
	switch {
	case g.Cols <= 0 || g.Rows <= 0:
		return ErrInvalidGeometry
	case g.CellW <= 0 || g.CellH <= 0:
		return ErrInvalidGeometry
	case g.Padding < 0:
		return ErrInvalidGeometry
	case g.IconW <= 0 || g.IconH <= 0 || g.IconW > g.CellW || g.IconH > g.CellH:
		return ErrInvalidGeometry
	}
	return nil
}

// InBounds reports whether c is a valid lattice address.
func (g Geometry) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Clamp moves c onto the nearest lattice address.
func (g Geometry) Clamp(c Cell) Cell {
	return Cell{Col: clamp(c.Col, 0, g.Cols-1), Row: clamp(c.Row, 0, g.Rows-1)}
}

// ToPixel returns the top-left pixel of a cell.
func (g Geometry) ToPixel(c Cell) Point {
	return Point{
		X: c.Col*g.CellW + g.Padding,
		Y: c.Row*g.CellH + g.Padding,
	}
}

// ToGrid returns the cell containing p, clamped to the lattice.
func (g Geometry) ToGrid(p Point) Cell {
	col := floorDiv(p.X-g.Padding, g.CellW)
	row := floorDiv(p.Y-g.Padding, g.CellH)
	return Cell{
		Col: clamp(col, 0, g.Cols-1),
		Row: clamp(row, 0, g.Rows-1),
	}
}

// HalfCell is the offset from a cell's top-left pixel to its center.
func (g Geometry) HalfCell() Point {
	return Point{X: g.CellW / 2, Y: g.CellH / 2}
}

// IconBounds returns the hit box of an icon whose top-left sits at p.
func (g Geometry) IconBounds(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, W: g.IconW, H: g.IconH}
}

// Bounds returns the full surface covered by the lattice, padding included.
func (g Geometry) Bounds() Rect {
	return Rect{
		X: 0,
		Y: 0,
		W: g.Cols*g.CellW + 2*g.Padding,
		H: g.Rows*g.CellH + 2*g.Padding,
	}
}

// Chebyshev returns the king-move distance between two cells.
func Chebyshev(a, b Cell) int {
	dc := abs(a.Col - b.Col)
	dr := abs(a.Row - b.Row)
	if dc > dr {
		return dc
	}
	return dr
}

// PointDistance returns the larger axis distance between two pixels.
func PointDistance(a, b Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
