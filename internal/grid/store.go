package grid

// Placement is the committed cell of one icon.
type Placement struct {
	IconID string
	Cell   Cell
}

// Store is the single source of truth for icon placements.
// It does not validate occupancy on Place; callers resolve conflicts first
// with NearestFreeCell.
type Store struct {
	geo   Geometry
	cells map[string]Cell
	order []string
}

// NewStore creates an empty store for the given geometry.
func NewStore(geo Geometry) *Store {
	return &Store{
		geo:   geo,
		cells: make(map[string]Cell),
	}
}

// Geometry returns the lattice the store places icons on.
func (s *Store) Geometry() Geometry {
	return s.geo
}

// Place upserts the placement of iconID.
func (s *Store) Place(iconID string, c Cell) {
	if _, ok := s.cells[iconID]; !ok {
		s.order = append(s.order, iconID)
	}
	s.cells[iconID] = c
}

// Get returns the placement of iconID.
func (s *Store) Get(iconID string) (Cell, bool) {
	c, ok := s.cells[iconID]
	return c, ok
}

// Len returns the number of placed icons.
func (s *Store) Len() int {
	return len(s.order)
}

// Placements returns all placements in insertion order.
func (s *Store) Placements() []Placement {
	out := make([]Placement, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Placement{IconID: id, Cell: s.cells[id]})
	}
	return out
}

// IsOccupied reports whether any icon other than excludingID sits at c.
// Pass an empty excludingID to consider every icon.
func (s *Store) IsOccupied(c Cell, excludingID string) bool {
	for _, id := range s.order {
		if id == excludingID {
			continue
		}
		if s.cells[id] == c {
			return true
		}
	}
	return false
}

// NearestFreeCell resolves a drop target. The target is clamped onto the
// lattice first; a free target is then returned unchanged.
// Otherwise rings of growing Chebyshev radius around the target are scanned,
// columns outer and rows inner, and the first free in-bounds cell wins.
//
// When every cell is taken the clamped target is returned as is. Boards are
// sized well above the icon count, so a saturated grid is accepted as a
// degraded state rather than an error.
func (s *Store) NearestFreeCell(target Cell, excludingID string) Cell {
	target = s.geo.Clamp(target)
	if !s.IsOccupied(target, excludingID) {
		return target
	}
	maxRadius := s.geo.Cols
	if s.geo.Rows > maxRadius {
		maxRadius = s.geo.Rows
	}
	for radius := 1; radius <= maxRadius; radius++ {
		for dc := -radius; dc <= radius; dc++ {
			for dr := -radius; dr <= radius; dr++ {
				c := Cell{Col: target.Col + dc, Row: target.Row + dr}
				if !s.geo.InBounds(c) {
					continue
				}
				if !s.IsOccupied(c, excludingID) {
					return c
				}
			}
		}
	}
	return target
}

// InsertAtFirstFree places a newly appearing icon. Cells are scanned column
// by column starting at the rightmost one, top to bottom within a column.
// The bool is false when the grid is saturated; the icon is then stacked on
// the first scanned cell so it still has exactly one placement.
func (s *Store) InsertAtFirstFree(iconID string) (Cell, bool) {
	for col := s.geo.Cols - 1; col >= 0; col-- {
		for row := 0; row < s.geo.Rows; row++ {
			c := Cell{Col: col, Row: row}
			if !s.IsOccupied(c, iconID) {
				s.Place(iconID, c)
				return c, true
			}
		}
	}
	c := Cell{Col: s.geo.Cols - 1, Row: 0}
	s.Place(iconID, c)
	return c, false
}

// IconAt returns the id of the icon whose committed hit box contains p.
// Later placements win when boxes overlap.
func (s *Store) IconAt(p Point) (string, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		id := s.order[i]
		if s.geo.IconBounds(s.geo.ToPixel(s.cells[id])).Contains(p) {
			return id, true
		}
	}
	return "", false
}
