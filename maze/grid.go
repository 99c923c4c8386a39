package maze

import "errors"

// Sentinel errors surfaced by the core. They are returned to the immediate
// caller; the core never retries and never logs.
var (
	// ErrInvalidDimension is returned when a grid smaller than 2x2 is requested.
	ErrInvalidDimension = errors.New("maze: width and height must both be at least 2")

	// ErrNotAdjacent is returned by OpenWall for cells that do not share a
	// wall. Reaching it through the generator indicates a logic fault.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")

	// ErrUnreachableState is returned when carving is attempted on a grid
	// with no cells.
	ErrUnreachableState = errors.New("maze: grid has no cells to carve")

	// ErrNoPathFound is returned when the entrance and exit are disconnected.
	ErrNoPathFound = errors.New("maze: no path between entrance and exit")
)

// Grid is a bounded rectangular field of cells. It is created with every wall
// closed, mutated only while the generator carves, and read-only afterwards.
type Grid struct {
	Width  int
	Height int
	Cells  [][]*Cell
}

// NewGrid returns a grid of the given dimensions with all cells fully walled.
func NewGrid(width, height int) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, ErrInvalidDimension
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
		for j := range cells[i] {
			cells[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.Height && pos.Col >= 0 && pos.Col < g.Width
}

// CellAt returns the cell at the given position, or nil when out of bounds.
func (g *Grid) CellAt(pos CellPosition) *Cell {
	if !g.InBounds(pos) {
		return nil
	}
	return g.Cells[pos.Row][pos.Col]
}

// Neighbor returns the position one step from pos in the given direction. The
// second return value is false when the step leaves the grid.
func (g *Grid) Neighbor(pos CellPosition, d Direction) (CellPosition, bool) {
	next := pos.Add(d.Delta())
	if !g.InBounds(pos) || !g.InBounds(next) {
		return CellPosition{}, false
	}
	return next, true
}

// OpenWall removes the wall shared by two adjacent cells, on both sides, so
// the symmetry invariant holds after every call.
func (g *Grid) OpenWall(a, b CellPosition) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return ErrNotAdjacent
	}
	for _, d := range directionOrder {
		if a.Add(d.Delta()) == b {
			g.Cells[a.Row][a.Col].SetWall(d, false)
			g.Cells[b.Row][b.Col].SetWall(d.Opposite(), false)
			return nil
		}
	}
	return ErrNotAdjacent
}

// IsOpen reports whether the wall on the given side of the cell has been
// removed. Out-of-bounds positions are closed by definition.
func (g *Grid) IsOpen(pos CellPosition, d Direction) bool {
	if !g.InBounds(pos) {
		return false
	}
	return !g.Cells[pos.Row][pos.Col].HasWall(d)
}
