package maze

// Direction identifies one of the four cardinal sides of a cell.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// directionOrder is the fixed candidate order used everywhere neighbors are
// enumerated. The seeded random source is the only tie-break on top of it,
// which keeps generation and solving reproducible.
var directionOrder = [4]Direction{North, East, South, West}

// String returns the single-letter encoding of the direction (N, E, S, W).
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Opposite returns the reciprocal direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Delta returns the row/column offset of one step in the direction.
func (d Direction) Delta() CellPosition {
	switch d {
	case North:
		return CellPosition{Row: -1, Col: 0}
	case East:
		return CellPosition{Row: 0, Col: 1}
	case South:
		return CellPosition{Row: 1, Col: 0}
	default:
		return CellPosition{Row: 0, Col: -1}
	}
}

// Cell represents a single cell in a maze grid. It tracks the presence of a
// wall on each side and whether the cell is blocked, meaning it belongs to a
// stamped pattern and must never be carved into or walked through.
type Cell struct {
	NorthWall bool
	SouthWall bool
	EastWall  bool
	WestWall  bool
	Blocked   bool
}

// HasWall returns true if there is a wall on the given side of the cell.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case East:
		return c.EastWall
	case South:
		return c.SouthWall
	default:
		return c.WestWall
	}
}

// SetWall sets the presence of a wall on the given side of the cell.
func (c *Cell) SetWall(d Direction, hasWall bool) {
	switch d {
	case North:
		c.NorthWall = hasWall
	case East:
		c.EastWall = hasWall
	case South:
		c.SouthWall = hasWall
	default:
		c.WestWall = hasWall
	}
}

// WallMask returns the cell's walls encoded as a bitmask: North=1, East=2,
// South=4, West=8. This is the encoding used by the hex maze file format.
func (c *Cell) WallMask() int {
	mask := 0
	if c.NorthWall {
		mask |= 1
	}
	if c.EastWall {
		mask |= 2
	}
	if c.SouthWall {
		mask |= 4
	}
	if c.WestWall {
		mask |= 8
	}
	return mask
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int
	Col int
}

// Add returns the position offset by delta.
func (cp CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}
