package maze

// Algorithm selects the carving strategy. The backtracker produces long
// winding corridors; Prim's produces a more uniformly branching tree.
type Algorithm string

const (
	Backtracker Algorithm = "backtracker"
	Prim        Algorithm = "prim"
)

// randSource is the subset of math/rand.Rand the generator draws from. It is
// a seam so tests can script the exact draw sequence.
type randSource interface {
	Intn(n int) int
	Float64() float64
}

// Generator carves a spanning structure of passages into a grid. All
// randomness flows through a single source seeded once per maze, consumed in
// one deterministic sequence of draws.
type Generator struct {
	grid *Grid
	rand randSource
}

// NewGenerator returns a generator that carves into grid using src for every
// random draw.
func NewGenerator(grid *Grid, src randSource) *Generator {
	return &Generator{grid: grid, rand: src}
}

// Carve runs the selected algorithm from the start cell. On a grid without
// blocked cells the result is a perfect maze: every cell reachable, exactly
// width*height-1 wall openings, a unique path between any two cells.
func (gen *Generator) Carve(start CellPosition, algo Algorithm) error {
	if gen.grid.Width == 0 || gen.grid.Height == 0 {
		return ErrUnreachableState
	}

	switch algo {
	case Prim:
		gen.carvePrim(start)
	default:
		gen.carveBacktracker(start)
	}
	return nil
}

// candidates returns the in-bounds, unblocked neighbors of pos, in the fixed
// N, E, S, W order. When visited is non-nil, visited cells are skipped too.
func (gen *Generator) candidates(pos CellPosition, visited [][]bool) []CellPosition {
	var result []CellPosition
	for _, d := range directionOrder {
		next, ok := gen.grid.Neighbor(pos, d)
		if !ok || gen.grid.CellAt(next).Blocked {
			continue
		}
		if visited != nil && visited[next.Row][next.Col] {
			continue
		}
		result = append(result, next)
	}
	return result
}

// carveBacktracker is the depth-first "recursive backtracker": walk to a
// random unvisited neighbor, opening walls as it goes, and pop back when a
// cell has no unvisited neighbors left.
func (gen *Generator) carveBacktracker(start CellPosition) {
	visited := newVisited(gen.grid)
	visited[start.Row][start.Col] = true
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		unvisited := gen.candidates(current, visited)
		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[gen.rand.Intn(len(unvisited))]
		_ = gen.grid.OpenWall(current, next)
		visited[next.Row][next.Col] = true
		stack = append(stack, next)
	}
}

// carvePrim grows the maze from a random frontier: pop a random frontier
// cell, connect it to a random already-visited neighbor, and add its own
// unseen neighbors to the frontier.
func (gen *Generator) carvePrim(start CellPosition) {
	visited := newVisited(gen.grid)
	inFrontier := newVisited(gen.grid)
	visited[start.Row][start.Col] = true

	var frontier []CellPosition
	for _, next := range gen.candidates(start, nil) {
		frontier = append(frontier, next)
		inFrontier[next.Row][next.Col] = true
	}

	for len(frontier) > 0 {
		i := gen.rand.Intn(len(frontier))
		current := frontier[i]
		frontier = append(frontier[:i], frontier[i+1:]...)
		inFrontier[current.Row][current.Col] = false

		neighbors := gen.candidates(current, nil)
		var carved []CellPosition
		for _, n := range neighbors {
			if visited[n.Row][n.Col] {
				carved = append(carved, n)
			}
		}
		if len(carved) == 0 {
			continue
		}

		into := carved[gen.rand.Intn(len(carved))]
		_ = gen.grid.OpenWall(current, into)
		visited[current.Row][current.Col] = true

		for _, n := range neighbors {
			if !visited[n.Row][n.Col] && !inFrontier[n.Row][n.Col] {
				frontier = append(frontier, n)
				inFrontier[n.Row][n.Col] = true
			}
		}
	}
}

// BreakWalls randomly opens extra walls so the maze is no longer perfect.
// Each cell gets one chance and one random direction; an opening is skipped
// when it would touch a blocked cell or create a 3x3 fully-open area.
func (gen *Generator) BreakWalls(chance float64) {
	for row := 0; row < gen.grid.Height; row++ {
		for col := 0; col < gen.grid.Width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if gen.grid.CellAt(pos).Blocked {
				continue
			}
			if gen.rand.Float64() >= chance {
				continue
			}

			d := directionOrder[gen.rand.Intn(len(directionOrder))]
			next, ok := gen.grid.Neighbor(pos, d)
			if !ok || gen.grid.CellAt(next).Blocked {
				continue
			}
			if gen.largeOpenArea(pos, next) {
				continue
			}
			_ = gen.grid.OpenWall(pos, next)
		}
	}
}

// largeOpenArea reports whether removing the wall between a and b would leave
// a 3x3 area with no internal walls around either cell.
func (gen *Generator) largeOpenArea(a, b CellPosition) bool {
	for _, check := range [2]CellPosition{a, b} {
		minRow := max(0, check.Row-2)
		maxRow := min(gen.grid.Height-3, check.Row)
		minCol := max(0, check.Col-2)
		maxCol := min(gen.grid.Width-3, check.Col)

		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				if gen.areaOpen(CellPosition{Row: row, Col: col}, 3, 3, a, b) {
					return true
				}
			}
		}
	}
	return false
}

// areaOpen reports whether the width x height area starting at origin would
// be completely open once the wall between removedA and removedB is gone.
func (gen *Generator) areaOpen(origin CellPosition, width, height int, removedA, removedB CellPosition) bool {
	removed := func(a, b CellPosition) bool {
		return (a == removedA && b == removedB) || (a == removedB && b == removedA)
	}

	for row := origin.Row; row < origin.Row+height; row++ {
		for col := origin.Col; col < origin.Col+width; col++ {
			pos := CellPosition{Row: row, Col: col}
			cell := gen.grid.CellAt(pos)
			if cell.Blocked {
				return false
			}

			if col < origin.Col+width-1 {
				east := CellPosition{Row: row, Col: col + 1}
				if cell.EastWall && !removed(pos, east) {
					return false
				}
			}
			if row < origin.Row+height-1 {
				south := CellPosition{Row: row + 1, Col: col}
				if cell.SouthWall && !removed(pos, south) {
					return false
				}
			}
		}
	}
	return true
}

func newVisited(g *Grid) [][]bool {
	visited := make([][]bool, g.Height)
	for i := range visited {
		visited[i] = make([]bool, g.Width)
	}
	return visited
}
