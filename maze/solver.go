package maze

import "strings"

// Path is an ordered walk from entrance to exit, inclusive, where each
// consecutive pair of cells is connected by an open wall.
type Path struct {
	Cells      []CellPosition
	Directions []Direction
}

// Letters returns the path encoded as direction letters, e.g. "EESS".
func (p Path) Letters() string {
	var b strings.Builder
	for _, d := range p.Directions {
		b.WriteString(d.String())
	}
	return b.String()
}

// Solve finds the shortest path between the maze's entrance and exit with a
// breadth-first search over open walls. The grid is treated as untrusted
// input: when the exit is unreachable, ErrNoPathFound is returned rather
// than assuming generator invariants. The grid is never mutated.
//
// Neighbors are expanded in the fixed N, E, S, W order, so when several
// shortest paths exist (possible on an imperfect maze) the result is still
// deterministic for a given grid.
func Solve(m *Maze) (Path, error) {
	type step struct {
		from CellPosition
		dir  Direction
	}

	grid := m.Grid
	visited := newVisited(grid)
	visited[m.Entrance.Row][m.Entrance.Col] = true
	parent := make(map[CellPosition]step)
	queue := []CellPosition{m.Entrance}

	found := false
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == m.Exit {
			found = true
			break
		}

		for _, d := range directionOrder {
			if !grid.IsOpen(current, d) {
				continue
			}
			next, ok := grid.Neighbor(current, d)
			if !ok || visited[next.Row][next.Col] || grid.CellAt(next).Blocked {
				continue
			}
			visited[next.Row][next.Col] = true
			parent[next] = step{from: current, dir: d}
			queue = append(queue, next)
		}
	}

	if !found {
		return Path{}, ErrNoPathFound
	}

	var cells []CellPosition
	var dirs []Direction
	for current := m.Exit; current != m.Entrance; {
		s, ok := parent[current]
		if !ok {
			return Path{}, ErrNoPathFound
		}
		cells = append(cells, current)
		dirs = append(dirs, s.dir)
		current = s.from
	}
	cells = append(cells, m.Entrance)

	reverse(cells)
	reverse(dirs)
	return Path{Cells: cells, Directions: dirs}, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
