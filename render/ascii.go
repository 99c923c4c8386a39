// Package render turns generated mazes into external representations: a
// colored ASCII drawing for terminals and the hex wall-bitmask file format.
// The core mandates no serialization; these formats belong to this package.
package render

import (
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
)

// ASCIIOptions controls the colors of the terminal drawing. Empty fields
// disable coloring for that element, which keeps output testable.
type ASCIIOptions struct {
	WallColor    string // ANSI foreground for walls
	EntryColor   string // ANSI background for the entrance cell
	ExitColor    string // ANSI background for the exit cell
	PathColor    string // ANSI foreground for solution path markers
	PatternColor string // ANSI background for pattern cells
}

const colorReset = "\033[0m"

func paint(s, color string) string {
	if color == "" {
		return s
	}
	return color + s + colorReset
}

// ASCII draws the maze as a wall diagram. The entrance is marked S, the exit
// E, and, when a solution path is given, its cells are marked #.
func ASCII(m *maze.Maze, path *maze.Path, opts ASCIIOptions) string {
	onPath := make(map[maze.CellPosition]struct{})
	if path != nil {
		for _, pos := range path.Cells {
			onPath[pos] = struct{}{}
		}
	}

	var output strings.Builder

	// Top boundary
	output.WriteString(paint("+"+strings.Repeat("---+", m.Grid.Width), opts.WallColor) + "\n")

	for row := 0; row < m.Grid.Height; row++ {
		// Cell row
		cellRow := paint("|", opts.WallColor)
		for col := 0; col < m.Grid.Width; col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			cell := m.Grid.CellAt(pos)

			switch {
			case pos == m.Entrance:
				cellRow += paint(" S ", opts.EntryColor)
			case pos == m.Exit:
				cellRow += paint(" E ", opts.ExitColor)
			case cell.Blocked:
				cellRow += paint("   ", opts.PatternColor)
			default:
				if _, ok := onPath[pos]; ok {
					cellRow += paint(" # ", opts.PathColor)
				} else {
					cellRow += "   "
				}
			}

			if cell.EastWall {
				cellRow += paint("|", opts.WallColor)
			} else {
				cellRow += " "
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall row
		wallRow := "+"
		for col := 0; col < m.Grid.Width; col++ {
			if m.Grid.Cells[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(paint(wallRow, opts.WallColor) + "\n")
	}

	return output.String()
}
