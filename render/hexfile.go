package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
)

// EncodeHex renders the maze in the hex file format: one row of uppercase
// hex digits per grid row, each digit the wall bitmask of a cell (North=1,
// East=2, South=4, West=8), followed by a blank line, the entrance and exit
// as row,col pairs, and the solution path as direction letters.
func EncodeHex(m *maze.Maze, path maze.Path) string {
	var b strings.Builder
	for row := 0; row < m.Grid.Height; row++ {
		for col := 0; col < m.Grid.Width; col++ {
			b.WriteString(fmt.Sprintf("%X", m.Grid.Cells[row][col].WallMask()))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d,%d\n", m.Entrance.Row, m.Entrance.Col))
	b.WriteString(fmt.Sprintf("%d,%d\n", m.Exit.Row, m.Exit.Col))
	b.WriteString(path.Letters() + "\n")
	return b.String()
}

// WriteHexFile writes the hex representation of the maze to filename.
func WriteHexFile(filename string, m *maze.Maze, path maze.Path) error {
	if err := os.WriteFile(filename, []byte(EncodeHex(m, path)), 0o644); err != nil {
		return fmt.Errorf("writing maze file %s: %w", filename, err)
	}
	return nil
}
