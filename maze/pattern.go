package maze

import "fmt"

// pattern42 is stamped into the center of the grid as solid blocked cells.
// '#' marks a blocked cell.
var pattern42 = []string{
	"# # ###",
	"# #   #",
	"### ###",
	"  # #  ",
	"  # ###",
}

// StampPattern marks the "42" pattern cells at the grid center as blocked,
// fully walled cells. Blocked cells are never carved into, never opened by
// wall breaking, and never entered by the solver. The grid must leave at
// least one free cell of margin around the pattern.
func StampPattern(grid *Grid) ([]CellPosition, error) {
	patternHeight := len(pattern42)
	patternWidth := len(pattern42[0])

	if grid.Width < patternWidth+2 || grid.Height < patternHeight+2 {
		return nil, fmt.Errorf("maze: %dx%d grid too small for the pattern, need at least %dx%d",
			grid.Width, grid.Height, patternWidth+2, patternHeight+2)
	}

	startCol := (grid.Width - patternWidth) / 2
	startRow := (grid.Height - patternHeight) / 2

	var cells []CellPosition
	for rowNum, row := range pattern42 {
		for colNum, char := range row {
			if char != '#' {
				continue
			}
			pos := CellPosition{Row: startRow + rowNum, Col: startCol + colNum}
			cell := grid.CellAt(pos)
			cell.NorthWall = true
			cell.SouthWall = true
			cell.EastWall = true
			cell.WestWall = true
			cell.Blocked = true
			cells = append(cells, pos)
		}
	}
	return cells, nil
}
