package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubMaze(t *testing.T, width, height int, algo Algorithm) *Maze {
	t.Helper()
	g, err := NewGrid(width, height)
	require.NoError(t, err)
	gen := NewGenerator(g, stubRand{})
	require.NoError(t, gen.Carve(CellPosition{Row: 0, Col: 0}, algo))
	return &Maze{
		Grid:     g,
		Entrance: CellPosition{Row: 0, Col: 0},
		Exit:     CellPosition{Row: height - 1, Col: width - 1},
	}
}

func TestSolvePinnedPath(t *testing.T) {
	m := stubMaze(t, 3, 3, Backtracker)

	path, err := Solve(m)
	require.NoError(t, err)

	assert.Equal(t, "EESS", path.Letters())
	assert.Equal(t, []CellPosition{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 1, Col: 2},
		{Row: 2, Col: 2},
	}, path.Cells)
}

func TestSolveProperties(t *testing.T) {
	seed := int64(1234)
	for _, algo := range []Algorithm{Backtracker, Prim} {
		t.Run(string(algo), func(t *testing.T) {
			m, err := Generate(GenerateOptions{Width: 9, Height: 6, Seed: &seed, Algorithm: algo, Perfect: true})
			require.NoError(t, err)

			path, err := Solve(m)
			require.NoError(t, err)
			require.NotEmpty(t, path.Cells)

			assert.Equal(t, m.Entrance, path.Cells[0])
			assert.Equal(t, m.Exit, path.Cells[len(path.Cells)-1])
			assert.Len(t, path.Directions, len(path.Cells)-1)

			// Every consecutive pair is connected by an open wall.
			for i, d := range path.Directions {
				assert.True(t, m.Grid.IsOpen(path.Cells[i], d))
				assert.Equal(t, path.Cells[i].Add(d.Delta()), path.Cells[i+1])
			}
		})
	}
}

func TestSolveShortestIsMinimal(t *testing.T) {
	// Open every wall: the shortest path between opposite corners of a
	// 4x4 grid then takes exactly width-1 + height-1 steps.
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := CellPosition{Row: row, Col: col}
			for _, d := range []Direction{East, South} {
				if next, ok := g.Neighbor(pos, d); ok {
					require.NoError(t, g.OpenWall(pos, next))
				}
			}
		}
	}
	m := &Maze{Grid: g, Entrance: CellPosition{Row: 0, Col: 0}, Exit: CellPosition{Row: 3, Col: 3}}

	path, err := Solve(m)
	require.NoError(t, err)
	assert.Len(t, path.Directions, 6)

	// With N, E, S, W expansion priority the east moves come first.
	assert.Equal(t, "EEESSS", path.Letters())
}

func TestSolveNoPath(t *testing.T) {
	// A grid with no carved passages keeps the entrance and exit in
	// disconnected components.
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	m := &Maze{Grid: g, Entrance: CellPosition{Row: 0, Col: 0}, Exit: CellPosition{Row: 1, Col: 1}}

	_, err = Solve(m)
	assert.ErrorIs(t, err, ErrNoPathFound)
}

func TestSolveDoesNotMutateGrid(t *testing.T) {
	m := stubMaze(t, 3, 3, Backtracker)
	before := wallMasks(m.Grid)

	_, err := Solve(m)
	require.NoError(t, err)
	assert.Equal(t, before, wallMasks(m.Grid))
}

func TestSolveDeterministicOnImperfectMaze(t *testing.T) {
	seed := int64(2024)
	m, err := Generate(GenerateOptions{Width: 12, Height: 12, Seed: &seed, Perfect: false})
	require.NoError(t, err)

	first, err := Solve(m)
	require.NoError(t, err)
	second, err := Solve(m)
	require.NoError(t, err)

	assert.Equal(t, first.Cells, second.Cells)
	assert.Equal(t, first.Letters(), second.Letters())
}
