/*
Package maze provides tools for creating and solving rectangular mazes.

It defines the `Grid` structure, composed of `Cell` objects holding wall
configurations, a `Generator` that carves randomized spanning-tree passages
with either a depth-first backtracker or Prim's algorithm, and a
breadth-first `Solve` that finds the shortest path between the entrance and
the exit.

Generation is deterministic under a fixed seed: the same width, height, seed
and algorithm always produce byte-identical wall layouts.
*/
package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Maze is a carved grid with its two designated special cells. The grid is
// read-only once Generate returns.
type Maze struct {
	ID       uuid.UUID
	Grid     *Grid
	Entrance CellPosition
	Exit     CellPosition
	Pattern  []CellPosition
}

// GenerateOptions are the grid construction arguments translated from
// external configuration.
type GenerateOptions struct {
	Width     int
	Height    int
	Seed      *int64        // nil seeds from the clock
	Algorithm Algorithm     // zero value means Backtracker
	Entrance  *CellPosition // nil defaults to the top-left corner
	Exit      *CellPosition // nil defaults to the bottom-right corner
	Perfect   bool          // when false, extra walls are broken after carving
	Pattern   bool          // stamp the "42" pattern before carving
}

// breakWallChance is the per-cell probability of opening an extra wall on an
// imperfect maze.
const breakWallChance = 0.1

// Generate builds a maze from the given options: allocate the grid, stamp
// the optional pattern, carve with the selected algorithm, and break extra
// walls when an imperfect maze was requested.
func Generate(opts GenerateOptions) (*Maze, error) {
	grid, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	entrance := CellPosition{Row: 0, Col: 0}
	if opts.Entrance != nil {
		entrance = *opts.Entrance
	}
	exit := CellPosition{Row: opts.Height - 1, Col: opts.Width - 1}
	if opts.Exit != nil {
		exit = *opts.Exit
	}
	if !grid.InBounds(entrance) || !grid.InBounds(exit) {
		return nil, fmt.Errorf("maze: entrance %v or exit %v outside %dx%d grid", entrance, exit, opts.Width, opts.Height)
	}
	if entrance == exit {
		return nil, fmt.Errorf("maze: entrance and exit are both %v", entrance)
	}

	var pattern []CellPosition
	if opts.Pattern {
		pattern, err = StampPattern(grid)
		if err != nil {
			return nil, err
		}
		for _, pos := range pattern {
			if pos == entrance || pos == exit {
				return nil, fmt.Errorf("maze: pattern overlaps entrance or exit at %v", pos)
			}
		}
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	gen := NewGenerator(grid, rand.New(rand.NewSource(seed)))
	if err := gen.Carve(entrance, opts.Algorithm); err != nil {
		return nil, err
	}
	if !opts.Perfect {
		gen.BreakWalls(breakWallChance)
	}

	return &Maze{
		ID:       uuid.New(),
		Grid:     grid,
		Entrance: entrance,
		Exit:     exit,
		Pattern:  pattern,
	}, nil
}
