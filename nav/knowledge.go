// Package nav drives the robot through a partially-unknown maze: it fuses
// ranged sensor readings into a believed wall map, keeps a flood-fill
// distance field over that map, and selects move commands through a
// three-phase exploration state machine.
package nav

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/pthm-cable/micromouse/maze"
)

// Knowledge is the robot's evolving picture of the maze: an optimistic
// believed grid (no wall until a sensor proves one) plus verified flags
// per wall segment. Verified segments never unverify and believed walls
// are never retracted.
type Knowledge struct {
	n       int
	maxMove int

	believed *maze.Grid

	// vert[i*n+row] is the segment left of column i in a row, i in [0,n].
	// hor[col*(n+1)+j] is the segment below row j in a column, j in [0,n].
	vert []bool
	hor  []bool
}

// NewKnowledge returns the initial knowledge for an n×n maze: everything
// open except the perimeter and the known wall to the right of the origin
// cell, with exactly those segments verified.
func NewKnowledge(n, maxMove int) *Knowledge {
	k := &Knowledge{
		n:        n,
		maxMove:  maxMove,
		believed: maze.NewOpenGrid(n),
		vert:     make([]bool, (n+1)*n),
		hor:      make([]bool, n*(n+1)),
	}
	k.believed.ClosePassage(maze.Cell{Col: 0, Row: 0}, maze.Right)

	for i := 0; i < n; i++ {
		k.vert[0*n+i] = true
		k.vert[n*n+i] = true
		k.hor[i*(n+1)+0] = true
		k.hor[i*(n+1)+n] = true
	}
	k.vert[1*n+0] = true
	return k
}

// Believed returns the believed wall grid. The controller reads it for
// planning; only Update mutates it.
func (k *Knowledge) Believed() *maze.Grid {
	return k.believed
}

// Update fuses one set of sensor readings taken at a pose. Each reading is
// the count of open cells before the next wall in that sensor's direction.
// All swept segments up to and including the blocking wall become
// verified; newly discovered walls are closed symmetrically in the
// believed grid. The returned cells are every cell within the look-ahead
// bound of a new wall segment, deduplicated: exactly the set whose
// distances the flood field can no longer trust.
func (k *Knowledge) Update(pos maze.Cell, heading maze.Dir, readings [3]int) []maze.Cell {
	changed := mapset.New[maze.Cell]()

	for i, d := range maze.SensorDirs(heading) {
		dist := readings[i]
		k.markVerified(pos, d, dist)

		wallCell := pos.Offset(d, dist)
		if !k.believed.HasPassage(wallCell, d) {
			continue
		}
		k.believed.ClosePassage(wallCell, d)

		// The new wall sits between wallCell and its neighbor across d;
		// collect the maxMove cells on each side of it.
		for m := k.maxMove; m > -k.maxMove; m-- {
			c := wallCell.Offset(d, m)
			if k.believed.InBounds(c) {
				changed.Put(c)
			}
		}
	}

	out := make([]maze.Cell, 0, changed.Size())
	changed.Each(func(c maze.Cell) {
		out = append(out, c)
	})
	return out
}

// markVerified flags the segments a sensor ray swept: the dist open ones
// plus the blocking wall itself.
func (k *Knowledge) markVerified(pos maze.Cell, d maze.Dir, dist int) {
	switch d {
	case maze.Right:
		for i := pos.Col + 1; i <= pos.Col+dist+1; i++ {
			k.vert[i*k.n+pos.Row] = true
		}
	case maze.Left:
		for i := pos.Col - dist; i <= pos.Col; i++ {
			k.vert[i*k.n+pos.Row] = true
		}
	case maze.Up:
		for j := pos.Row + 1; j <= pos.Row+dist+1; j++ {
			k.hor[pos.Col*(k.n+1)+j] = true
		}
	case maze.Down:
		for j := pos.Row - dist; j <= pos.Row; j++ {
			k.hor[pos.Col*(k.n+1)+j] = true
		}
	}
}

// VerifiedCount returns how many wall segments have been verified so far,
// a coverage measure for run records.
func (k *Knowledge) VerifiedCount() int {
	count := 0
	for _, v := range k.vert {
		if v {
			count++
		}
	}
	for _, v := range k.hor {
		if v {
			count++
		}
	}
	return count
}

// DiscoveredWalls returns the number of wall segments present in the
// believed grid.
func (k *Knowledge) DiscoveredWalls() int {
	return k.believed.CountWalls()
}
