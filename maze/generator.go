package maze

import (
	"fmt"
	"math/rand"
)

// centerOpening describes one way of opening the boundary that encloses
// the four center cells: the cell (as an offset from the center point c =
// n/2) and the side to reopen. Exactly one entry is applied, chosen
// uniformly, so every generated maze has a single entrance to the target
// region before random wall insertion begins.
type centerOpening struct {
	dc, dr int
	dir    Dir
}

var centerOpenings = [8]centerOpening{
	{0, 0, Up},
	{-1, 0, Up},
	{-1, 0, Left},
	{-1, -1, Left},
	{-1, -1, Down},
	{0, -1, Down},
	{0, -1, Right},
	{0, 0, Right},
}

// wallTxn is a tentative wall closure that can be kept or rolled back
// after the connectivity check.
type wallTxn struct {
	grid *Grid
	cell Cell
	dir  Dir
}

func (t wallTxn) apply() {
	t.grid.ClosePassage(t.cell, t.dir)
}

func (t wallTxn) revert() {
	t.grid.OpenPassage(t.cell, t.dir)
}

// Generate builds a random maze. Starting from a minimally-walled grid it
// repeatedly proposes closing a random open passage, keeping the closure
// only when every cell remains reachable from the center. Each insertion
// gets maxAttempts proposals; generation stops once a whole budget passes
// without a successful insertion, then the four center cells are forced
// fully open among themselves. Deterministic for a given rng state.
func Generate(n, maxAttempts int, rng *rand.Rand) (*Grid, error) {
	if n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("maze size %d must be an even number >= 4", n)
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("insertion attempt budget %d must be positive", maxAttempts)
	}

	g := initialGrid(n, rng)
	center := CenterCells(n)
	targets := center[:]

	for {
		inserted, err := addOneWall(g, targets, maxAttempts, rng)
		if err != nil {
			return nil, err
		}
		if !inserted {
			break
		}
	}

	// The target region has no internal walls regardless of what random
	// insertion produced.
	g.OpenPassage(center[0], Up)
	g.OpenPassage(center[0], Right)
	g.OpenPassage(center[3], Down)
	g.OpenPassage(center[3], Left)

	return g, nil
}

// initialGrid returns the pre-insertion grid: perimeter walls, the known
// wall to the right of the origin cell, and a closed boundary around the
// four center cells with one random opening.
func initialGrid(n int, rng *rand.Rand) *Grid {
	g := NewOpenGrid(n)
	g.ClosePassage(Cell{0, 0}, Right)

	c := n / 2
	block := [4]Cell{{c - 1, c - 1}, {c - 1, c}, {c, c - 1}, {c, c}}
	g.ClosePassage(block[1], Up)
	g.ClosePassage(block[3], Up)
	g.ClosePassage(block[1], Left)
	g.ClosePassage(block[0], Left)
	g.ClosePassage(block[0], Down)
	g.ClosePassage(block[2], Down)
	g.ClosePassage(block[2], Right)
	g.ClosePassage(block[3], Right)

	opening := centerOpenings[rng.Intn(len(centerOpenings))]
	g.OpenPassage(Cell{c + opening.dc, c + opening.dr}, opening.dir)

	return g
}

// addOneWall tries up to maxAttempts random closures, committing the first
// one that keeps the maze fully connected. It reports whether a wall was
// inserted; exhausting the budget is the loop's normal termination, not an
// error.
func addOneWall(g *Grid, targets []Cell, maxAttempts int, rng *rand.Rand) (bool, error) {
	for i := 0; i < maxAttempts; i++ {
		cell := Cell{rng.Intn(g.Size()), rng.Intn(g.Size())}
		dir := Dirs[rng.Intn(len(Dirs))]
		if !g.HasPassage(cell, dir) {
			continue
		}

		txn := wallTxn{grid: g, cell: cell, dir: dir}
		txn.apply()

		// Plain single-step flood: look-ahead changes distances but
		// never which cells are reachable.
		field, err := Compute(g, targets, 1)
		if err != nil {
			return false, fmt.Errorf("connectivity check: %w", err)
		}
		if field.Min() >= 0 {
			return true, nil
		}
		txn.revert()
	}
	return false, nil
}
