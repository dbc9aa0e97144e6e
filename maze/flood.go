package maze

import "fmt"

// Unvisited marks cells the flood has not reached.
const Unvisited = -1

// Field is a distance field over a wall grid: the minimum number of move
// commands from each cell to the nearest cell of a target set. A command
// can traverse up to maxMove cells through consecutive open passages, so
// the propagation looks ahead along runs of open walls instead of only
// stepping to adjacent cells.
type Field struct {
	n       int
	maxMove int
	dist    []int
}

// Compute flood-fills a fresh field from the target set. It returns an
// error only when the frontier fails to drain within n² sweeps, which
// signals a corrupted grid rather than any legal maze state.
func Compute(g *Grid, targets []Cell, maxMove int) (*Field, error) {
	f := &Field{n: g.Size(), maxMove: maxMove, dist: make([]int, g.Size()*g.Size())}
	for i := range f.dist {
		f.dist[i] = Unvisited
	}
	for _, t := range targets {
		f.dist[f.idx(t)] = 0
	}
	frontier := make([]Cell, len(targets))
	copy(frontier, targets)
	return f, f.propagate(g, frontier)
}

// Adjust patches the field after walls were added near the changed cells.
// Every cell farther than the minimum pre-change distance among them is
// invalidated and re-flooded from the cells exactly at that distance; the
// result is identical to recomputing from scratch. Cells already
// unvisited among changed are ignored.
func (f *Field) Adjust(g *Grid, changed []Cell) error {
	if len(changed) == 0 {
		return nil
	}
	start := int(^uint(0) >> 1)
	for _, c := range changed {
		if d := f.dist[f.idx(c)]; d >= 0 && d < start {
			start = d
		}
	}
	var frontier []Cell
	for col := 0; col < f.n; col++ {
		for row := 0; row < f.n; row++ {
			c := Cell{col, row}
			switch d := f.dist[f.idx(c)]; {
			case d > start:
				f.dist[f.idx(c)] = Unvisited
			case d == start:
				frontier = append(frontier, c)
			}
		}
	}
	return f.propagate(g, frontier)
}

// propagate runs the bounded-look-ahead breadth-first expansion from an
// already-seeded frontier.
func (f *Field) propagate(g *Grid, frontier []Cell) error {
	var next []Cell
	for iter := 0; len(frontier) > 0; iter++ {
		if iter >= f.n*f.n {
			return fmt.Errorf("flood frontier not drained after %d sweeps on grid:\n%s", iter, g)
		}
		next = next[:0]
		for _, c := range frontier {
			base := f.dist[f.idx(c)]
			for _, d := range Dirs {
				run := c
				for m := 0; m < f.maxMove; m++ {
					if !g.HasPassage(run, d) {
						break
					}
					nb := run.Step(d)
					if f.dist[f.idx(nb)] == Unvisited {
						f.dist[f.idx(nb)] = base + 1
						next = append(next, nb)
					}
					run = nb
				}
			}
		}
		frontier, next = next, frontier
	}
	return nil
}

func (f *Field) idx(c Cell) int {
	return c.Col*f.n + c.Row
}

// At returns the distance of c, or Unvisited.
func (f *Field) At(c Cell) int {
	return f.dist[f.idx(c)]
}

// Min returns the smallest distance in the field; Unvisited (-1) if any
// cell was not reached.
func (f *Field) Min() int {
	min := f.dist[0]
	for _, d := range f.dist[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

// MaxMove returns the look-ahead bound the field was computed with.
func (f *Field) MaxMove() int {
	return f.maxMove
}

// Equal reports whether two fields assign identical distances.
func (f *Field) Equal(other *Field) bool {
	if f.n != other.n || len(f.dist) != len(other.dist) {
		return false
	}
	for i, d := range f.dist {
		if d != other.dist[i] {
			return false
		}
	}
	return true
}

// String renders the field as rows of distances, topmost row first.
func (f *Field) String() string {
	out := ""
	for row := f.n - 1; row >= 0; row-- {
		for col := 0; col < f.n; col++ {
			out += fmt.Sprintf("%3d ", f.dist[f.idx(Cell{col, row})])
		}
		out += "\n"
	}
	return out
}
