package nav

import (
	"testing"

	"github.com/pthm-cable/micromouse/maze"
)

func TestNewKnowledge(t *testing.T) {
	k := NewKnowledge(6, 3)

	if k.Believed().HasPassage(maze.Cell{Col: 0, Row: 0}, maze.Right) {
		t.Error("origin wall missing from believed grid")
	}
	if !k.Believed().HasPassage(maze.Cell{Col: 2, Row: 2}, maze.Up) {
		t.Error("interior passage not optimistic")
	}

	// Perimeter segments plus the origin wall start out verified.
	if got, want := k.VerifiedCount(), 4*6+1; got != want {
		t.Errorf("initial verified segments = %d, want %d", got, want)
	}

	// Open believed grid carries the perimeter plus the origin wall.
	if got, want := k.DiscoveredWalls(), 4*6+1; got != want {
		t.Errorf("initial discovered walls = %d, want %d", got, want)
	}
}

func TestUpdateFusesReadings(t *testing.T) {
	k := NewKnowledge(6, 3)
	pos := maze.Cell{Col: 0, Row: 0}

	// Left: perimeter at distance 0 (already believed). Front: wall above
	// (0,2). Right: wall right of (1,0).
	changed := k.Update(pos, maze.Up, [3]int{0, 2, 1})

	b := k.Believed()
	if b.HasPassage(maze.Cell{Col: 0, Row: 2}, maze.Up) {
		t.Error("front wall not closed")
	}
	if b.HasPassage(maze.Cell{Col: 0, Row: 3}, maze.Down) {
		t.Error("front wall not closed symmetrically")
	}
	if b.HasPassage(maze.Cell{Col: 1, Row: 0}, maze.Right) {
		t.Error("right wall not closed")
	}

	// Front wall invalidates (0,0)..(0,5); right wall invalidates
	// (0,0)..(4,0). The shared origin cell is reported once.
	if got, want := len(changed), 10; got != want {
		t.Errorf("changed cells = %d, want %d: %v", got, want, changed)
	}
	seen := make(map[maze.Cell]bool, len(changed))
	for _, c := range changed {
		if seen[c] {
			t.Errorf("cell %v reported twice", c)
		}
		seen[c] = true
	}

	// Three new horizontal segments swept by the front ray, one new
	// vertical segment by the right ray.
	if got, want := k.VerifiedCount(), 4*6+1+4; got != want {
		t.Errorf("verified segments = %d, want %d", got, want)
	}
	if got, want := k.DiscoveredWalls(), 4*6+1+2; got != want {
		t.Errorf("discovered walls = %d, want %d", got, want)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	k := NewKnowledge(6, 3)
	pos := maze.Cell{Col: 0, Row: 0}
	readings := [3]int{0, 2, 1}

	k.Update(pos, maze.Up, readings)
	verified := k.VerifiedCount()
	walls := k.DiscoveredWalls()

	changed := k.Update(pos, maze.Up, readings)
	if len(changed) != 0 {
		t.Errorf("repeated update reported %d changed cells, want 0", len(changed))
	}
	if k.VerifiedCount() != verified || k.DiscoveredWalls() != walls {
		t.Error("repeated update mutated knowledge")
	}
}

func TestUpdateNeverRetracts(t *testing.T) {
	k := NewKnowledge(6, 3)

	// A wall seen from one side stays closed when later sensed from beyond
	// it on the other side.
	k.Update(maze.Cell{Col: 3, Row: 0}, maze.Up, [3]int{3, 1, 2})
	if k.Believed().HasPassage(maze.Cell{Col: 3, Row: 1}, maze.Up) {
		t.Fatal("wall above (3,1) not closed")
	}

	changed := k.Update(maze.Cell{Col: 3, Row: 5}, maze.Down, [3]int{2, 3, 3})
	if k.Believed().HasPassage(maze.Cell{Col: 3, Row: 2}, maze.Down) {
		t.Error("wall retracted by opposite-side sensing")
	}
	if len(changed) != 0 {
		t.Errorf("opposite-side sensing of a known wall reported %d changed cells", len(changed))
	}
}
