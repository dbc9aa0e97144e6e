package nav

import (
	"reflect"
	"testing"

	"github.com/pthm-cable/micromouse/maze"
)

func TestResolveProgram(t *testing.T) {
	for _, id := range []int{-1, NumPrograms} {
		if _, err := ResolveProgram(id, 8); err == nil {
			t.Errorf("program %d: expected error", id)
		}
	}

	p0, err := ResolveProgram(0, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(p0) != 0 {
		t.Errorf("program 0 has %d sub-goals, want 0", len(p0))
	}

	p5, err := ResolveProgram(5, 8)
	if err != nil {
		t.Fatal(err)
	}
	center := maze.CenterCells(8)
	want := [][]maze.Cell{
		{{Col: 0, Row: 0}},
		center[:],
		{{Col: 0, Row: 0}},
		center[:],
	}
	if !reflect.DeepEqual(p5, want) {
		t.Errorf("program 5 = %v, want %v", p5, want)
	}

	p1, err := ResolveProgram(1, 8)
	if err != nil {
		t.Fatal(err)
	}
	corners := [][]maze.Cell{
		{{Col: 7, Row: 0}, {Col: 0, Row: 7}, {Col: 7, Row: 7}},
	}
	if !reflect.DeepEqual(p1, corners) {
		t.Errorf("program 1 = %v, want %v", p1, corners)
	}
}
