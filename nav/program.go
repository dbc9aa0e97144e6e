package nav

import (
	"fmt"

	"github.com/pthm-cable/micromouse/maze"
)

// Waypoint is a symbolic location an exploration program can send the
// robot to after its first arrival at the center.
type Waypoint uint8

const (
	BottomLeft Waypoint = iota
	BottomRight
	TopLeft
	TopRight
	Center
)

func (w Waypoint) String() string {
	switch w {
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case Center:
		return "center"
	}
	return "invalid"
}

// A program is an ordered list of waypoint sets. Each set is one sub-goal;
// reaching any waypoint in the set satisfies it. Program 0 skips further
// exploration entirely, programs with corner sets let the robot pick
// whichever corner the flood field reaches first.
var programs = [][][]Waypoint{
	0: {},
	1: {{BottomRight, TopLeft, TopRight}},
	2: {{BottomLeft}},
	3: {{BottomRight, TopLeft, TopRight}, {BottomLeft}},
	4: {{TopLeft}, {Center}, {TopRight}, {Center}, {BottomRight}, {Center}},
	5: {{BottomLeft}, {Center}, {BottomLeft}, {Center}},
	6: {{BottomLeft}, {Center}, {BottomLeft}, {Center}, {BottomLeft}, {Center}},
	7: {{TopLeft}, {TopRight}, {BottomRight}, {BottomLeft}},
}

// NumPrograms is the number of predefined exploration programs.
const NumPrograms = 8

// ResolveProgram turns a program id into concrete target sets for an n×n
// maze.
func ResolveProgram(id, n int) ([][]maze.Cell, error) {
	if id < 0 || id >= NumPrograms {
		return nil, fmt.Errorf("exploration program %d out of range [0,%d)", id, NumPrograms)
	}
	center := maze.CenterCells(n)

	resolved := make([][]maze.Cell, 0, len(programs[id]))
	for _, set := range programs[id] {
		var cells []maze.Cell
		for _, w := range set {
			switch w {
			case BottomLeft:
				cells = append(cells, maze.Cell{Col: 0, Row: 0})
			case BottomRight:
				cells = append(cells, maze.Cell{Col: n - 1, Row: 0})
			case TopLeft:
				cells = append(cells, maze.Cell{Col: 0, Row: n - 1})
			case TopRight:
				cells = append(cells, maze.Cell{Col: n - 1, Row: n - 1})
			case Center:
				cells = append(cells, center[:]...)
			}
		}
		resolved = append(resolved, cells)
	}
	return resolved, nil
}
