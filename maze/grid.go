// Package maze provides the bit-packed wall grid shared by the maze
// generator, the ground-truth sensing oracle and the navigation planner,
// plus loading and saving of the maze text format.
//
// A maze is an n×n grid of cells, n even, with the origin cell (0,0) at
// the bottom-left corner. Each cell carries a 4-bit mask where a set bit
// means the passage on that side is open. The outer perimeter is always
// fully walled and the four center cells form the target region.
package maze

import (
	"fmt"
	"strings"
)

// Cell is an integer grid coordinate. Col grows rightward, Row upward.
type Cell struct {
	Col, Row int
}

// Step returns the cell one step from c along d.
func (c Cell) Step(d Dir) Cell {
	dc, dr := d.Delta()
	return Cell{c.Col + dc, c.Row + dr}
}

// Offset returns the cell m steps from c along d.
func (c Cell) Offset(d Dir, m int) Cell {
	dc, dr := d.Delta()
	return Cell{c.Col + dc*m, c.Row + dr*m}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Grid is an n×n wall grid stored as one flat byte slice, column-major so
// a maze file line maps onto a contiguous run of masks.
type Grid struct {
	n     int
	cells []uint8
}

// NewGrid returns an n×n grid with every wall closed.
func NewGrid(n int) *Grid {
	return &Grid{n: n, cells: make([]uint8, n*n)}
}

// NewOpenGrid returns an n×n grid with every internal passage open and the
// perimeter walled: the minimally-walled starting state of the generator
// and of the robot's optimistic believed map.
func NewOpenGrid(n int) *Grid {
	g := &Grid{n: n, cells: make([]uint8, n*n)}
	for i := range g.cells {
		g.cells[i] = 0x0f
	}
	for i := 0; i < n; i++ {
		g.clearBit(Cell{i, 0}, Down)
		g.clearBit(Cell{i, n - 1}, Up)
		g.clearBit(Cell{0, i}, Left)
		g.clearBit(Cell{n - 1, i}, Right)
	}
	return g
}

// Size returns the side length n.
func (g *Grid) Size() int {
	return g.n
}

func (g *Grid) idx(c Cell) int {
	return c.Col*g.n + c.Row
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.n && c.Row >= 0 && c.Row < g.n
}

// Mask returns the raw 4-bit wall mask of c.
func (g *Grid) Mask(c Cell) uint8 {
	return g.cells[g.idx(c)]
}

// SetMask overwrites the raw wall mask of c. Callers are responsible for
// keeping neighbor masks symmetric; prefer OpenPassage/ClosePassage.
func (g *Grid) SetMask(c Cell, mask uint8) {
	g.cells[g.idx(c)] = mask
}

// HasPassage reports whether the side of c facing d is open. Out-of-bounds
// cells have no passages.
func (g *Grid) HasPassage(c Cell, d Dir) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[g.idx(c)]&d.Mask() != 0
}

func (g *Grid) setBit(c Cell, d Dir) {
	g.cells[g.idx(c)] |= d.Mask()
}

func (g *Grid) clearBit(c Cell, d Dir) {
	g.cells[g.idx(c)] &^= d.Mask()
}

// OpenPassage opens the wall between c and its neighbor across d, updating
// both sides. Opening a perimeter side only sets the inner bit and must
// not happen once grids are initialized through NewOpenGrid.
func (g *Grid) OpenPassage(c Cell, d Dir) {
	g.setBit(c, d)
	if nb := c.Step(d); g.InBounds(nb) {
		g.setBit(nb, d.Reverse())
	}
}

// ClosePassage closes the wall between c and its neighbor across d,
// updating both sides.
func (g *Grid) ClosePassage(c Cell, d Dir) {
	g.clearBit(c, d)
	if nb := c.Step(d); g.InBounds(nb) {
		g.clearBit(nb, d.Reverse())
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{n: g.n, cells: make([]uint8, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// CenterCells returns the four target cells at the center of an n×n maze,
// n even.
func CenterCells(n int) [4]Cell {
	h := n / 2
	return [4]Cell{{h - 1, h - 1}, {h - 1, h}, {h, h - 1}, {h, h}}
}

// CountWalls returns the number of wall segments in the grid, counting the
// perimeter and each internal segment once.
func (g *Grid) CountWalls() int {
	walls := g.n * 2
	for col := 0; col < g.n; col++ {
		for row := 0; row < g.n; row++ {
			c := Cell{col, row}
			if !g.HasPassage(c, Down) {
				walls++
			}
			if !g.HasPassage(c, Right) {
				walls++
			}
		}
	}
	return walls
}

// String renders the grid as rows of masks, topmost row first, for error
// diagnostics and debugging.
func (g *Grid) String() string {
	var b strings.Builder
	for row := g.n - 1; row >= 0; row-- {
		for col := 0; col < g.n; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%2d", g.Mask(Cell{col, row}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
