package maze

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("rejects bad sizes", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for _, n := range []int{0, 2, 3, 7, 13} {
			_, err := Generate(n, 10, rng)
			assert.Error(t, err, "size %d", n)
		}
		_, err := Generate(8, 0, rng)
		assert.Error(t, err, "zero attempt budget")
	})

	t.Run("produces valid connected mazes", func(t *testing.T) {
		for _, n := range []int{4, 6, 8, 12, 16} {
			for seed := int64(0); seed < 3; seed++ {
				t.Run(fmt.Sprintf("n=%d seed=%d", n, seed), func(t *testing.T) {
					rng := rand.New(rand.NewSource(seed))
					g, err := Generate(n, 40, rng)
					assert.NoError(t, err)

					assert.NoError(t, g.checkSymmetry())
					assert.False(t, g.HasPassage(Cell{0, 0}, Right),
						"wall right of the origin cell must survive generation")

					// Every cell reachable from the target region.
					center := CenterCells(n)
					f, err := Compute(g, center[:], 1)
					assert.NoError(t, err)
					assert.Equal(t, 0, f.Min(), "all cells reachable, targets at zero")

					// No internal walls among the four center cells.
					assert.True(t, g.HasPassage(center[0], Up))
					assert.True(t, g.HasPassage(center[0], Right))
					assert.True(t, g.HasPassage(center[3], Down))
					assert.True(t, g.HasPassage(center[3], Left))
				})
			}
		}
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		a, err := Generate(12, 60, rand.New(rand.NewSource(42)))
		assert.NoError(t, err)
		b, err := Generate(12, 60, rand.New(rand.NewSource(42)))
		assert.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("larger budgets give denser mazes", func(t *testing.T) {
		sparse, err := Generate(12, 5, rand.New(rand.NewSource(7)))
		assert.NoError(t, err)
		dense, err := Generate(12, 120, rand.New(rand.NewSource(7)))
		assert.NoError(t, err)
		assert.Greater(t, dense.CountWalls(), sparse.CountWalls())
	})
}

func TestInitialGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := initialGrid(8, rng)

	assert.NoError(t, g.checkSymmetry())
	assert.False(t, g.HasPassage(Cell{0, 0}, Right))

	// The center boundary has exactly one opening: of its eight segments,
	// seven are closed.
	c := 4
	block := [4]Cell{{c - 1, c - 1}, {c - 1, c}, {c, c - 1}, {c, c}}
	boundary := []struct {
		cell Cell
		dir  Dir
	}{
		{block[1], Up}, {block[3], Up},
		{block[1], Left}, {block[0], Left},
		{block[0], Down}, {block[2], Down},
		{block[2], Right}, {block[3], Right},
	}
	open := 0
	for _, b := range boundary {
		if g.HasPassage(b.cell, b.dir) {
			open++
		}
	}
	assert.Equal(t, 1, open, "center boundary openings")
}
