package sim

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/micromouse/maze"
)

func TestRunRequiresOracle(t *testing.T) {
	_, err := Run(Options{MaxMove: 3, MoveBudget: 100, Rng: rand.New(rand.NewSource(1))})
	assert.Error(t, err)
}

func TestRunReachesCenter(t *testing.T) {
	grid, err := maze.Generate(12, 60, rand.New(rand.NewSource(17)))
	assert.NoError(t, err)
	oracle := maze.NewOracle(grid)

	for _, program := range []int{0, 2, 5} {
		t.Run(fmt.Sprintf("program=%d", program), func(t *testing.T) {
			res, err := Run(Options{
				Oracle:     oracle,
				MaxMove:    3,
				Program:    program,
				MoveBudget: 10000,
				Rng:        rand.New(rand.NewSource(23)),
			})
			assert.NoError(t, err)
			assert.True(t, res.Reached)
			assert.Greater(t, res.ExploreMoves, 0)
			assert.Greater(t, res.FastMoves, 0)
			assert.GreaterOrEqual(t, res.FastKnown, res.ExploreKnown)
			assert.InDelta(t, float64(res.ExploreMoves)/30.0+float64(res.FastMoves), res.Score, 1e-9)
			if program != 0 {
				// Any real exploration program maps the route well enough
				// that the fastest run needs fewer commands than the
				// exploration run.
				assert.LessOrEqual(t, res.FastMoves, res.ExploreMoves)
			}
		})
	}
}

func TestRunRespectsMoveBudget(t *testing.T) {
	grid, err := maze.Generate(12, 60, rand.New(rand.NewSource(17)))
	assert.NoError(t, err)

	res, err := Run(Options{
		Oracle:     maze.NewOracle(grid),
		MaxMove:    3,
		Program:    5,
		MoveBudget: 5,
		Rng:        rand.New(rand.NewSource(23)),
	})
	assert.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Equal(t, 5, res.ExploreMoves+res.FastMoves)
}
