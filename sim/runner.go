// Package sim binds the sensing oracle to the navigation controller and
// runs complete two-phase simulations, collecting the per-run statistics
// the evaluation harness records.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/micromouse/maze"
	"github.com/pthm-cable/micromouse/nav"
)

// Options configure one simulation.
type Options struct {
	Oracle     *maze.Oracle
	MaxMove    int        // Cells per command and flood look-ahead
	Program    int        // Exploration program id
	MoveBudget int        // Commands before the run counts as failed
	Rng        *rand.Rand // Drives move tie-breaking
}

// Result summarizes one simulation. Reached false after the move budget is
// the "target not reached" outcome, not an error.
type Result struct {
	Reached bool

	// Commands issued during the exploration phase (run 0) and the
	// fastest-path phase (run 1).
	ExploreMoves int
	FastMoves    int

	// Verified wall segments at the end of each phase.
	ExploreKnown int
	FastKnown    int

	// Wall segments present in the believed grid at the end.
	DiscoveredWalls int

	Score float64
}

// Run executes one full simulation: exploration until the controller
// resets, then the fastest-path run until the center is reached or the
// move budget expires.
func Run(opts Options) (*Result, error) {
	if opts.Oracle == nil {
		return nil, fmt.Errorf("sim: no sensing oracle")
	}
	n := opts.Oracle.Grid().Size()

	ctrl, err := nav.NewController(n, opts.MaxMove, opts.Program, opts.Rng)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	res := &Result{}
	run := 0
	for i := 0; i < opts.MoveBudget; i++ {
		readings := opts.Oracle.Readings(ctrl.Position(), ctrl.Heading())
		cmd, err := ctrl.NextMove(readings)
		if err != nil {
			return nil, fmt.Errorf("sim: move %d: %w", i, err)
		}

		if run == 0 {
			res.ExploreMoves++
		} else {
			res.FastMoves++
		}

		if cmd.Reset {
			res.ExploreKnown = ctrl.Knowledge().VerifiedCount()
			run = 1
			continue
		}

		if run == 1 && ctrl.AtCenter() {
			res.Reached = true
			break
		}
	}

	res.FastKnown = ctrl.Knowledge().VerifiedCount()
	res.DiscoveredWalls = ctrl.Knowledge().DiscoveredWalls()
	res.Score = float64(res.ExploreMoves)/30.0 + float64(res.FastMoves)
	return res, nil
}
