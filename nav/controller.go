package nav

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/micromouse/maze"
)

// Mode is the controller's navigation phase. Transitions only move
// forward: exploration toward the center, optional further exploration,
// then the fastest-path phase.
type Mode uint8

const (
	ExploreToTarget Mode = iota
	ExploreFromTarget
	Go
)

func (m Mode) String() string {
	switch m {
	case ExploreToTarget:
		return "explore-to-target"
	case ExploreFromTarget:
		return "explore-from-target"
	case Go:
		return "go"
	}
	return "invalid"
}

// Command is one move instruction. Rotation is -90, 0 or +90 degrees;
// Movement is a signed cell count bounded by the move length, negative
// meaning backing up without rotating. Reset is the sentinel ending the
// exploration phase: the caller must treat the pose as back at the origin
// heading up, which the controller has already done for itself.
type Command struct {
	Rotation int
	Movement int
	Reset    bool
}

var origin = maze.Cell{Col: 0, Row: 0}

// Controller owns the robot pose, its knowledge of the maze and the flood
// distance field, and turns sensor readings into move commands.
type Controller struct {
	n       int
	maxMove int

	pos     maze.Cell
	heading maze.Dir
	mode    Mode

	center  [4]maze.Cell
	program [][]maze.Cell
	step    int

	know  *Knowledge
	field *maze.Field
	rng   *rand.Rand
}

// NewController creates a controller for an n×n maze at the origin heading
// up, in exploration mode, running the given exploration program after the
// first center arrival. The rng drives only the uniform tie-break between
// equally good moves.
func NewController(n, maxMove, programID int, rng *rand.Rand) (*Controller, error) {
	if n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("maze size %d must be an even number >= 4", n)
	}
	program, err := ResolveProgram(programID, n)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		n:       n,
		maxMove: maxMove,
		heading: maze.Up,
		mode:    ExploreToTarget,
		center:  maze.CenterCells(n),
		program: program,
		know:    NewKnowledge(n, maxMove),
		rng:     rng,
	}
	c.field, err = maze.Compute(c.know.Believed(), c.center[:], maxMove)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Position returns the robot's current cell.
func (c *Controller) Position() maze.Cell {
	return c.pos
}

// Heading returns the robot's current heading.
func (c *Controller) Heading() maze.Dir {
	return c.heading
}

// Mode returns the current navigation phase.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Knowledge exposes the accumulated maze knowledge for reporting.
func (c *Controller) Knowledge() *Knowledge {
	return c.know
}

// AtCenter reports whether the robot stands on one of the four target
// cells.
func (c *Controller) AtCenter() bool {
	for _, t := range c.center {
		if c.pos == t {
			return true
		}
	}
	return false
}

// NextMove consumes one set of sensor readings and returns the next
// command, advancing the robot's simulated pose. The mode blocks fall
// through: arriving at a sub-goal immediately re-plans against the next
// one within the same call, re-fusing the same readings (a no-op the
// second time).
func (c *Controller) NextMove(readings [3]int) (Command, error) {
	reset := false

	if c.mode == ExploreToTarget {
		cmd, arrived, err := c.selectMove(readings, c.center[:], reset)
		if err != nil {
			return Command{}, err
		}
		if !arrived {
			return cmd, nil
		}
		reset = true
		if len(c.program) == 0 {
			return c.beginGoPhase(), nil
		}
		c.step = 0
		c.mode = ExploreFromTarget
	}

	if c.mode == ExploreFromTarget {
		cmd, arrived, err := c.selectMove(readings, c.program[c.step], reset)
		if err != nil {
			return Command{}, err
		}
		if arrived {
			c.step++
			if c.step >= len(c.program) {
				return c.beginGoPhase(), nil
			}
			cmd, _, err = c.selectMove(readings, c.program[c.step], true)
			if err != nil {
				return Command{}, err
			}
		}
		return cmd, nil
	}

	// Go phase: a fresh fastest-path attempt starts whenever the robot
	// sits at the origin heading up, so the field is recomputed for the
	// center before the first move of each attempt.
	if c.pos == origin && c.heading == maze.Up {
		reset = true
	}
	cmd, _, err := c.selectMove(readings, c.center[:], reset)
	return cmd, err
}

// beginGoPhase resets the pose to the origin and switches to the terminal
// fastest-path mode.
func (c *Controller) beginGoPhase() Command {
	c.mode = Go
	c.pos = origin
	c.heading = maze.Up
	return Command{Reset: true}
}

// selectMove runs one planning cycle against a target set: recompute the
// field if the targets changed, fuse sensors, patch the field, then pick
// the best direction and run length. arrived is true when the current cell
// is already a target, in which case no move is made.
func (c *Controller) selectMove(readings [3]int, targets []maze.Cell, targetsChanged bool) (Command, bool, error) {
	var err error
	if targetsChanged {
		c.field, err = maze.Compute(c.know.Believed(), targets, c.maxMove)
		if err != nil {
			return Command{}, false, err
		}
	}

	if changed := c.know.Update(c.pos, c.heading, readings); len(changed) > 0 {
		if err := c.field.Adjust(c.know.Believed(), changed); err != nil {
			return Command{}, false, err
		}
	}

	if c.field.At(origin) == maze.Unvisited {
		return Command{}, false, fmt.Errorf("origin unreachable in believed maze:\n%s", c.know.Believed())
	}

	if c.field.At(c.pos) == 0 {
		return Command{}, true, nil
	}

	// Scan the four directions for the run reaching the lowest distance.
	// Zero-length "runs" tie with the current distance and are skipped, so
	// the robot only stays put when genuinely boxed in, which the field
	// consistency invariant rules out.
	type option struct {
		dir   maze.Dir
		steps int
	}
	best := c.field.At(c.pos)
	var options []option
	for _, d := range maze.Dirs {
		dist, steps := c.bestRun(d)
		if dist < best {
			best = dist
			options = options[:0]
			options = append(options, option{d, steps})
		} else if dist == best && steps > 0 {
			options = append(options, option{d, steps})
		}
	}
	if len(options) == 0 {
		return Command{}, false, fmt.Errorf("no viable move from %v (distance %d) in believed maze:\n%s",
			c.pos, c.field.At(c.pos), c.know.Believed())
	}

	pick := options[c.rng.Intn(len(options))]
	rotation := maze.Rotation(c.heading, pick.dir)
	movement := pick.steps
	if movement > c.maxMove {
		movement = c.maxMove
	}
	if rotation == 180 {
		rotation = 0
		movement = -1
	}

	c.applyMove(rotation, movement)
	return Command{Rotation: rotation, Movement: movement}, false, nil
}

// bestRun walks up to maxMove cells along d through open believed walls
// and returns the lowest field distance on the run and how many steps
// reach it.
func (c *Controller) bestRun(d maze.Dir) (dist, steps int) {
	dist = c.field.At(c.pos)
	for s := 0; s <= c.maxMove; s++ {
		cell := c.pos.Offset(d, s)
		if v := c.field.At(cell); v <= dist {
			dist = v
			steps = s
		}
		if !c.know.Believed().HasPassage(cell, d) {
			break
		}
	}
	return dist, steps
}

// applyMove updates the pose for a chosen rotation and movement.
func (c *Controller) applyMove(rotation, movement int) {
	c.heading = maze.Rotate(c.heading, rotation)
	c.pos = c.pos.Offset(c.heading, movement)
}
