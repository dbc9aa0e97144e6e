package maze

// Oracle answers distance-to-wall queries against a ground-truth grid. It
// stands in for the robot's ranged sensors during simulation: the grid it
// wraps is the real maze, not the robot's believed map.
type Oracle struct {
	grid *Grid
}

// NewOracle wraps a ground-truth grid. The oracle never mutates it.
func NewOracle(g *Grid) *Oracle {
	return &Oracle{grid: g}
}

// Grid returns the wrapped ground-truth grid.
func (o *Oracle) Grid() *Grid {
	return o.grid
}

// DistToWall returns the number of open cells between c and the next wall
// along d. Zero means the wall is immediately adjacent.
func (o *Oracle) DistToWall(c Cell, d Dir) int {
	dist := 0
	for o.grid.HasPassage(c, d) {
		dist++
		c = c.Step(d)
	}
	return dist
}

// Readings returns the three sensor values for a pose, in read order:
// relative left, front, relative right.
func (o *Oracle) Readings(pos Cell, heading Dir) [3]int {
	var out [3]int
	for i, d := range SensorDirs(heading) {
		out[i] = o.DistToWall(pos, d)
	}
	return out
}
