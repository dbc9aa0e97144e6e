package maze

// Dir is one of the four cardinal directions, ordered clockwise starting
// from up. The order matters: it is the fixed sweep order of the flood
// fill and the basis for rotation arithmetic.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
	NumDirs
)

// Mask returns the wall bit for d (up=1, right=2, down=4, left=8).
// A set bit in a cell mask means the passage on that side is open.
func (d Dir) Mask() uint8 {
	return 1 << d
}

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir {
	return (d + 2) % NumDirs
}

// CCW returns the direction 90 degrees counterclockwise of d.
func (d Dir) CCW() Dir {
	return (d + 3) % NumDirs
}

// CW returns the direction 90 degrees clockwise of d.
func (d Dir) CW() Dir {
	return (d + 1) % NumDirs
}

// Delta returns the column and row offsets of a single step along d.
// Up is +row; the origin cell sits at the bottom-left corner.
func (d Dir) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, 1
	case Right:
		return 1, 0
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	}
	return 0, 0
}

func (d Dir) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "invalid"
}

// Dirs lists all directions in sweep order.
var Dirs = [NumDirs]Dir{Up, Right, Down, Left}

// Rotation returns the turn, in degrees, that takes heading from onto to:
// 0, +90 (clockwise), -90 (counterclockwise) or 180.
func Rotation(from, to Dir) int {
	switch (to - from + NumDirs) % NumDirs {
	case 0:
		return 0
	case 1:
		return 90
	case 2:
		return 180
	default:
		return -90
	}
}

// Rotate applies a +90/-90 degree turn to a heading. Zero and 180 degree
// rotations leave the heading unchanged (a 180 is driven as backing up).
func Rotate(heading Dir, rotation int) Dir {
	switch rotation {
	case 90:
		return heading.CW()
	case -90:
		return heading.CCW()
	}
	return heading
}

// SensorDirs returns the absolute directions of the three ranged sensors
// for a heading, in read order: relative left, front, relative right.
func SensorDirs(heading Dir) [3]Dir {
	return [3]Dir{heading.CCW(), heading, heading.CW()}
}
