package maze

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a maze file: a line with the side length n followed by n
// lines of n comma-separated wall masks, line i holding column i ordered
// bottom row first.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening maze file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf("maze file %s: missing dimension line", path)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("maze file %s: bad dimension: %w", path, err)
	}
	if n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("maze file %s: dimension %d must be an even number >= 4", path, n)
	}

	g := NewGrid(n)
	for col := 0; col < n; col++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("maze file %s: expected %d mask lines, got %d", path, n, col)
		}
		fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
		if len(fields) != n {
			return nil, fmt.Errorf("maze file %s: line %d has %d values, want %d", path, col+2, len(fields), n)
		}
		for row, field := range fields {
			mask, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("maze file %s: line %d: %w", path, col+2, err)
			}
			if mask < 0 || mask > 15 {
				return nil, fmt.Errorf("maze file %s: line %d: mask %d out of range [0,15]", path, col+2, mask)
			}
			g.SetMask(Cell{col, row}, uint8(mask))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading maze file %s: %w", path, err)
	}

	if err := g.checkSymmetry(); err != nil {
		return nil, fmt.Errorf("maze file %s: %w", path, err)
	}
	return g, nil
}

// Save writes the grid in the format Load reads.
func Save(g *Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating maze file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", g.n)
	for col := 0; col < g.n; col++ {
		for row := 0; row < g.n; row++ {
			if row > 0 {
				w.WriteByte(',')
			}
			w.WriteString(strconv.Itoa(int(g.Mask(Cell{col, row}))))
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing maze file: %w", err)
	}
	return nil
}

// checkSymmetry verifies that every passage is open from both sides and
// that the perimeter is fully walled.
func (g *Grid) checkSymmetry() error {
	for col := 0; col < g.n; col++ {
		for row := 0; row < g.n; row++ {
			c := Cell{col, row}
			for _, d := range Dirs {
				nb := c.Step(d)
				if !g.InBounds(nb) {
					if g.HasPassage(c, d) {
						return fmt.Errorf("perimeter open at %v side %v", c, d)
					}
					continue
				}
				if g.HasPassage(c, d) != g.HasPassage(nb, d.Reverse()) {
					return fmt.Errorf("asymmetric wall between %v and %v", c, nb)
				}
			}
		}
	}
	return nil
}
