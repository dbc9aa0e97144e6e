// Package main generates batches of random mazes and saves them as text
// files consumable by the simulator and the evaluation harness.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pthm-cable/micromouse/maze"
)

// fileName builds a maze file name from its parameters plus the first few
// masks of column zero, enough to tell files of one batch apart.
func fileName(g *maze.Grid, attempts int) string {
	n := g.Size()
	var digits strings.Builder
	for row := 0; row < n && row < 6; row++ {
		fmt.Fprintf(&digits, "%d", g.Mask(maze.Cell{Col: 0, Row: row}))
	}
	return fmt.Sprintf("ran_%d_%d_%s.txt", n, attempts, digits.String())
}

func main() {
	outputDir := flag.String("output", "mazes", "Output directory for maze files")
	sizes := flag.String("sizes", "12,14,16", "Comma-separated maze sizes")
	attempts := flag.String("attempts", "5,20,60,120", "Comma-separated insertion attempt budgets")
	count := flag.Int("count", 3, "Mazes per size and attempt budget")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	sizeList, err := parseInts(*sizes)
	if err != nil {
		slog.Error("bad -sizes", "error", err)
		os.Exit(1)
	}
	attemptList, err := parseInts(*attempts)
	if err != nil {
		slog.Error("bad -attempts", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		slog.Error("failed to create output directory", "dir", *outputDir, "error", err)
		os.Exit(1)
	}

	generated := 0
	for _, n := range sizeList {
		for _, budget := range attemptList {
			for i := 0; i < *count; i++ {
				g, err := maze.Generate(n, budget, rng)
				if err != nil {
					slog.Error("generation failed", "size", n, "attempts", budget, "error", err)
					os.Exit(1)
				}
				path := filepath.Join(*outputDir, fileName(g, budget))
				if err := maze.Save(g, path); err != nil {
					slog.Error("save failed", "path", path, "error", err)
					os.Exit(1)
				}
				slog.Info("maze written",
					"path", path,
					"size", n,
					"attempts", budget,
					"walls", g.CountWalls(),
				)
				generated++
			}
		}
	}

	slog.Info("done", "mazes", generated, "seed", rngSeed)
}

func parseInts(csv string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(csv, ",") {
		var v int
		if _, err := fmt.Sscanf(strings.TrimSpace(field), "%d", &v); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}
