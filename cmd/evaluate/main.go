// Package main evaluates robot navigation performance across a directory
// of maze files, sweeping exploration programs and writing one CSV record
// per simulation plus a per-program summary.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pthm-cable/micromouse/config"
	"github.com/pthm-cable/micromouse/maze"
	"github.com/pthm-cable/micromouse/nav"
	"github.com/pthm-cable/micromouse/sim"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	mazeDir := flag.String("mazes", "", "Directory of maze .txt files")
	output := flag.String("output", "evaluation.csv", "Output CSV file")
	programsFlag := flag.String("programs", "", "Comma-separated program ids (empty = all)")
	seed := flag.Int64("seed", 10, "Base RNG seed")

	flag.Parse()

	if *mazeDir == "" {
		log.Fatal("-mazes is required")
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	programs, err := parsePrograms(*programsFlag)
	if err != nil {
		log.Fatalf("bad -programs: %v", err)
	}

	paths, err := filepath.Glob(filepath.Join(*mazeDir, "*.txt"))
	if err != nil {
		log.Fatalf("listing mazes: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("no maze files in %s", *mazeDir)
	}
	sort.Strings(paths)

	writer, err := sim.NewOutputWriter(*output)
	if err != nil {
		log.Fatalf("opening output: %v", err)
	}
	defer writer.Close()

	total := len(paths) * len(programs) * cfg.Eval.Iterations
	done := 0
	startTime := time.Now()

	var records []sim.Record
	for _, path := range paths {
		grid, err := maze.Load(path)
		if err != nil {
			log.Fatalf("loading %s: %v", path, err)
		}
		n := grid.Size()
		center := maze.CenterCells(n)
		field, err := maze.Compute(grid, center[:], cfg.Robot.MaxMove)
		if err != nil {
			log.Fatalf("flooding %s: %v", path, err)
		}
		shortest := field.At(maze.Cell{Col: 0, Row: 0})
		mazeWalls := grid.CountWalls()
		possibleWalls := n * (n + 1) * 2
		attempts := attemptsFromName(path)
		oracle := maze.NewOracle(grid)

		for _, program := range programs {
			for i := 0; i < cfg.Eval.Iterations; i++ {
				runSeed := *seed + int64(done)
				result, err := sim.Run(sim.Options{
					Oracle:     oracle,
					MaxMove:    cfg.Robot.MaxMove,
					Program:    program,
					MoveBudget: cfg.Robot.MoveBudget,
					Rng:        rand.New(rand.NewSource(runSeed)),
				})
				if err != nil {
					log.Fatalf("%s program %d iteration %d: %v", path, program, i, err)
				}

				rec := sim.Record{
					MazeFile:        filepath.Base(path),
					Size:            n,
					Attempts:        attempts,
					PossibleWalls:   possibleWalls,
					MazeWalls:       mazeWalls,
					ShortestPath:    shortest,
					Program:         program,
					Iteration:       i,
					Seed:            runSeed,
					Reached:         result.Reached,
					ExploreMoves:    result.ExploreMoves,
					FastMoves:       result.FastMoves,
					ExploreKnown:    result.ExploreKnown,
					FastKnown:       result.FastKnown,
					KnownWalls:      result.DiscoveredWalls,
					ExploreCoverage: float64(result.ExploreKnown) / float64(possibleWalls),
					WallCoverage:    float64(result.DiscoveredWalls) / float64(mazeWalls),
					Score:           result.Score,
				}
				if err := writer.Write(rec); err != nil {
					log.Fatalf("writing record: %v", err)
				}
				records = append(records, rec)
				done++
			}

			elapsed := time.Since(startTime)
			eta := time.Duration(0)
			if done > 0 {
				eta = time.Duration(total-done) * (elapsed / time.Duration(done))
			}
			fmt.Printf("%s program %d: %d/%d runs | elapsed: %s, ETA: %s\n",
				filepath.Base(path), program, done, total,
				elapsed.Round(time.Second), eta.Round(time.Second))
		}
	}

	fmt.Printf("\nEvaluation complete: %d runs over %d mazes in %s\n",
		done, len(paths), time.Since(startTime).Round(time.Second))
	fmt.Printf("Results written to %s\n\n", *output)

	fmt.Println("Per-program summary (successful runs):")
	for _, s := range sim.Summarize(records) {
		std := s.StdFastMoves
		if math.IsNaN(std) {
			std = 0
		}
		fmt.Printf("  program %d: %d runs (%d failed), fast moves %.1f±%.1f, score %.2f\n",
			s.Program, s.Runs, s.Failed, s.MeanFastMoves, std, s.MeanScore)
	}
}

// attemptsFromName recovers the insertion attempt budget from a
// "ran_<n>_<attempts>_<digits>.txt" file name; zero when the name does not
// follow the generator's convention.
func attemptsFromName(path string) int {
	parts := strings.Split(strings.TrimSuffix(filepath.Base(path), ".txt"), "_")
	if len(parts) != 4 || parts[0] != "ran" {
		return 0
	}
	attempts, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0
	}
	return attempts
}

// parsePrograms parses a comma-separated id list; empty means every
// predefined program.
func parsePrograms(flagValue string) ([]int, error) {
	if flagValue == "" {
		out := make([]int, nav.NumPrograms)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}
	var out []int
	for _, field := range strings.Split(flagValue, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		if id < 0 || id >= nav.NumPrograms {
			return nil, fmt.Errorf("program %d out of range [0,%d)", id, nav.NumPrograms)
		}
		out = append(out, id)
	}
	return out, nil
}
