package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pthm-cable/micromouse/config"
	"github.com/pthm-cable/micromouse/maze"
	"github.com/pthm-cable/micromouse/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mazePath := flag.String("maze", "", "Maze file to navigate (empty = generate one)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	program := flag.Int("program", -1, "Exploration program override (-1 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	programID := cfg.Robot.Program
	if *program >= 0 {
		programID = *program
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var grid *maze.Grid
	var err error
	if *mazePath != "" {
		grid, err = maze.Load(*mazePath)
		if err != nil {
			slog.Error("failed to load maze", "path", *mazePath, "error", err)
			os.Exit(1)
		}
		slog.Info("loaded maze", "path", *mazePath, "size", grid.Size(), "walls", grid.CountWalls())
	} else {
		grid, err = maze.Generate(cfg.Maze.Size, cfg.Maze.Attempts, rng)
		if err != nil {
			slog.Error("failed to generate maze", "error", err)
			os.Exit(1)
		}
		slog.Info("generated maze",
			"size", grid.Size(),
			"attempts", cfg.Maze.Attempts,
			"walls", grid.CountWalls(),
			"seed", rngSeed,
		)
	}

	center := maze.CenterCells(grid.Size())
	field, err := maze.Compute(grid, center[:], cfg.Robot.MaxMove)
	if err != nil {
		slog.Error("maze is corrupt", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"seed", rngSeed,
		"program", programID,
		"move_budget", cfg.Robot.MoveBudget,
		"shortest_path", field.At(maze.Cell{Col: 0, Row: 0}),
	)

	result, err := sim.Run(sim.Options{
		Oracle:     maze.NewOracle(grid),
		MaxMove:    cfg.Robot.MaxMove,
		Program:    programID,
		MoveBudget: cfg.Robot.MoveBudget,
		Rng:        rng,
	})
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	if !result.Reached {
		slog.Warn("target not reached within move budget",
			"move_budget", cfg.Robot.MoveBudget,
			"explore_moves", result.ExploreMoves,
		)
		os.Exit(0)
	}

	slog.Info("simulation complete",
		"explore_moves", result.ExploreMoves,
		"fast_moves", result.FastMoves,
		"explore_known", result.ExploreKnown,
		"fast_known", result.FastKnown,
		"discovered_walls", result.DiscoveredWalls,
		"score", result.Score,
	)
}
