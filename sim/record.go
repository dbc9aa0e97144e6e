package sim

import (
	"gonum.org/v1/gonum/stat"
)

// Record is one simulation outcome as written to the evaluation CSV.
type Record struct {
	MazeFile      string `csv:"maze_file"`
	Size          int    `csv:"size"`
	Attempts      int    `csv:"attempts"` // Insertion budget the maze was generated with
	PossibleWalls int    `csv:"possible_walls"`
	MazeWalls     int    `csv:"maze_walls"`
	ShortestPath  int    `csv:"shortest_path"`
	Program       int    `csv:"program"`
	Iteration     int    `csv:"iteration"`
	Seed          int64  `csv:"seed"`
	Reached       bool   `csv:"reached"`
	ExploreMoves  int    `csv:"explore_moves"`
	FastMoves     int    `csv:"fast_moves"`
	ExploreKnown  int    `csv:"explore_known"`
	FastKnown     int    `csv:"fast_known"`
	KnownWalls    int    `csv:"known_walls"`

	// ExploreCoverage is the share of possible wall segments verified by
	// the end of the exploration run; WallCoverage the share of the maze's
	// actual walls present in the believed map at the end.
	ExploreCoverage float64 `csv:"explore_coverage"`
	WallCoverage    float64 `csv:"wall_coverage"`
	Score           float64 `csv:"score"`
}

// Summary aggregates the records of one exploration program across mazes
// and iterations.
type Summary struct {
	Program       int
	Runs          int
	Failed        int
	MeanFastMoves float64
	StdFastMoves  float64
	MeanScore     float64
	StdScore      float64
}

// Summarize groups records by program and computes per-program statistics
// over the successful runs, ordered by program id.
func Summarize(records []Record) []Summary {
	byProgram := make(map[int][]Record)
	maxProgram := 0
	for _, r := range records {
		byProgram[r.Program] = append(byProgram[r.Program], r)
		if r.Program > maxProgram {
			maxProgram = r.Program
		}
	}

	var out []Summary
	for p := 0; p <= maxProgram; p++ {
		group, ok := byProgram[p]
		if !ok {
			continue
		}
		s := Summary{Program: p, Runs: len(group)}
		var fastMoves, scores []float64
		for _, r := range group {
			if !r.Reached {
				s.Failed++
				continue
			}
			fastMoves = append(fastMoves, float64(r.FastMoves))
			scores = append(scores, float64(r.Score))
		}
		if len(fastMoves) > 0 {
			s.MeanFastMoves, s.StdFastMoves = stat.MeanStdDev(fastMoves, nil)
			s.MeanScore, s.StdScore = stat.MeanStdDev(scores, nil)
		}
		out = append(out, s)
	}
	return out
}
