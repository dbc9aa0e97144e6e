package sim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{Program: 0, Reached: true, FastMoves: 20, Score: 25},
		{Program: 0, Reached: true, FastMoves: 30, Score: 35},
		{Program: 0, Reached: false, FastMoves: 0, Score: 0},
		{Program: 5, Reached: true, FastMoves: 18, Score: 40},
	}

	summaries := Summarize(records)
	assert.Len(t, summaries, 2)

	p0 := summaries[0]
	assert.Equal(t, 0, p0.Program)
	assert.Equal(t, 3, p0.Runs)
	assert.Equal(t, 1, p0.Failed)
	assert.InDelta(t, 25.0, p0.MeanFastMoves, 1e-9)
	assert.InDelta(t, 30.0, p0.MeanScore, 1e-9)

	p5 := summaries[1]
	assert.Equal(t, 5, p5.Program)
	assert.Equal(t, 1, p5.Runs)
	assert.Equal(t, 0, p5.Failed)
	assert.InDelta(t, 18.0, p5.MeanFastMoves, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

func TestRecordColumns(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, gocsv.Marshal([]Record{{}}, &buf))

	header := strings.Split(strings.TrimSpace(strings.SplitN(buf.String(), "\n", 2)[0]), ",")
	for _, col := range []string{
		"maze_file", "attempts", "possible_walls", "shortest_path",
		"explore_known", "explore_coverage", "wall_coverage", "score",
	} {
		assert.Contains(t, header, col)
	}
}
