package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttemptsFromName(t *testing.T) {
	assert.Equal(t, 60, attemptsFromName("mazes/ran_12_60_377715.txt"))
	assert.Equal(t, 5, attemptsFromName("ran_16_5_915230.txt"))
	assert.Equal(t, 120, attemptsFromName("/abs/dir/ran_14_120_031542.txt"))

	// Files outside the generator's naming convention carry no budget.
	assert.Equal(t, 0, attemptsFromName("custom.txt"))
	assert.Equal(t, 0, attemptsFromName("ran_12_x_000000.txt"))
	assert.Equal(t, 0, attemptsFromName("ran_12_60.txt"))
}

func TestParsePrograms(t *testing.T) {
	all, err := parsePrograms("")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, all)

	some, err := parsePrograms("0, 5,2")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 5, 2}, some)

	_, err = parsePrograms("8")
	assert.Error(t, err)
	_, err = parsePrograms("x")
	assert.Error(t, err)
}
