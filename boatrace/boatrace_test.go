package boatrace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vleko/aoc2023/boatrace"
)

const testInput = `Time:      7  15   30
Distance:  9  40  200`

func TestPart1(t *testing.T) {
	got, err := boatrace.Part1(testInput)
	require.NoError(t, err)
	assert.Equal(t, 288, got)
}

func TestPart2(t *testing.T) {
	got, err := boatrace.Part2(testInput)
	require.NoError(t, err)
	assert.Equal(t, 71503, got)
}

func TestPart1_Unbeatable(t *testing.T) {
	_, err := boatrace.Part1("Time: 4\nDistance: 100")
	assert.ErrorIs(t, err, boatrace.ErrUnbeatable)
}

func TestPart1_BadTable(t *testing.T) {
	cases := []string{
		"Time: 1 2",
		"Time: 1 2\nDistance: 3",
		"Hours: 1\nDistance: 3",
	}
	for _, input := range cases {
		_, err := boatrace.Part1(input)
		assert.ErrorIs(t, err, boatrace.ErrBadRaces, "input %q", input)
	}
}
