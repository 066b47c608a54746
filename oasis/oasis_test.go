package oasis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vleko/aoc2023/oasis"
)

const testInput = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45`

func TestPart1(t *testing.T) {
	got, err := oasis.Part1(testInput)
	require.NoError(t, err)
	assert.Equal(t, 114, got)
}

func TestPart2(t *testing.T) {
	got, err := oasis.Part2(testInput)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestPart1_Negatives(t *testing.T) {
	got, err := oasis.Part1("-3 -6 -9")
	require.NoError(t, err)
	assert.Equal(t, -12, got)
}

func TestPart1_BadLine(t *testing.T) {
	_, err := oasis.Part1("1 2 x")
	assert.ErrorIs(t, err, oasis.ErrBadHistory)
}
