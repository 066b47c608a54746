package crucible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vleko/aoc2023/grid"
)

const fixture = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

func TestPart1_Fixture(t *testing.T) {
	got, err := Part1(fixture)
	require.NoError(t, err)
	assert.Equal(t, 102, got)
}

func TestPart2_Fixture(t *testing.T) {
	got, err := Part2(fixture)
	require.NoError(t, err)
	assert.Equal(t, 94, got)
}

func TestPart2_UnfortunateStraights(t *testing.T) {
	// An ultra crucible has to overshoot into the expensive rows here.
	input := `111111111111
999999999991
999999999991
999999999991
999999999991
`
	got, err := Part2(input)
	require.NoError(t, err)
	assert.Equal(t, 71, got)
}

func TestParse_LossTable(t *testing.T) {
	c, err := parse("12\n34\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, c.loss)
}

func TestMinLoss_SingleCell(t *testing.T) {
	c, err := parse("5\n")
	require.NoError(t, err)
	got, err := c.minLoss(0, 3)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestMinLoss_RunLimitBinds(t *testing.T) {
	// Straight along the top is 4 moves, one too many for maxRun 3: the
	// crucible must dip into the second row once.
	input := `11111
99991
`
	c, err := parse(input)
	require.NoError(t, err)
	got, err := c.minLoss(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestMinLoss_NoPath(t *testing.T) {
	// Too short to satisfy a minimum run of 4.
	c, err := parse("11\n11\n")
	require.NoError(t, err)
	_, err = c.minLoss(4, 10)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestParse_Errors(t *testing.T) {
	_, err := Part1("12\n3x\n")
	assert.ErrorIs(t, err, ErrBadBlock)

	_, err = Part1("12\n3\n")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}
