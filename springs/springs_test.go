package springs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`

func TestPart1_Fixture(t *testing.T) {
	got, err := Part1(fixture)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestPart2_Fixture(t *testing.T) {
	got, err := Part2(fixture)
	require.NoError(t, err)
	assert.Equal(t, 525152, got)
}

func TestArrangements_PerRow(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"???.### 1,1,3", 1},
		{".??..??...?##. 1,1,3", 4},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1},
		{"????.#...#... 4,1,1", 1},
		{"????.######..#####. 1,6,5", 4},
		{"?###???????? 3,2,1", 10},
	}
	for _, tc := range cases {
		r, err := parseRow(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, r.arrangements(), tc.line)
	}
}

func TestArrangements_Unfolded(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"???.### 1,1,3", 1},
		{".??..??...?##. 1,1,3", 16384},
		{"?###???????? 3,2,1", 506250},
	}
	for _, tc := range cases {
		r, err := parseRow(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, r.unfold().arrangements(), tc.line)
	}
}

func TestArrangements_NoUnknowns(t *testing.T) {
	r, err := parseRow("#.#.### 1,1,3")
	require.NoError(t, err)
	assert.Equal(t, 1, r.arrangements())

	// Groups that contradict the fixed cells leave no arrangement.
	r, err = parseRow("#.#.### 2,1,3")
	require.NoError(t, err)
	assert.Equal(t, 0, r.arrangements())
}

func TestParseRow_Errors(t *testing.T) {
	_, err := Part1("???.###")
	assert.ErrorIs(t, err, ErrBadRow)

	_, err = Part1("??x.### 1,1,3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadSpring)

	_, err = Part1("???.### 1,x,3")
	assert.ErrorIs(t, err, ErrBadRow)
}

func TestUnfold(t *testing.T) {
	r, err := parseRow(".# 1")
	require.NoError(t, err)
	u := r.unfold()
	assert.Equal(t, ".#?.#?.#?.#?.#", u.pattern)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, u.groups)
	assert.Equal(t, 1, u.arrangements())
}

func TestErrorsChain(t *testing.T) {
	_, err := Part2("bad")
	assert.True(t, errors.Is(err, ErrBadRow))
}
