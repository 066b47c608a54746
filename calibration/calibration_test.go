package calibration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vleko/aoc2023/calibration"
)

func TestPart1(t *testing.T) {
	input := `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`
	got, err := calibration.Part1(input)
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestPart2(t *testing.T) {
	input := `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`
	got, err := calibration.Part2(input)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

// TestPart2_Overlaps covers words sharing letters; the earliest and latest
// matches win.
func TestPart2_Overlaps(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"eightwo", 82},
		{"oneight", 18},
		{"twone", 21},
		{"9", 99},
	}
	for _, tc := range cases {
		got, err := calibration.Part2(tc.line)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "line %q", tc.line)
	}
}

func TestPart1_NoDigit(t *testing.T) {
	_, err := calibration.Part1("abcdef")
	assert.ErrorIs(t, err, calibration.ErrNoDigit)
}
