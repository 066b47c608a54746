package pipeloop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vleko/aoc2023/pipeloop"
)

const (
	squareLoop = `.....
.S-7.
.|.|.
.L-J.
.....`
	squareLoopNoisy = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF`
	complexLoop = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`
	complexLoopNoisy = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ`
	enclosedPlain = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`
	enclosedSqueeze = `..........
.S------7.
.|F----7|.
.||OOOO||.
.||OOOO||.
.|L-7F-J|.
.|II||II|.
.L--JL--J.
..........`
	enclosedJunk = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`
)

func TestPart1(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"Square", squareLoop, 4},
		{"SquareNoisy", squareLoopNoisy, 4},
		{"Complex", complexLoop, 8},
		{"ComplexNoisy", complexLoopNoisy, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pipeloop.Part1(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPart2(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"Square", squareLoop, 1},
		{"SquareNoisy", squareLoopNoisy, 1},
		{"Plain", enclosedPlain, 4},
		{"Squeeze", enclosedSqueeze, 4},
		{"Junk", enclosedJunk, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pipeloop.Part2(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := pipeloop.Part1("....\n....")
	assert.ErrorIs(t, err, pipeloop.ErrNoStart)

	_, err = pipeloop.Part1("S...\n....")
	assert.ErrorIs(t, err, pipeloop.ErrBadStart)
}
