// Package mirrors locates the reflection axis of ash-and-rock patterns
// (day 13). Part 1 scores the exact mirror line of each pattern; part 2
// scores the line that becomes a mirror after flipping exactly one cell,
// found directly by looking for an axis with exactly one mismatched pair
// instead of trying every flip.
package mirrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vleko/aoc2023/grid"
)

// ErrNoMirror indicates a pattern without the requested reflection axis.
var ErrNoMirror = errors.New("mirrors: no reflection axis")

type pattern struct {
	g *grid.Grid
}

// mismatchesAcross counts the cell pairs that differ when the pattern is
// folded between rows r-1 and r (or, transposed, between columns).
func (p pattern) mismatchesAcrossRow(r int) int {
	n := 0
	for lo, hi := r-1, r; lo >= 0 && hi < p.g.Height(); lo, hi = lo-1, hi+1 {
		for x := 0; x < p.g.Width(); x++ {
			if p.g.At(x, lo) != p.g.At(x, hi) {
				n++
			}
		}
	}
	return n
}

func (p pattern) mismatchesAcrossCol(c int) int {
	n := 0
	for lo, hi := c-1, c; lo >= 0 && hi < p.g.Width(); lo, hi = lo-1, hi+1 {
		for y := 0; y < p.g.Height(); y++ {
			if p.g.At(lo, y) != p.g.At(hi, y) {
				n++
			}
		}
	}
	return n
}

// score finds the axis whose fold leaves exactly smudges mismatches and
// returns columns-left-of-axis, or 100 × rows-above-axis.
func (p pattern) score(smudges int) (int, error) {
	for c := 1; c < p.g.Width(); c++ {
		if p.mismatchesAcrossCol(c) == smudges {
			return c, nil
		}
	}
	for r := 1; r < p.g.Height(); r++ {
		if p.mismatchesAcrossRow(r) == smudges {
			return 100 * r, nil
		}
	}
	return 0, fmt.Errorf("%w: %d smudges", ErrNoMirror, smudges)
}

func sumScores(input string, smudges int) (int, error) {
	total := 0
	for _, block := range strings.Split(strings.TrimRight(input, "\n"), "\n\n") {
		g, err := grid.Parse(block + "\n")
		if err != nil {
			return 0, err
		}
		s, err := pattern{g: g}.score(smudges)
		if err != nil {
			return 0, err
		}
		total += s
	}
	return total, nil
}

// Part1 sums the scores of the exact reflection axes.
func Part1(input string) (int, error) {
	return sumScores(input, 0)
}

// Part2 sums the scores of the axes with exactly one smudged cell.
func Part2(input string) (int, error) {
	return sumScores(input, 1)
}
