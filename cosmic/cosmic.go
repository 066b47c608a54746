// Package cosmic sums the pairwise distances between the galaxies of
// day 11. Empty rows and columns of the image have expanded; rather than
// rewriting the map, each crossing of an empty line adds factor-1 extra
// steps to the Manhattan distance.
package cosmic

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vleko/aoc2023/grid"
)

// ErrBadFactor is returned for an expansion factor below 1.
var ErrBadFactor = errors.New("cosmic: expansion factor must be at least 1")

type image struct {
	galaxies []grid.Point
	emptyX   []int // sorted columns with no galaxy
	emptyY   []int // sorted rows with no galaxy
}

func parse(input string) (*image, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}
	img := &image{}
	colHas := make([]bool, g.Width())
	rowHas := make([]bool, g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == '#' {
				img.galaxies = append(img.galaxies, grid.Point{X: x, Y: y})
				colHas[x] = true
				rowHas[y] = true
			}
		}
	}
	for x, has := range colHas {
		if !has {
			img.emptyX = append(img.emptyX, x)
		}
	}
	for y, has := range rowHas {
		if !has {
			img.emptyY = append(img.emptyY, y)
		}
	}
	return img, nil
}

// crossings counts the sorted values strictly between lo and hi.
func crossings(sortedLines []int, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	from := sort.SearchInts(sortedLines, lo+1)
	to := sort.SearchInts(sortedLines, hi)
	return to - from
}

// Sum computes the total pairwise galaxy distance with every empty row
// and column counted factor times.
func Sum(input string, factor int) (int, error) {
	if factor < 1 {
		return 0, fmt.Errorf("%w: %d", ErrBadFactor, factor)
	}
	img, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, p := range img.galaxies {
		for _, q := range img.galaxies[i+1:] {
			total += p.Manhattan(q)
			total += (factor - 1) * crossings(img.emptyX, p.X, q.X)
			total += (factor - 1) * crossings(img.emptyY, p.Y, q.Y)
		}
	}
	return total, nil
}

// Part1 doubles every empty row and column.
func Part1(input string) (int, error) {
	return Sum(input, 2)
}

// Part2 expands every empty row and column a millionfold.
func Part2(input string) (int, error) {
	return Sum(input, 1_000_000)
}
