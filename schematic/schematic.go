// Package schematic reads the engine schematic of day 3: part numbers are
// digit runs adjacent (including diagonals) to a symbol, and a gear is a
// '*' adjacent to exactly two part numbers.
package schematic

import (
	"strconv"
	"strings"

	"github.com/vleko/aoc2023/grid"
)

// number is a horizontal digit run with its value and span.
type number struct {
	value  int
	xStart int
	length int
	y      int
}

// adjacentTo reports whether p touches the number's bounding box,
// diagonals included.
func (n number) adjacentTo(p grid.Point) bool {
	return p.X >= n.xStart-1 && p.X <= n.xStart+n.length &&
		p.Y >= n.y-1 && p.Y <= n.y+1
}

// scan extracts every number and every location matching keep from the
// schematic text.
func scan(input string, keep func(byte) bool) ([]number, []grid.Point, error) {
	var (
		numbers []number
		marks   []grid.Point
	)
	for y, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		start := -1
		flush := func(end int) error {
			if start < 0 {
				return nil
			}
			v, err := strconv.Atoi(line[start:end])
			if err != nil {
				return err
			}
			numbers = append(numbers, number{value: v, xStart: start, length: end - start, y: y})
			start = -1
			return nil
		}
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch >= '0' && ch <= '9' {
				if start < 0 {
					start = x
				}
				continue
			}
			if err := flush(x); err != nil {
				return nil, nil, err
			}
			if keep(ch) {
				marks = append(marks, grid.Point{X: x, Y: y})
			}
		}
		if err := flush(len(line)); err != nil {
			return nil, nil, err
		}
	}
	return numbers, marks, nil
}

// Part1 sums every number adjacent to a symbol (anything but digits and
// dots).
func Part1(input string) (int, error) {
	numbers, symbols, err := scan(input, func(b byte) bool { return b != '.' })
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range numbers {
		for _, s := range symbols {
			if n.adjacentTo(s) {
				total += n.value
				break
			}
		}
	}
	return total, nil
}

// Part2 sums the gear ratios: for each '*' with exactly two adjacent
// numbers, the product of the two.
func Part2(input string) (int, error) {
	numbers, stars, err := scan(input, func(b byte) bool { return b == '*' })
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range stars {
		product, adjacent := 1, 0
		for _, n := range numbers {
			if n.adjacentTo(s) {
				product *= n.value
				adjacent++
			}
		}
		if adjacent == 2 {
			total += product
		}
	}
	return total, nil
}
