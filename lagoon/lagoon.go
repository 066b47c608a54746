// Package lagoon measures the lava lagoon dug by the dig plan (day 18).
// The plan is a list of axis-aligned trench segments; the lagoon volume
// is the number of lattice cells on or inside the trench loop. Rather
// than rasterizing, the area comes from the shoelace formula over the
// trench corners, converted to a cell count with Pick's theorem:
// cells = interior + boundary = A + b/2 + 1.
//
// Part 1 reads the direction and length columns. Part 2 decodes them
// from the hex color: the first five digits are the length, the last
// digit the direction.
package lagoon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vleko/aoc2023/grid"
)

// ErrBadPlan indicates a dig-plan line outside "D n (#hhhhhh)".
var ErrBadPlan = errors.New("lagoon: malformed dig plan")

type step struct {
	dir    grid.Direction
	length int
}

func parseDir(s string) (grid.Direction, error) {
	switch s {
	case "U":
		return grid.Up, nil
	case "D":
		return grid.Down, nil
	case "L":
		return grid.Left, nil
	case "R":
		return grid.Right, nil
	}
	return 0, fmt.Errorf("%w: direction %q", ErrBadPlan, s)
}

// parse splits each line into its plain step and its hex-decoded step.
func parse(input string) (plain, hex []step, err error) {
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, fmt.Errorf("%w: %q", ErrBadPlan, line)
		}
		dir, err := parseDir(fields[0])
		if err != nil {
			return nil, nil, err
		}
		length, err := strconv.Atoi(fields[1])
		if err != nil || length <= 0 {
			return nil, nil, fmt.Errorf("%w: length %q", ErrBadPlan, fields[1])
		}
		plain = append(plain, step{dir: dir, length: length})

		color, ok := strings.CutPrefix(fields[2], "(#")
		color, ok2 := strings.CutSuffix(color, ")")
		if !ok || !ok2 || len(color) != 6 {
			return nil, nil, fmt.Errorf("%w: color %q", ErrBadPlan, fields[2])
		}
		hexLen, err := strconv.ParseInt(color[:5], 16, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: color %q", ErrBadPlan, fields[2])
		}
		var hexDir grid.Direction
		switch color[5] {
		case '0':
			hexDir = grid.Right
		case '1':
			hexDir = grid.Down
		case '2':
			hexDir = grid.Left
		case '3':
			hexDir = grid.Up
		default:
			return nil, nil, fmt.Errorf("%w: color %q", ErrBadPlan, fields[2])
		}
		hex = append(hex, step{dir: hexDir, length: int(hexLen)})
	}
	return plain, hex, nil
}

// volume walks the trench accumulating the shoelace sum and the
// perimeter, then applies Pick's theorem.
func volume(steps []step) int {
	x, y := 0, 0
	area, perimeter := 0, 0
	for _, s := range steps {
		dx, dy := s.dir.Delta()
		nx, ny := x+dx*s.length, y+dy*s.length
		area += x*ny - nx*y
		perimeter += s.length
		x, y = nx, ny
	}
	if area < 0 {
		area = -area
	}
	return area/2 + perimeter/2 + 1
}

// Part1 digs by the direction and length columns.
func Part1(input string) (int, error) {
	plain, _, err := parse(input)
	if err != nil {
		return 0, err
	}
	return volume(plain), nil
}

// Part2 digs by the hex-decoded instructions.
func Part2(input string) (int, error) {
	_, hex, err := parse(input)
	if err != nil {
		return 0, err
	}
	return volume(hex), nil
}
