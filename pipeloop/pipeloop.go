// Package pipeloop traces the closed pipe loop of day 10. Part 1 finds
// the tile farthest from the start along the loop; part 2 counts the tiles
// enclosed by the loop using a scanline parity fill over the loop tiles,
// with corner pairs
//
//	F···J and L···7  counting as a crossing,
//	F···7 and L···J  not counting,
//
// so that squeezing between parallel pipes is handled correctly.
package pipeloop

import (
	"errors"
	"fmt"

	"github.com/vleko/aoc2023/grid"
)

// Sentinel errors for loop tracing.
var (
	// ErrNoStart indicates a field without an S tile.
	ErrNoStart = errors.New("pipeloop: no start tile")
	// ErrBadStart indicates a start tile that does not connect to exactly
	// two neighboring pipes.
	ErrBadStart = errors.New("pipeloop: start tile must join exactly two pipes")
)

// dirset is a bitmask over the four directions.
type dirset uint8

func bit(d grid.Direction) dirset { return 1 << uint(d) }

func (s dirset) has(d grid.Direction) bool { return s&bit(d) != 0 }

// connections maps a tile to the directions its pipe opens toward.
// Anything outside the pipe alphabet (ground, the unresolved S, stray
// annotation characters in samples) opens nowhere.
func connections(b byte) dirset {
	switch b {
	case '|':
		return bit(grid.Up) | bit(grid.Down)
	case '-':
		return bit(grid.Left) | bit(grid.Right)
	case 'L':
		return bit(grid.Up) | bit(grid.Right)
	case 'J':
		return bit(grid.Up) | bit(grid.Left)
	case '7':
		return bit(grid.Down) | bit(grid.Left)
	case 'F':
		return bit(grid.Down) | bit(grid.Right)
	default:
		return 0
	}
}

// shapeOf maps a pair of open directions back to its tile character.
var shapeOf = map[dirset]byte{
	bit(grid.Up) | bit(grid.Down):    '|',
	bit(grid.Left) | bit(grid.Right): '-',
	bit(grid.Up) | bit(grid.Right):   'L',
	bit(grid.Up) | bit(grid.Left):    'J',
	bit(grid.Down) | bit(grid.Left):  '7',
	bit(grid.Down) | bit(grid.Right): 'F',
}

// field is the parsed pipe maze with the start resolved to its true shape.
type field struct {
	g     *grid.Grid
	start grid.Point
	// shapes holds the effective tile per cell: the input tile, except at
	// start where the inferred shape replaces S.
	shapes []byte
}

func parse(input string) (*field, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, ErrNoStart
	}
	f := &field{g: g, start: start, shapes: make([]byte, g.Width()*g.Height())}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			f.shapes[g.Index(x, y)] = g.At(x, y)
		}
	}
	// Infer the start shape from the neighbors that open back toward it.
	var open dirset
	for _, d := range grid.Directions {
		next, ok := g.Step(grid.Cursor{Pos: start, Dir: d})
		if !ok {
			continue
		}
		if connections(g.At(next.Pos.X, next.Pos.Y)).has(d.Opposite()) {
			open |= bit(d)
		}
	}
	shape, ok := shapeOf[open]
	if !ok {
		return nil, fmt.Errorf("%w: at (%d,%d)", ErrBadStart, start.X, start.Y)
	}
	f.shapes[g.Index(start.X, start.Y)] = shape
	return f, nil
}

func (f *field) shapeAt(p grid.Point) byte {
	return f.shapes[f.g.Index(p.X, p.Y)]
}

// trace walks the loop by BFS from the start, returning per-cell distances
// (-1 off the loop) and the farthest distance reached.
func (f *field) trace() (dist []int, farthest int) {
	dist = make([]int, f.g.Width()*f.g.Height())
	for i := range dist {
		dist[i] = -1
	}
	type item struct {
		pos grid.Point
		d   int
	}
	queue := []item{{pos: f.start, d: 0}}
	dist[f.g.Index(f.start.X, f.start.Y)] = 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.d > farthest {
			farthest = cur.d
		}
		set := connections(f.shapeAt(cur.pos))
		for _, d := range grid.Directions {
			if !set.has(d) {
				continue
			}
			next, ok := f.g.Step(grid.Cursor{Pos: cur.pos, Dir: d})
			if !ok {
				continue
			}
			idx := f.g.Index(next.Pos.X, next.Pos.Y)
			if dist[idx] >= 0 {
				continue
			}
			// Only follow pipes that open back toward us.
			if !connections(f.shapeAt(next.Pos)).has(d.Opposite()) {
				continue
			}
			dist[idx] = cur.d + 1
			queue = append(queue, item{pos: next.Pos, d: cur.d + 1})
		}
	}
	return dist, farthest
}

// Part1 returns the loop distance of the tile farthest from the start.
func Part1(input string) (int, error) {
	f, err := parse(input)
	if err != nil {
		return 0, err
	}
	_, farthest := f.trace()
	return farthest, nil
}

// Part2 counts the tiles enclosed by the loop. A row scan tracks parity:
// '|' flips it, and a corner pair flips it only when the two corners open
// in opposite vertical directions.
func Part2(input string) (int, error) {
	f, err := parse(input)
	if err != nil {
		return 0, err
	}
	dist, _ := f.trace()

	enclosed := 0
	for y := 0; y < f.g.Height(); y++ {
		inside := false
		var lastCorner byte
		for x := 0; x < f.g.Width(); x++ {
			if dist[f.g.Index(x, y)] < 0 {
				if inside {
					enclosed++
				}
				continue
			}
			switch ch := f.shapeAt(grid.Point{X: x, Y: y}); ch {
			case '|':
				inside = !inside
			case 'F', 'L':
				lastCorner = ch
			case 'J':
				if lastCorner == 'F' {
					inside = !inside
				}
			case '7':
				if lastCorner == 'L' {
					inside = !inside
				}
			}
		}
	}
	return enclosed, nil
}
