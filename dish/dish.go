// Package dish simulates the tilting parabolic reflector platform
// (day 14). Rounded rocks 'O' roll until they hit a cube rock '#', another
// rounded rock, or the platform edge; the load of a state is the sum over
// rounded rocks of their distance to the south edge.
//
// Part 1 tilts north once. Part 2 runs one billion spin cycles
// (north, west, south, east); the platform state sequence is eventually
// periodic, so the run is cut short by detecting the first repeated state
// and jumping ahead by the cycle length.
package dish

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vleko/aoc2023/grid"
)

// ErrBadRock indicates a platform cell outside "O#.".
var ErrBadRock = errors.New("dish: unknown rock")

const spinCycles = 1_000_000_000

// platform is a mutable row-major copy of the parsed grid.
type platform struct {
	cells []byte
	w, h  int
}

func parse(input string) (*platform, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}
	p := &platform{cells: make([]byte, 0, g.Width()*g.Height()), w: g.Width(), h: g.Height()}
	for y := 0; y < g.Height(); y++ {
		for _, b := range []byte(g.Row(y)) {
			switch b {
			case 'O', '#', '.':
			default:
				return nil, fmt.Errorf("%w: %q", ErrBadRock, b)
			}
			p.cells = append(p.cells, b)
		}
	}
	return p, nil
}

func (p *platform) at(x, y int) byte     { return p.cells[y*p.w+x] }
func (p *platform) set(x, y int, b byte) { p.cells[y*p.w+x] = b }

// tilt rolls every rounded rock as far as it goes against dir. Each
// column (or row) is swept from its leading edge keeping a write cursor
// at the next free slot, so a full tilt is one pass over the platform.
func (p *platform) tilt(dir grid.Direction) {
	switch dir {
	case grid.Up:
		for x := 0; x < p.w; x++ {
			free := 0
			for y := 0; y < p.h; y++ {
				p.roll(x, y, x, &free, dir)
			}
		}
	case grid.Down:
		for x := 0; x < p.w; x++ {
			free := p.h - 1
			for y := p.h - 1; y >= 0; y-- {
				p.roll(x, y, x, &free, dir)
			}
		}
	case grid.Left:
		for y := 0; y < p.h; y++ {
			free := 0
			for x := 0; x < p.w; x++ {
				p.roll(x, y, y, &free, dir)
			}
		}
	case grid.Right:
		for y := 0; y < p.h; y++ {
			free := p.w - 1
			for x := p.w - 1; x >= 0; x-- {
				p.roll(x, y, y, &free, dir)
			}
		}
	}
}

// roll moves one cell toward the free cursor of its lane, advancing the
// cursor past cube rocks and settled rounded rocks.
func (p *platform) roll(x, y, lane int, free *int, dir grid.Direction) {
	step := 1
	if dir == grid.Up || dir == grid.Down {
		if dir == grid.Down {
			step = -1
		}
		switch p.at(x, y) {
		case '#':
			*free = y + step
		case 'O':
			p.set(x, y, '.')
			p.set(lane, *free, 'O')
			*free += step
		}
		return
	}
	if dir == grid.Right {
		step = -1
	}
	switch p.at(x, y) {
	case '#':
		*free = x + step
	case 'O':
		p.set(x, y, '.')
		p.set(*free, lane, 'O')
		*free += step
	}
}

// spin runs one full cycle: north, west, south, east.
func (p *platform) spin() {
	p.tilt(grid.Up)
	p.tilt(grid.Left)
	p.tilt(grid.Down)
	p.tilt(grid.Right)
}

// load is the north-beam load of the current state.
func (p *platform) load() int {
	total := 0
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			if p.at(x, y) == 'O' {
				total += p.h - y
			}
		}
	}
	return total
}

func (p *platform) key() string { return string(p.cells) }

// Part1 tilts the platform north and returns the resulting load.
func Part1(input string) (int, error) {
	p, err := parse(input)
	if err != nil {
		return 0, err
	}
	p.tilt(grid.Up)
	return p.load(), nil
}

// Part2 returns the load after one billion spin cycles, skipping ahead
// once the state sequence repeats.
func Part2(input string) (int, error) {
	p, err := parse(input)
	if err != nil {
		return 0, err
	}
	seen := map[string]int{p.key(): 0}
	for i := 1; i <= spinCycles; i++ {
		p.spin()
		k := p.key()
		if first, ok := seen[k]; ok {
			period := i - first
			for rest := (spinCycles - i) % period; rest > 0; rest-- {
				p.spin()
			}
			break
		}
		seen[k] = i
	}
	return p.load(), nil
}

// render returns the platform as grid text, for tests.
func (p *platform) render() string {
	var sb strings.Builder
	for y := 0; y < p.h; y++ {
		sb.Write(p.cells[y*p.w : (y+1)*p.w])
		sb.WriteByte('\n')
	}
	return sb.String()
}
