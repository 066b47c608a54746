package beam

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vleko/aoc2023/grid"
)

// Contraption is the parsed mirror/splitter field. Immutable once parsed.
type Contraption struct {
	g     *grid.Grid
	tiles []Tile // row-major, parallel to the grid cells
}

// Parse builds a Contraption from puzzle text. It fails fast on empty or
// ragged input and on any character outside the tile alphabet; a partial
// contraption is never returned.
// Complexity: O(W×H).
func Parse(s string) (*Contraption, error) {
	g, err := grid.Parse(s)
	if err != nil {
		return nil, err
	}
	c := &Contraption{
		g:     g,
		tiles: make([]Tile, 0, g.Width()*g.Height()),
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t, err := classify(g.At(x, y))
			if err != nil {
				return nil, err
			}
			c.tiles = append(c.tiles, t)
		}
	}
	return c, nil
}

// Width returns the number of columns.
func (c *Contraption) Width() int { return c.g.Width() }

// Height returns the number of rows.
func (c *Contraption) Height() int { return c.g.Height() }

// tileAt returns the tile under p.
func (c *Contraption) tileAt(p grid.Point) Tile {
	return c.tiles[c.g.Index(p.X, p.Y)]
}

// transitions returns the outgoing directions for a beam entering a tile
// while travelling in. It is a fixed lookup over (tile, direction):
// empty tiles and aligned splitters pass the beam through, mirrors turn it,
// and crosswise splitters fork it into two beams. The second return value
// is only meaningful for splitter hits (ok reports a fork).
func transitions(t Tile, in grid.Direction) (a, b grid.Direction, fork bool) {
	switch t {
	case ForwardMirror: // '/'
		switch in {
		case grid.Up:
			return grid.Right, 0, false
		case grid.Down:
			return grid.Left, 0, false
		case grid.Left:
			return grid.Down, 0, false
		default:
			return grid.Up, 0, false
		}
	case BackMirror: // '\'
		switch in {
		case grid.Up:
			return grid.Left, 0, false
		case grid.Down:
			return grid.Right, 0, false
		case grid.Left:
			return grid.Up, 0, false
		default:
			return grid.Down, 0, false
		}
	case HorizontalSplitter: // '-'
		if in == grid.Up || in == grid.Down {
			return grid.Left, grid.Right, true
		}
		return in, 0, false
	case VerticalSplitter: // '|'
		if in == grid.Left || in == grid.Right {
			return grid.Up, grid.Down, true
		}
		return in, 0, false
	default: // Empty
		return in, 0, false
	}
}

// Energized fires a beam from start and returns the number of distinct
// tiles energized. The traversal is a pure function of (contraption,
// start): it uses fresh visited and energized state on every call.
//
// The worklist loop pops a cursor, marks its tile energized, and stops
// expanding any cursor state seen before in this run. Successor cursors
// that would step off the grid are silently dropped.
// Complexity: O(W×H) time and memory.
func (c *Contraption) Energized(start grid.Cursor) int {
	w, h := c.g.Width(), c.g.Height()
	// Dense per-run state: 4 direction slots per cell for visited cursors,
	// one bool per cell for energized positions.
	visited := make([]bool, w*h*4)
	energized := make([]bool, w*h)
	count := 0

	worklist := make([]grid.Cursor, 0, w+h)
	worklist = append(worklist, start)
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		if idx := c.g.Index(cur.Pos.X, cur.Pos.Y); !energized[idx] {
			energized[idx] = true
			count++
		}
		state := c.g.Index(cur.Pos.X, cur.Pos.Y)*4 + int(cur.Dir)
		if visited[state] {
			continue // cycle break
		}
		visited[state] = true

		a, b, fork := transitions(c.tileAt(cur.Pos), cur.Dir)
		if next, ok := c.g.Step(grid.Cursor{Pos: cur.Pos, Dir: a}); ok {
			worklist = append(worklist, next)
		}
		if fork {
			if next, ok := c.g.Step(grid.Cursor{Pos: cur.Pos, Dir: b}); ok {
				worklist = append(worklist, next)
			}
		}
	}
	return count
}

// EdgeEntries enumerates every boundary start cursor with its direction
// pointing inward: top edge heading Down, bottom edge Up, left edge Right,
// right edge Left. Corner cells appear twice, once per touching edge.
func (c *Contraption) EdgeEntries() []grid.Cursor {
	w, h := c.g.Width(), c.g.Height()
	entries := make([]grid.Cursor, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		entries = append(entries,
			grid.Cursor{Pos: grid.Point{X: x, Y: 0}, Dir: grid.Down},
			grid.Cursor{Pos: grid.Point{X: x, Y: h - 1}, Dir: grid.Up},
		)
	}
	for y := 0; y < h; y++ {
		entries = append(entries,
			grid.Cursor{Pos: grid.Point{X: 0, Y: y}, Dir: grid.Right},
			grid.Cursor{Pos: grid.Point{X: w - 1, Y: y}, Dir: grid.Left},
		)
	}
	return entries
}

// MaxEnergized returns the best energized count over all edge entries.
// Each traversal is an independent pure computation, so the sweep runs
// them on a bounded worker group and reduces by max; no coordination
// beyond the final reduction is needed. Returns the context's error if the
// sweep is cancelled.
func (c *Contraption) MaxEnergized(opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	workers := o.Parallelism
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(workers)

	var (
		mu   sync.Mutex
		best int
	)
	for _, start := range c.EdgeEntries() {
		start := start
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			n := c.Energized(start)
			mu.Lock()
			if n > best {
				best = n
			}
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return best, nil
}

// Part1 answers the fixed-start variant: the beam enters at the top-left
// corner heading right.
func Part1(input string) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return c.Energized(DefaultStart), nil
}

// Part2 answers the best-starting-point variant: the maximum energized
// count over every inward edge entry.
func Part2(input string) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return c.MaxEnergized()
}
