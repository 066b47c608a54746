// Package crucible finds the minimum heat-loss path for lava crucibles
// (day 17). The city is a digit grid; a crucible entering a block accrues
// its digit and may never run too long in a straight line, so the search
// is Dijkstra over (position, direction, straight-run length) states
// rather than bare cells.
//
// Part 1 uses the normal crucible: at most 3 blocks straight. Part 2 uses
// the ultra crucible: at least 4 blocks straight before turning or
// stopping, at most 10.
package crucible

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/vleko/aoc2023/grid"
)

// Sentinel errors.
var (
	// ErrBadBlock indicates a city cell outside '0'..'9'.
	ErrBadBlock = errors.New("crucible: block is not a digit")
	// ErrNoPath indicates the goal is unreachable under the run limits.
	ErrNoPath = errors.New("crucible: no path to goal")
)

type city struct {
	g    *grid.Grid
	loss []int
}

func parse(input string) (*city, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}
	c := &city{g: g, loss: make([]int, g.Width()*g.Height())}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b := g.At(x, y)
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadBlock, b, x, y)
			}
			c.loss[g.Index(x, y)] = int(b - '0')
		}
	}
	return c, nil
}

// state is a Dijkstra node: where the crucible is, which way it is
// moving, and how many blocks it has gone straight.
type state struct {
	cur grid.Cursor
	run int
}

type item struct {
	state state
	cost  int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// minLoss runs Dijkstra from the top-left corner to the bottom-right.
// A crucible must go at least minRun blocks straight before it may turn
// or stop, and never more than maxRun. The start counts as run 0 in
// every direction, so the first move is unconstrained.
func (c *city) minLoss(minRun, maxRun int) (int, error) {
	w, h := c.g.Width(), c.g.Height()
	goal := grid.Point{X: w - 1, Y: h - 1}

	// Dense best-cost table over (cell, dir, run).
	runs := maxRun + 1
	best := make([]int, w*h*4*runs)
	for i := range best {
		best[i] = -1
	}
	key := func(s state) int {
		return ((c.g.Index(s.cur.Pos.X, s.cur.Pos.Y)*4)+int(s.cur.Dir))*runs + s.run
	}

	q := &queue{}
	for _, d := range grid.Directions {
		heap.Push(q, item{state: state{cur: grid.Cursor{Pos: grid.Point{}, Dir: d}, run: 0}, cost: 0})
	}
	for q.Len() > 0 {
		it := heap.Pop(q).(item)
		s := it.state
		if s.cur.Pos == goal && s.run >= minRun {
			return it.cost, nil
		}
		k := key(s)
		if best[k] >= 0 && best[k] <= it.cost {
			continue
		}
		best[k] = it.cost
		for _, d := range grid.Directions {
			if d == s.cur.Dir.Opposite() {
				continue
			}
			run := 1
			if d == s.cur.Dir {
				run = s.run + 1
				if run > maxRun {
					continue
				}
			} else if s.run > 0 && s.run < minRun {
				continue
			}
			next, ok := c.g.Step(grid.Cursor{Pos: s.cur.Pos, Dir: d})
			if !ok {
				continue
			}
			ns := state{cur: next, run: run}
			cost := it.cost + c.loss[c.g.Index(next.Pos.X, next.Pos.Y)]
			if nk := key(ns); best[nk] < 0 || cost < best[nk] {
				heap.Push(q, item{state: ns, cost: cost})
			}
		}
	}
	return 0, fmt.Errorf("%w: runs %d..%d", ErrNoPath, minRun, maxRun)
}

// Part1 returns the minimum heat loss with runs of at most 3 blocks.
func Part1(input string) (int, error) {
	c, err := parse(input)
	if err != nil {
		return 0, err
	}
	return c.minLoss(0, 3)
}

// Part2 returns the minimum heat loss for the ultra crucible, runs of
// 4 to 10 blocks.
func Part2(input string) (int, error) {
	c, err := parse(input)
	if err != nil {
		return 0, err
	}
	return c.minLoss(4, 10)
}
