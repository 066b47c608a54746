// Package almanac resolves the gardening almanac of day 5: seed numbers
// are pushed through a chain of piecewise range remappings to find the
// lowest final location. Part 2 treats the seed list as intervals and maps
// whole intervals through each layer by splitting them at range edges,
// instead of walking the billions of individual seeds.
package almanac

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for almanac parsing.
var (
	// ErrBadAlmanac indicates input that does not follow the seeds/maps shape.
	ErrBadAlmanac = errors.New("almanac: malformed input")
	// ErrOddSeedRange indicates a part-2 seed list with an odd number of values.
	ErrOddSeedRange = errors.New("almanac: seed ranges require an even number of values")
)

// span is a half-open interval [start, end).
type span struct {
	start, end int
}

// entry remaps [srcStart, srcEnd) by offset.
type entry struct {
	srcStart, srcEnd int
	offset           int
}

// layer is one "x-to-y map" block with entries sorted by source start.
type layer struct {
	entries []entry
}

// mapValue pushes a single value through the layer. Unmapped values pass
// through unchanged.
func (l layer) mapValue(v int) int {
	for _, e := range l.entries {
		if v >= e.srcStart && v < e.srcEnd {
			return v + e.offset
		}
	}
	return v
}

// mapSpan pushes a whole interval through the layer, splitting it wherever
// it crosses an entry boundary. Gaps between entries pass through
// unchanged. Entries are sorted, so one left-to-right sweep suffices.
func (l layer) mapSpan(s span) []span {
	var out []span
	cur := s.start
	for _, e := range l.entries {
		if cur >= s.end {
			break
		}
		if e.srcEnd <= cur {
			continue
		}
		// Gap before this entry passes through unmapped.
		if cur < e.srcStart {
			hi := minInt(s.end, e.srcStart)
			out = append(out, span{start: cur, end: hi})
			cur = hi
			if cur >= s.end {
				break
			}
		}
		// Overlap with the entry is shifted by its offset.
		hi := minInt(s.end, e.srcEnd)
		if cur < hi {
			out = append(out, span{start: cur + e.offset, end: hi + e.offset})
			cur = hi
		}
	}
	if cur < s.end {
		out = append(out, span{start: cur, end: s.end})
	}
	return out
}

type almanac struct {
	seeds  []int
	layers []layer
}

func parse(input string) (*almanac, error) {
	blocks := strings.Split(strings.TrimRight(input, "\n"), "\n\n")
	if len(blocks) < 2 {
		return nil, fmt.Errorf("%w: want a seeds line and at least one map", ErrBadAlmanac)
	}
	seedStr, ok := strings.CutPrefix(blocks[0], "seeds: ")
	if !ok {
		return nil, fmt.Errorf("%w: missing seeds line", ErrBadAlmanac)
	}
	a := &almanac{}
	for _, f := range strings.Fields(seedStr) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: seed %q", ErrBadAlmanac, f)
		}
		a.seeds = append(a.seeds, n)
	}
	for _, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		if len(lines) < 2 || !strings.HasSuffix(lines[0], "map:") {
			return nil, fmt.Errorf("%w: map block %q", ErrBadAlmanac, lines[0])
		}
		var l layer
		for _, line := range lines[1:] {
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: map line %q", ErrBadAlmanac, line)
			}
			nums := make([]int, 3)
			for i, f := range fields {
				n, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("%w: map line %q", ErrBadAlmanac, line)
				}
				nums[i] = n
			}
			dst, src, length := nums[0], nums[1], nums[2]
			l.entries = append(l.entries, entry{
				srcStart: src,
				srcEnd:   src + length,
				offset:   dst - src,
			})
		}
		sort.Slice(l.entries, func(i, j int) bool {
			return l.entries[i].srcStart < l.entries[j].srcStart
		})
		a.layers = append(a.layers, l)
	}
	return a, nil
}

// Part1 maps each seed through every layer and returns the lowest location.
func Part1(input string) (int, error) {
	a, err := parse(input)
	if err != nil {
		return 0, err
	}
	lowest := math.MaxInt
	for _, seed := range a.seeds {
		v := seed
		for _, l := range a.layers {
			v = l.mapValue(v)
		}
		if v < lowest {
			lowest = v
		}
	}
	return lowest, nil
}

// Part2 reads the seed list as (start, length) pairs and maps the
// intervals through every layer, returning the lowest reachable location.
func Part2(input string) (int, error) {
	a, err := parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.seeds)%2 != 0 {
		return 0, ErrOddSeedRange
	}
	spans := make([]span, 0, len(a.seeds)/2)
	for i := 0; i < len(a.seeds); i += 2 {
		spans = append(spans, span{start: a.seeds[i], end: a.seeds[i] + a.seeds[i+1]})
	}
	for _, l := range a.layers {
		var next []span
		for _, s := range spans {
			next = append(next, l.mapSpan(s)...)
		}
		spans = next
	}
	lowest := math.MaxInt
	for _, s := range spans {
		if s.start < lowest {
			lowest = s.start
		}
	}
	return lowest, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
