// Package springs counts the valid arrangements of damaged-spring rows
// (day 12). Each row is a pattern of '.', '#' and unknown '?' cells plus
// the run lengths of its damaged groups; the count is computed by a
// memoized recursion over (pattern offset, group offset) rather than by
// enumerating the 2^unknowns candidate rows.
package springs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for row parsing.
var (
	// ErrBadRow indicates a line without the "pattern g,g,g" shape.
	ErrBadRow = errors.New("springs: malformed row")
	// ErrBadSpring indicates a pattern character outside ".#?".
	ErrBadSpring = errors.New("springs: unknown spring state")
)

type row struct {
	pattern string
	groups  []int
}

func parseRow(line string) (row, error) {
	pattern, groupStr, ok := strings.Cut(line, " ")
	if !ok {
		return row{}, fmt.Errorf("%w: %q", ErrBadRow, line)
	}
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '.', '#', '?':
		default:
			return row{}, fmt.Errorf("%w: %q", ErrBadSpring, pattern[i])
		}
	}
	var groups []int
	for _, f := range strings.Split(groupStr, ",") {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return row{}, fmt.Errorf("%w: group %q", ErrBadRow, f)
		}
		groups = append(groups, n)
	}
	return row{pattern: pattern, groups: groups}, nil
}

// unfold repeats the row five times, patterns joined by '?', groups
// concatenated.
func (r row) unfold() row {
	patterns := make([]string, 5)
	groups := make([]int, 0, len(r.groups)*5)
	for i := range patterns {
		patterns[i] = r.pattern
		groups = append(groups, r.groups...)
	}
	return row{pattern: strings.Join(patterns, "?"), groups: groups}
}

// arrangements counts the assignments of '?' consistent with the groups.
//
// The recursion considers position i of the pattern and group j: a '.'
// (or a '?' taken as '.') skips one cell; a '#' (or '?' taken as '#')
// must begin exactly group j — groups[j] damaged cells followed by a
// non-'#' separator or the end. Memoization over (i, j) makes each state
// O(group length) once, so a full row is O(len(pattern)×len(groups))
// states.
func (r row) arrangements() int {
	n, m := len(r.pattern), len(r.groups)
	memo := make([]int, (n+1)*(m+1))
	for i := range memo {
		memo[i] = -1
	}
	var count func(i, j int) int
	count = func(i, j int) int {
		if i >= n {
			if j == m {
				return 1
			}
			return 0
		}
		key := i*(m+1) + j
		if memo[key] >= 0 {
			return memo[key]
		}
		total := 0
		// Treat a '.'/'?' as operational: skip it.
		if r.pattern[i] != '#' {
			total += count(i+1, j)
		}
		// Treat a '#'/'?' as the start of group j.
		if j < m && fits(r.pattern[i:], r.groups[j]) {
			end := i + r.groups[j]
			if end < n {
				end++ // consume the separator as well
			}
			total += count(end, j+1)
		}
		memo[key] = total
		return total
	}
	return count(0, 0)
}

// fits reports whether a damaged group of the given size can start at the
// head of rest: size non-'.' cells with no '#' spilling over.
func fits(rest string, size int) bool {
	if len(rest) < size {
		return false
	}
	for i := 0; i < size; i++ {
		if rest[i] == '.' {
			return false
		}
	}
	return size == len(rest) || rest[size] != '#'
}

func sumRows(input string, transform func(row) row) (int, error) {
	total := 0
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		r, err := parseRow(line)
		if err != nil {
			return 0, err
		}
		total += transform(r).arrangements()
	}
	return total, nil
}

// Part1 sums the arrangement counts of the rows as written.
func Part1(input string) (int, error) {
	return sumRows(input, func(r row) row { return r })
}

// Part2 sums the arrangement counts of the fivefold-unfolded rows.
func Part2(input string) (int, error) {
	return sumRows(input, row.unfold)
}
