// Package scratchcards scores the scratchcard pile of day 4: points double
// per match, and matched cards win copies of the following cards.
package scratchcards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCard is returned for a line without the "Card N: w w | n n" shape.
var ErrBadCard = errors.New("scratchcards: malformed card line")

// matches counts how many of the card's numbers appear among its winners.
func matches(line string) (int, error) {
	_, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadCard, line)
	}
	winStr, haveStr, ok := strings.Cut(rest, " | ")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadCard, line)
	}
	winners := make(map[int]struct{})
	for _, f := range strings.Fields(winStr) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("%w: winner %q", ErrBadCard, f)
		}
		winners[n] = struct{}{}
	}
	count := 0
	for _, f := range strings.Fields(haveStr) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("%w: number %q", ErrBadCard, f)
		}
		if _, ok := winners[n]; ok {
			count++
		}
	}
	return count, nil
}

func allMatches(input string) ([]int, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	out := make([]int, 0, len(lines))
	for _, line := range lines {
		m, err := matches(line)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Part1 sums the point scores: 1 for the first match, doubled per extra
// match.
func Part1(input string) (int, error) {
	ms, err := allMatches(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range ms {
		if m > 0 {
			total += 1 << (m - 1)
		}
	}
	return total, nil
}

// Part2 counts the total cards held after the copy cascade: card i with m
// matches wins one copy of each of the next m cards per copy of card i.
func Part2(input string) (int, error) {
	ms, err := allMatches(input)
	if err != nil {
		return 0, err
	}
	counts := make([]int, len(ms))
	for i := range counts {
		counts[i] = 1
	}
	for i, m := range ms {
		for j := i + 1; j <= i+m && j < len(counts); j++ {
			counts[j] += counts[i]
		}
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}
