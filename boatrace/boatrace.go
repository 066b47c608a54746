// Package boatrace counts the winning button-hold times of day 6. Holding
// the button for t milliseconds in a race of length T covers t*(T-t)
// millimeters; a hold wins when that beats the record.
package boatrace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for race parsing and solving.
var (
	// ErrBadRaces indicates input without matching Time/Distance lines.
	ErrBadRaces = errors.New("boatrace: malformed race table")
	// ErrUnbeatable indicates a record no hold time can beat.
	ErrUnbeatable = errors.New("boatrace: record distance cannot be beaten")
)

// waysToWin counts the hold times that beat the record. The margin is the
// distance between the first and last winning hold, found by scanning in
// from each end; race times are small enough that the linear scan is fine.
func waysToWin(total, record int) (int, error) {
	first, last := 0, 0
	for t := 1; t < total; t++ {
		if t*(total-t) > record {
			first = t
			break
		}
	}
	if first == 0 {
		return 0, fmt.Errorf("%w: time=%d record=%d", ErrUnbeatable, total, record)
	}
	for t := total - 1; t >= 1; t-- {
		if t*(total-t) > record {
			last = t
			break
		}
	}
	return last - first + 1, nil
}

func parseLine(line, prefix string) ([]string, error) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return nil, fmt.Errorf("%w: want %q line, got %q", ErrBadRaces, prefix, line)
	}
	return strings.Fields(rest), nil
}

func parseTable(input string) (times, distances []string, err error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("%w: want 2 lines, got %d", ErrBadRaces, len(lines))
	}
	times, err = parseLine(lines[0], "Time:")
	if err != nil {
		return nil, nil, err
	}
	distances, err = parseLine(lines[1], "Distance:")
	if err != nil {
		return nil, nil, err
	}
	if len(times) != len(distances) || len(times) == 0 {
		return nil, nil, fmt.Errorf("%w: %d times vs %d distances", ErrBadRaces, len(times), len(distances))
	}
	return times, distances, nil
}

// Part1 multiplies the win counts of the individual races.
func Part1(input string) (int, error) {
	times, distances, err := parseTable(input)
	if err != nil {
		return 0, err
	}
	margin := 1
	for i := range times {
		total, err := strconv.Atoi(times[i])
		if err != nil {
			return 0, fmt.Errorf("%w: time %q", ErrBadRaces, times[i])
		}
		record, err := strconv.Atoi(distances[i])
		if err != nil {
			return 0, fmt.Errorf("%w: distance %q", ErrBadRaces, distances[i])
		}
		ways, err := waysToWin(total, record)
		if err != nil {
			return 0, err
		}
		margin *= ways
	}
	return margin, nil
}

// Part2 joins the columns into one big race and counts its winning holds.
func Part2(input string) (int, error) {
	times, distances, err := parseTable(input)
	if err != nil {
		return 0, err
	}
	total, err := strconv.Atoi(strings.Join(times, ""))
	if err != nil {
		return 0, fmt.Errorf("%w: joined time: %v", ErrBadRaces, err)
	}
	record, err := strconv.Atoi(strings.Join(distances, ""))
	if err != nil {
		return 0, fmt.Errorf("%w: joined distance: %v", ErrBadRaces, err)
	}
	return waysToWin(total, record)
}
