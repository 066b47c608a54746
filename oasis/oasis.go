// Package oasis extrapolates the sensor histories of day 9 by building
// difference tables down to an all-zero row, then folding them back up to
// predict the next (or previous) value of each history.
package oasis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadHistory is returned for a line that is not whitespace-separated
// integers.
var ErrBadHistory = errors.New("oasis: malformed history line")

func parseLine(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrBadHistory)
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadHistory, f)
		}
		nums[i] = n
	}
	return nums, nil
}

// differenceStack builds the table of successive differences, ending with
// the first all-zero row.
func differenceStack(history []int) [][]int {
	stack := [][]int{history}
	for {
		last := stack[len(stack)-1]
		zero := true
		for _, n := range last {
			if n != 0 {
				zero = false
				break
			}
		}
		if zero {
			return stack
		}
		diffs := make([]int, len(last)-1)
		for i := range diffs {
			diffs[i] = last[i+1] - last[i]
		}
		stack = append(stack, diffs)
	}
}

// next predicts the value after the end of the history: the sum of the
// last element of every difference row.
func next(history []int) int {
	n := 0
	for _, row := range differenceStack(history) {
		if len(row) > 0 {
			n += row[len(row)-1]
		}
	}
	return n
}

// prev predicts the value before the start of the history, folding the
// first elements back up from the zero row.
func prev(history []int) int {
	stack := differenceStack(history)
	n := 0
	for i := len(stack) - 1; i >= 0; i-- {
		if len(stack[i]) > 0 {
			n = stack[i][0] - n
		}
	}
	return n
}

func sumLines(input string, predict func([]int) int) (int, error) {
	total := 0
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		nums, err := parseLine(line)
		if err != nil {
			return 0, err
		}
		total += predict(nums)
	}
	return total, nil
}

// Part1 sums the forward extrapolations of all histories.
func Part1(input string) (int, error) {
	return sumLines(input, next)
}

// Part2 sums the backward extrapolations of all histories.
func Part2(input string) (int, error) {
	return sumLines(input, prev)
}
