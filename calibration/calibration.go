// Package calibration recovers calibration values from scrambled lines of
// text (day 1): the first and last digit of each line form a two-digit
// number, and the newer document version also counts spelled-out digits.
package calibration

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDigit is returned when a line contains no digit at all.
var ErrNoDigit = errors.New("calibration: line contains no digit")

// words maps every token that counts as a digit in part 2 to its value.
// Plain digit characters are included so one scan covers both kinds.
var words = map[string]int{
	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4,
	"5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

// lineValue extracts the two-digit value from one line counting only digit
// characters.
func lineValue(line string) (int, error) {
	first, last := -1, -1
	for _, r := range line {
		if r < '0' || r > '9' {
			continue
		}
		d := int(r - '0')
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigit, line)
	}
	return first*10 + last, nil
}

// lineValueSpelled extracts the two-digit value counting spelled-out
// digits as well. Overlapping words resolve by position: the earliest
// match is first, the latest is last ("eightwo" reads as 8...2).
func lineValueSpelled(line string) (int, error) {
	firstPos, lastPos := len(line), -1
	first, last := -1, -1
	for w, d := range words {
		if pos := strings.Index(line, w); pos >= 0 && pos < firstPos {
			firstPos, first = pos, d
		}
		if pos := strings.LastIndex(line, w); pos >= 0 && pos > lastPos {
			lastPos, last = pos, d
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigit, line)
	}
	return first*10 + last, nil
}

func sumLines(input string, extract func(string) (int, error)) (int, error) {
	total := 0
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		v, err := extract(line)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Part1 sums the calibration values using digit characters only.
func Part1(input string) (int, error) {
	return sumLines(input, lineValue)
}

// Part2 sums the calibration values counting spelled-out digits too.
func Part2(input string) (int, error) {
	return sumLines(input, lineValueSpelled)
}
