// Package lenses runs the lens-library initialization sequence (day 15).
// Part 1 sums the HASH of each comma-separated step. Part 2 executes the
// steps against 256 ordered lens boxes — "label=focal" inserts or
// replaces, "label-" removes — and sums the focusing power of the final
// arrangement.
package lenses

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadStep indicates a step that is neither "label=focal" nor "label-".
var ErrBadStep = errors.New("lenses: malformed step")

// Hash folds a step into 0..255: per byte, add then multiply by 17 mod 256.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

type lens struct {
	label string
	focal int
}

type boxes [256][]lens

func (bx *boxes) insert(label string, focal int) {
	b := Hash(label)
	for i, l := range bx[b] {
		if l.label == label {
			bx[b][i].focal = focal
			return
		}
	}
	bx[b] = append(bx[b], lens{label: label, focal: focal})
}

func (bx *boxes) remove(label string) {
	b := Hash(label)
	for i, l := range bx[b] {
		if l.label == label {
			bx[b] = append(bx[b][:i], bx[b][i+1:]...)
			return
		}
	}
}

// power is the focusing power: (box+1) × slot × focal, slots 1-based.
func (bx *boxes) power() int {
	total := 0
	for b, lenses := range bx {
		for i, l := range lenses {
			total += (b + 1) * (i + 1) * l.focal
		}
	}
	return total
}

func steps(input string) []string {
	return strings.Split(strings.TrimRight(input, "\n"), ",")
}

// Part1 sums the HASH of every step.
func Part1(input string) (int, error) {
	total := 0
	for _, step := range steps(input) {
		total += Hash(step)
	}
	return total, nil
}

// Part2 executes the sequence and returns the focusing power.
func Part2(input string) (int, error) {
	var bx boxes
	for _, step := range steps(input) {
		if label, ok := strings.CutSuffix(step, "-"); ok && !strings.Contains(label, "=") {
			bx.remove(label)
			continue
		}
		label, focalStr, ok := strings.Cut(step, "=")
		if !ok || label == "" {
			return 0, fmt.Errorf("%w: %q", ErrBadStep, step)
		}
		focal, err := strconv.Atoi(focalStr)
		if err != nil || focal < 1 || focal > 9 {
			return 0, fmt.Errorf("%w: focal %q", ErrBadStep, focalStr)
		}
		bx.insert(label, focal)
	}
	return bx.power(), nil
}
