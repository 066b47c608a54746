// Package cubegame scores the cube-drawing games of day 2: which games are
// possible with 12 red, 13 green and 14 blue cubes, and the power of the
// minimal cube set each game requires.
package cubegame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadGame is returned for a line that does not follow the
// "Game N: a red, b blue; ..." shape or names an unknown color.
var ErrBadGame = errors.New("cubegame: malformed game line")

// draw is one reveal of cubes from the bag.
type draw struct {
	red, green, blue int
}

// canFit reports whether the draw is possible with the given bag.
func (d draw) canFit(red, green, blue int) bool {
	return d.red <= red && d.green <= green && d.blue <= blue
}

// max merges two draws per color, keeping the larger count of each.
func (d draw) max(o draw) draw {
	return draw{
		red:   maxInt(d.red, o.red),
		green: maxInt(d.green, o.green),
		blue:  maxInt(d.blue, o.blue),
	}
}

// power is the product of the three per-color counts.
func (d draw) power() int {
	return d.red * d.green * d.blue
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

type game struct {
	id    int
	draws []draw
}

func parseDraw(s string) (draw, error) {
	var d draw
	for _, chunk := range strings.Split(s, ", ") {
		num, color, ok := strings.Cut(chunk, " ")
		if !ok {
			return draw{}, fmt.Errorf("%w: draw chunk %q", ErrBadGame, chunk)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return draw{}, fmt.Errorf("%w: count in %q: %v", ErrBadGame, chunk, err)
		}
		switch color {
		case "red":
			d.red += n
		case "green":
			d.green += n
		case "blue":
			d.blue += n
		default:
			return draw{}, fmt.Errorf("%w: unknown color %q", ErrBadGame, color)
		}
	}
	return d, nil
}

func parseGame(line string) (game, error) {
	head, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return game{}, fmt.Errorf("%w: %q", ErrBadGame, line)
	}
	idStr, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return game{}, fmt.Errorf("%w: %q", ErrBadGame, line)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return game{}, fmt.Errorf("%w: game id in %q: %v", ErrBadGame, line, err)
	}
	g := game{id: id}
	for _, part := range strings.Split(rest, "; ") {
		d, err := parseDraw(part)
		if err != nil {
			return game{}, err
		}
		g.draws = append(g.draws, d)
	}
	return g, nil
}

func parseGames(input string) ([]game, error) {
	var games []game
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// Part1 sums the IDs of games possible with a 12/13/14 bag.
func Part1(input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		possible := true
		for _, d := range g.draws {
			if !d.canFit(12, 13, 14) {
				possible = false
				break
			}
		}
		if possible {
			total += g.id
		}
	}
	return total, nil
}

// Part2 sums the power of the minimal cube set of each game.
func Part2(input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		var minSet draw
		for _, d := range g.draws {
			minSet = minSet.max(d)
		}
		total += minSet.power()
	}
	return total, nil
}
