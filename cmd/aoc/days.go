package main

import (
	"github.com/vleko/aoc2023/almanac"
	"github.com/vleko/aoc2023/beam"
	"github.com/vleko/aoc2023/boatrace"
	"github.com/vleko/aoc2023/calibration"
	"github.com/vleko/aoc2023/camelcards"
	"github.com/vleko/aoc2023/cosmic"
	"github.com/vleko/aoc2023/crucible"
	"github.com/vleko/aoc2023/cubegame"
	"github.com/vleko/aoc2023/dish"
	"github.com/vleko/aoc2023/lagoon"
	"github.com/vleko/aoc2023/lenses"
	"github.com/vleko/aoc2023/mirrors"
	"github.com/vleko/aoc2023/oasis"
	"github.com/vleko/aoc2023/pipeloop"
	"github.com/vleko/aoc2023/pulses"
	"github.com/vleko/aoc2023/schematic"
	"github.com/vleko/aoc2023/scratchcards"
	"github.com/vleko/aoc2023/springs"
	"github.com/vleko/aoc2023/wasteland"
	"github.com/vleko/aoc2023/workflows"
)

// solver computes one puzzle half from the raw input text.
type solver func(input string) (int, error)

type day struct {
	name  string
	part1 solver
	part2 solver
}

// days maps day numbers to their solvers, in puzzle order.
var days = map[int]day{
	1:  {name: "calibration", part1: calibration.Part1, part2: calibration.Part2},
	2:  {name: "cubegame", part1: cubegame.Part1, part2: cubegame.Part2},
	3:  {name: "schematic", part1: schematic.Part1, part2: schematic.Part2},
	4:  {name: "scratchcards", part1: scratchcards.Part1, part2: scratchcards.Part2},
	5:  {name: "almanac", part1: almanac.Part1, part2: almanac.Part2},
	6:  {name: "boatrace", part1: boatrace.Part1, part2: boatrace.Part2},
	7:  {name: "camelcards", part1: camelcards.Part1, part2: camelcards.Part2},
	8:  {name: "wasteland", part1: wasteland.Part1, part2: wasteland.Part2},
	9:  {name: "oasis", part1: oasis.Part1, part2: oasis.Part2},
	10: {name: "pipeloop", part1: pipeloop.Part1, part2: pipeloop.Part2},
	11: {name: "cosmic", part1: cosmic.Part1, part2: cosmic.Part2},
	12: {name: "springs", part1: springs.Part1, part2: springs.Part2},
	13: {name: "mirrors", part1: mirrors.Part1, part2: mirrors.Part2},
	14: {name: "dish", part1: dish.Part1, part2: dish.Part2},
	15: {name: "lenses", part1: lenses.Part1, part2: lenses.Part2},
	16: {name: "beam", part1: beam.Part1, part2: beam.Part2},
	17: {name: "crucible", part1: crucible.Part1, part2: crucible.Part2},
	18: {name: "lagoon", part1: lagoon.Part1, part2: lagoon.Part2},
	19: {name: "workflows", part1: workflows.Part1, part2: workflows.Part2},
	20: {name: "pulses", part1: pulses.Part1, part2: pulses.Part2},
}
