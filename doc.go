// Package aoc2023 is a collection of Advent of Code 2023 solvers — one
// small, well-tested package per puzzle, plus the shared grid toolkit
// they build on.
//
// 🚀 What is aoc2023?
//
//	Twenty days of puzzle solutions, each exposing the same surface:
//		• Part1(input string) (int, error)
//		• Part2(input string) (int, error)
//	and each parsing its own raw puzzle text, so a solver is usable as a
//	library function as well as from the command line.
//
// ✨ Why this layout?
//
//   - One package per puzzle – small APIs, clear naming, no cross-talk
//   - Shared primitives – grid holds the Point/Direction/Grid plumbing
//     that half the puzzles need
//   - Real error surfaces – every parser returns typed sentinel errors
//     instead of panicking on malformed text
//
// The packages, in puzzle order:
//
//	calibration/  — digit (and spelled-digit) calibration values
//	cubegame/     — cube draw feasibility and power
//	schematic/    — part numbers and gear ratios in an engine schematic
//	scratchcards/ — winning-number matches and the card-copy cascade
//	almanac/      — seed-to-location mapping over value ranges
//	boatrace/     — record-beating hold times
//	camelcards/   — poker-like hand ranking, with and without jokers
//	wasteland/    — left/right network walks and their least common multiple
//	oasis/        — difference-table extrapolation
//	pipeloop/     — the pipe loop, its farthest point, its interior
//	cosmic/       — galaxy distances under cosmic expansion
//	springs/      — damaged-spring arrangement counting
//	mirrors/      — reflection axes, exact and smudged
//	dish/         — tilting platform loads and spin cycles
//	lenses/       — the HASH fold and the lens boxes
//	beam/         — beam tracing through mirrors and splitters
//	crucible/     — heat-loss Dijkstra under straight-run limits
//	lagoon/       — dig-plan volume via shoelace and Pick
//	workflows/    — part sorting and rating-box counting
//	pulses/       — flip-flop and conjunction pulse simulation
//
// cmd/aoc runs any solver against an input file:
//
//	go run ./cmd/aoc run 16 --input input/day16.txt
package aoc2023
