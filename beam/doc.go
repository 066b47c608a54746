// Package beam simulates a light beam crossing a contraption of mirrors and
// splitters, counting the tiles the beam energizes (day 16).
//
// What:
//
//   - Contraption wraps a rectangular grid of five tile kinds:
//     empty (.), mirrors (/ and \), and splitters (- and |).
//   - Energized fires a beam from one starting cursor and returns how many
//     distinct tiles at least one beam passes through.
//   - MaxEnergized fires a beam inward from every boundary tile and returns
//     the best energized count, evaluating the independent starts in
//     parallel.
//
// How:
//
//   - A worklist of (position, direction) cursors is seeded with the start.
//     Each pop marks the position energized, consults the transition table
//     for the tile under the cursor, and pushes the bounds-checked successor
//     cursors. Steps that would leave the grid are dropped.
//   - A visited set over full cursors (direction included) breaks cycles;
//     mirror/splitter layouts routinely loop, so traversal without it would
//     never terminate. The visited set is bounded by W×H×4 states, which
//     also bounds the whole run.
//   - Every start is an independent pure computation over the immutable
//     Contraption: fresh visited and energized state per run, no shared
//     mutable state, results reduced by max.
//
// Options:
//
//   - WithContext(ctx): cancel a MaxEnergized sweep early.
//   - WithParallelism(n): cap concurrent traversals (default GOMAXPROCS).
//
// Errors:
//
//   - ErrUnknownTile: a character outside ./\-| appears in the input.
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular: malformed grid text.
//
// Complexity: one traversal is O(W×H) time and memory (each of the 4·W·H
// cursor states expands at most once); MaxEnergized runs 2·(W+H) traversals.
package beam
