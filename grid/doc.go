// Package grid provides the small 2D toolkit shared by the puzzle packages:
// an immutable rectangular character grid parsed from puzzle text, integer
// points, the four cardinal directions, and a (position, direction) cursor
// with bounds-checked stepping.
//
// What:
//
//   - Grid wraps the raw puzzle text as an immutable Width×Height byte field.
//   - Direction enumerates Up/Down/Left/Right with Opposite and Delta.
//   - Cursor pairs a Point with a Direction; Step moves one cell and reports
//     whether the move stayed inside the grid (out-of-bounds moves are
//     rejected, never wrapped or clamped).
//
// Why:
//
//   - Nearly every puzzle reads a rectangular character field and walks it;
//     reimplementing bounds checks and direction tables per day invites the
//     same off-by-one bug twenty times.
//   - Solving logic stays in the day packages: grid carries no puzzle rules.
//
// Errors:
//
//   - ErrEmptyGrid: input text has no lines or an empty first line.
//   - ErrNonRectangular: lines of differing lengths.
//
// Complexity: Parse is O(W×H) time and memory; all accessors are O(1).
package grid
