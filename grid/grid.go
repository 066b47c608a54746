package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates the input text has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates lines of differing lengths.
	ErrNonRectangular = errors.New("grid: all lines must have the same length")
)

// Direction is one of the four cardinal travel directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions in a fixed order, for iteration.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns the conventional single-letter name (U, D, L, R).
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}

// Opposite returns the reverse direction.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit step (dx, dy) for d. Y grows downward,
// matching the line order of puzzle input.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Point is an (X, Y) grid coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Cursor is a traversal state: a position plus the direction of travel.
// Two cursors are equal only if both position and direction match.
type Cursor struct {
	Pos Point
	Dir Direction
}

// Grid is a rectangular byte field. It is immutable once parsed;
// dimensions are fixed and cell values never change.
type Grid struct {
	width, height int
	cells         []byte // row-major, height*width bytes
}

// Parse builds a Grid from puzzle text: one line per row, every line the
// same length. Trailing newlines are ignored. Returns ErrEmptyGrid for
// empty input and ErrNonRectangular for ragged lines; a partially parsed
// grid is never returned.
// Complexity: O(W×H) time and memory.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	g := &Grid{
		width:  w,
		height: len(lines),
		cells:  make([]byte, 0, w*len(lines)),
	}
	for i, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: line %d has length %d, want %d", ErrNonRectangular, i+1, len(line), w)
		}
		g.cells = append(g.cells, line...)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the byte at (x, y). The caller must ensure (x, y) is in
// bounds; see InBounds.
func (g *Grid) At(x, y int) byte {
	return g.cells[y*g.width+x]
}

// Row returns row y as a string.
func (g *Grid) Row(y int) string {
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// Find returns the coordinates of the first cell equal to b, scanning in
// row-major order, and whether such a cell exists.
// Complexity: O(W×H).
func (g *Grid) Find(b byte) (Point, bool) {
	for i, c := range g.cells {
		if c == b {
			return Point{X: i % g.width, Y: i / g.width}, true
		}
	}
	return Point{}, false
}

// Index maps (x, y) to a row-major index: y*Width + x.
// Useful for dense visited arrays keyed by cell.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Step moves the cursor one cell along its direction within g. It returns
// the advanced cursor and true, or the zero Cursor and false when the move
// would leave the grid.
// Complexity: O(1).
func (g *Grid) Step(c Cursor) (Cursor, bool) {
	dx, dy := c.Dir.Delta()
	nx, ny := c.Pos.X+dx, c.Pos.Y+dy
	if !g.InBounds(nx, ny) {
		return Cursor{}, false
	}
	return Cursor{Pos: Point{X: nx, Y: ny}, Dir: c.Dir}, true
}
