// Package beam defines the tile alphabet, options, and sentinel errors for
// the beam traversal engine.
package beam

import (
	"context"
	"errors"
	"fmt"

	"github.com/vleko/aoc2023/grid"
)

// ErrUnknownTile is returned when the input contains a character outside
// the closed tile alphabet ./\-|.
var ErrUnknownTile = errors.New("beam: unknown tile character")

// Tile is one of the five contraption tile kinds.
type Tile byte

const (
	Empty Tile = iota
	ForwardMirror
	BackMirror
	HorizontalSplitter
	VerticalSplitter
)

// classify maps a raw input byte to its Tile. It is total over the tile
// alphabet and fails on anything else.
func classify(b byte) (Tile, error) {
	switch b {
	case '.':
		return Empty, nil
	case '/':
		return ForwardMirror, nil
	case '\\':
		return BackMirror, nil
	case '-':
		return HorizontalSplitter, nil
	case '|':
		return VerticalSplitter, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownTile, b)
	}
}

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Energized and MaxEnergized.
type Options struct {
	// Ctx allows cancellation of a multi-start sweep.
	Ctx context.Context

	// Parallelism caps the number of concurrent traversals in
	// MaxEnergized. 0 means runtime.GOMAXPROCS(0).
	Parallelism int
}

// DefaultOptions returns Options with a background context and default
// parallelism.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Parallelism: 0,
	}
}

// WithContext sets a custom context for cancellation of MaxEnergized.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallelism caps concurrent traversals; n <= 0 restores the default.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Parallelism = n
		} else {
			o.Parallelism = 0
		}
	}
}

// DefaultStart is the fixed start of the first puzzle part: the top-left
// corner, heading right.
var DefaultStart = grid.Cursor{Pos: grid.Point{X: 0, Y: 0}, Dir: grid.Right}
