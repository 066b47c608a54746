package beam_test

import (
	"fmt"

	"github.com/vleko/aoc2023/beam"
	"github.com/vleko/aoc2023/grid"
)

// ExampleContraption_Energized fires a beam into a tiny contraption and
// counts the energized tiles. The beam enters at the top-left heading
// right, is turned down the last column by the mirror, and never reaches
// the middle row's interior.
func ExampleContraption_Energized() {
	c, _ := beam.Parse("..\\\n...\n...")
	n := c.Energized(beam.DefaultStart)
	fmt.Println(n)
	// Output:
	// 5
}

// ExampleContraption_MaxEnergized sweeps every edge entry of the reference
// contraption and reports the best found, alongside the fixed start.
func ExampleContraption_MaxEnergized() {
	input := `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

	c, _ := beam.Parse(input)
	fixed := c.Energized(grid.Cursor{Pos: grid.Point{X: 0, Y: 0}, Dir: grid.Right})
	best, _ := c.MaxEnergized()
	fmt.Println("fixed:", fixed)
	fmt.Println("best:", best)
	// Output:
	// fixed: 46
	// best: 51
}
