package model

// Point is a cell offset within a pattern.
type Point struct {
	X, Y int
}

// Pattern is a set of live cells relative to a top-left origin.
type Pattern []Point

var (
	// Block is a 2x2 still life.
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	// Blinker is a horizontal period-2 oscillator.
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}

	// BlinkerVertical is the blinker's other phase.
	BlinkerVertical = Pattern{{0, 0}, {0, 1}, {0, 2}}

	// Glider travels one cell down and right every four generations.
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	// LTriplet is three cells of a 2x2 square, enough to give birth to the fourth.
	LTriplet = Pattern{{0, 0}, {0, 1}, {1, 1}}
)

// Place sets every cell of p alive with its origin at (x, y).
// Cells that fall outside the grid are dropped.
func (g *Grid) Place(p Pattern, x, y int) {
	for _, pt := range p {
		g.Set(x+pt.X, y+pt.Y, true)
	}
}
