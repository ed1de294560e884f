package rules

const (
	// birthCount is the exact number of live neighbours that brings a dead cell to life.
	birthCount = 3

	minSurvive = 2
	maxSurvive = 3
)

/*
Next applies Conway's Game of Life rules (B3/S23) to a single cell.

A live cell survives with two or three live neighbours and dies otherwise.
A dead cell becomes alive with exactly three live neighbours.
*/
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= minSurvive && neighbors <= maxSurvive
	}
	return neighbors == birthCount
}
