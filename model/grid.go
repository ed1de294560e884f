package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-automata/rules"
)

// Source produces uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Grid is a fixed-size board with hard edges.
// Cells live in a flat buffer indexed by y*width+x.
type Grid struct {
	width  int
	height int
	cells  []bool
	next   []bool // scratch buffer for Step
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		next:   make([]bool, width*height),
	}
}

// NewRandomGrid creates a grid where every cell is independently alive with
// probability density. A nil src uses the process-wide generator.
func NewRandomGrid(width, height int, density float64, src Source) *Grid {
	if src == nil {
		src = globalSource{}
	}
	g := NewGrid(width, height)
	for i := range g.cells {
		g.cells[i] = src.Float64() < density
	}
	return g
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cells[y*g.width+x] = alive
	}
}

// Get returns the state of a cell. Anything outside the grid is dead.
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y*g.width+x]
}

// CountNeighbors counts living cells in the Moore neighbourhood of (x, y),
// clipped to the grid.
func (g *Grid) CountNeighbors(x, y int) int {
	var (
		count = 0
		minX  = max(0, x-1)
		maxX  = min(g.width-1, x+1)
		minY  = max(0, y-1)
		maxY  = min(g.height-1, y+1)
	)

	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny*g.width : (ny+1)*g.width]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if row[nx] {
				count++
			}
		}
	}

	return count
}

// Step advances the grid by one generation. The next generation is computed
// from the current one only and becomes visible all at once.
func (g *Grid) Step() {
	for y := range g.height {
		for x := range g.width {
			i := y*g.width + x
			g.next[i] = rules.Next(g.cells[i], g.CountNeighbors(x, y))
		}
	}
	g.cells, g.next = g.next, g.cells
}

// Snapshot returns a read-only copy of the current generation
func (g *Grid) Snapshot() Snapshot {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{width: g.width, height: g.height, cells: cells}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	copy(c.cells, g.cells)
	return c
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}
