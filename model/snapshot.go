package model

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	snapshotAlive = '#'
	snapshotDead  = '.'
)

// Snapshot is an immutable copy of one generation.
type Snapshot struct {
	width  int
	height int
	cells  []bool
}

// Width returns the width of the captured grid
func (s Snapshot) Width() int { return s.width }

// Height returns the height of the captured grid
func (s Snapshot) Height() int { return s.height }

// Alive reports whether the cell at (x, y) was alive. Out-of-range cells are dead.
func (s Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.cells[y*s.width+x]
}

// Population returns the number of living cells
func (s Snapshot) Population() (count int) {
	for _, alive := range s.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether both snapshots have the same dimensions and cells.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.width != o.width || s.height != o.height {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an MD5 hash of the cell states
func (s Snapshot) Hash() string {
	buf := make([]byte, len(s.cells))
	for i, alive := range s.cells {
		if alive {
			buf[i] = 1
		}
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}

// String renders the snapshot as text, one row per line.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow((s.width + 1) * s.height)
	for y := range s.height {
		for x := range s.width {
			if s.cells[y*s.width+x] {
				b.WriteByte(snapshotAlive)
			} else {
				b.WriteByte(snapshotDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
