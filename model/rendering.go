package model

import "image/color"

// Surface is the drawing target supplied by the windowing layer.
type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, w, h int, c color.Color)
}

// Renderer draws snapshots as filled squares over a cleared background
type Renderer struct {
	CellSize   int
	Foreground color.Color
	Background color.Color
}

// Draw clears s and paints one CellSize square per living cell
func (r *Renderer) Draw(s Surface, snap Snapshot) {
	s.Clear(r.Background)
	for y := range snap.Height() {
		for x := range snap.Width() {
			if snap.Alive(x, y) {
				s.FillRect(x*r.CellSize, y*r.CellSize, r.CellSize, r.CellSize, r.Foreground)
			}
		}
	}
}

// Tick advances g by exactly one generation and draws the result onto s.
func (r *Renderer) Tick(g *Grid, s Surface) Snapshot {
	g.Step()
	snap := g.Snapshot()
	r.Draw(s, snap)
	return snap
}
