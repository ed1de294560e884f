package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sheikhrachel/go-automata/model"
	"github.com/sheikhrachel/go-automata/utils"
)

// screenSurface adapts an ebiten frame to model.Surface
type screenSurface struct {
	screen *ebiten.Image
}

func (s screenSurface) Clear(c color.Color) {
	s.screen.Fill(c)
}

func (s screenSurface) FillRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// game drives the grid from ebiten's loop: one generation per drawn frame
type game struct {
	ctx        context.Context
	config     utils.Config
	grid       *model.Grid
	renderer   *model.Renderer
	stats      *utils.Stats
	generation int
	lastFrame  time.Time
}

// initializeGame sets up the initial game state
func initializeGame(ctx context.Context, config utils.Config) *game {
	return &game{
		ctx:    ctx,
		config: config,
		grid:   model.NewRandomGrid(config.Width, config.Height, config.Density, nil),
		renderer: &model.Renderer{
			CellSize:   config.CellSize,
			Foreground: config.Foreground,
			Background: config.Background,
		},
		stats:     utils.NewStats(),
		lastFrame: time.Now(),
	}
}

// Update only watches for exit requests; the simulation advances in Draw.
func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	snap := g.renderer.Tick(g.grid, screenSurface{screen: screen})

	now := time.Now()
	g.generation++
	g.stats.Update(g.generation, snap.Population(), now.Sub(g.lastFrame))
	g.lastFrame = now
}

func (g *game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return g.config.WindowSize()
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("%s | Grid: %dx%d | Cell size: %dpx | Initial living cells: %d\n",
		config.Title, grid.Width(), grid.Height(), config.CellSize, grid.CountLivingCells())
	fmt.Println("Press Esc or close the window to exit")
}

// displayFinalStats prints a summary once the window has closed
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Last frame: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
