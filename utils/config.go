package utils

import (
	"image/color"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation and its window
type Config struct {
	Title      string
	Width      int
	Height     int
	CellSize   int
	Density    float64
	Foreground color.RGBA
	Background color.RGBA
}

// DefaultConfig returns the values the program runs with
func DefaultConfig() Config {
	return Config{
		Title:      "Cellular Automata",
		Width:      50,
		Height:     50,
		CellSize:   10,
		Density:    0.1,
		Foreground: color.RGBA{A: 0xff},
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Validate checks that the grid and window dimensions are usable
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("[Validate] cell size must be positive, got %d", c.CellSize)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("[Validate] density must be within [0, 1], got %v", c.Density)
	}
	return nil
}

// WindowSize returns the window dimensions in pixels
func (c Config) WindowSize() (width, height int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}
