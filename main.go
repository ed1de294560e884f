package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-automata/utils"
)

func main() {
	config := utils.DefaultConfig()
	if err := config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	// Ctrl+C ends the loop the same way Esc does
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := initializeGame(ctx, config)
	displayGameInfo(config, g.grid)

	if err := run(g); err != nil {
		log.Fatalf("%+v", err)
	}
	displayFinalStats(g.stats)
}

// run opens the window and blocks until it is closed
func run(g *game) error {
	width, height := g.config.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(g.config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "[run] failed to run window")
	}
	return nil
}
