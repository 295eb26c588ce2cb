package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neon-constellation/internal/config"
	"github.com/iburimskiy/neon-constellation/internal/game"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	log.Printf("starting with %d particles", config.ParticleCount)
	g := game.NewGame(ctx)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title("Neon Constellation"), zenity.ErrorIcon)
		log.Fatal(err)
	}
	log.Print("stopped")
}
