package main

import (
	"log"

	"wallcaster/internal/config"
	"wallcaster/internal/game"
	"wallcaster/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Load level data and textures; any missing or undecodable asset is
	// fatal here, before the window opens.
	lvl, err := level.Load(cfg.Level.Path)
	if err != nil {
		log.Fatal(err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.New(cfg, lvl)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
