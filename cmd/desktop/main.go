package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/termtris/internal/config"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("termtris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(logger)); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
