package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/termtris/internal/draw"
	"github.com/tomz197/termtris/internal/input"
	loopconfig "github.com/tomz197/termtris/internal/loop/config"
	"github.com/tomz197/termtris/internal/tetris"
)

const (
	cellSize     = 16
	wellX        = cellSize
	wellY        = cellSize
	panelX       = wellX + tetris.Width*cellSize + cellSize
	screenWidth  = panelX + 6*cellSize
	screenHeight = wellY + tetris.Height*cellSize + cellSize

	// Held-key repeat, in ticks.
	repeatDelay    = 10
	repeatInterval = 3
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x1c, A: 0xff}
	wellColor       = color.RGBA{R: 0x1e, G: 0x1e, B: 0x30, A: 0xff}
	gridColor       = color.RGBA{R: 0x3a, G: 0x3a, B: 0x5a, A: 0xff}
	overlayColor    = color.RGBA{A: 0xc0}
)

// Game adapts the engine to ebiten's fixed-rate Update and Draw.
type Game struct {
	engine *tetris.Engine
	logger *log.Logger

	flashRows  []int
	flashTicks int
}

func newGame(logger *log.Logger) *Game {
	return &Game{
		engine: tetris.NewEngine(tetris.Options{}),
		logger: logger,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch g.engine.State() {
	case tetris.NotStarted, tetris.GameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.engine.StartGame()
			g.flashRows = nil
			g.logger.Info("game started")
		}
	default:
		g.handleKeys()
	}

	g.engine.AdvanceTime(time.Second / time.Duration(ebiten.TPS()))

	for _, ev := range g.engine.Events() {
		switch ev.Type {
		case tetris.EventLinesCleared:
			g.flashRows = ev.Rows
			g.flashTicks = int(loopconfig.FlashDuration * time.Duration(ebiten.TPS()) / time.Second)
		case tetris.EventLevelUp:
			g.logger.Info("level up", "level", ev.Level)
		case tetris.EventGameOver:
			g.logger.Info("game over", "score", ev.Score, "level", ev.Level)
		}
	}
	if g.flashTicks > 0 {
		g.flashTicks--
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.engine.TogglePause()
	}
	if held(ebiten.KeyLeft) || held(ebiten.KeyA) {
		g.engine.MoveLeft()
	}
	if held(ebiten.KeyRight) || held(ebiten.KeyD) {
		g.engine.MoveRight()
	}
	if held(ebiten.KeyDown) || held(ebiten.KeyS) {
		g.engine.SoftDrop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.engine.Rotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.HardDrop()
	}
}

func held(k ebiten.Key) bool {
	return input.Repeat(inpututil.KeyPressDuration(k), repeatDelay, repeatInterval)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := g.engine.Snapshot()

	vector.DrawFilledRect(screen, wellX, wellY, tetris.Width*cellSize, tetris.Height*cellSize, wellColor, false)
	flashing := make(map[int]bool, len(g.flashRows))
	if g.flashTicks > 0 {
		for _, y := range g.flashRows {
			flashing[y] = true
		}
	}
	for y := range tetris.Height {
		for x := range tetris.Width {
			px := float32(wellX + x*cellSize)
			py := float32(wellY + y*cellSize)
			switch k := snap.CellAt(x, y); {
			case flashing[y]:
				vector.DrawFilledRect(screen, px, py, cellSize, cellSize, draw.FlashColor, false)
			case k != tetris.None:
				vector.DrawFilledRect(screen, px+1, py+1, cellSize-2, cellSize-2, draw.KindColor(k), false)
			default:
				vector.StrokeRect(screen, px, py, cellSize, cellSize, 1, gridColor, false)
			}
		}
	}

	g.drawPanel(screen, &snap)

	switch snap.State {
	case tetris.NotStarted:
		g.drawOverlay(screen, "TERMTRIS", "ENTER to start")
	case tetris.Paused:
		g.drawOverlay(screen, "PAUSED", "P to resume")
	case tetris.GameOver:
		g.drawOverlay(screen, "GAME OVER", fmt.Sprintf("score %d", snap.Stats.Score))
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, snap *tetris.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, wellY)
	if next := snap.Next; next != nil {
		next.Cells(func(x, y int) {
			px := float32(panelX + x*cellSize)
			py := float32(wellY + 20 + y*cellSize)
			vector.DrawFilledRect(screen, px+1, py+1, cellSize-2, cellSize-2, draw.KindColor(next.Kind), false)
		})
	}

	stats := fmt.Sprintf("SCORE\n%d\n\nLINES\n%d\n\nLEVEL\n%d",
		snap.Stats.Score, snap.Stats.Lines, snap.Stats.Level)
	ebitenutil.DebugPrintAt(screen, stats, panelX, wellY+4*cellSize)
}

func (g *Game) drawOverlay(screen *ebiten.Image, title, hint string) {
	y := float32(wellY + tetris.Height*cellSize/2 - 2*cellSize)
	vector.DrawFilledRect(screen, wellX, y, tetris.Width*cellSize, 4*cellSize, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, title, wellX+cellSize, int(y)+cellSize/2)
	ebitenutil.DebugPrintAt(screen, hint, wellX+cellSize, int(y)+2*cellSize)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
