package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/termtris/internal/draw"
	"github.com/tomz197/termtris/internal/loop/config"
	"github.com/tomz197/termtris/internal/tetris"
)

const controlsHint = "←→ move ↑ rot ↓ drop ␣ slam p q"

// drawFrame draws the board, then the overlay for the current state.
func (s *Session) drawFrame(now time.Time) error {
	if s.needClear {
		draw.ClearScreen(s.cw)
		s.needClear = false
	}

	if s.termW < config.MinTermWidth || s.termH < config.MinTermHeight {
		s.drawTooSmall()
		return s.cw.Flush()
	}

	snap := s.engine.Snapshot()
	s.view.Draw(s.cw, &snap, s.activeFlash(now))

	switch snap.State {
	case tetris.NotStarted:
		s.view.DrawOverlay(s.cw, "T E R M T R I S", "ENTER to start")
	case tetris.Paused:
		s.view.DrawOverlay(s.cw, "PAUSED", "p to resume")
	case tetris.GameOver:
		s.view.DrawOverlay(s.cw, "GAME OVER",
			fmt.Sprintf("score %d", snap.Stats.Score),
			"ENTER to restart")
	}

	if left, ok := s.idleWarning(now); ok {
		secs := int(left.Round(time.Second) / time.Second)
		s.view.DrawOverlay(s.cw, "STILL THERE?", fmt.Sprintf("disconnect in %ds", max(secs, 0)))
	}

	footer := controlsHint
	if s.username != "" {
		footer = s.username + " · " + controlsHint
	}
	s.view.DrawFooter(s.cw, footer)

	return s.cw.Flush()
}

// drawTooSmall replaces the layout with a size hint. It is drawn at the
// terminal origin, ignoring the centering offset.
func (s *Session) drawTooSmall() {
	col, row := s.cw.Offset()
	s.cw.SetOffset(0, 0)
	s.cw.WriteAt(1, 1, "terminal too small")
	s.cw.WriteAt(1, 2, fmt.Sprintf("need %dx%d, have %dx%d", config.MinTermWidth, config.MinTermHeight, s.termW, s.termH))
	s.cw.SetOffset(col, row)
}
