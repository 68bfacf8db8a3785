package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tomz197/termtris/internal/draw"
	"github.com/tomz197/termtris/internal/input"
	"github.com/tomz197/termtris/internal/loop/config"
	"github.com/tomz197/termtris/internal/tetris"
)

// Options configures a session. Zero values select defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Renderer     *lipgloss.Renderer
	Logger       *log.Logger
	Keymap       *input.Keymap
	Rand         tetris.Randomizer
	Now          func() time.Time
	Username     string

	// IdleWarn and IdleTimeout enable the inactivity warning and
	// disconnect. Zero disables them.
	IdleWarn    time.Duration
	IdleTimeout time.Duration
}

// Session owns one engine and drives it from one terminal.
type Session struct {
	engine   *tetris.Engine
	view     *draw.BoardView
	cw       *draw.ChunkWriter
	stream   *input.Stream
	termSize draw.TermSizeFunc
	logger   *log.Logger
	now      func() time.Time
	username string

	idleWarn    time.Duration
	idleTimeout time.Duration

	running    bool
	lastState  tetris.RunState
	lastInput  time.Time
	flashRows  []int
	flashUntil time.Time
	termW      int
	termH      int
	needClear  bool
}

// NewSession creates a session reading keys from r and drawing to w.
// Input is consumed on a background goroutine from this point on.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		engine:      tetris.NewEngine(tetris.Options{Rand: opts.Rand, Now: now}),
		view:        draw.NewBoardView(draw.NewPalette(opts.Renderer)),
		cw:          draw.NewChunkWriter(w, 0, 0),
		stream:      input.StartStream(r, opts.Keymap),
		termSize:    termSize,
		logger:      logger,
		now:         now,
		username:    truncateName(opts.Username),
		idleWarn:    opts.IdleWarn,
		idleTimeout: opts.IdleTimeout,
		running:     true,
		needClear:   true,
	}
	s.lastInput = now()
	return s
}

// Run blocks until the player quits, input ends or the session idles out.
func (s *Session) Run() error {
	draw.HideCursor(s.cw)
	defer func() {
		draw.ClearScreen(s.cw)
		draw.ShowCursor(s.cw)
		_ = s.cw.Flush()
	}()

	s.logger.Info("session started", "user", s.username)
	for s.running {
		frameStart := s.now()

		actions := input.ReadActions(s.stream)
		if len(actions) == 0 && s.stream.Closed() {
			s.logger.Info("input closed")
			break
		}

		if err := s.step(actions, frameStart); err != nil {
			return err
		}

		elapsed := s.now().Sub(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	st := s.engine.Stats()
	s.logger.Info("session ended", "user", s.username, "score", st.Score, "lines", st.Lines, "level", st.Level)
	return nil
}

// step runs one frame: apply actions, advance the engine, react to its
// events and draw.
func (s *Session) step(actions []input.Action, now time.Time) error {
	// A running game counts as activity; only menus and pause can idle out.
	if len(actions) > 0 || s.engine.State() == tetris.Running {
		s.lastInput = now
	}
	for _, a := range actions {
		s.dispatch(a)
		if !s.running {
			return nil
		}
	}

	if s.idleTimeout > 0 && now.Sub(s.lastInput) >= s.idleTimeout {
		s.logger.Info("disconnecting idle player", "user", s.username, "idle", now.Sub(s.lastInput).Round(time.Second))
		s.running = false
		return nil
	}

	s.engine.Tick(now)
	s.processEvents(now)
	s.updateScreen()

	if state := s.engine.State(); state != s.lastState {
		s.logger.Debug("state changed", "from", s.lastState, "to", state)
		s.lastState = state
		s.needClear = true
	}

	return s.drawFrame(now)
}

// dispatch maps one action onto the engine. Movement is ignored by the
// engine unless a game is running.
func (s *Session) dispatch(a input.Action) {
	switch a {
	case input.ActionQuit:
		s.running = false
	case input.ActionStart:
		if s.canStart() {
			s.startGame()
		}
	case input.ActionPause:
		s.engine.TogglePause()
	case input.ActionLeft:
		s.engine.MoveLeft()
	case input.ActionRight:
		s.engine.MoveRight()
	case input.ActionSoftDrop:
		s.engine.SoftDrop()
	case input.ActionRotate:
		s.engine.Rotate()
	case input.ActionHardDrop:
		if s.canStart() {
			s.startGame()
			return
		}
		s.engine.HardDrop()
	}
}

func (s *Session) canStart() bool {
	st := s.engine.State()
	return st == tetris.NotStarted || st == tetris.GameOver
}

func (s *Session) startGame() {
	s.engine.StartGame()
	s.flashRows = nil
	s.logger.Info("game started", "user", s.username)
}

func (s *Session) processEvents(now time.Time) {
	for _, ev := range s.engine.Events() {
		switch ev.Type {
		case tetris.EventLinesCleared:
			s.flashRows = ev.Rows
			s.flashUntil = now.Add(config.FlashDuration)
			s.logger.Debug("lines cleared", "count", ev.Count, "score", ev.Score)
		case tetris.EventLevelUp:
			s.logger.Info("level up", "user", s.username, "level", ev.Level)
		case tetris.EventGameOver:
			s.logger.Info("game over", "user", s.username, "score", ev.Score, "level", ev.Level)
		}
	}
}

// activeFlash returns the rows to highlight at now, if any.
func (s *Session) activeFlash(now time.Time) []int {
	if len(s.flashRows) == 0 || !now.Before(s.flashUntil) {
		return nil
	}
	return s.flashRows
}

// updateScreen re-centers the layout when the terminal size changes.
func (s *Session) updateScreen() {
	w, h, err := s.termSize()
	if err != nil {
		return
	}
	if w == s.termW && h == s.termH {
		return
	}
	s.termW, s.termH = w, h
	cols, rows := s.view.Size()
	s.cw.SetOffset(draw.CenterOffset(w, h, cols, rows))
	s.needClear = true
}

func (s *Session) idleWarning(now time.Time) (time.Duration, bool) {
	if s.idleWarn <= 0 || s.idleTimeout <= 0 {
		return 0, false
	}
	idle := now.Sub(s.lastInput)
	if idle < s.idleWarn {
		return 0, false
	}
	return s.idleTimeout - idle, true
}

func truncateName(name string) string {
	r := []rune(name)
	if len(r) > config.MaxUsernameLength {
		return string(r[:config.MaxUsernameLength])
	}
	return name
}
