package tetris

import (
	"math/rand/v2"
	"time"
)

// RunState is the engine's lifecycle phase.
type RunState int

const (
	NotStarted RunState = iota // Before the first StartGame
	Running                    // Accepting actions and time
	Paused                     // Frozen until resumed
	GameOver                   // Spawn collided; terminal until StartGame
)

func (s RunState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Randomizer picks piece indices. *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// wallKicks are the horizontal offsets tried, in order, when a rotation collides.
var wallKicks = [...]int{0, -1, 1, -2, 2}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Rand Randomizer       // Piece selection; defaults to math/rand/v2
	Now  func() time.Time // Clock used by Tick anchoring; defaults to time.Now
}

// Engine holds the complete game state. It is not safe for concurrent use;
// hosts must serialize all calls.
type Engine struct {
	board   Board
	current *Piece
	next    *Piece
	stats   Stats
	state   RunState

	dropInterval time.Duration
	dropCounter  time.Duration
	lastTick     time.Time // Reference for Tick; re-anchored on start and resume

	events []Event
	rand   Randomizer
	now    func() time.Time
}

// NewEngine creates an engine in NotStarted with an empty board.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		rand:         opts.Rand,
		now:          opts.Now,
		stats:        Stats{Level: 1},
		dropInterval: InitialDropInterval,
	}
	if e.rand == nil {
		e.rand = globalRand{}
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// StartGame resets the board and counters and spawns fresh pieces.
func (e *Engine) StartGame() {
	e.board.Clear()
	e.stats = Stats{Score: 0, Lines: 0, Level: 1}
	e.dropInterval = InitialDropInterval
	e.dropCounter = 0
	e.events = e.events[:0]
	e.current = nil
	e.next = nil
	e.state = Running
	e.spawn()
	e.lastTick = e.now()
}

// TogglePause flips between Running and Paused. It is a no-op otherwise.
// Resuming re-anchors the Tick reference so paused wall time is never applied.
func (e *Engine) TogglePause() {
	switch e.state {
	case Running:
		e.state = Paused
	case Paused:
		e.state = Running
		e.lastTick = e.now()
	}
}

// Tick advances the engine by the wall time elapsed since the previous Tick,
// StartGame or resume.
func (e *Engine) Tick(now time.Time) {
	if e.state != Running {
		return
	}
	delta := now.Sub(e.lastTick)
	e.lastTick = now
	e.AdvanceTime(delta)
}

// AdvanceTime applies gravity. At most one forced descent happens per call,
// however large delta is. Negative deltas count as zero.
func (e *Engine) AdvanceTime(delta time.Duration) {
	if e.state != Running {
		return
	}
	if delta < 0 {
		delta = 0
	}

	e.dropCounter += delta
	if e.dropCounter < e.dropInterval {
		return
	}

	if e.current != nil && !e.tryMove(0, 1) {
		e.lock()
	}
	e.dropCounter = 0
}

// MoveLeft shifts the active piece one column left if the space is free.
func (e *Engine) MoveLeft() bool { return e.move(-1, 0) }

// MoveRight shifts the active piece one column right if the space is free.
func (e *Engine) MoveRight() bool { return e.move(1, 0) }

// SoftDrop moves the active piece one row down if the space is free.
// A blocked soft drop does not lock; gravity does that.
func (e *Engine) SoftDrop() bool { return e.move(0, 1) }

func (e *Engine) move(dx, dy int) bool {
	if e.state != Running || e.current == nil {
		return false
	}
	return e.tryMove(dx, dy)
}

func (e *Engine) tryMove(dx, dy int) bool {
	p := e.current
	if Collides(&e.board, p.Matrix, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// Rotate turns the active piece clockwise, trying the wall-kick offsets in
// order. It reports whether the rotation was applied.
func (e *Engine) Rotate() bool {
	if e.state != Running || e.current == nil {
		return false
	}

	p := e.current
	rotated := Rotate(p.Matrix)
	for _, dx := range wallKicks {
		if !Collides(&e.board, rotated, p.X+dx, p.Y) {
			p.Matrix = rotated
			p.X += dx
			return true
		}
	}
	return false
}

// HardDrop drops the active piece to the lowest free row and locks it.
// It returns the number of rows travelled.
func (e *Engine) HardDrop() int {
	if e.state != Running || e.current == nil {
		return 0
	}

	p := e.current
	dropY := p.Y
	for !Collides(&e.board, p.Matrix, p.X, dropY+1) {
		dropY++
	}
	rows := dropY - p.Y
	p.Y = dropY
	e.lock()
	return rows
}

// lock merges the active piece into the board, clears lines and spawns the
// next piece. Cells above the top edge are dropped.
func (e *Engine) lock() {
	p := e.current
	if p == nil {
		return
	}

	p.Cells(func(x, y int) {
		if y >= 0 {
			e.board.Set(x, y, p.Kind)
		}
	})
	e.emit(Event{Type: EventPieceLocked, Kind: p.Kind})

	e.clearLines()
	e.spawn()
}

func (e *Engine) clearLines() {
	rows := e.board.ClearLines()
	n := len(rows)
	if n == 0 {
		return
	}

	leveled := e.stats.award(n)
	if leveled {
		e.dropInterval = DropIntervalFor(e.stats.Level)
	}

	e.emit(Event{Type: EventLinesCleared, Rows: rows, Count: n})
	if leveled {
		e.emit(Event{Type: EventLevelUp})
	}
}

// spawn promotes the queued piece, queues a new one and checks for game over.
func (e *Engine) spawn() {
	if e.next != nil {
		e.current = e.next
	} else {
		e.current = e.randomPiece()
	}
	e.next = e.randomPiece()

	e.current.X = Width/2 - e.current.Matrix.Width()/2
	e.current.Y = 0

	if Collides(&e.board, e.current.Matrix, e.current.X, e.current.Y) {
		e.state = GameOver
		e.emit(Event{Type: EventGameOver})
	}
}

func (e *Engine) randomPiece() *Piece {
	return NewPiece(Kinds[e.rand.IntN(len(Kinds))])
}

func (e *Engine) emit(ev Event) {
	ev.Level = e.stats.Level
	ev.Score = e.stats.Score
	e.events = append(e.events, ev)
}

// Events returns and clears the pending events.
func (e *Engine) Events() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]Event, len(e.events))
	copy(out, e.events)
	e.events = e.events[:0]
	return out
}

// State returns the current run state.
func (e *Engine) State() RunState { return e.state }

// Stats returns score, lines and level.
func (e *Engine) Stats() Stats { return e.stats }

// Board returns a copy of the playfield.
func (e *Engine) Board() Board { return e.board }

// DropInterval returns the current gravity period.
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }

// Current returns a copy of the active piece, or nil.
func (e *Engine) Current() *Piece { return e.current.Clone() }

// Next returns a copy of the queued piece, or nil.
func (e *Engine) Next() *Piece { return e.next.Clone() }
