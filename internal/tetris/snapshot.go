package tetris

import "time"

// Snapshot is an immutable copy of everything a renderer needs for one frame.
// Mutating it never affects the engine.
type Snapshot struct {
	Board        Board
	Current      *Piece // nil before the first spawn
	Next         *Piece
	Stats        Stats
	State        RunState
	DropInterval time.Duration
}

// Snapshot copies the engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:        e.board,
		Current:      e.current.Clone(),
		Next:         e.next.Clone(),
		Stats:        e.stats,
		State:        e.state,
		DropInterval: e.dropInterval,
	}
}

// CellAt returns what a renderer should show at (x, y): the active piece
// if it covers the cell, otherwise the locked board cell.
func (s *Snapshot) CellAt(x, y int) Kind {
	if p := s.Current; p != nil {
		col, row := x-p.X, y-p.Y
		if row >= 0 && row < p.Matrix.Height() && col >= 0 && col < p.Matrix.Width() && p.Matrix[row][col] {
			return p.Kind
		}
	}
	return s.Board.Get(x, y)
}
