// Package input turns raw terminal bytes into logical game actions.
package input

import (
	"bufio"
	"sync/atomic"
)

// Action is a logical player intent, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionPause:
		return "pause"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSoftDrop:
		return "soft_drop"
	case ActionRotate:
		return "rotate"
	case ActionHardDrop:
		return "hard_drop"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	keymap  *Keymap
	closed  atomic.Bool
	pending []byte // partial escape sequence carried to the next read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// A nil keymap selects DefaultKeymap.
func StartStream(r *bufio.Reader, km *Keymap) *Stream {
	if km == nil {
		km = DefaultKeymap()
	}
	s := &Stream{
		ch:     make(chan byte, 128),
		keymap: km,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				s.closed.Store(true)
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has hit EOF or an error.
func (s *Stream) Closed() bool {
	return s.closed.Load()
}

// drain collects every byte currently buffered without blocking.
func (s *Stream) drain() []byte {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// ReadActions drains all available bytes (non-blocking) and returns the
// actions they map to, in arrival order. An escape sequence split across
// reads is held back until the rest arrives. Not safe for concurrent use.
func ReadActions(s *Stream) []Action {
	buf := append(s.pending, s.drain()...)
	s.pending = nil
	if n := incompleteEscape(buf); n > 0 && !s.Closed() {
		s.pending = append([]byte(nil), buf[len(buf)-n:]...)
		buf = buf[:len(buf)-n]
	}
	if len(buf) == 0 {
		return nil
	}
	return Parse(buf, s.keymap)
}

// incompleteEscape returns the length of a trailing ESC or ESC [ prefix.
func incompleteEscape(buf []byte) int {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		return 1
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return 2
	}
	return 0
}

// Parse maps raw bytes to actions. Arrow-key CSI sequences (ESC [ A-D) are
// recognized before single-byte lookups. Unmapped bytes are skipped.
func Parse(buf []byte, km *Keymap) []Action {
	var actions []Action
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if a, ok := arrowAction(buf[i+2]); ok {
				actions = append(actions, a)
				i += 2
				continue
			}
		}

		if a, ok := km.Lookup(b); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

func arrowAction(code byte) (Action, bool) {
	switch code {
	case 'A': // Up arrow
		return ActionRotate, true
	case 'B': // Down arrow
		return ActionSoftDrop, true
	case 'C': // Right arrow
		return ActionRight, true
	case 'D': // Left arrow
		return ActionLeft, true
	}
	return ActionNone, false
}
