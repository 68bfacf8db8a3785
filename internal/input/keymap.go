package input

import "github.com/kamstrup/intmap"

// Keymap maps single key bytes to actions.
type Keymap struct {
	keys *intmap.Map[byte, Action]
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{keys: intmap.New[byte, Action](32)}
}

// DefaultKeymap returns the standard bindings: WASD, vi-style hjkl, space
// to hard drop, enter to start, p to pause, q or Ctrl-C to quit.
// Arrow keys are handled by Parse directly.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	km.Bind(ActionLeft, 'a', 'A', 'h', 'H')
	km.Bind(ActionRight, 'd', 'D', 'l', 'L')
	km.Bind(ActionSoftDrop, 's', 'S', 'j', 'J')
	km.Bind(ActionRotate, 'w', 'W', 'k', 'K', 'x', 'X')
	km.Bind(ActionHardDrop, ' ')
	km.Bind(ActionStart, '\r', '\n')
	km.Bind(ActionPause, 'p', 'P')
	km.Bind(ActionQuit, 'q', 'Q', '\x03')
	return km
}

// Bind maps each key to a.
func (km *Keymap) Bind(a Action, keys ...byte) {
	for _, k := range keys {
		km.keys.Put(k, a)
	}
}

// Unbind removes a key binding.
func (km *Keymap) Unbind(key byte) {
	km.keys.Del(key)
}

// Lookup returns the action bound to key.
func (km *Keymap) Lookup(key byte) (Action, bool) {
	return km.keys.Get(key)
}

// Len returns the number of bound keys.
func (km *Keymap) Len() int {
	return km.keys.Len()
}
