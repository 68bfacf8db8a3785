// Package loop runs a game session: the Input → Update → Draw cycle that
// connects one terminal to one engine.
package loop

import (
	"bufio"
	"io"
)

// Run plays a session on r and w until the player quits or input ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	return NewSession(r, w, opts).Run()
}
