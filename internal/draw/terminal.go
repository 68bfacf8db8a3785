package draw

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// ANSI control sequences.
const (
	seqClearScreen = "\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
)

// maxChunkSize keeps each write under a typical TCP segment so SSH sessions
// see steady small packets instead of one large burst per frame.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output and writes it in
// maxChunkSize pieces on Flush. Cursor positions are 1-based layout
// coordinates shifted by the writer's offset, which hosts use to center the
// layout in the terminal.
type ChunkWriter struct {
	w      io.Writer
	frame  []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w with the given offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		w:      w,
		frame:  make([]byte, 0, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the layout origin, e.g. after a terminal resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// Offset returns the current layout origin.
func (cw *ChunkWriter) Offset() (col, row int) {
	return cw.offCol, cw.offRow
}

// MoveCursor appends a cursor position sequence for layout cell (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.frame = append(cw.frame, "\033["...)
	cw.frame = strconv.AppendInt(cw.frame, int64(row+cw.offRow), 10)
	cw.frame = append(cw.frame, ';')
	cw.frame = strconv.AppendInt(cw.frame, int64(col+cw.offCol), 10)
	cw.frame = append(cw.frame, 'H')
}

// Write appends p to the frame. It never fails.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.frame = append(cw.frame, p...)
	return len(p), nil
}

// WriteString appends s to the frame.
func (cw *ChunkWriter) WriteString(s string) {
	cw.frame = append(cw.frame, s...)
}

// WriteAt moves to layout cell (col, row) and appends s.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.WriteString(s)
}

// Len returns the number of bytes waiting for Flush.
func (cw *ChunkWriter) Len() int {
	return len(cw.frame)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the pending frame in chunks and starts a new one. The frame is
// dropped on error; the next frame repaints everything anyway.
func (cw *ChunkWriter) Flush() error {
	data := cw.frame
	cw.frame = cw.frame[:0]
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.w.Write(data[:n]); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the process's stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) { _, _ = io.WriteString(w, seqClearScreen) }

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) { _, _ = io.WriteString(w, seqHideCursor) }

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) { _, _ = io.WriteString(w, seqShowCursor) }

// CenterOffset returns the 0-based offset that centers a contentW×contentH
// block inside a termW×termH terminal. Offsets never go negative.
func CenterOffset(termW, termH, contentW, contentH int) (col, row int) {
	col = max(0, (termW-contentW)/2)
	row = max(0, (termH-contentH)/2)
	return col, row
}
