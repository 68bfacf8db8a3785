package draw

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/termtris/internal/tetris"
)

var cursorSeq = regexp.MustCompile(`\x1b\[(\d+);(\d+)H`)

func plainPalette() *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewPalette(r)
}

// screen replays cursor moves into a grid so tests can assert on positions.
func screen(t *testing.T, out string, cols, rows int) []string {
	t.Helper()
	grid := make([][]rune, rows+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols+1))
	}

	locs := cursorSeq.FindAllStringSubmatchIndex(out, -1)
	for i, loc := range locs {
		row := atoi(out[loc[2]:loc[3]])
		col := atoi(out[loc[4]:loc[5]])
		end := len(out)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		for _, r := range out[loc[1]:end] {
			if row <= rows && col <= cols {
				grid[row][col] = r
			}
			col++
		}
	}

	lines := make([]string, len(grid))
	for i, g := range grid {
		lines[i] = string(g)
	}
	return lines
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func render(t *testing.T, snap *tetris.Snapshot, flash []int) []string {
	t.Helper()
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	v := NewBoardView(plainPalette())
	v.Draw(cw, snap, flash)
	require.NoError(t, cw.Flush())

	cols, rows := v.Size()
	return screen(t, buf.String(), cols, rows)
}

func TestBoardViewDrawsPiecesAndStats(t *testing.T) {
	snap := &tetris.Snapshot{
		Current: &tetris.Piece{Kind: tetris.O, Matrix: tetris.NewPiece(tetris.O).Matrix, X: 4, Y: 0},
		Next:    tetris.NewPiece(tetris.I),
		Stats:   tetris.Stats{Score: 1200, Lines: 12, Level: 2},
		State:   tetris.Running,
	}
	snap.Board[tetris.Height-1][0] = tetris.Z

	lines := render(t, snap, nil)

	assert.Equal(t, '╔', []rune(lines[1])[1])
	// O at board (4,0) covers terminal columns 10-13 on rows 2-3.
	assert.Equal(t, "████", string([]rune(lines[2])[10:14]))
	assert.Equal(t, "████", string([]rune(lines[3])[10:14]))
	// Locked Z in the bottom-left cell.
	assert.Equal(t, "██", string([]rune(lines[tetris.Height+1])[2:4]))
	// I piece centered in the preview box.
	assert.Contains(t, lines[4], "████████")

	all := strings.Join(lines, "\n")
	assert.Contains(t, all, "SCORE")
	assert.Contains(t, all, "1200")
	assert.Contains(t, all, "LINES")
	assert.Contains(t, all, "12")
	assert.Contains(t, all, "LEVEL")
}

func TestBoardViewFlashRows(t *testing.T) {
	snap := &tetris.Snapshot{Stats: tetris.Stats{Level: 1}}

	lines := render(t, snap, []int{tetris.Height - 1})

	bottom := []rune(lines[tetris.Height+1])
	assert.Equal(t, strings.Repeat("██", tetris.Width), string(bottom[2:2+tetris.Width*2]))
	above := []rune(lines[tetris.Height])
	assert.Equal(t, strings.Repeat(" .", tetris.Width), string(above[2:2+tetris.Width*2]))
}

func TestBoardViewOverlay(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	v := NewBoardView(plainPalette())
	v.DrawOverlay(cw, "PAUSED", "press p")
	v.DrawFooter(cw, "q quit")
	require.NoError(t, cw.Flush())

	cols, rows := v.Size()
	lines := screen(t, buf.String(), cols, rows)
	all := strings.Join(lines, "\n")
	assert.Contains(t, all, "PAUSED")
	assert.Contains(t, all, "press p")
	assert.Contains(t, lines[LayoutRows+1], "q quit")
}

func TestChunkWriterOffsetAndChunking(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 5, 2)
	cw.WriteAt(1, 1, "x")
	cw.WriteString(strings.Repeat("y", 3*maxChunkSize))

	assert.Equal(t, len("\x1b[3;6Hx")+3*maxChunkSize, cw.Len())
	require.NoError(t, cw.Flush())
	assert.Equal(t, 0, cw.Len())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b[3;6Hx"))
	assert.Len(t, out, len("\x1b[3;6Hx")+3*maxChunkSize)

	col, row := cw.Offset()
	assert.Equal(t, 5, col)
	assert.Equal(t, 2, row)
}

type countingWriter struct {
	writes int
	err    error
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}

func TestChunkWriterFlush(t *testing.T) {
	w := &countingWriter{}
	cw := NewChunkWriter(w, 0, 0)
	cw.WriteString(strings.Repeat("z", 2*maxChunkSize+1))
	require.NoError(t, cw.Flush())
	assert.Equal(t, 3, w.writes)

	broken := &countingWriter{err: io.ErrClosedPipe}
	cw = NewChunkWriter(broken, 0, 0)
	ClearScreen(cw)
	err := cw.Flush()
	require.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Contains(t, err.Error(), "write frame")
	assert.Equal(t, 0, cw.Len())
}

func TestCenterOffset(t *testing.T) {
	col, row := CenterOffset(80, 24, 34, 23)
	assert.Equal(t, 23, col)
	assert.Equal(t, 0, row)

	col, row = CenterOffset(10, 10, 34, 23)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestPaletteCells(t *testing.T) {
	p := plainPalette()
	assert.Equal(t, BlockEmpty, p.Cell(tetris.None))
	assert.Equal(t, BlockFull, p.Cell(tetris.T))
	assert.Equal(t, BlockFull, p.Flash())
	assert.Equal(t, BlockEmpty, p.Cell(tetris.Kind(42)))
}

func TestKindColor(t *testing.T) {
	c := KindColor(tetris.I)
	assert.Equal(t, uint8(0x00), c.R)
	assert.Equal(t, uint8(0xf0), c.G)
	assert.Equal(t, uint8(0xf0), c.B)
	assert.Equal(t, uint8(0xff), c.A)

	grey := KindColor(tetris.None)
	assert.Equal(t, uint8(0x80), grey.R)
}
