package draw

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/termtris/internal/tetris"
)

// Layout in 1-based terminal cells, relative to the ChunkWriter offset.
// Each board cell is two columns wide; the well includes its borders.
const (
	cellCols    = 2
	wellInnerW  = tetris.Width * cellCols
	wellWidth   = wellInnerW + 2
	wellHeight  = tetris.Height + 2
	wellOrigin  = 2
	wellCenter  = wellHeight / 2
	panelCol    = wellWidth + 3
	panelWidth  = 4*cellCols + 2
	previewRows = 4
	statValueW  = panelWidth

	LayoutWidth = panelCol + panelWidth - 1
	LayoutRows  = wellHeight
)

// BoardView draws an engine snapshot: the well, the active piece, the next
// piece preview and the stats panel.
type BoardView struct {
	palette *Palette
}

// NewBoardView creates a view using the given palette.
func NewBoardView(p *Palette) *BoardView {
	return &BoardView{palette: p}
}

// Size returns the number of terminal columns and rows the view occupies,
// including the footer line.
func (v *BoardView) Size() (cols, rows int) {
	return LayoutWidth, LayoutRows + 1
}

// Draw renders snap. Rows listed in flash are drawn highlighted; they are
// pre-clear board indices taken from a lines-cleared event.
func (v *BoardView) Draw(cw *ChunkWriter, snap *tetris.Snapshot, flash []int) {
	v.drawWell(cw, snap, flash)
	v.drawPreview(cw, snap.Next)
	v.drawStats(cw, snap)
}

func (v *BoardView) drawWell(cw *ChunkWriter, snap *tetris.Snapshot, flash []int) {
	p := v.palette
	horiz := strings.Repeat("═", wellInnerW)
	cw.WriteAt(1, 1, p.Border.Render("╔"+horiz+"╗"))

	flashing := make(map[int]bool, len(flash))
	for _, y := range flash {
		flashing[y] = true
	}

	side := p.Border.Render("║")
	var row strings.Builder
	for y := range tetris.Height {
		row.Reset()
		row.WriteString(side)
		for x := range tetris.Width {
			if flashing[y] {
				row.WriteString(p.Flash())
				continue
			}
			row.WriteString(p.Cell(snap.CellAt(x, y)))
		}
		row.WriteString(side)
		cw.WriteAt(1, y+wellOrigin, row.String())
	}

	cw.WriteAt(1, wellHeight, p.Border.Render("╚"+horiz+"╝"))
}

func (v *BoardView) drawPreview(cw *ChunkWriter, next *tetris.Piece) {
	p := v.palette
	cw.WriteAt(panelCol, 1, p.Label.Render("NEXT"))

	horiz := strings.Repeat("─", panelWidth-2)
	cw.WriteAt(panelCol, 2, p.Border.Render("┌"+horiz+"┐"))

	var m tetris.Matrix
	var kind tetris.Kind
	if next != nil {
		m = next.Matrix
		kind = next.Kind
	}
	// Center the piece inside the 4x4 preview.
	offX := (4 - m.Width()) / 2
	offY := (previewRows - m.Height()) / 2

	side := p.Border.Render("│")
	var row strings.Builder
	for y := range previewRows {
		row.Reset()
		row.WriteString(side)
		for x := range 4 {
			my, mx := y-offY, x-offX
			if my >= 0 && my < m.Height() && mx >= 0 && mx < m.Width() && m[my][mx] {
				row.WriteString(p.Cell(kind))
			} else {
				row.WriteString("  ")
			}
		}
		row.WriteString(side)
		cw.WriteAt(panelCol, 3+y, row.String())
	}

	cw.WriteAt(panelCol, 3+previewRows, p.Border.Render("└"+horiz+"┘"))
}

func (v *BoardView) drawStats(cw *ChunkWriter, snap *tetris.Snapshot) {
	p := v.palette
	top := 4 + previewRows

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Stats.Score},
		{"LINES", snap.Stats.Lines},
		{"LEVEL", snap.Stats.Level},
	}
	for i, s := range stats {
		row := top + i*3
		cw.WriteAt(panelCol, row, p.Label.Render(s.label))
		cw.WriteAt(panelCol, row+1, p.Value.Render(fmt.Sprintf("%-*d", statValueW, s.value)))
	}
}

// DrawOverlay writes lines centered inside the well, vertically around its
// middle. The next Draw repaints the cells underneath.
func (v *BoardView) DrawOverlay(cw *ChunkWriter, title string, lines ...string) {
	p := v.palette
	start := wellCenter - (len(lines)+2)/2

	blank := strings.Repeat(" ", wellInnerW)
	cw.WriteAt(wellOrigin, start, blank)
	cw.WriteAt(wellOrigin, start+1, p.Title.Render(lipgloss.PlaceHorizontal(wellInnerW, lipgloss.Center, title)))
	for i, line := range lines {
		cw.WriteAt(wellOrigin, start+2+i, p.Value.Render(lipgloss.PlaceHorizontal(wellInnerW, lipgloss.Center, line)))
	}
	cw.WriteAt(wellOrigin, start+2+len(lines), blank)
}

// DrawFooter writes a hint line below the layout, padded or cut to the
// layout width.
func (v *BoardView) DrawFooter(cw *ChunkWriter, text string) {
	if r := []rune(text); len(r) > LayoutWidth {
		text = string(r[:LayoutWidth])
	}
	cw.WriteAt(1, LayoutRows+1, v.palette.Dim.Render(fmt.Sprintf("%-*s", LayoutWidth, text)))
}
