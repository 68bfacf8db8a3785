package draw

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/termtris/internal/tetris"
)

// Cell glyphs. Each board cell is two terminal columns wide.
const (
	BlockFull  = "██"
	BlockEmpty = " ."
)

// Palette holds pre-rendered cell strings and text styles for one renderer.
// Styles are bound to a lipgloss.Renderer so each SSH session gets its own
// color profile.
type Palette struct {
	cells [tetris.L + 1]string
	empty string
	flash string

	Border lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Title  lipgloss.Style
	Dim    lipgloss.Style
}

// NewPalette builds styles for r. A nil renderer uses lipgloss's default.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	p := &Palette{
		empty:  r.NewStyle().Foreground(lipgloss.Color("#3a3a5a")).Render(BlockEmpty),
		flash:  r.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render(BlockFull),
		Border: r.NewStyle().Foreground(lipgloss.Color("#6c6c9c")),
		Label:  r.NewStyle().Foreground(lipgloss.Color("#9a9ac0")).Bold(true),
		Value:  r.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		Title:  r.NewStyle().Foreground(lipgloss.Color("#f0a000")).Bold(true),
		Dim:    r.NewStyle().Foreground(lipgloss.Color("#808080")),
	}
	for _, k := range tetris.Kinds {
		p.cells[k] = r.NewStyle().Foreground(lipgloss.Color(tetris.ColorOf(k))).Render(BlockFull)
	}
	return p
}

// Cell returns the rendered glyph for a board cell.
func (p *Palette) Cell(k tetris.Kind) string {
	if k == tetris.None || int(k) >= len(p.cells) {
		return p.empty
	}
	return p.cells[k]
}

// Flash returns the glyph used for rows being celebrated.
func (p *Palette) Flash() string {
	return p.flash
}
