package draw

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/termtris/internal/tetris"
)

// FlashColor is the highlight for cleared rows in pixel renderers.
var FlashColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// KindColor converts a piece's hex color for pixel renderers. Unknown kinds
// are mid grey.
func KindColor(k tetris.Kind) color.RGBA {
	c, err := colorful.Hex(tetris.ColorOf(k))
	if err != nil {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
