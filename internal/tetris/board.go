package tetris

import "strings"

// Board dimensions.
const (
	Width  = 10
	Height = 20
)

// Board is the playfield, indexed [row][col] with row 0 at the top.
// A cell is non-None iff a locked block occupies it.
type Board [Height][Width]Kind

// Get returns the cell at (x, y), or None when out of bounds.
func (b *Board) Get(x, y int) Kind {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return None
	}
	return b[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, k Kind) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b[y][x] = k
}

// Clear empties every cell.
func (b *Board) Clear() {
	*b = Board{}
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for _, cell := range b[y] {
		if cell == None {
			return false
		}
	}
	return true
}

// removeRow deletes row y, shifts every row above it down by one and
// inserts an empty row at the top.
func (b *Board) removeRow(y int) {
	for row := y; row > 0; row-- {
		b[row] = b[row-1]
	}
	b[0] = [Width]Kind{}
}

// ClearLines removes all full rows, scanning bottom-up and re-checking the
// same index after each removal. It returns the pre-clear indices of the
// removed rows, bottom first.
func (b *Board) ClearLines() []int {
	var cleared []int
	for row := Height - 1; row >= 0; row-- {
		if !b.RowFull(row) {
			continue
		}
		// Rows above have already shifted down once per earlier clear.
		cleared = append(cleared, row-len(cleared))
		b.removeRow(row)
		row++
	}
	return cleared
}

// Collides reports whether m placed with its top-left at (x, y) hits a wall,
// the floor or a locked cell. Cells above the top (row < 0) only count for
// the wall and floor checks.
func Collides(b *Board, m Matrix, x, y int) bool {
	for row := range m {
		for col, filled := range m[row] {
			if !filled {
				continue
			}

			bx := x + col
			by := y + row

			if bx < 0 || bx >= Width || by >= Height {
				return true
			}

			if by >= 0 && b[by][bx] != None {
				return true
			}
		}
	}

	return false
}

// String renders the board one row per line, '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range Height {
		for x := range Width {
			sb.WriteString(b[y][x].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
