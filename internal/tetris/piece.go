// Package tetris implements the falling-block game engine: board, pieces,
// collision, rotation with wall kicks, line clears, scoring and gravity timing.
//
// The engine is synchronous and single-threaded. Hosts drive it with action
// calls and periodic AdvanceTime/Tick calls, and read it back via Snapshot.
package tetris

// Kind identifies a tetromino. None marks an empty board cell.
type Kind uint8

const (
	None Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every playable kind in catalog order.
var Kinds = [...]Kind{I, O, T, S, Z, J, L}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "."
	}
}

// Matrix is a shape bitmap indexed [row][col].
type Matrix [][]bool

// Width returns the column count of the matrix.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the row count of the matrix.
func (m Matrix) Height() int {
	return len(m)
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether both matrices have the same size and cells.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Rotate returns m turned 90° clockwise. An R×C matrix becomes C×R with
// out[j][R-1-i] = m[i][j]. It never re-centers; wall kicks handle fit.
func Rotate(m Matrix) Matrix {
	rows := m.Height()
	cols := m.Width()
	rotated := make(Matrix, cols)
	for j := range rotated {
		rotated[j] = make([]bool, rows)
	}

	for i := range rows {
		for j := range cols {
			rotated[j][rows-1-i] = m[i][j]
		}
	}

	return rotated
}

// Shape is an immutable catalog entry.
type Shape struct {
	Kind  Kind
	Color string // hex, e.g. "#00f0f0"
	cells Matrix
}

// Matrix returns a fresh copy of the shape's spawn orientation.
func (s Shape) Matrix() Matrix {
	return s.cells.Clone()
}

// Parsed once from the rows below; never handed out without Clone.
var catalog = [...]Shape{
	{Kind: I, Color: "#00f0f0", cells: parseRows("####")},
	{Kind: O, Color: "#f0f000", cells: parseRows("##", "##")},
	{Kind: T, Color: "#a000f0", cells: parseRows(".#.", "###")},
	{Kind: S, Color: "#00f000", cells: parseRows(".##", "##.")},
	{Kind: Z, Color: "#f00000", cells: parseRows("##.", ".##")},
	{Kind: J, Color: "#0000f0", cells: parseRows("#..", "###")},
	{Kind: L, Color: "#f0a000", cells: parseRows("..#", "###")},
}

// ShapeOf returns the catalog entry for k. ok is false for None or unknown kinds.
func ShapeOf(k Kind) (Shape, bool) {
	if k < I || k > L {
		return Shape{}, false
	}
	return catalog[k-I], true
}

// ColorOf returns the hex color of k, or "" for None.
func ColorOf(k Kind) string {
	s, ok := ShapeOf(k)
	if !ok {
		return ""
	}
	return s.Color
}

func parseRows(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j := 0; j < len(row); j++ {
			m[i][j] = row[j] == '#'
		}
	}
	return m
}

// Piece is a live instance of a shape on (or about to enter) the board.
// X and Y are the board coordinates of the matrix's top-left cell.
type Piece struct {
	Kind   Kind
	Matrix Matrix
	X, Y   int
}

// NewPiece creates a piece of kind k with its own copy of the catalog matrix.
func NewPiece(k Kind) *Piece {
	s, ok := ShapeOf(k)
	if !ok {
		return nil
	}
	return &Piece{Kind: k, Matrix: s.Matrix()}
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	return &Piece{Kind: p.Kind, Matrix: p.Matrix.Clone(), X: p.X, Y: p.Y}
}

// Color returns the piece's hex color.
func (p *Piece) Color() string {
	return ColorOf(p.Kind)
}

// Cells calls fn with the absolute board coordinates of every occupied cell.
func (p *Piece) Cells(fn func(x, y int)) {
	for row := range p.Matrix {
		for col, filled := range p.Matrix[row] {
			if filled {
				fn(p.X+col, p.Y+row)
			}
		}
	}
}
