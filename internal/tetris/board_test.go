package tetris

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := range Width {
		if !skip[x] {
			b[y][x] = I
		}
	}
}

func TestCollidesOutOfBounds(t *testing.T) {
	var b Board
	dot := parseRows("#")

	tests := []struct {
		x, y int
		want bool
	}{
		{-1, 0, true},
		{Width, 0, true},
		{0, Height, true},
		{-1, -5, true},
		{Width, -1, true},
		{0, 0, false},
		{Width - 1, Height - 1, false},
		{0, -3, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("x=%d,y=%d", tt.x, tt.y), func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(&b, dot, tt.x, tt.y))
		})
	}
}

func TestCollidesWithLockedCells(t *testing.T) {
	var b Board
	b[5][5] = T

	assert.True(t, Collides(&b, parseRows("#"), 5, 5))
	assert.False(t, Collides(&b, parseRows("#"), 4, 5))
	// Empty matrix cells never collide.
	assert.False(t, Collides(&b, parseRows("#."), 4, 5))
}

func TestCollidesNegativeRowsSkipOccupancy(t *testing.T) {
	var b Board
	for x := range Width {
		b[0][x] = O
	}
	// Rows above the board are never checked against contents.
	assert.False(t, Collides(&b, parseRows("##", ".."), 3, -1))
	assert.True(t, Collides(&b, parseRows("..", "##"), 3, -1))
}

func TestClearLinesPartialRowNeverClears(t *testing.T) {
	var b Board
	fillRow(&b, Height-1, 4)

	cleared := b.ClearLines()

	assert.Empty(t, cleared)
	assert.Equal(t, I, b[Height-1][0])
	assert.Equal(t, None, b[Height-1][4])
}

func TestClearLinesFullRowAlwaysClears(t *testing.T) {
	var b Board
	fillRow(&b, Height-1)
	b[Height-2][2] = Z

	cleared := b.ClearLines()

	assert.Equal(t, []int{Height - 1}, cleared)
	// Row above shifted down.
	assert.Equal(t, Z, b[Height-1][2])
	assert.Equal(t, None, b[Height-1][0])
	assert.Equal(t, [Width]Kind{}, b[0])
}

func TestClearLinesAdjacentRows(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	fillRow(&b, 18)
	fillRow(&b, 17, 0)
	fillRow(&b, 16)
	b[15][9] = J

	cleared := b.ClearLines()

	assert.Equal(t, []int{19, 18, 16}, cleared)
	// Surviving partial row 17 ends at the bottom, J above it.
	assert.Equal(t, None, b[19][0])
	assert.Equal(t, I, b[19][1])
	assert.Equal(t, J, b[18][9])
	for y := range 18 {
		assert.False(t, b.RowFull(y))
	}
}

func TestBoardGetSetBounds(t *testing.T) {
	var b Board
	b.Set(-1, 0, T)
	b.Set(0, Height, T)
	b.Set(3, 4, T)

	assert.Equal(t, T, b.Get(3, 4))
	assert.Equal(t, None, b.Get(-1, 0))
	assert.Equal(t, None, b.Get(0, Height))

	b.Clear()
	assert.Equal(t, Board{}, b)
}

func TestBoardString(t *testing.T) {
	var b Board
	b[Height-1][0] = O
	s := b.String()
	assert.Len(t, s, Height*(Width+1))
	assert.Contains(t, s, "O.........\n")
}
