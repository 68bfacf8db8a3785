package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			shape, ok := ShapeOf(k)
			require.True(t, ok)

			m := shape.Matrix()
			r := m
			for range 4 {
				r = Rotate(r)
			}
			assert.True(t, m.Equal(r), "four rotations of %s changed the matrix", k)
		})
	}
}

func TestRotateDimensions(t *testing.T) {
	m := parseRows(".#.", "###")
	r := Rotate(m)

	require.Equal(t, 3, r.Height())
	require.Equal(t, 2, r.Width())
	// out[j][R-1-i] = m[i][j]
	assert.True(t, r.Equal(parseRows("#.", "##", "#.")))
}

func TestRotateIBar(t *testing.T) {
	r := Rotate(parseRows("####"))
	assert.True(t, r.Equal(parseRows("#", "#", "#", "#")))
}

func TestCatalogIsImmutable(t *testing.T) {
	shape, _ := ShapeOf(T)
	m := shape.Matrix()
	m[0][0] = true

	again, _ := ShapeOf(T)
	assert.False(t, again.Matrix()[0][0], "mutating a copy leaked into the catalog")
}

func TestNewPieceDeepCopies(t *testing.T) {
	a := NewPiece(L)
	b := NewPiece(L)
	a.Matrix = Rotate(a.Matrix)
	a.Matrix[0][0] = !a.Matrix[0][0]

	fresh, _ := ShapeOf(L)
	assert.True(t, b.Matrix.Equal(fresh.Matrix()))
}

func TestShapeOfRejectsNone(t *testing.T) {
	_, ok := ShapeOf(None)
	assert.False(t, ok)
	assert.Nil(t, NewPiece(None))
	assert.Equal(t, "", ColorOf(None))
}

func TestCatalogCellsAreTetrominoes(t *testing.T) {
	for _, k := range Kinds {
		p := NewPiece(k)
		count := 0
		p.Cells(func(x, y int) { count++ })
		assert.Equal(t, 4, count, "kind %s", k)
		assert.NotEmpty(t, p.Color())
	}
}

func TestPieceClone(t *testing.T) {
	p := NewPiece(S)
	p.X, p.Y = 4, 7

	c := p.Clone()
	c.Matrix[0][0] = !c.Matrix[0][0]
	c.X = 0

	assert.Equal(t, 4, p.X)
	assert.False(t, p.Matrix.Equal(c.Matrix))
	assert.Nil(t, (*Piece)(nil).Clone())
}
