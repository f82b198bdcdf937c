package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, -1, 2}

	assert.Equal(t, Vector{5, 1, 5}, a.Add(b))
	assert.Equal(t, Vector{-3, 3, 1}, a.Sub(b))
	assert.Equal(t, Vector{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Vector{2, -0.5, 1}, b.Div(2))
}

func TestDotCross(t *testing.T) {
	x := Vector{1, 0, 0}
	y := Vector{0, 1, 0}

	assert.Equal(t, float32(0), Dot(x, y))
	assert.Equal(t, Vector{0, 0, 1}, Cross(x, y))
}

func TestNormUnit(t *testing.T) {
	v := Vector{3, 4, 0}
	assert.Equal(t, float32(25), v.NormSquare())
	assert.Equal(t, float32(5), v.Norm())

	u := v.Unit()
	assert.InDelta(t, 1.0, float64(u.Norm()), 1e-5)
}
