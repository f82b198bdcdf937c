package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTriangleNormal(t *testing.T) {
	u := Vector{0, 0, 0}
	v := Vector{1, 0, 0}
	w := Vector{0, 1, 0}

	tr := NewTriangle(u, v, w, 3)
	assert.Equal(t, Vector{0, 0, 1}, tr.N)
	assert.Equal(t, 3, tr.GroupIndex)
}

func TestIsDegenerate(t *testing.T) {
	u := Vector{0, 0, 0}
	v := Vector{1, 0, 0}
	w := Vector{0, 1, 0}
	assert.False(t, IsDegenerate(u, v, w))

	// collinear: zero-area triangle
	assert.True(t, IsDegenerate(u, v, Vector{2, 0, 0}))

	// nearly collinear third vertex still yields a degenerate triangle
	tiny := Vector{0, 0.001, 0}
	assert.True(t, IsDegenerate(u, v, tiny))
}
