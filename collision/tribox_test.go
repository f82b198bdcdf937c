package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriBoxOverlapCenteredTriangle(t *testing.T) {
	tr := NewTriangle(Vector{-1, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}, 0)
	assert.True(t, TriBoxOverlap(tr, Vector{0, 0, 0}, 2))
}

func TestTriBoxOverlapFarAway(t *testing.T) {
	tr := NewTriangle(Vector{-1, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}, 0)
	assert.False(t, TriBoxOverlap(tr, Vector{100, 100, 100}, 1))
}

func TestTriBoxOverlapGrazingFaceCountsAsOverlap(t *testing.T) {
	// triangle lies exactly on the cube's +X face: d == r along that axis,
	// which must count as overlap (strict inequality, not <=/>=).
	tr := NewTriangle(Vector{1, -1, -1}, Vector{1, 1, -1}, Vector{1, 0, 1}, 0)
	assert.True(t, TriBoxOverlap(tr, Vector{0, 0, 0}, 1))
}

func TestTriBoxOverlapSeparatedAlongEdgeCrossAxis(t *testing.T) {
	// a triangle in the z=0 plane beside the cube's (+x,+y) edge: the world
	// axes and the face normal all overlap the cube, only the edge-cross
	// axis (1,1,0) of edge u->v separates it.
	tr := NewTriangle(Vector{3, 0, 0}, Vector{0, 3, 0}, Vector{3, 3, 0}, 0)
	assert.False(t, TriBoxOverlap(tr, Vector{0, 0, 0}, 1))
}
