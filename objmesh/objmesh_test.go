package objmesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOBJ = `
# a comment line
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
usemtl ice
v 2 2 2
v 3 2 2
v 2 3 2
f 4 5 6
usemtl ice
v 0 0 0
v 0 0 0
v 0 1 0
f 7 8 9
`

func TestDecodeGroupsAndTriangles(t *testing.T) {
	mesh, err := Decode(strings.NewReader(sampleOBJ))
	require.NoError(t, err)

	require.Equal(t, []string{"default group", "ice"}, mesh.GroupNames)

	// the first face belongs to the implicit default group, the second to
	// "ice"; the third face is degenerate (its three vertices are
	// collinear/coincident) and must be rejected.
	require.Len(t, mesh.Triangles, 2)
	assert.Equal(t, 0, mesh.Triangles[0].GroupIndex)
	assert.Equal(t, 1, mesh.Triangles[1].GroupIndex)
}

func TestDecodeComputesBounds(t *testing.T) {
	mesh, err := Decode(strings.NewReader(sampleOBJ))
	require.NoError(t, err)

	bb := mesh.AABB()
	assert.Equal(t, 0.0, bb.MinX)
	assert.Equal(t, 3.0, bb.MaxX)
}

func TestDecodeRejectsOutOfRangeFaceIndex(t *testing.T) {
	_, err := Decode(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.Error(t, err)
}
