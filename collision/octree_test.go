package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func singleTriangleAt(x float32) Triangle {
	return NewTriangle(
		Vector{x, 0, 0},
		Vector{x + 1, 0, 0},
		Vector{x, 1, 0},
		0,
	)
}

func allIndicesFor(n int) []uint32 {
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	return idx
}

func TestBuildOctreeSingleTriangle(t *testing.T) {
	tris := []Triangle{singleTriangleAt(0)}
	o := buildOctree(tris, 8, 1)

	assert.Equal(t, Vector{0, 0, 0}, o.base)
	assert.Equal(t, 1, o.nx*o.ny*o.nz)
	assert.True(t, o.top[0].isLeaf)
	assert.Equal(t, []uint32{0}, o.top[0].indices)
}

func TestOctreeBuildNodeSplitsWhenOverCapacity(t *testing.T) {
	var tris []Triangle
	for i := 0; i < 9; i++ {
		tris = append(tris, singleTriangleAt(float32(i)))
	}
	o := &octree{triangles: tris, maxTriangles: 4, minWidth: 0.5}

	node := o.buildNode(Vector{0, 0, 0}, 16, allIndicesFor(len(tris)))
	assert.False(t, node.isLeaf, "9 triangles over a cap of 4 should force a split")
	for _, c := range node.children {
		assert.NotNil(t, c)
	}
}

func TestOctreeBuildNodeRespectsMinWidthFloor(t *testing.T) {
	var tris []Triangle
	for i := 0; i < 9; i++ {
		tris = append(tris, singleTriangleAt(float32(i)*0.01))
	}
	o := &octree{triangles: tris, maxTriangles: 0, minWidth: 4}

	// width=4 => half=2 < minWidth=4, must stay a leaf even though
	// maxTriangles=0 would otherwise always force a split.
	node := o.buildNode(Vector{0, 0, 0}, 4, allIndicesFor(len(tris)))
	assert.True(t, node.isLeaf)
}

func TestPowerOfTwoWidth(t *testing.T) {
	assert.Equal(t, float32(8), powerOfTwoWidth(5, 1))
	assert.Equal(t, float32(4), powerOfTwoWidth(3, 4))
	assert.Equal(t, float32(1), powerOfTwoWidth(0.1, 1))
}

func TestOctreeNodeAtLeafIgnoresOctant(t *testing.T) {
	leaf := &octreeNode{isLeaf: true, indices: []uint32{5}}
	assert.Same(t, leaf, leaf.at(0, 0, 0))
	assert.Same(t, leaf, leaf.at(1, 1, 1))
}

func TestFlattenTopLevelReindexesLeaves(t *testing.T) {
	// a 1x1x1 grid whose single top node is a branch must flatten to a
	// 2x2x2 grid pointing straight at that branch's 8 children.
	child := func(i int) *octreeNode { return &octreeNode{isLeaf: true, indices: []uint32{uint32(i)}} }
	root := &octreeNode{}
	for i := 0; i < 8; i++ {
		root.children[i] = child(i)
	}

	o := &octree{nx: 1, ny: 1, nz: 1, baseWidth: 16, top: []*octreeNode{root}}
	o.flattenTopLevel()

	assert.Equal(t, 2, o.nx)
	assert.Equal(t, 2, o.ny)
	assert.Equal(t, 2, o.nz)
	assert.Equal(t, float32(8), o.baseWidth)
	for i := 0; i < 8; i++ {
		assert.Same(t, root.children[i], o.top[i])
	}
}
