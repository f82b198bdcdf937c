package collision

import (
	assert "github.com/aurelien-rainone/assertgo"
)

// octreeNode is a tagged variant: a branch has exactly 8 children, a leaf
// carries an ordered (possibly empty) tuple of triangle indices. Nodes are
// built once by buildOctree and never mutated afterwards.
type octreeNode struct {
	isLeaf   bool
	children [8]*octreeNode // only set when !isLeaf
	indices  []uint32       // only set when isLeaf; order is significant
}

// at indexes a node by octant key (i,j,k) in {0,1}^3, x fastest. Leaves
// return themselves regardless of key, so that re-indexing a leaf under a
// finer grid during top-level flattening is a no-op.
func (n *octreeNode) at(i, j, k int) *octreeNode {
	if n.isLeaf {
		return n
	}
	return n.children[i+2*(j+2*k)]
}

// octree is the root container: a grid of nx*ny*nz top-level nodes (not
// necessarily 8, unlike every other branch level), plus the bounding box
// the grid covers.
type octree struct {
	triangles                []Triangle
	maxTriangles             int
	minWidth                 float32
	base                     Vector
	widthX, widthY, widthZ   float32
	baseWidth                float32
	nx, ny, nz               int
	top                      []*octreeNode // length nx*ny*nz, z-major, y-mid, x-fastest
}

// at indexes the top-level grid by (i,j,k) in [0,nx)x[0,ny)x[0,nz).
func (o *octree) at(i, j, k int) *octreeNode {
	return o.top[i+o.nx*(j+o.ny*k)]
}

// buildOctree constructs the adaptive octree over triangles: each leaf cube
// holds at most maxTriangles triangles, unless doing so would shrink the
// cube below minWidth. minWidth must be a positive integer; the resulting
// base_width, widths and top-level grid dimensions are all exact powers of
// two.
func buildOctree(triangles []Triangle, maxTriangles int, minWidth float32) *octree {
	minX, minY, minZ := triangles[0].U.X, triangles[0].U.Y, triangles[0].U.Z
	maxX, maxY, maxZ := minX, minY, minZ

	extend := func(v Vector) {
		minX, maxX = fMin(minX, v.X), fMax(maxX, v.X)
		minY, maxY = fMin(minY, v.Y), fMax(maxY, v.Y)
		minZ, maxZ = fMin(minZ, v.Z), fMax(maxZ, v.Z)
	}
	for _, t := range triangles {
		extend(t.U)
		extend(t.V)
		extend(t.W)
	}

	o := &octree{
		triangles:    triangles,
		maxTriangles: maxTriangles,
		minWidth:     minWidth,
		base:         Vector{minX, minY, minZ},
	}

	o.widthX = powerOfTwoWidth(maxX-minX, minWidth)
	o.widthY = powerOfTwoWidth(maxY-minY, minWidth)
	o.widthZ = powerOfTwoWidth(maxZ-minZ, minWidth)

	o.baseWidth = fMin(fMin(o.widthX, o.widthY), o.widthZ)
	o.nx = int(o.widthX / o.baseWidth)
	o.ny = int(o.widthY / o.baseWidth)
	o.nz = int(o.widthZ / o.baseWidth)

	allIndices := make([]uint32, len(triangles))
	for i := range allIndices {
		allIndices[i] = uint32(i)
	}

	o.top = make([]*octreeNode, o.nx*o.ny*o.nz)
	for k := 0; k < o.nz; k++ {
		for j := 0; j < o.ny; j++ {
			for i := 0; i < o.nx; i++ {
				corner := o.base.Add(Vector{float32(i), float32(j), float32(k)}.Scale(o.baseWidth))
				o.top[i+o.nx*(j+o.ny*k)] = o.buildNode(corner, o.baseWidth, allIndices)
			}
		}
	}

	o.flattenTopLevel()
	return o
}

// powerOfTwoWidth returns the smallest power of two that is >= max(extent,
// minWidth).
func powerOfTwoWidth(extent, minWidth float32) float32 {
	v := fMax(extent, minWidth)
	return fPow(2, fCeil(fLog2(v)))
}

// buildNode recursively subdivides candidates (a parent's surviving
// triangle index set) into the node covering [corner, corner+width)^3.
func (o *octree) buildNode(corner Vector, width float32, candidates []uint32) *octreeNode {
	half := width / 2
	center := corner.Add(Vector{half, half, half})

	kept := make([]uint32, 0, len(candidates))
	for _, i := range candidates {
		if TriBoxOverlap(o.triangles[i], center, half) {
			kept = append(kept, i)
		}
	}

	if len(kept) <= o.maxTriangles || half < o.minWidth {
		for _, i := range kept {
			assert.True(TriBoxOverlap(o.triangles[i], center, half),
				"leaf triangle %d must actually overlap its cube", i)
		}
		return &octreeNode{isLeaf: true, indices: kept}
	}

	node := &octreeNode{isLeaf: false}
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				childCorner := corner.Add(Vector{float32(i), float32(j), float32(k)}.Scale(half))
				node.children[i+2*(j+2*k)] = o.buildNode(childCorner, half, kept)
			}
		}
	}
	for _, c := range node.children {
		assert.True(c != nil, "every branch node must have exactly 8 children")
	}
	return node
}

// flattenTopLevel replaces the top-level grid with a finer grid whenever
// most of the current grid's cells are branches: while branch_ratio >=
// 0.875 the grid doubles in each dimension (taking each node's child at the
// implied octant; leaves index into themselves) and base_width halves.
// This concentrates the header's top-level index table only when most
// top-level cells are non-trivial.
func (o *octree) flattenTopLevel() {
	for o.branchRatio() >= 0.875 {
		nx2, ny2, nz2 := o.nx*2, o.ny*2, o.nz*2
		finer := make([]*octreeNode, nx2*ny2*nz2)
		for k := 0; k < nz2; k++ {
			for j := 0; j < ny2; j++ {
				for i := 0; i < nx2; i++ {
					parent := o.at(i/2, j/2, k/2)
					finer[i+nx2*(j+ny2*k)] = parent.at(i%2, j%2, k%2)
				}
			}
		}
		o.top = finer
		o.baseWidth /= 2
		o.nx, o.ny, o.nz = nx2, ny2, nz2
	}
}

func (o *octree) branchRatio() float32 {
	branches := 0
	for _, n := range o.top {
		if !n.isLeaf {
			branches++
		}
	}
	return float32(branches) / float32(o.nx*o.ny*o.nz)
}
