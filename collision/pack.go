package collision

import (
	"io"
)

// vertexWeldThreshold and normalWeldThreshold match the original packer:
// vertices weld within 0.5 units, normals (which live on the unit sphere)
// weld within a much tighter 2^-22.
const (
	vertexWeldThreshold = 0.5
	normalWeldThreshold = 1.0 / float32(1<<22)
)

// Pack writes one complete KCL payload to sink, built from triangles using
// an octree whose leaves hold at most maxTriangles triangles unless doing
// so would shrink a cube below minWidth.
//
// Pack returns a *GeometryOverflow if triangles, the welded vertex table,
// or the welded normal table would exceed their fixed-width index limits.
// The face-count check runs before any byte is written; the vertex/normal
// checks run after welding but before the header is back-patched, so on
// error the sink may already contain partial data that the caller must
// discard.
func Pack(w io.WriteSeeker, triangles []Triangle, maxTriangles int, minWidth float32) error {
	if len(triangles) >= 0xFFFE {
		return newOverflow(TooManyFaces)
	}

	vertexBuckets := ceilDiv(len(triangles), 64)
	normalBuckets := ceilDiv(4*len(triangles), 64)
	vertexWelder := newWelder(vertexWeldThreshold, vertexBuckets)
	normalWelder := newWelder(normalWeldThreshold, normalBuckets)

	faces := make([]Face, len(triangles))
	for i, t := range triangles {
		faces[i] = buildFace(t, vertexWelder, normalWelder)
	}

	if len(vertexWelder.Vertices()) >= 0xFFFF {
		return newOverflow(TooManyVertices)
	}
	if len(normalWelder.Vertices()) >= 0xFFFF {
		return newOverflow(TooManyNormals)
	}

	e := newEmitter(w)

	if err := e.writeZeros(headerSize); err != nil {
		return err
	}

	var h header
	h.Unknown0 = headerUnknown0

	vertexOffset, err := e.tell()
	if err != nil {
		return err
	}
	h.VertexOffset = uint32(vertexOffset)
	for _, v := range vertexWelder.Vertices() {
		if err := e.writeVector(v); err != nil {
			return err
		}
	}

	normalOffset, err := e.tell()
	if err != nil {
		return err
	}
	h.NormalOffset = uint32(normalOffset)
	for _, v := range normalWelder.Vertices() {
		if err := e.writeVector(v); err != nil {
			return err
		}
	}

	faceRegionStart, err := e.tell()
	if err != nil {
		return err
	}
	// Pre-biased by -sizeof(Face) so that 1-based face indices elsewhere in
	// the format resolve correctly; see §9 "Offset bias".
	h.FaceOffset = uint32(faceRegionStart - faceSize)
	for _, f := range faces {
		if err := e.writeFace(f); err != nil {
			return err
		}
	}

	octreeOffset, err := e.tell()
	if err != nil {
		return err
	}
	h.OctreeOffset = uint32(octreeOffset)

	ot := buildOctree(triangles, maxTriangles, minWidth)
	if err := e.packOctree(ot); err != nil {
		return err
	}

	h.Base = ot.base
	h.XMask = inverseMask(ot.widthX)
	h.YMask = inverseMask(ot.widthY)
	h.ZMask = inverseMask(ot.widthZ)
	h.CoordinateShift = uint32(fLog2(ot.baseWidth))
	h.YShift = uint32(fLog2(float32(ot.nx)))
	h.ZShift = h.YShift + uint32(fLog2(float32(ot.ny)))

	if err := e.seek(0); err != nil {
		return err
	}
	return e.writeHeader(h)
}

// inverseMask returns ~(width-1) & 0xFFFFFFFF for a power-of-two width.
func inverseMask(width float32) uint32 {
	return ^(uint32(width) - 1)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
