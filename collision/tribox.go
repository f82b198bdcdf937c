package collision

// TriBoxOverlap tests whether triangle t overlaps the axis-aligned cube
// centered at center with the given half-width, using the separating axis
// theorem over the cube's 3 face normals, the triangle's face normal, and
// the 9 edge-cross axes.
//
// All comparisons are strict: a triangle exactly grazing a cube face counts
// as overlapping. This matches the original tribox_overlap and must not be
// "fixed" to use <=/>=.
func TriBoxOverlap(t Triangle, center Vector, halfWidth float32) bool {
	ux, uy, uz := t.U.X-center.X, t.U.Y-center.Y, t.U.Z-center.Z
	vx, vy, vz := t.V.X-center.X, t.V.Y-center.Y, t.V.Z-center.Z
	wx, wy, wz := t.W.X-center.X, t.W.Y-center.Y, t.W.Z-center.Z

	h := halfWidth

	// Separation along the cube's face normals (world axes).
	if (ux < -h && vx < -h && wx < -h) || (ux > h && vx > h && wx > h) ||
		(uy < -h && vy < -h && wy < -h) || (uy > h && vy > h && wy > h) ||
		(uz < -h && vz < -h && wz < -h) || (uz > h && vz > h && wz > h) {
		return false
	}

	// Separation along the triangle's face normal.
	n := t.N
	d := n.X*ux + n.Y*uy + n.Z*uz
	r := h * (fAbs(n.X) + fAbs(n.Y) + fAbs(n.Z))
	if d < -r || d > r {
		return false
	}

	// Separation along the 9 axes formed by crossing each triangle edge
	// with each world axis.
	if edgeTest(h, ux, uy, uz, vx, vy, vz, wx, wy, wz) ||
		edgeTest(h, vx, vy, vz, wx, wy, wz, ux, uy, uz) ||
		edgeTest(h, wx, wy, wz, ux, uy, uz, vx, vy, vz) {
		return false
	}

	return true
}

// edgeAxisTest checks separation along the axis (a1,a2) with projected
// coordinates (b1,b2) and (c1,c2) of the edge's two relevant vertices.
func edgeAxisTest(h, a1, a2, b1, b2, c1, c2 float32) bool {
	p := a1*b1 + a2*b2
	q := a1*c1 + a2*c2
	r := h * (fAbs(a1) + fAbs(a2))
	return (p < -r && q < -r) || (p > r && q > r)
}

// edgeTest runs the 3 edge-cross-axis tests for the edge v0->v1, using v2
// as the triangle's third vertex (v1 projects identically to v0 on each of
// these axes, so only v0 and v2 need testing).
func edgeTest(h, v0x, v0y, v0z, v1x, v1y, v1z, v2x, v2y, v2z float32) bool {
	ex := v1x - v0x
	ey := v1y - v0y
	ez := v1z - v0z

	return edgeAxisTest(h, ez, -ey, v0y, v0z, v2y, v2z) ||
		edgeAxisTest(h, -ez, ex, v0x, v0z, v2x, v2z) ||
		edgeAxisTest(h, ey, -ex, v0x, v0y, v2x, v2y)
}
