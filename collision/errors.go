package collision

import "fmt"

// OverflowReason identifies which of the three fatal geometry limits was
// exceeded while packing a KCL payload.
type OverflowReason int

// The three overflow reasons a Pack call can fail with.
const (
	// TooManyFaces means len(triangles) >= 0xFFFE.
	TooManyFaces OverflowReason = iota
	// TooManyVertices means the welder produced >= 0xFFFF distinct vertices.
	TooManyVertices
	// TooManyNormals means the welder produced >= 0xFFFF distinct normals.
	TooManyNormals
)

func (r OverflowReason) String() string {
	switch r {
	case TooManyFaces:
		return "too many faces"
	case TooManyVertices:
		return "too many vertices"
	case TooManyNormals:
		return "too many normals"
	default:
		return fmt.Sprintf("unknown overflow reason (%d)", int(r))
	}
}

// GeometryOverflow is returned by Pack when the input mesh exceeds one of
// the fixed-width index limits of the KCL format. It is fatal: no retry or
// partial recovery is possible, and the caller must discard any partial
// output already written to the sink.
type GeometryOverflow struct {
	Reason OverflowReason
}

func (e *GeometryOverflow) Error() string {
	return "geometry overflow: " + e.Reason.String()
}

// newOverflow returns a *GeometryOverflow for the given reason, as an error.
func newOverflow(reason OverflowReason) error {
	return &GeometryOverflow{Reason: reason}
}
