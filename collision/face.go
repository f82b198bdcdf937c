package collision

// faceSize is the packed, little-endian size of a Face record in bytes.
const faceSize = 16

// Face is one packed 16-byte collision face record: the triangle's welded
// vertex/normal indices, its three welded edge inward-normal indices, its
// precomputed "height" scalar, and its surface group.
type Face struct {
	Length                       float32
	PIndex                       uint16
	NIndex                       uint16
	AIndex, BIndex, CIndex       uint16
	GroupIndex                   uint16
}

// buildFace computes a face record for t, welding its position into
// vertexWelder and its face/edge normals into normalWelder.
//
// Edge inward-normals: a = unit(cross(u-w, n)) for edge w->u, b =
// unit(cross(v-u, n)) for edge u->v, c = unit(cross(w-v, n)) for edge v->w.
// length = dot(v-u, c). The sign and vertex order here are load-bearing:
// runtime decoding of the resulting file depends on this exact convention.
func buildFace(t Triangle, vertexWelder, normalWelder *welder) Face {
	a := Cross(t.U.Sub(t.W), t.N).Unit()
	b := Cross(t.V.Sub(t.U), t.N).Unit()
	c := Cross(t.W.Sub(t.V), t.N).Unit()

	return Face{
		Length:     Dot(t.V.Sub(t.U), c),
		PIndex:     uint16(vertexWelder.Add(t.U)),
		NIndex:     uint16(normalWelder.Add(t.N)),
		AIndex:     uint16(normalWelder.Add(a)),
		BIndex:     uint16(normalWelder.Add(b)),
		CIndex:     uint16(normalWelder.Add(c)),
		GroupIndex: uint16(t.GroupIndex),
	}
}

func (e *emitter) writeFace(f Face) error {
	if err := e.writeF32(f.Length); err != nil {
		return err
	}
	for _, idx := range [...]uint16{f.PIndex, f.NIndex, f.AIndex, f.BIndex, f.CIndex, f.GroupIndex} {
		if err := e.writeU16(idx); err != nil {
			return err
		}
	}
	return nil
}
