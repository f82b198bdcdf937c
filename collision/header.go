package collision

// headerSize is the number of bytes Pack reserves for the KCL header at
// offset 0 (§6.2). writeHeader fills the first 56 of them; the last 4 stay
// zero.
const headerSize = 60

// header is the fixed-layout KCL file header. It is written as zero bytes
// at the start of Pack and back-patched once every offset, mask and shift
// is known.
type header struct {
	VertexOffset     uint32
	NormalOffset     uint32
	FaceOffset       uint32
	OctreeOffset     uint32
	Unknown0         float32
	Base             Vector
	XMask, YMask     uint32
	ZMask            uint32
	CoordinateShift  uint32
	YShift           uint32
	ZShift           uint32
}

// headerUnknown0 is the undocumented constant the original always writes
// into the header's Unknown0 field. Preserve the literal verbatim.
const headerUnknown0 = 40.0

func (e *emitter) writeHeader(h header) error {
	if err := e.writeU32(h.VertexOffset); err != nil {
		return err
	}
	if err := e.writeU32(h.NormalOffset); err != nil {
		return err
	}
	if err := e.writeU32(h.FaceOffset); err != nil {
		return err
	}
	if err := e.writeU32(h.OctreeOffset); err != nil {
		return err
	}
	if err := e.writeF32(h.Unknown0); err != nil {
		return err
	}
	if err := e.writeVector(h.Base); err != nil {
		return err
	}
	for _, m := range [...]uint32{h.XMask, h.YMask, h.ZMask, h.CoordinateShift, h.YShift, h.ZShift} {
		if err := e.writeU32(m); err != nil {
			return err
		}
	}
	return nil
}
