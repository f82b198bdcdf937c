package collision

import (
	"encoding/binary"
	"io"
	"math"
)

func float32bits(v float32) uint32 {
	return math.Float32bits(v)
}

// sink is the seekable little-endian byte destination the core writes into.
// It is satisfied by any io.WriteSeeker (an *os.File, a *bytes.Reader backed
// buffer via aligned/bufio wrappers, etc).
type sink interface {
	io.Writer
	io.Seeker
}

// emitter wraps a sink with the small set of little-endian primitive writes
// the packers need, plus a byte-offset cursor. It mirrors the role
// detour.BufWriter plays for the teacher's tile packer: a thin, explicit
// write cursor rather than a buffered encoder.
type emitter struct {
	w sink
}

func newEmitter(w sink) *emitter {
	return &emitter{w: w}
}

// tell returns the current byte offset in the sink.
func (e *emitter) tell() (int64, error) {
	return e.w.Seek(0, io.SeekCurrent)
}

// seek moves the cursor to an absolute byte offset.
func (e *emitter) seek(off int64) error {
	_, err := e.w.Seek(off, io.SeekStart)
	return err
}

func (e *emitter) writeBytes(p []byte) error {
	_, err := e.w.Write(p)
	return err
}

func (e *emitter) writeU8(v uint8) error {
	return e.writeBytes([]byte{v})
}

func (e *emitter) writeU16(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return e.writeBytes(buf[:])
}

func (e *emitter) writeU32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return e.writeBytes(buf[:])
}

func (e *emitter) writeF32(v float32) error {
	return e.writeU32(float32bits(v))
}

func (e *emitter) writeVector(v Vector) error {
	if err := e.writeF32(v.X); err != nil {
		return err
	}
	if err := e.writeF32(v.Y); err != nil {
		return err
	}
	return e.writeF32(v.Z)
}

func (e *emitter) writeZeros(n int) error {
	if n <= 0 {
		return nil
	}
	return e.writeBytes(make([]byte, n))
}
