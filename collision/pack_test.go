package collision

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSink is a minimal in-memory io.WriteSeeker, grown on demand, standing
// in for the *os.File the CLI passes in production.
type memSink struct {
	buf []byte
	pos int64
}

func (m *memSink) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *memSink) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		m.pos = offset
	case io.SeekCurrent:
		m.pos += offset
	case io.SeekEnd:
		m.pos = int64(len(m.buf)) + offset
	}
	return m.pos, nil
}

func singleTriangleMesh() []Triangle {
	return []Triangle{
		NewTriangle(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}, 0),
	}
}

func TestPackWritesHeaderAndRegions(t *testing.T) {
	m := &memSink{}
	err := Pack(m, singleTriangleMesh(), 8, 1)
	require.NoError(t, err)

	assert.True(t, len(m.buf) > headerSize)

	vertexOffset := binary.LittleEndian.Uint32(m.buf[0:4])
	normalOffset := binary.LittleEndian.Uint32(m.buf[4:8])
	faceOffset := binary.LittleEndian.Uint32(m.buf[8:12])
	octreeOffset := binary.LittleEndian.Uint32(m.buf[12:16])

	assert.Equal(t, uint32(headerSize), vertexOffset)
	assert.True(t, normalOffset > vertexOffset)
	assert.True(t, octreeOffset > 0)
	// faceOffset is pre-biased by -faceSize (see §9 "Offset bias").
	assert.True(t, int64(faceOffset) < int64(octreeOffset))
}

func TestPackRejectsTooManyFaces(t *testing.T) {
	tris := make([]Triangle, 0xFFFE)
	for i := range tris {
		x := float32(i)
		tris[i] = NewTriangle(Vector{x, 0, 0}, Vector{x + 1, 0, 0}, Vector{x, 1, 0}, 0)
	}

	m := &memSink{}
	err := Pack(m, tris, 8, 1)
	require.Error(t, err)

	overflow, ok := err.(*GeometryOverflow)
	require.True(t, ok)
	assert.Equal(t, TooManyFaces, overflow.Reason)

	// the face-count check runs before any byte is written.
	assert.Equal(t, 0, len(m.buf))
}

func TestPackWeldsNearbyFirstVertices(t *testing.T) {
	// only each face's U vertex is welded into the vertex table (the other
	// two are reconstructed at runtime from the edge normals; see
	// buildFace). Two faces whose U vertices lie within the weld
	// threshold (0.5) must share one vertex table entry.
	tris := []Triangle{
		NewTriangle(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}, 0),
		NewTriangle(Vector{0.2, 0, 0}, Vector{1, 1, 0}, Vector{0, 2, 0}, 0),
	}

	m := &memSink{}
	require.NoError(t, Pack(m, tris, 8, 1))

	vertexOffset := binary.LittleEndian.Uint32(m.buf[0:4])
	normalOffset := binary.LittleEndian.Uint32(m.buf[4:8])
	vertexBytes := normalOffset - vertexOffset
	assert.Equal(t, uint32(12), vertexBytes, "expected the two nearby U vertices to weld to one entry")
}
