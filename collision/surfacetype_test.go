package collision

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gayfrogog/kclcreate/collision/bcsv"
)

func TestNewSurfaceTypeDefaults(t *testing.T) {
	s := NewSurfaceType()
	assert.Equal(t, uint8(0xFF), s.CameraID)
	assert.Equal(t, uint8(0), s.SoundCode)
	assert.Equal(t, uint8(0), s.FloorCode)
	assert.Equal(t, uint8(0), s.WallCode)
	assert.False(t, s.CameraThrough)
}

func TestPackSurfaceTypesRoundTrips(t *testing.T) {
	types := []SurfaceType{
		NewSurfaceType(),
		{CameraID: 0x12, SoundCode: 5, FloorCode: 10, WallCode: 3, CameraThrough: true},
	}

	var buf bytes.Buffer
	require.NoError(t, PackSurfaceTypes(&buf, types))
	assert.True(t, buf.Len() > 0)
	assert.Equal(t, 0, buf.Len()%32)

	rows, _, err := bcsv.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, bcsv.Row{uint32(0xFF), uint32(0), uint32(0), uint32(0), uint32(0)}, rows[0])
	assert.Equal(t, bcsv.Row{uint32(0x12), uint32(5), uint32(10), uint32(3), uint32(1)}, rows[1])
}
