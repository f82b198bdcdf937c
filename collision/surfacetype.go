package collision

import (
	"io"

	"github.com/gayfrogog/kclcreate/collision/bcsv"
)

// SurfaceType is one group's entry in the PA sidecar: the camera, sound,
// floor and wall attributes attached to every triangle in that group.
type SurfaceType struct {
	CameraID       uint8
	SoundCode      uint8
	FloorCode      uint8
	WallCode       uint8
	CameraThrough  bool
}

// NewSurfaceType returns the default SurfaceType: camera_id=0xFF, every
// other field zero/false.
func NewSurfaceType() SurfaceType {
	return SurfaceType{CameraID: 0xFF}
}

// SoundCodes, FloorCodes and WallCodes are the named enumerations the
// original editor offers for each code field, index-addressed by the
// corresponding SurfaceType field.
var (
	SoundCodes = []string{
		"null", "Soil", "Lawn", "Stone", "Marble", "Wood Thick", "Wood Thin",
		"Metal", "Snow", "Ice", "Shallow", "Beach", "unknown", "Carpet", "Mud",
		"Honey", "Metal Heavy", "Marble Snow", "Marble Soil", "Metal Soil", "Cloud",
		"Marble Beach", "Marble Sand",
	}

	FloorCodes = []string{
		"Normal", "Death", "Slip", "No Slip", "Damage Normal", "Ice",
		"Jump Low", "Jump Middle", "Jump High", "Slider", "Damage Fire",
		"Jump Normal", "Fire Dance", "Sand", "Glass", "Damage Electric",
		"Pull Back", "Sink", "Sink Poison", "Slide", "Water Bottom H",
		"Water Bottom M", "Water Bottom L", "Shallow", "Needle", "Sink Death",
		"Snow", "Rail Move", "Area Move", "Press", "No Stamp Sand",
		"Sink Death Mud", "Brake", "Glass Ice", "Jump Parasol", "unknown", "No Dig",
		"Lawn", "Cloud", "Press And No Slip", "Force Dash", "Dark Matter", "Dust",
		"Snow And No Slip",
	}

	WallCodes = []string{
		"Normal", "Not Wall Jump", "Not Wall Slip", "Not Grap",
		"Ghost Through", "Not Side Step", "Rebound", "Honey", "No Action",
	}
)

// surfaceTypeFields describes the five bit-packed UINT32 fields that share
// offset 0 of the surface-type table's single-word row.
var surfaceTypeFields = []bcsv.Field{
	bcsv.NewField("camera_id", 0, 0x000000FF, 0, bcsv.UINT32),
	bcsv.NewField("Sound_code", 0, 0x00007F00, 8, bcsv.UINT32),
	bcsv.NewField("Floor_code", 0, 0x001F8000, 15, bcsv.UINT32),
	bcsv.NewField("Wall_code", 0, 0x01E00000, 21, bcsv.UINT32),
	bcsv.NewField("Camera_through", 0, 0x02000000, 25, bcsv.UINT32),
}

// PackSurfaceTypes writes one complete PA payload: one BCSV row per group,
// in group_index order.
func PackSurfaceTypes(w io.Writer, types []SurfaceType) error {
	rows := make([]bcsv.Row, len(types))
	for i, t := range types {
		rows[i] = bcsv.Row{
			uint32(t.CameraID),
			uint32(t.SoundCode),
			uint32(t.FloorCode),
			uint32(t.WallCode),
			t.CameraThrough,
		}
	}
	return bcsv.Encode(w, surfaceTypeFields, rows)
}
