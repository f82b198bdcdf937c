// Package buildsettings holds the YAML-backed configuration for a
// kclcreate build: octree shape parameters and the per-group surface
// attributes, loaded the same way the teacher's sample settings are
// loaded from a config file by the CLI.
package buildsettings

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/gayfrogog/kclcreate/collision"
)

// Group is one named group's surface attributes, keyed by the group name
// assigned during OBJ ingestion (usemtl, or "default group").
type Group struct {
	Name          string `yaml:"name"`
	CameraID      uint8  `yaml:"camera_id"`
	SoundCode     uint8  `yaml:"sound_code"`
	FloorCode     uint8  `yaml:"floor_code"`
	WallCode      uint8  `yaml:"wall_code"`
	CameraThrough bool   `yaml:"camera_through"`
}

// SurfaceType converts a Group's attributes into a collision.SurfaceType.
func (g Group) SurfaceType() collision.SurfaceType {
	return collision.SurfaceType{
		CameraID:      g.CameraID,
		SoundCode:     g.SoundCode,
		FloorCode:     g.FloorCode,
		WallCode:      g.WallCode,
		CameraThrough: g.CameraThrough,
	}
}

// Settings is the full build configuration: octree shape parameters plus
// per-group surface overrides.
type Settings struct {
	// MaxTriangles bounds how many triangles an octree leaf may hold
	// before it is split, unless the split would shrink below MinWidth.
	MaxTriangles int `yaml:"max_triangles"`
	// MinWidth is the smallest allowed octree cube side length.
	MinWidth float32 `yaml:"min_width"`

	// Groups lists surface-attribute overrides by group name. A group
	// present in the mesh but absent here gets the NewSurfaceType default.
	Groups []Group `yaml:"groups"`
}

// NewSettings returns the default build settings.
func NewSettings() Settings {
	return Settings{
		MaxTriangles: 8,
		MinWidth:     8,
	}
}

// Load reads Settings from a YAML file at path, starting from defaults so
// that a config file only needs to mention the fields it overrides.
func Load(path string) (Settings, error) {
	s := NewSettings()
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return s, err
	}
	return s, nil
}

// SurfaceTypesFor resolves one collision.SurfaceType per name in
// groupNames, in order, falling back to the default SurfaceType for any
// name with no matching Group entry.
func (s Settings) SurfaceTypesFor(groupNames []string) []collision.SurfaceType {
	byName := make(map[string]Group, len(s.Groups))
	for _, g := range s.Groups {
		byName[g.Name] = g
	}

	types := make([]collision.SurfaceType, len(groupNames))
	for i, name := range groupNames {
		if g, ok := byName[name]; ok {
			types[i] = g.SurfaceType()
		} else {
			types[i] = collision.NewSurfaceType()
		}
	}
	return types
}
