// Package objmesh ingests a Wavefront OBJ mesh into the ordered, validated
// triangle list the collision compiler core requires: degenerate triangles
// rejected, vertices carried as collision.Vector, and group_index assigned
// densely in first-seen usemtl order (an implicit "default group" at
// index 0 covers any faces before the first usemtl).
package objmesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aurelien-rainone/gobj"
	"github.com/aurelien-rainone/gogeo/f32/d3"
	"github.com/gayfrogog/kclcreate/collision"
)

// Mesh is the result of ingesting one OBJ source: the triangle list ready
// for collision.Pack, the group names in group_index order, and the
// bounding box of every vertex referenced by a kept triangle.
type Mesh struct {
	Triangles    []collision.Triangle
	GroupNames   []string
	bbMin, bbMax d3.Vec3
}

// AABB converts the accumulated d3.Vec3 bounds into the gobj.AABB reporting
// type a CLI summary line can print directly.
func (m *Mesh) AABB() gobj.AABB {
	bb := gobj.NewAABB()
	if m.bbMin == nil {
		return bb
	}
	bb.MinX, bb.MinY, bb.MinZ = float64(m.bbMin[0]), float64(m.bbMin[1]), float64(m.bbMin[2])
	bb.MaxX, bb.MaxY, bb.MaxZ = float64(m.bbMax[0]), float64(m.bbMax[1]), float64(m.bbMax[2])
	return bb
}

// Load reads and parses the OBJ file at path.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses an OBJ source from r. Only "v", "f" and "usemtl" keywords
// are recognized; everything else (comments, vt/vn, o/g, mtllib) is
// ignored, matching the Non-goals of this ingestion path (no UV/material
// import beyond group name assignment, no n-gon triangulation).
func Decode(r io.Reader) (*Mesh, error) {
	var vertices []collision.Vector

	groupNames := []string{"default group"}
	groupTable := map[string]int{"default group": 0}
	groupIndex := 0

	mesh := &Mesh{}

	scanner := bufio.NewScanner(r)
	lineno := 1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			lineno++
			continue
		}
		fields := strings.Fields(line)
		kw, args := fields[0], fields[1:]

		switch kw {
		case "usemtl":
			name := "default group"
			if len(args) > 0 {
				name = args[0]
			}
			idx, ok := groupTable[name]
			if !ok {
				idx = len(groupNames)
				groupTable[name] = idx
				groupNames = append(groupNames, name)
			}
			groupIndex = idx

		case "v":
			v, err := parseVertex(args)
			if err != nil {
				return nil, fmt.Errorf("objmesh: line %d: %s", lineno, err)
			}
			vertices = append(vertices, v)

		case "f":
			if len(args) < 3 {
				return nil, fmt.Errorf("objmesh: line %d: face needs at least 3 vertices", lineno)
			}
			u, v, w, err := faceTriangle(vertices, args)
			if err != nil {
				return nil, fmt.Errorf("objmesh: line %d: %s", lineno, err)
			}
			if collision.IsDegenerate(u, v, w) {
				lineno++
				continue
			}
			t := collision.NewTriangle(u, v, w, groupIndex)
			mesh.Triangles = append(mesh.Triangles, t)
			mesh.extendBounds(u, v, w)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	mesh.GroupNames = groupNames
	return mesh, nil
}

func parseVertex(args []string) (collision.Vector, error) {
	if len(args) < 3 {
		return collision.Vector{}, fmt.Errorf("vertex needs 3 components, got %d", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return collision.Vector{}, err
	}
	y, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return collision.Vector{}, err
	}
	z, err := strconv.ParseFloat(args[2], 32)
	if err != nil {
		return collision.Vector{}, err
	}
	return collision.Vector{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// faceTriangle resolves the first three vertex references of a face row
// (input is already triangulated; extra indices beyond the third are
// ignored, matching the Non-goal of no n-gon triangulation).
func faceTriangle(vertices []collision.Vector, args []string) (u, v, w collision.Vector, err error) {
	idx := make([]int, 3)
	for i := 0; i < 3; i++ {
		ref := strings.Split(args[i], "/")[0]
		n, perr := strconv.Atoi(ref)
		if perr != nil {
			return u, v, w, fmt.Errorf("invalid vertex index %q", args[i])
		}
		if n < 0 {
			n = len(vertices) + n + 1
		}
		if n < 1 || n > len(vertices) {
			return u, v, w, fmt.Errorf("vertex index %d out of range", n)
		}
		idx[i] = n - 1
	}
	return vertices[idx[0]], vertices[idx[1]], vertices[idx[2]], nil
}

// extendBounds folds verts into the mesh's running min/max, mirroring
// detour/navmeshcreate.go's use of d3.Vec3Min/Max to grow BV-tree item
// bounds one point at a time.
func (m *Mesh) extendBounds(verts ...collision.Vector) {
	for _, v := range verts {
		p := d3.NewVec3XYZ(v.X, v.Y, v.Z)
		if m.bbMin == nil {
			m.bbMin = d3.NewVec3XYZ(v.X, v.Y, v.Z)
			m.bbMax = d3.NewVec3XYZ(v.X, v.Y, v.Z)
			continue
		}
		d3.Vec3Min(m.bbMin, p)
		d3.Vec3Max(m.bbMax, p)
	}
}
