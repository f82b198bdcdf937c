package collision

import "github.com/aurelien-rainone/math32"

// Vector is a 3-component 32 bits floating point vector. It is a value type
// and gets copied freely; it is also used to represent a point in space.
type Vector struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vector) Scale(s float32) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v divided by the scalar s.
func (v Vector) Div(s float32) Vector {
	return Vector{v.X / s, v.Y / s, v.Z / s}
}

// NormSquare returns the squared length of v.
func (v Vector) NormSquare() float32 {
	return math32.Sqr(v.X) + math32.Sqr(v.Y) + math32.Sqr(v.Z)
}

// Norm returns the length of v.
func (v Vector) Norm() float32 {
	return fSqrt(v.NormSquare())
}

// Unit returns v scaled to unit length.
//
// The caller must guarantee v is non-zero; degenerate triangles are
// rejected upstream during ingestion (see the objmesh package) and never
// reach this call.
func (v Vector) Unit() Vector {
	return v.Div(v.Norm())
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b.
func Cross(a, b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}
