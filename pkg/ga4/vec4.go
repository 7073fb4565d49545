// Package ga4 implements the even subalgebra of Cl(4,0,1), the geometric
// algebra of rigid motions in 4-dimensional Euclidean space. A Motor encodes
// a composed rotation+translation and is applied to points and directions
// with a sandwich product; see motor.go and transform.go.
package ga4

import "github.com/chewxy/math32"

// Vec4 is a 4D vector. Depending on context it is either a homogeneous point
// with implicit unit weight (TransformPoint) or a direction
// (TransformDirection).
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 creates a new Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Add returns the vector sum a + b.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference a - b.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product a * s.
func (a Vec4) Scale(s float32) Vec4 {
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Dot returns the dot product a · b.
func (a Vec4) Dot(b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the length (magnitude) of the vector.
func (a Vec4) Len() float32 {
	return math32.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec4) LenSq() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W
}

// Normalize returns the unit vector in the same direction.
func (a Vec4) Normalize() Vec4 {
	l := a.Len()
	if l == 0 {
		return Vec4{}
	}
	return Vec4{a.X / l, a.Y / l, a.Z / l, a.W / l}
}

// Negate returns the negated vector.
func (a Vec4) Negate() Vec4 {
	return Vec4{-a.X, -a.Y, -a.Z, -a.W}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec4) Lerp(b Vec4, t float32) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// Distance returns the distance between two points.
func (a Vec4) Distance(b Vec4) float32 {
	return a.Sub(b).Len()
}
