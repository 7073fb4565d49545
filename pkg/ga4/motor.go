package ga4

import "github.com/chewxy/math32"

// Motor is an even-graded element of Cl(4,0,1): a rigid motion (composed
// rotation and translation) of 4D Euclidean space. The basis is
// {e0,e1,e2,e3,e4} with e0² = 0 and e1²..e4² = 1; e0 pairs with the
// Euclidean axes to carry translation.
//
// A motor representing a valid rigid motion has unit magnitude. Composition
// of unit motors drifts slowly under floating point; callers should
// renormalize periodically (the game loop does this on the fixed timestep).
type Motor struct {
	S float32 // scalar

	// grade 2
	E01, E02, E03, E04 float32 // translation-bearing
	E12, E13, E14      float32
	E23, E24, E34      float32

	// grade 4
	E0123, E0124, E0134, E0234 float32
	E1234                      float32
}

// Identity returns the identity motor (no motion).
func Identity() Motor {
	return Motor{S: 1}
}

// Mul returns the geometric product a * b: the motor that performs b's
// motion followed by a's. The product is associative and has Identity as a
// two-sided unit, but is not commutative.
//
// Each output component is a fixed bilinear combination of the inputs,
// determined by the structure constants of the signature (e0² = 0, ei² = 1,
// anticommuting). The table was derived once from those constants and is
// locked by the fixtures in motor_test.go and transform_test.go; do not
// edit individual terms.
func (a Motor) Mul(b Motor) Motor {
	return Motor{
		S: a.S*b.S - a.E12*b.E12 - a.E13*b.E13 - a.E14*b.E14 -
			a.E23*b.E23 - a.E24*b.E24 - a.E34*b.E34 + a.E1234*b.E1234,

		E01: a.S*b.E01 + b.S*a.E01 - a.E02*b.E12 + b.E02*a.E12 -
			a.E03*b.E13 + b.E03*a.E13 - a.E04*b.E14 + b.E04*a.E14 -
			a.E23*b.E0123 - b.E23*a.E0123 - a.E24*b.E0124 - b.E24*a.E0124 -
			a.E34*b.E0134 - b.E34*a.E0134 + a.E0234*b.E1234 - b.E0234*a.E1234,

		E02: a.S*b.E02 + b.S*a.E02 + a.E01*b.E12 - b.E01*a.E12 -
			a.E03*b.E23 + b.E03*a.E23 - a.E04*b.E24 + b.E04*a.E24 +
			a.E13*b.E0123 + b.E13*a.E0123 + a.E14*b.E0124 + b.E14*a.E0124 -
			a.E34*b.E0234 - b.E34*a.E0234 - a.E0134*b.E1234 + b.E0134*a.E1234,

		E03: a.S*b.E03 + b.S*a.E03 + a.E01*b.E13 - b.E01*a.E13 +
			a.E02*b.E23 - b.E02*a.E23 - a.E04*b.E34 + b.E04*a.E34 -
			a.E12*b.E0123 - b.E12*a.E0123 + a.E14*b.E0134 + b.E14*a.E0134 +
			a.E24*b.E0234 + b.E24*a.E0234 + a.E0124*b.E1234 - b.E0124*a.E1234,

		E04: a.S*b.E04 + b.S*a.E04 + a.E01*b.E14 - b.E01*a.E14 +
			a.E02*b.E24 - b.E02*a.E24 + a.E03*b.E34 - b.E03*a.E34 -
			a.E12*b.E0124 - b.E12*a.E0124 - a.E13*b.E0134 - b.E13*a.E0134 -
			a.E23*b.E0234 - b.E23*a.E0234 - a.E0123*b.E1234 + b.E0123*a.E1234,

		E12: a.S*b.E12 + b.S*a.E12 - a.E13*b.E23 + b.E13*a.E23 -
			a.E14*b.E24 + b.E14*a.E24 - a.E34*b.E1234 - b.E34*a.E1234,

		E13: a.S*b.E13 + b.S*a.E13 + a.E12*b.E23 - b.E12*a.E23 -
			a.E14*b.E34 + b.E14*a.E34 + a.E24*b.E1234 + b.E24*a.E1234,

		E14: a.S*b.E14 + b.S*a.E14 + a.E12*b.E24 - b.E12*a.E24 +
			a.E13*b.E34 - b.E13*a.E34 - a.E23*b.E1234 - b.E23*a.E1234,

		E23: a.S*b.E23 + b.S*a.E23 - a.E12*b.E13 + b.E12*a.E13 -
			a.E14*b.E1234 - b.E14*a.E1234 - a.E24*b.E34 + b.E24*a.E34,

		E24: a.S*b.E24 + b.S*a.E24 - a.E12*b.E14 + b.E12*a.E14 +
			a.E13*b.E1234 + b.E13*a.E1234 + a.E23*b.E34 - b.E23*a.E34,

		E34: a.S*b.E34 + b.S*a.E34 - a.E12*b.E1234 - b.E12*a.E1234 -
			a.E13*b.E14 + b.E13*a.E14 - a.E23*b.E24 + b.E23*a.E24,

		E0123: a.S*b.E0123 + b.S*a.E0123 + a.E01*b.E23 + b.E01*a.E23 -
			a.E02*b.E13 - b.E02*a.E13 + a.E03*b.E12 + b.E03*a.E12 -
			a.E04*b.E1234 + b.E04*a.E1234 + a.E14*b.E0234 - b.E14*a.E0234 -
			a.E24*b.E0134 + b.E24*a.E0134 + a.E34*b.E0124 - b.E34*a.E0124,

		E0124: a.S*b.E0124 + b.S*a.E0124 + a.E01*b.E24 + b.E01*a.E24 -
			a.E02*b.E14 - b.E02*a.E14 + a.E03*b.E1234 - b.E03*a.E1234 +
			a.E04*b.E12 + b.E04*a.E12 - a.E13*b.E0234 + b.E13*a.E0234 +
			a.E23*b.E0134 - b.E23*a.E0134 - a.E34*b.E0123 + b.E34*a.E0123,

		E0134: a.S*b.E0134 + b.S*a.E0134 + a.E01*b.E34 + b.E01*a.E34 -
			a.E02*b.E1234 + b.E02*a.E1234 - a.E03*b.E14 - b.E03*a.E14 +
			a.E04*b.E13 + b.E04*a.E13 + a.E12*b.E0234 - b.E12*a.E0234 -
			a.E23*b.E0124 + b.E23*a.E0124 + a.E24*b.E0123 - b.E24*a.E0123,

		E0234: a.S*b.E0234 + b.S*a.E0234 + a.E01*b.E1234 - b.E01*a.E1234 +
			a.E02*b.E34 + b.E02*a.E34 - a.E03*b.E24 - b.E03*a.E24 +
			a.E04*b.E23 + b.E04*a.E23 - a.E12*b.E0134 + b.E12*a.E0134 +
			a.E13*b.E0124 - b.E13*a.E0124 - a.E14*b.E0123 + b.E14*a.E0123,

		E1234: a.S*b.E1234 + b.S*a.E1234 + a.E12*b.E34 + b.E12*a.E34 -
			a.E13*b.E24 - b.E13*a.E24 + a.E14*b.E23 + b.E14*a.E23,
	}
}

// Reverse returns the reversion of a: the grade-2 components are negated,
// the scalar and grade-4 components are unchanged. For a unit motor the
// reverse is the inverse motion.
func (a Motor) Reverse() Motor {
	return Motor{
		S:     a.S,
		E01:   -a.E01,
		E02:   -a.E02,
		E03:   -a.E03,
		E04:   -a.E04,
		E12:   -a.E12,
		E13:   -a.E13,
		E14:   -a.E14,
		E23:   -a.E23,
		E24:   -a.E24,
		E34:   -a.E34,
		E0123: a.E0123,
		E0124: a.E0124,
		E0134: a.E0134,
		E0234: a.E0234,
		E1234: a.E1234,
	}
}

// MagnitudeSquared returns the scalar part of reverse(a) * a.
func (a Motor) MagnitudeSquared() float32 {
	return a.Reverse().Mul(a).S
}

// Magnitude returns the magnitude of the motor.
func (a Motor) Magnitude() float32 {
	return math32.Sqrt(a.MagnitudeSquared())
}

// Normalized returns the motor scaled to unit magnitude.
//
// Normalizing a zero-magnitude motor is a precondition violation: there is
// no motion it could represent, and quietly returning NaNs would corrupt
// every transform downstream. It panics instead.
func (a Motor) Normalized() Motor {
	mag := a.Magnitude()
	if mag == 0 {
		panic("ga4: cannot normalize a zero-magnitude motor")
	}
	inv := 1 / mag
	return Motor{
		S:     a.S * inv,
		E01:   a.E01 * inv,
		E02:   a.E02 * inv,
		E03:   a.E03 * inv,
		E04:   a.E04 * inv,
		E12:   a.E12 * inv,
		E13:   a.E13 * inv,
		E14:   a.E14 * inv,
		E23:   a.E23 * inv,
		E24:   a.E24 * inv,
		E34:   a.E34 * inv,
		E0123: a.E0123 * inv,
		E0124: a.E0124 * inv,
		E0134: a.E0134 * inv,
		E0234: a.E0234 * inv,
		E1234: a.E1234 * inv,
	}
}

// Translation returns the motor translating by offset.
func Translation(offset Vec4) Motor {
	return Motor{
		S:   1,
		E01: offset.W / 2,
		E02: -offset.Z / 2,
		E03: offset.Y / 2,
		E04: -offset.X / 2,
	}
}

// Plane identifies one of the six coordinate bivector planes.
type Plane int

// The translation constructor fixes the Cartesian correspondence
// x↔e4, y↔e3, z↔e2, w↔e1, which maps each bivector plane to the Cartesian
// plane noted beside it.
const (
	PlaneE12 Plane = iota // Cartesian zw
	PlaneE13              // Cartesian yw
	PlaneE14              // Cartesian xw
	PlaneE23              // Cartesian yz
	PlaneE24              // Cartesian xz
	PlaneE34              // Cartesian xy
)

// Rotation returns the motor rotating by angle in the given coordinate
// plane, using the half-angle rotor convention: applying the motor with the
// sandwich transform rotates by the full angle.
func Rotation(plane Plane, angle float32) Motor {
	m := Motor{S: math32.Cos(angle / 2)}
	s := math32.Sin(angle / 2)
	switch plane {
	case PlaneE12:
		m.E12 = s
	case PlaneE13:
		m.E13 = s
	case PlaneE14:
		m.E14 = s
	case PlaneE23:
		m.E23 = s
	case PlaneE24:
		m.E24 = s
	case PlaneE34:
		m.E34 = s
	default:
		panic("ga4: unknown rotation plane")
	}
	return m
}

// RotationXY returns the rotation by angle in the Cartesian xy plane:
// (x, y) → (x·cos + y·sin, −x·sin + y·cos).
func RotationXY(angle float32) Motor { return Rotation(PlaneE34, angle) }

// RotationXZ returns the rotation by angle in the Cartesian xz plane.
func RotationXZ(angle float32) Motor { return Rotation(PlaneE24, angle) }

// RotationXW returns the rotation by angle in the Cartesian xw plane.
func RotationXW(angle float32) Motor { return Rotation(PlaneE14, angle) }

// RotationYZ returns the rotation by angle in the Cartesian yz plane.
func RotationYZ(angle float32) Motor { return Rotation(PlaneE23, angle) }

// RotationYW returns the rotation by angle in the Cartesian yw plane.
func RotationYW(angle float32) Motor { return Rotation(PlaneE13, angle) }

// RotationZW returns the rotation by angle in the Cartesian zw plane.
func RotationZW(angle float32) Motor { return Rotation(PlaneE12, angle) }
