package ga4

import "errors"

// ErrZeroWeight is returned when converting a point with zero homogeneous
// weight to Cartesian coordinates.
var ErrZeroWeight = errors.New("ga4: point has zero homogeneous weight")

// Point is a grade-4 element of the algebra representing a homogeneous
// point: the first four components carry the (unnormalized) Cartesian
// coordinates and E1234 is the weight. Dividing the positional components
// by the weight recovers Cartesian coordinates.
type Point struct {
	E0123, E0124, E0134, E0234 float32
	E1234                      float32 // homogeneous weight
}

// Origin returns the origin point with unit weight.
func Origin() Point {
	return Point{E1234: 1}
}

// PointFromCartesian returns the unit-weight point at (x, y, z, w).
func PointFromCartesian(x, y, z, w float32) Point {
	return Point{E0123: x, E0124: y, E0134: z, E0234: w, E1234: 1}
}

// PointFromVec4 returns the unit-weight point at v.
func PointFromVec4(v Vec4) Point {
	return PointFromCartesian(v.X, v.Y, v.Z, v.W)
}

// Cartesian returns the Cartesian coordinates of the point, dividing out
// the homogeneous weight. Points at zero weight (ideal points) have no
// Cartesian form and return ErrZeroWeight.
func (p Point) Cartesian() (Vec4, error) {
	if p.E1234 == 0 {
		return Vec4{}, ErrZeroWeight
	}
	inv := 1 / p.E1234
	return Vec4{p.E0123 * inv, p.E0124 * inv, p.E0134 * inv, p.E0234 * inv}, nil
}

// Transform applies the rigid motion to the point: the grade-4 part of the
// sandwich product a · p · reverse(a), honoring the weight. The output
// weight is exactly the input weight times a.MagnitudeSquared() — the weight
// blade has no cross terms in the sandwich expansion — so unit motors
// preserve weight bit-for-bit and no renormalization is performed here.
// Unlike Motor.TransformPoint this does not assume a unit motor.
func (p Point) Transform(a Motor) Point {
	msq := a.MagnitudeSquared()
	return Point{
		E0123: p.E0123*msq + 2*(p.E0123*(-a.E14*a.E14-a.E24*a.E24-a.E34*a.E34-a.E1234*a.E1234)+
			p.E0124*(a.S*a.E34+a.E12*a.E1234+a.E13*a.E14+a.E23*a.E24)+
			p.E0134*(-a.S*a.E24-a.E12*a.E14+a.E13*a.E1234+a.E23*a.E34)+
			p.E0234*(a.S*a.E14-a.E12*a.E24-a.E13*a.E34+a.E23*a.E1234)+
			p.E1234*(-a.S*a.E04+a.E01*a.E14+a.E02*a.E24+a.E03*a.E34-
				a.E12*a.E0124-a.E13*a.E0134-a.E23*a.E0234+a.E0123*a.E1234)),

		E0124: p.E0124*msq + 2*(p.E0123*(-a.S*a.E34-a.E12*a.E1234+a.E13*a.E14+a.E23*a.E24)+
			p.E0124*(-a.E13*a.E13-a.E23*a.E23-a.E34*a.E34-a.E1234*a.E1234)+
			p.E0134*(a.S*a.E23+a.E12*a.E13+a.E14*a.E1234+a.E24*a.E34)+
			p.E0234*(-a.S*a.E13+a.E12*a.E23-a.E14*a.E34+a.E24*a.E1234)+
			p.E1234*(a.S*a.E03-a.E01*a.E13-a.E02*a.E23+a.E04*a.E34+
				a.E12*a.E0123-a.E14*a.E0134-a.E24*a.E0234+a.E0124*a.E1234)),

		E0134: p.E0134*msq + 2*(p.E0123*(a.S*a.E24-a.E12*a.E14-a.E13*a.E1234+a.E23*a.E34)+
			p.E0124*(-a.S*a.E23+a.E12*a.E13-a.E14*a.E1234+a.E24*a.E34)+
			p.E0134*(-a.E12*a.E12-a.E23*a.E23-a.E24*a.E24-a.E1234*a.E1234)+
			p.E0234*(a.S*a.E12+a.E13*a.E23+a.E14*a.E24+a.E34*a.E1234)+
			p.E1234*(-a.S*a.E02+a.E01*a.E12-a.E03*a.E23-a.E04*a.E24+
				a.E13*a.E0123+a.E14*a.E0124-a.E34*a.E0234+a.E0134*a.E1234)),

		E0234: p.E0234*msq + 2*(p.E0123*(-a.S*a.E14-a.E12*a.E24-a.E13*a.E34-a.E23*a.E1234)+
			p.E0124*(a.S*a.E13+a.E12*a.E23-a.E14*a.E34-a.E24*a.E1234)+
			p.E0134*(-a.S*a.E12+a.E13*a.E23+a.E14*a.E24-a.E34*a.E1234)+
			p.E0234*(-a.E12*a.E12-a.E13*a.E13-a.E14*a.E14-a.E1234*a.E1234)+
			p.E1234*(a.S*a.E01+a.E02*a.E12+a.E03*a.E13+a.E04*a.E14+
				a.E23*a.E0123+a.E24*a.E0124+a.E34*a.E0134+a.E0234*a.E1234)),

		E1234: p.E1234 * msq,
	}
}
