package ga4

// TransformPoint applies the rigid motion to a homogeneous point with
// implicit unit weight and returns the transformed point, also with unit
// weight. The result is the grade-4 (dual point) part of the sandwich
// product a · P · reverse(a), written as the input plus twice a correction;
// that form assumes a is a unit motor (see Point.Transform for the general
// weight-bearing version). The identity motor returns p unchanged and a pure
// translation returns exactly p + offset.
//
// Like the product table, the coefficients below are derived from the
// signature's structure constants and locked by fixtures; do not edit
// individual terms.
func (a Motor) TransformPoint(p Vec4) Vec4 {
	return Vec4{
		X: p.X + 2*(p.X*(-a.E14*a.E14-a.E24*a.E24-a.E34*a.E34-a.E1234*a.E1234)+
			p.Y*(a.S*a.E34+a.E12*a.E1234+a.E13*a.E14+a.E23*a.E24)+
			p.Z*(-a.S*a.E24-a.E12*a.E14+a.E13*a.E1234+a.E23*a.E34)+
			p.W*(a.S*a.E14-a.E12*a.E24-a.E13*a.E34+a.E23*a.E1234)+
			(-a.S*a.E04+a.E01*a.E14+a.E02*a.E24+a.E03*a.E34-
				a.E12*a.E0124-a.E13*a.E0134-a.E23*a.E0234+a.E0123*a.E1234)),

		Y: p.Y + 2*(p.X*(-a.S*a.E34-a.E12*a.E1234+a.E13*a.E14+a.E23*a.E24)+
			p.Y*(-a.E13*a.E13-a.E23*a.E23-a.E34*a.E34-a.E1234*a.E1234)+
			p.Z*(a.S*a.E23+a.E12*a.E13+a.E14*a.E1234+a.E24*a.E34)+
			p.W*(-a.S*a.E13+a.E12*a.E23-a.E14*a.E34+a.E24*a.E1234)+
			(a.S*a.E03-a.E01*a.E13-a.E02*a.E23+a.E04*a.E34+
				a.E12*a.E0123-a.E14*a.E0134-a.E24*a.E0234+a.E0124*a.E1234)),

		Z: p.Z + 2*(p.X*(a.S*a.E24-a.E12*a.E14-a.E13*a.E1234+a.E23*a.E34)+
			p.Y*(-a.S*a.E23+a.E12*a.E13-a.E14*a.E1234+a.E24*a.E34)+
			p.Z*(-a.E12*a.E12-a.E23*a.E23-a.E24*a.E24-a.E1234*a.E1234)+
			p.W*(a.S*a.E12+a.E13*a.E23+a.E14*a.E24+a.E34*a.E1234)+
			(-a.S*a.E02+a.E01*a.E12-a.E03*a.E23-a.E04*a.E24+
				a.E13*a.E0123+a.E14*a.E0124-a.E34*a.E0234+a.E0134*a.E1234)),

		W: p.W + 2*(p.X*(-a.S*a.E14-a.E12*a.E24-a.E13*a.E34-a.E23*a.E1234)+
			p.Y*(a.S*a.E13+a.E12*a.E23-a.E14*a.E34-a.E24*a.E1234)+
			p.Z*(-a.S*a.E12+a.E13*a.E23+a.E14*a.E24-a.E34*a.E1234)+
			p.W*(-a.E12*a.E12-a.E13*a.E13-a.E14*a.E14-a.E1234*a.E1234)+
			(a.S*a.E01+a.E02*a.E12+a.E03*a.E13+a.E04*a.E14+
				a.E23*a.E0123+a.E24*a.E0124+a.E34*a.E0134+a.E0234*a.E1234)),
	}
}

// TransformDirection applies only the rotational action of the motor to a
// direction vector: the translation-bearing components (E01..E04,
// E0123..E0234) do not participate, so directions are exactly invariant
// under pure translations. For a pure rotation it agrees with
// TransformPoint.
func (a Motor) TransformDirection(n Vec4) Vec4 {
	return Vec4{
		X: n.X + 2*(n.X*(-a.E14*a.E14-a.E24*a.E24-a.E34*a.E34-a.E1234*a.E1234)+
			n.Y*(a.S*a.E34+a.E12*a.E1234+a.E13*a.E14+a.E23*a.E24)+
			n.Z*(-a.S*a.E24-a.E12*a.E14+a.E13*a.E1234+a.E23*a.E34)+
			n.W*(a.S*a.E14-a.E12*a.E24-a.E13*a.E34+a.E23*a.E1234)),

		Y: n.Y + 2*(n.X*(-a.S*a.E34-a.E12*a.E1234+a.E13*a.E14+a.E23*a.E24)+
			n.Y*(-a.E13*a.E13-a.E23*a.E23-a.E34*a.E34-a.E1234*a.E1234)+
			n.Z*(a.S*a.E23+a.E12*a.E13+a.E14*a.E1234+a.E24*a.E34)+
			n.W*(-a.S*a.E13+a.E12*a.E23-a.E14*a.E34+a.E24*a.E1234)),

		Z: n.Z + 2*(n.X*(a.S*a.E24-a.E12*a.E14-a.E13*a.E1234+a.E23*a.E34)+
			n.Y*(-a.S*a.E23+a.E12*a.E13-a.E14*a.E1234+a.E24*a.E34)+
			n.Z*(-a.E12*a.E12-a.E23*a.E23-a.E24*a.E24-a.E1234*a.E1234)+
			n.W*(a.S*a.E12+a.E13*a.E23+a.E14*a.E24+a.E34*a.E1234)),

		W: n.W + 2*(n.X*(-a.S*a.E14-a.E12*a.E24-a.E13*a.E34-a.E23*a.E1234)+
			n.Y*(a.S*a.E13+a.E12*a.E23-a.E14*a.E34-a.E24*a.E1234)+
			n.Z*(-a.S*a.E12+a.E13*a.E23+a.E14*a.E24-a.E34*a.E1234)+
			n.W*(-a.E12*a.E12-a.E13*a.E13-a.E14*a.E14-a.E1234*a.E1234)),
	}
}
