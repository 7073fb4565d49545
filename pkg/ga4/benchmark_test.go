package ga4

import (
	"testing"
)

func BenchmarkMotorMul(b *testing.B) {
	m1 := Translation(V4(1, 2, 3, 4)).Mul(RotationXY(0.5))
	m2 := RotationYZ(0.25).Mul(Translation(V4(-1, 0, 2, 0)))

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkTransformPoint(b *testing.B) {
	m := Translation(V4(1, 2, 3, 4)).Mul(RotationXY(0.5))
	p := V4(1, 2, 3, 4)

	for b.Loop() {
		_ = m.TransformPoint(p)
	}
}

func BenchmarkTransformDirection(b *testing.B) {
	m := RotationXY(0.5).Mul(RotationXW(0.25))
	n := V4(1, 0, 0, 0)

	for b.Loop() {
		_ = m.TransformDirection(n)
	}
}

func BenchmarkPointTransform(b *testing.B) {
	m := Translation(V4(1, 2, 3, 4)).Mul(RotationXY(0.5))
	p := PointFromCartesian(1, 2, 3, 4)

	for b.Loop() {
		_ = p.Transform(m)
	}
}

func BenchmarkNormalized(b *testing.B) {
	m := Translation(V4(1, 2, 3, 4)).Mul(RotationXY(0.5))

	for b.Loop() {
		_ = m.Normalized()
	}
}
