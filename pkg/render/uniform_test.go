package render

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/tetravox/tetravox/pkg/ga4"
)

func TestCameraUniformEncodeLayout(t *testing.T) {
	cam := NewCamera(ga4.V4(1, 2, 3, 4), 90)
	u := NewCameraUniform(cam)

	data := u.Encode()
	if len(data) != UniformSize {
		t.Fatalf("len = %d, want %d", len(data), UniformSize)
	}

	// Scalar first, field of view last.
	if got := math.Float32frombits(binary.LittleEndian.Uint32(data[0:])); got != u.Transform.S {
		t.Errorf("scalar = %v, want %v", got, u.Transform.S)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(data[16*4:])); got != u.VFov {
		t.Errorf("vfov = %v, want %v", got, u.VFov)
	}
}

func TestCameraUniformRoundTrip(t *testing.T) {
	u := CameraUniform{
		Transform: ga4.Translation(ga4.V4(1, -2, 3, 4)).Mul(ga4.RotationXY(0.5)),
		VFov:      1.2,
	}

	got, err := DecodeCameraUniform(u.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if got != u {
		t.Fatalf("roundtrip mismatch:\n got %+v\nwant %+v", got, u)
	}
}

func TestCameraUniformWriteTo(t *testing.T) {
	u := NewCameraUniform(NewCamera(ga4.V4(0, 0, 0, 0), 60))

	var buf bytes.Buffer
	n, err := u.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != UniformSize || buf.Len() != UniformSize {
		t.Fatalf("wrote %d bytes, want %d", n, UniformSize)
	}
	if !bytes.Equal(buf.Bytes(), u.Encode()) {
		t.Fatal("WriteTo output differs from Encode")
	}
}

func TestDecodeCameraUniformBadSize(t *testing.T) {
	if _, err := DecodeCameraUniform(make([]byte, 16)); err == nil {
		t.Fatal("want error for short input")
	}
}
