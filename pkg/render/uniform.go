package render

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/tetravox/tetravox/pkg/ga4"
)

// CameraUniform is the camera state in the layout a GPU compute pipeline
// consumes: the 16 view motor components followed by the vertical field of
// view, all little-endian float32.
type CameraUniform struct {
	Transform ga4.Motor
	VFov      float32
}

// UniformSize is the encoded size of a CameraUniform in bytes.
const UniformSize = 17 * 4

// NewCameraUniform captures the camera's current view state.
func NewCameraUniform(cam *Camera) CameraUniform {
	return CameraUniform{
		Transform: cam.ViewMotor(),
		VFov:      cam.VFov,
	}
}

func (u CameraUniform) floats() [17]float32 {
	m := u.Transform
	return [17]float32{
		m.S,
		m.E01, m.E02, m.E03, m.E04,
		m.E12, m.E13, m.E14, m.E23, m.E24, m.E34,
		m.E0123, m.E0124, m.E0134, m.E0234, m.E1234,
		u.VFov,
	}
}

// Encode returns the uniform's binary representation.
func (u CameraUniform) Encode() []byte {
	buf := make([]byte, 0, UniformSize)
	for _, f := range u.floats() {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}

// WriteTo writes the encoded uniform to w.
func (u CameraUniform) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(u.Encode())
	return int64(n), err
}

// DecodeCameraUniform parses an encoded uniform.
func DecodeCameraUniform(data []byte) (CameraUniform, error) {
	if len(data) != UniformSize {
		return CameraUniform{}, fmt.Errorf("camera uniform: got %d bytes, want %d", len(data), UniformSize)
	}
	var f [17]float32
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return CameraUniform{
		Transform: ga4.Motor{
			S:   f[0],
			E01: f[1], E02: f[2], E03: f[3], E04: f[4],
			E12: f[5], E13: f[6], E14: f[7], E23: f[8], E24: f[9], E34: f[10],
			E0123: f[11], E0124: f[12], E0134: f[13], E0234: f[14], E1234: f[15],
		},
		VFov: f[16],
	}, nil
}
