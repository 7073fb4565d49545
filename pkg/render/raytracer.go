package render

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/tetravox/tetravox/pkg/ga4"
	"github.com/tetravox/tetravox/pkg/voxel"
)

// Raytracer renders a voxel chunk by casting one ray per framebuffer pixel
// and walking it through the 4D grid.
type Raytracer struct {
	Chunk *voxel.Chunk

	// MaxDistance is how far a ray travels before giving up and returning
	// the sky color.
	MaxDistance float32

	// Sky is the color of rays that hit nothing.
	Sky color.RGBA
}

// NewRaytracer creates a raytracer over the given chunk with default
// distance and sky settings.
func NewRaytracer(chunk *voxel.Chunk) *Raytracer {
	return &Raytracer{
		Chunk:       chunk,
		MaxDistance: 50,
		Sky:         RGB(30, 30, 40),
	}
}

// Render fills the framebuffer with one traced ray per pixel. The camera's
// local frame is forward +x, up +y, right +z; rays fan out across the
// framebuffer's vertical field of view and never leave the camera's 3D
// view slice, which the view motor then orients in 4D.
func (r *Raytracer) Render(cam *Camera, fb *Framebuffer) {
	view := cam.ViewMotor()
	origin := view.TransformPoint(ga4.V4(0, 0, 0, 0))

	tanHalf := math32.Tan(cam.VFov / 2)
	aspect := float32(fb.Width) / float32(fb.Height)

	for y := 0; y < fb.Height; y++ {
		v := (1 - 2*(float32(y)+0.5)/float32(fb.Height)) * tanHalf
		for x := 0; x < fb.Width; x++ {
			u := (2*(float32(x)+0.5)/float32(fb.Width) - 1) * tanHalf * aspect
			dir := view.TransformDirection(ga4.V4(1, v, u, 0).Normalize())
			fb.SetPixel(x, y, r.trace(origin, dir))
		}
	}
}

func (r *Raytracer) trace(origin, dir ga4.Vec4) color.RGBA {
	b, axis, dist, ok := r.cast(origin, dir)
	if !ok {
		return r.Sky
	}
	return r.shade(b, axis, dist)
}

// faceLight is the brightness of a block face by the axis it is
// perpendicular to: x (front/back), y (top/bottom), z (sides), w (ana/kata).
var faceLight = [4]float32{0.85, 1, 0.7, 0.55}

func (r *Raytracer) shade(b voxel.Block, axis int, dist float32) color.RGBA {
	light := faceLight[axis] * (1 - dist/r.MaxDistance)
	if light < 0 {
		light = 0
	}
	return LinearRGB(b.Color.R*light, b.Color.G*light, b.Color.B*light)
}

// cast walks the ray through the voxel grid one cell boundary at a time and
// returns the first existing block, the axis of the face it was entered
// through, and the distance along the (unit) direction.
func (r *Raytracer) cast(origin, dir ga4.Vec4) (hit voxel.Block, axis int, dist float32, ok bool) {
	p := [4]float32{origin.X, origin.Y, origin.Z, origin.W}
	d := [4]float32{dir.X, dir.Y, dir.Z, dir.W}

	var cell, step [4]int
	var tMax, tDelta [4]float32
	for i := range 4 {
		cell[i] = int(math32.Floor(p[i]))
		switch {
		case d[i] > 0:
			step[i] = 1
			tMax[i] = (float32(cell[i]+1) - p[i]) / d[i]
			tDelta[i] = 1 / d[i]
		case d[i] < 0:
			step[i] = -1
			tMax[i] = (p[i] - float32(cell[i])) / -d[i]
			tDelta[i] = -1 / d[i]
		default:
			step[i] = 0
			tMax[i] = math32.MaxFloat32
			tDelta[i] = math32.MaxFloat32
		}
	}

	// A ray starting inside a block sees its top face.
	t := float32(0)
	axis = 1

	for {
		if b := r.Chunk.At(cell[0], cell[1], cell[2], cell[3]); b.Exists {
			return b, axis, t, true
		}

		a := 0
		for i := 1; i < 4; i++ {
			if tMax[i] < tMax[a] {
				a = i
			}
		}
		t = tMax[a]
		if t > r.MaxDistance {
			return voxel.Block{}, 0, 0, false
		}
		cell[a] += step[a]
		tMax[a] += tDelta[a]
		axis = a
	}
}
