package render

import (
	"github.com/chewxy/math32"

	"github.com/tetravox/tetravox/pkg/ga4"
)

// Camera is the player's viewpoint: a roaming frame in 4D space.
//
// Transform carries position plus the yaw and ana turns, so movement always
// happens in the horizontal frame. VerticalLook carries pitch alone and is
// composed on top for rendering only; looking up never tilts the direction
// you walk in.
//
// In the camera's local frame forward is +x, up is +y, right is +z and ana
// is +w.
type Camera struct {
	Transform    ga4.Motor
	VerticalLook ga4.Motor

	// VFov is the vertical field of view in radians.
	VFov float32
}

// NewCamera creates a camera at the given world position, looking along +x.
func NewCamera(position ga4.Vec4, fovDegrees float32) *Camera {
	return &Camera{
		Transform:    ga4.Translation(position),
		VerticalLook: ga4.Identity(),
		VFov:         fovDegrees * math32.Pi / 180,
	}
}

// ViewMotor returns the full camera motion: the roaming frame with the
// vertical look applied innermost.
func (c *Camera) ViewMotor() ga4.Motor {
	return c.Transform.Mul(c.VerticalLook)
}

// Position returns the camera's world position.
func (c *Camera) Position() ga4.Vec4 {
	return c.ViewMotor().TransformPoint(ga4.V4(0, 0, 0, 0))
}

// Normalize rescales both motors back to unit magnitude. Incremental
// composition drifts them away from the unit manifold over time.
func (c *Camera) Normalize() {
	c.Transform = c.Transform.Normalized()
	c.VerticalLook = c.VerticalLook.Normalized()
}
