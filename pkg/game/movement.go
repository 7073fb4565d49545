// Package game holds the interactive state of the engine: the camera motors
// driven by keyboard, mouse and scroll input.
package game

import (
	"github.com/charmbracelet/harmonica"

	"github.com/tetravox/tetravox/pkg/ga4"
)

// Axis is one movement axis with spring-smoothed throttle: holding the key
// eases the value toward 1, releasing eases it back to 0.
type Axis struct {
	value  float64
	vel    float64
	held   bool
	spring harmonica.Spring
}

// NewAxis creates an axis tuned for the given frame rate.
func NewAxis(fps int) Axis {
	return Axis{
		// Frequency 8.0 = snappy, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
}

// Set records whether the axis key is held.
func (a *Axis) Set(held bool) {
	a.held = held
}

// Update advances the spring one frame toward the held target.
func (a *Axis) Update() {
	target := 0.0
	if a.held {
		target = 1.0
	}
	a.value, a.vel = a.spring.Update(a.value, a.vel, target)
}

// Value returns the current throttle in [0, 1].
func (a *Axis) Value() float32 {
	return float32(a.value)
}

// Movement tracks the six translation axes of the camera's local frame.
type Movement struct {
	Forward, Back Axis
	Up, Down      Axis
	Right, Left   Axis
	fps           int
}

// NewMovement creates movement state tuned for the given frame rate.
func NewMovement(fps int) *Movement {
	m := &Movement{fps: fps}
	m.Reset()
	return m
}

// Reset zeroes all axes.
func (m *Movement) Reset() {
	m.Forward = NewAxis(m.fps)
	m.Back = NewAxis(m.fps)
	m.Up = NewAxis(m.fps)
	m.Down = NewAxis(m.fps)
	m.Right = NewAxis(m.fps)
	m.Left = NewAxis(m.fps)
}

// Key routes a key event to its axis. It reports whether the key is a
// movement key.
func (m *Movement) Key(name string, pressed bool) bool {
	switch name {
	case "w":
		m.Forward.Set(pressed)
	case "s":
		m.Back.Set(pressed)
	case "d":
		m.Right.Set(pressed)
	case "a":
		m.Left.Set(pressed)
	case "space":
		m.Up.Set(pressed)
	case "shift":
		m.Down.Set(pressed)
	default:
		return false
	}
	return true
}

// Update advances all axis springs one frame.
func (m *Movement) Update() {
	m.Forward.Update()
	m.Back.Update()
	m.Up.Update()
	m.Down.Update()
	m.Right.Update()
	m.Left.Update()
}

// Motor returns the frame's translation in the camera's local frame:
// forward +x, up +y, right +z.
func (m *Movement) Motor(dt, speed float32) ga4.Motor {
	dir := ga4.V4(
		m.Forward.Value()-m.Back.Value(),
		m.Up.Value()-m.Down.Value(),
		m.Right.Value()-m.Left.Value(),
		0,
	)
	return ga4.Translation(dir.Scale(speed * dt))
}
