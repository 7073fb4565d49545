package game

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/tetravox/tetravox/pkg/ga4"
	"github.com/tetravox/tetravox/pkg/voxel"
)

const tol = 1e-4

func near(got, want float32) bool {
	return math32.Abs(got-want) <= tol
}

func newTestGame() *Game {
	return New(voxel.DefaultScene(), 60, nil)
}

func TestAxisSpringRampsUpAndDown(t *testing.T) {
	a := NewAxis(60)
	if a.Value() != 0 {
		t.Fatalf("initial value = %v", a.Value())
	}

	a.Set(true)
	for range 120 {
		a.Update()
	}
	if v := a.Value(); v < 0.99 {
		t.Fatalf("held axis settled at %v, want ~1", v)
	}

	a.Set(false)
	for range 120 {
		a.Update()
	}
	if v := a.Value(); v > 0.01 {
		t.Fatalf("released axis settled at %v, want ~0", v)
	}
}

func TestMovementKeyRouting(t *testing.T) {
	m := NewMovement(60)
	tests := []struct {
		key  string
		axis *Axis
	}{
		{"w", &m.Forward},
		{"s", &m.Back},
		{"d", &m.Right},
		{"a", &m.Left},
		{"space", &m.Up},
		{"shift", &m.Down},
	}
	for _, tc := range tests {
		if !m.Key(tc.key, true) {
			t.Errorf("key %q not handled", tc.key)
		}
		if !tc.axis.held {
			t.Errorf("key %q did not set its axis", tc.key)
		}
	}
	if m.Key("x", true) {
		t.Error("unknown key reported as handled")
	}
}

func TestMovementMotorDirections(t *testing.T) {
	tests := []struct {
		key  string
		want ga4.Vec4
	}{
		{"w", ga4.V4(1, 0, 0, 0)},
		{"s", ga4.V4(-1, 0, 0, 0)},
		{"space", ga4.V4(0, 1, 0, 0)},
		{"shift", ga4.V4(0, -1, 0, 0)},
		{"d", ga4.V4(0, 0, 1, 0)},
		{"a", ga4.V4(0, 0, -1, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			m := NewMovement(60)
			m.Key(tc.key, true)
			for range 120 {
				m.Update()
			}

			// speed 1, dt 1: the offset is the settled axis direction.
			got := m.Motor(1, 1).TransformPoint(ga4.V4(0, 0, 0, 0))
			if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) ||
				!near(got.Z, tc.want.Z) || !near(got.W, tc.want.W) {
				t.Fatalf("moved to %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUpdateMovesCameraForward(t *testing.T) {
	g := newTestGame()
	start := g.Camera.Position()

	g.Keyboard("w", true)
	for range 60 {
		g.Update(1.0 / 60)
	}

	pos := g.Camera.Position()
	if pos.X <= start.X {
		t.Fatalf("camera did not move forward: %+v -> %+v", start, pos)
	}
	if !near(pos.Y, start.Y) || !near(pos.Z, start.Z) || !near(pos.W, start.W) {
		t.Fatalf("forward movement drifted off axis: %+v", pos)
	}
}

func TestCursorYawTurnsMovementFrame(t *testing.T) {
	g := newTestGame()

	// A quarter turn right: local forward ends up along world +z.
	g.Cursor(math32.Pi/2/0.001, 0)

	fwd := g.Camera.Transform.TransformDirection(ga4.V4(1, 0, 0, 0))
	if !near(fwd.X, 0) || !near(fwd.Z, 1) {
		t.Fatalf("forward after yaw = %+v, want +z", fwd)
	}
}

func TestCursorPitchOnlyAffectsLook(t *testing.T) {
	g := newTestGame()
	before := g.Camera.Transform

	g.Cursor(0, 300)

	if g.Camera.Transform != before {
		t.Fatal("pitch modified the roaming frame")
	}
	if g.Camera.VerticalLook == ga4.Identity() {
		t.Fatal("pitch did not modify the look motor")
	}
}

func TestScrollRotatesIntoAna(t *testing.T) {
	g := newTestGame()

	// A quarter xw turn: forward swings into the fourth axis.
	g.Scroll(math32.Pi / 2 / 0.01)

	fwd := g.Camera.Transform.TransformDirection(ga4.V4(1, 0, 0, 0))
	if !near(math32.Abs(fwd.W), 1) {
		t.Fatalf("forward after scroll = %+v, want along w", fwd)
	}
}

func TestFixedUpdateRenormalizes(t *testing.T) {
	g := newTestGame()
	g.Camera.Transform.S *= 1.01
	g.Cursor(40, -25)

	for range 10 {
		g.FixedUpdate()
	}

	if m := g.Camera.Transform.Magnitude(); !near(m, 1) {
		t.Errorf("transform magnitude = %v", m)
	}
	if m := g.Camera.VerticalLook.Magnitude(); !near(m, 1) {
		t.Errorf("look magnitude = %v", m)
	}
}

func TestKeyboardReportsConsumption(t *testing.T) {
	g := newTestGame()
	if !g.Keyboard("w", true) {
		t.Error("movement key not consumed")
	}
	if g.Keyboard("escape", true) {
		t.Error("non-movement key consumed")
	}
}
