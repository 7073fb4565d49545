package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/tetravox/tetravox/pkg/ga4"
	"github.com/tetravox/tetravox/pkg/render"
	"github.com/tetravox/tetravox/pkg/voxel"
)

// FixedTimestep is the interval of the fixed update loop, which renormalizes
// the camera motors.
const FixedTimestep = 10 * time.Millisecond

// Game drives the camera from input events.
//
// Mouse x turns the roaming frame in the horizontal xz plane, mouse y
// pitches the vertical look, and the scroll wheel rotates the roaming frame
// into the fourth axis (the xw plane).
type Game struct {
	Camera   *render.Camera
	Movement *Movement

	lookSens   float32
	scrollSens float32
	moveSpeed  float32

	log *zap.Logger
}

// New creates a game in the given scene's starting state. A nil logger
// disables logging.
func New(scene voxel.Scene, fps int, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	pos := scene.Camera.Position
	return &Game{
		Camera:     render.NewCamera(ga4.V4(pos[0], pos[1], pos[2], pos[3]), scene.Camera.FOVDegrees),
		Movement:   NewMovement(fps),
		lookSens:   scene.Input.LookSensitivity,
		scrollSens: scene.Input.ScrollSensitivity,
		moveSpeed:  scene.Input.MoveSpeed,
		log:        log,
	}
}

// Keyboard handles a key press or release. It reports whether the key was
// consumed.
func (g *Game) Keyboard(name string, pressed bool) bool {
	handled := g.Movement.Key(name, pressed)
	if handled {
		g.log.Debug("movement key", zap.String("key", name), zap.Bool("pressed", pressed))
	}
	return handled
}

// Cursor handles relative mouse motion. Horizontal motion yaws the roaming
// frame; vertical motion pitches the look motor, so it never affects the
// movement directions.
func (g *Game) Cursor(dx, dy float32) {
	g.Camera.Transform = g.Camera.Transform.Mul(ga4.RotationXZ(dx * g.lookSens))
	g.Camera.VerticalLook = g.Camera.VerticalLook.Mul(ga4.RotationXY(dy * -g.lookSens))
}

// Scroll rotates the roaming frame into the ana axis: forward trades places
// with w.
func (g *Game) Scroll(dy float32) {
	g.Camera.Transform = g.Camera.Transform.Mul(ga4.RotationXW(dy * g.scrollSens))
}

// Update advances the movement springs and applies this frame's translation
// in the camera's local frame.
func (g *Game) Update(dt float32) {
	g.Movement.Update()
	g.Camera.Transform = g.Camera.Transform.Mul(g.Movement.Motor(dt, g.moveSpeed))
}

// FixedUpdate runs once per FixedTimestep and renormalizes the camera
// motors before floating point drift becomes visible.
func (g *Game) FixedUpdate() {
	g.Camera.Normalize()
}
