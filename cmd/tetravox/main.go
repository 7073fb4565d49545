// tetravox - Terminal 4D Voxel Engine
// Roam a four-dimensional voxel world rendered in your terminal.
//
// Controls:
//
//	Mouse move  - Look around (horizontal turns movement, vertical is look only)
//	Scroll      - Rotate forward into the fourth axis (ana/kata)
//	W/S         - Move forward/backward
//	A/D         - Strafe left/right
//	Space/Shift - Move up/down
//	P           - Save a screenshot (PNG)
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/tetravox/tetravox/pkg/game"
	"github.com/tetravox/tetravox/pkg/models"
	"github.com/tetravox/tetravox/pkg/render"
	"github.com/tetravox/tetravox/pkg/voxel"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	scenePath = flag.String("scene", "", "Path to a YAML scene file")
	logPath   = flag.String("log", "", "Write a debug log to this file")
	exportGLB = flag.String("export-glb", "", "Export a 3D slice of the world as GLB and exit")
	exportW   = flag.Int("export-w", 0, "W coordinate of the slice to export")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tetravox - Terminal 4D Voxel Engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tetravox [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse move  - Look around\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Rotate into the fourth axis\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Move\n")
		fmt.Fprintf(os.Stderr, "  Space/Shift - Up/down\n")
		fmt.Fprintf(os.Stderr, "  P           - Screenshot\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func loadScene(path string) (voxel.Scene, error) {
	if path == "" {
		return voxel.DefaultScene(), nil
	}
	return voxel.LoadScene(path)
}

func run() error {
	log, err := newLogger(*logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	scene, err := loadScene(*scenePath)
	if err != nil {
		return err
	}
	chunk := scene.BuildChunk()
	log.Info("scene loaded",
		zap.Int("chunk_size", chunk.Size),
		zap.Int("blocks", chunk.Count()))

	if *exportGLB != "" {
		if err := models.ExportSliceGLB(chunk, *exportW, *exportGLB); err != nil {
			return err
		}
		fmt.Printf("Exported slice w=%d to %s\n", *exportW, *exportGLB)
		return nil
	}

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	// Create renderer
	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	raytracer := render.NewRaytracer(chunk)
	g := game.New(scene, *targetFPS, log)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Mouse state
	var haveMouse bool
	var lastMouseX, lastMouseY int
	var screenshot bool

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				log.Debug("resize", zap.Int("width", width), zap.Int("height", height))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("p"):
					screenshot = true
				case ev.MatchString("w"):
					g.Keyboard("w", true)
				case ev.MatchString("s"):
					g.Keyboard("s", true)
				case ev.MatchString("a"):
					g.Keyboard("a", true)
				case ev.MatchString("d"):
					g.Keyboard("d", true)
				case ev.MatchString("space"):
					g.Keyboard("space", true)
				case ev.MatchString("shift"):
					g.Keyboard("shift", true)
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"):
					g.Keyboard("w", false)
				case ev.MatchString("s"):
					g.Keyboard("s", false)
				case ev.MatchString("a"):
					g.Keyboard("a", false)
				case ev.MatchString("d"):
					g.Keyboard("d", false)
				case ev.MatchString("space"):
					g.Keyboard("space", false)
				case ev.MatchString("shift"):
					g.Keyboard("shift", false)
				}

			case uv.MouseMotionEvent:
				if haveMouse {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					// A terminal cell is far coarser than a pixel; scale the
					// deltas up so the original sensitivities feel right.
					g.Cursor(float32(dx)*8, float32(dy)*16)
				}
				lastMouseX, lastMouseY = ev.X, ev.Y
				haveMouse = true

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					g.Scroll(8)
				case uv.MouseWheelDown:
					g.Scroll(-8)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()
	var accumulator time.Duration

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		frame := now.Sub(lastFrame)
		lastFrame = now

		if frame > 100*time.Millisecond {
			frame = 100 * time.Millisecond
		}

		// Fixed updates catch up, then one variable update per frame
		accumulator += frame
		for accumulator >= game.FixedTimestep {
			g.FixedUpdate()
			accumulator -= game.FixedTimestep
		}
		g.Update(float32(frame.Seconds()))

		// Render
		raytracer.Render(g.Camera, fb)

		if screenshot {
			screenshot = false
			name := fmt.Sprintf("tetravox-%s.png", now.Format("20060102-150405"))
			if err := fb.SavePNG(name); err != nil {
				log.Warn("screenshot failed", zap.Error(err))
			} else {
				log.Info("screenshot saved", zap.String("path", name))
			}
		}

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
