package voxel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene describes a world and how the player starts in it. Zero values fall
// back to the built-in defaults, so a scene file only needs the fields it
// wants to change.
type Scene struct {
	ChunkSize int          `yaml:"chunk_size"`
	Fill      *FillRule    `yaml:"fill,omitempty"`
	Blocks    []BlockEntry `yaml:"blocks,omitempty"`
	Camera    CameraStart  `yaml:"camera"`
	Input     InputTuning  `yaml:"input"`
}

// FillRule procedurally fills the chunk before explicit blocks are applied.
type FillRule struct {
	Every int        `yaml:"every"`
	Color [3]float32 `yaml:"color"`
}

// BlockEntry places one block.
type BlockEntry struct {
	X     int        `yaml:"x"`
	Y     int        `yaml:"y"`
	Z     int        `yaml:"z"`
	W     int        `yaml:"w"`
	Color [3]float32 `yaml:"color"`
}

// CameraStart is the initial camera placement.
type CameraStart struct {
	Position   [4]float32 `yaml:"position"`
	FOVDegrees float32    `yaml:"fov_degrees"`
}

// InputTuning holds the input sensitivities.
type InputTuning struct {
	LookSensitivity   float32 `yaml:"look_sensitivity"`
	ScrollSensitivity float32 `yaml:"scroll_sensitivity"`
	MoveSpeed         float32 `yaml:"move_speed"`
}

// DefaultScene returns the scene the engine boots with when no file is
// given: the default chunk, the camera just outside it, and the original
// tuning constants.
func DefaultScene() Scene {
	return Scene{
		ChunkSize: DefaultSize,
		Fill:      &FillRule{Every: 3, Color: [3]float32{0, 1, 0}},
		Camera: CameraStart{
			Position:   [4]float32{-4.5, 0.5, -1.5, 0.5},
			FOVDegrees: 90,
		},
		Input: InputTuning{
			LookSensitivity:   0.001,
			ScrollSensitivity: 0.01,
			MoveSpeed:         5,
		},
	}
}

// LoadScene reads a YAML scene file, layered over the defaults.
func LoadScene(path string) (Scene, error) {
	s := DefaultScene()
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read scene: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the scene for values the engine cannot work with.
func (s Scene) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", s.ChunkSize)
	}
	if s.Camera.FOVDegrees <= 0 || s.Camera.FOVDegrees >= 180 {
		return fmt.Errorf("fov_degrees must be in (0, 180), got %v", s.Camera.FOVDegrees)
	}
	for i, b := range s.Blocks {
		if b.X < 0 || b.X >= s.ChunkSize ||
			b.Y < 0 || b.Y >= s.ChunkSize ||
			b.Z < 0 || b.Z >= s.ChunkSize ||
			b.W < 0 || b.W >= s.ChunkSize {
			return fmt.Errorf("blocks[%d] at (%d,%d,%d,%d) outside chunk of size %d",
				i, b.X, b.Y, b.Z, b.W, s.ChunkSize)
		}
	}
	return nil
}

// BuildChunk realizes the scene's world: the fill rule first, then explicit
// blocks on top.
func (s Scene) BuildChunk() *Chunk {
	c := NewChunk(s.ChunkSize)
	if s.Fill != nil && s.Fill.Every > 0 {
		c.FillEvery(s.Fill.Every, RGB{R: s.Fill.Color[0], G: s.Fill.Color[1], B: s.Fill.Color[2]})
	}
	for _, b := range s.Blocks {
		c.Set(b.X, b.Y, b.Z, b.W, Block{
			Color:  RGB{R: b.Color[0], G: b.Color[1], B: b.Color[2]},
			Exists: true,
		})
	}
	return c
}
