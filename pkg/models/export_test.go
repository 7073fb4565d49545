package models

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/tetravox/tetravox/pkg/voxel"
)

func sliceChunk() *voxel.Chunk {
	c := voxel.NewChunk(4)
	c.Set(0, 0, 0, 0, voxel.Block{Color: voxel.RGB{R: 1}, Exists: true})
	c.Set(2, 1, 3, 0, voxel.Block{Color: voxel.RGB{G: 1}, Exists: true})
	c.Set(1, 1, 1, 2, voxel.Block{Color: voxel.RGB{B: 1}, Exists: true})
	return c
}

func TestBuildSliceMesh(t *testing.T) {
	m := BuildSliceMesh(sliceChunk(), 0)

	// Two blocks in slice w=0: 8 vertices and 36 indices per cube.
	if len(m.Positions) != 16 {
		t.Fatalf("positions = %d, want 16", len(m.Positions))
	}
	if len(m.Colors) != 16 {
		t.Fatalf("colors = %d, want 16", len(m.Colors))
	}
	if len(m.Indices) != 72 {
		t.Fatalf("indices = %d, want 72", len(m.Indices))
	}

	// The first cube sits at the origin with its far corner at (1,1,1).
	if m.Positions[0] != [3]float32{0, 0, 0} || m.Positions[6] != [3]float32{1, 1, 1} {
		t.Fatalf("first cube corners = %v, %v", m.Positions[0], m.Positions[6])
	}
	if m.Colors[0] != [3]float32{1, 0, 0} {
		t.Fatalf("first cube color = %v", m.Colors[0])
	}

	// Indices of the second cube are offset past the first cube's vertices.
	if m.Indices[36] != 8 {
		t.Fatalf("second cube base index = %d, want 8", m.Indices[36])
	}
}

func TestBuildSliceMeshOtherSlice(t *testing.T) {
	m := BuildSliceMesh(sliceChunk(), 2)
	if len(m.Positions) != 8 {
		t.Fatalf("positions = %d, want 8", len(m.Positions))
	}
	if m.Colors[0] != [3]float32{0, 0, 1} {
		t.Fatalf("color = %v", m.Colors[0])
	}
}

func TestExportSliceGLBRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slice.glb")
	if err := ExportSliceGLB(sliceChunk(), 0, path); err != nil {
		t.Fatal(err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("unexpected document shape: %d meshes", len(doc.Meshes))
	}

	prim := doc.Meshes[0].Primitives[0]
	if _, ok := prim.Attributes[gltf.POSITION]; !ok {
		t.Fatal("missing POSITION attribute")
	}
	if _, ok := prim.Attributes[gltf.COLOR_0]; !ok {
		t.Fatal("missing COLOR_0 attribute")
	}
	if prim.Indices == nil {
		t.Fatal("missing indices")
	}

	pos := doc.Accessors[prim.Attributes[gltf.POSITION]]
	if pos.Count != 16 {
		t.Fatalf("position count = %d, want 16", pos.Count)
	}
	idx := doc.Accessors[*prim.Indices]
	if idx.Count != 72 {
		t.Fatalf("index count = %d, want 72", idx.Count)
	}
}

func TestExportSliceGLBErrors(t *testing.T) {
	dir := t.TempDir()

	if err := ExportSliceGLB(sliceChunk(), 7, filepath.Join(dir, "a.glb")); err == nil {
		t.Fatal("want error for out-of-range slice")
	}
	if err := ExportSliceGLB(sliceChunk(), 1, filepath.Join(dir, "b.glb")); err == nil {
		t.Fatal("want error for empty slice")
	}
}
