// Package models converts voxel geometry to mesh form and exports it as
// binary glTF.
package models

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/tetravox/tetravox/pkg/voxel"
)

// SliceMesh is the triangle mesh of one 3D slice of a chunk: a unit cube per
// existing block, colored per vertex.
type SliceMesh struct {
	Positions [][3]float32
	Colors    [][3]float32
	Indices   []uint32
}

// cube corner offsets, in the order the face index table expects.
var cubeCorners = [8][3]float32{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// cubeIndices triangulates the 8 corners into 12 triangles, CCW from
// outside.
var cubeIndices = [36]uint32{
	0, 2, 1, 0, 3, 2, // z = 0
	4, 5, 6, 4, 6, 7, // z = 1
	0, 1, 5, 0, 5, 4, // y = 0
	3, 6, 2, 3, 7, 6, // y = 1
	0, 7, 3, 0, 4, 7, // x = 0
	1, 2, 6, 1, 6, 5, // x = 1
}

// BuildSliceMesh meshes the w = sliceW slice of the chunk.
func BuildSliceMesh(chunk *voxel.Chunk, sliceW int) *SliceMesh {
	m := &SliceMesh{}
	for z := 0; z < chunk.Size; z++ {
		for y := 0; y < chunk.Size; y++ {
			for x := 0; x < chunk.Size; x++ {
				b := chunk.At(x, y, z, sliceW)
				if !b.Exists {
					continue
				}
				base := uint32(len(m.Positions))
				for _, c := range cubeCorners {
					m.Positions = append(m.Positions, [3]float32{
						float32(x) + c[0],
						float32(y) + c[1],
						float32(z) + c[2],
					})
					m.Colors = append(m.Colors, [3]float32{b.Color.R, b.Color.G, b.Color.B})
				}
				for _, i := range cubeIndices {
					m.Indices = append(m.Indices, base+i)
				}
			}
		}
	}
	return m
}

// ExportSliceGLB writes the w = sliceW slice of the chunk to a .glb file.
func ExportSliceGLB(chunk *voxel.Chunk, sliceW int, path string) error {
	if sliceW < 0 || sliceW >= chunk.Size {
		return fmt.Errorf("slice w=%d outside chunk of size %d", sliceW, chunk.Size)
	}

	mesh := BuildSliceMesh(chunk, sliceW)
	if len(mesh.Indices) == 0 {
		return fmt.Errorf("slice w=%d has no blocks", sliceW)
	}

	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: fmt.Sprintf("slice_w%d", sliceW),
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, mesh.Indices)),
			Attributes: map[string]int{
				gltf.POSITION: modeler.WritePosition(doc, mesh.Positions),
				gltf.COLOR_0:  modeler.WriteColor(doc, mesh.Colors),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "slice", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []int{0}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
