// Package voxel stores the 4D voxel world: fixed-size chunks of colored
// blocks, plus the YAML scene description that fills them.
package voxel

// DefaultSize is the default chunk edge length; a chunk holds Size⁴ blocks.
const DefaultSize = 4

// RGB is a linear-space color with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Block is a single voxel cell.
type Block struct {
	Color  RGB
	Exists bool
}

// Chunk is a dense Size⁴ grid of blocks. The block at (x, y, z, w) lives at
// index x + Size·(y + Size·(z + Size·w)).
type Chunk struct {
	Size   int
	Blocks []Block
}

// NewChunk creates an empty chunk with the given edge length.
func NewChunk(size int) *Chunk {
	if size <= 0 {
		size = DefaultSize
	}
	return &Chunk{
		Size:   size,
		Blocks: make([]Block, size*size*size*size),
	}
}

// Index returns the flat index of cell (x, y, z, w). The caller must ensure
// the coordinates are in bounds.
func (c *Chunk) Index(x, y, z, w int) int {
	return x + c.Size*(y+c.Size*(z+c.Size*w))
}

// InBounds reports whether (x, y, z, w) addresses a cell of the chunk.
func (c *Chunk) InBounds(x, y, z, w int) bool {
	return x >= 0 && x < c.Size &&
		y >= 0 && y < c.Size &&
		z >= 0 && z < c.Size &&
		w >= 0 && w < c.Size
}

// At returns the block at (x, y, z, w); out-of-bounds cells are empty.
func (c *Chunk) At(x, y, z, w int) Block {
	if !c.InBounds(x, y, z, w) {
		return Block{}
	}
	return c.Blocks[c.Index(x, y, z, w)]
}

// Set stores a block at (x, y, z, w); out-of-bounds writes are dropped.
func (c *Chunk) Set(x, y, z, w int, b Block) {
	if !c.InBounds(x, y, z, w) {
		return
	}
	c.Blocks[c.Index(x, y, z, w)] = b
}

// Count returns the number of existing blocks.
func (c *Chunk) Count() int {
	n := 0
	for i := range c.Blocks {
		if c.Blocks[i].Exists {
			n++
		}
	}
	return n
}

// FillEvery marks every n-th cell of the flat block array as existing with
// the given color, clearing the rest.
func (c *Chunk) FillEvery(n int, color RGB) {
	if n <= 0 {
		return
	}
	for i := range c.Blocks {
		if i%n == 0 {
			c.Blocks[i] = Block{Color: color, Exists: true}
		} else {
			c.Blocks[i] = Block{}
		}
	}
}

// DefaultChunk returns the built-in test world: a 4⁴ chunk with every third
// cell filled green.
func DefaultChunk() *Chunk {
	c := NewChunk(DefaultSize)
	c.FillEvery(3, RGB{G: 1})
	return c
}
