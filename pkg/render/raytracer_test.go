package render

import (
	"testing"

	"github.com/tetravox/tetravox/pkg/ga4"
	"github.com/tetravox/tetravox/pkg/voxel"
)

func singleBlockChunk() *voxel.Chunk {
	c := voxel.NewChunk(4)
	c.Set(1, 0, 0, 0, voxel.Block{Color: voxel.RGB{G: 1}, Exists: true})
	return c
}

func TestRenderCenterRayHitsBlock(t *testing.T) {
	rt := NewRaytracer(singleBlockChunk())

	// The camera looks along +x; with an odd framebuffer the center pixel's
	// ray is exactly forward and runs straight into the block at x=1.
	cam := NewCamera(ga4.V4(-2, 0.5, 0.5, 0.5), 90)

	fb := NewFramebuffer(3, 3)
	rt.Render(cam, fb)

	center := fb.GetPixel(1, 1)
	if center.G == 0 || center.G <= center.R || center.G <= center.B {
		t.Fatalf("center pixel = %+v, want green", center)
	}

	// Corner rays fan out past the lone block and hit the sky.
	if got := fb.GetPixel(0, 0); got != rt.Sky {
		t.Fatalf("corner pixel = %+v, want sky %+v", got, rt.Sky)
	}
}

func TestRenderEmptyChunkIsAllSky(t *testing.T) {
	rt := NewRaytracer(voxel.NewChunk(4))
	cam := NewCamera(ga4.V4(-2, 0.5, 0.5, 0.5), 90)

	fb := NewFramebuffer(4, 4)
	rt.Render(cam, fb)

	for i, p := range fb.Pixels {
		if p != rt.Sky {
			t.Fatalf("pixel %d = %+v, want sky", i, p)
		}
	}
}

func TestRenderInsideBlock(t *testing.T) {
	rt := NewRaytracer(singleBlockChunk())
	cam := NewCamera(ga4.V4(1.5, 0.5, 0.5, 0.5), 90)

	fb := NewFramebuffer(3, 3)
	rt.Render(cam, fb)

	// Every ray starts inside the block: full top-face brightness at zero
	// distance.
	want := RGB(0, 255, 0)
	for i, p := range fb.Pixels {
		if p != want {
			t.Fatalf("pixel %d = %+v, want %+v", i, p, want)
		}
	}
}

func TestCastDistanceAndAxis(t *testing.T) {
	rt := NewRaytracer(singleBlockChunk())

	b, axis, dist, ok := rt.cast(ga4.V4(-2, 0.5, 0.5, 0.5), ga4.V4(1, 0, 0, 0))
	if !ok {
		t.Fatal("ray missed the block")
	}
	if b.Color != (voxel.RGB{G: 1}) {
		t.Fatalf("hit color = %+v", b.Color)
	}
	if axis != 0 {
		t.Fatalf("axis = %d, want 0 (x face)", axis)
	}
	if !near(dist, 3) {
		t.Fatalf("dist = %v, want 3", dist)
	}
}

func TestCastEntersThroughAnaFace(t *testing.T) {
	c := voxel.NewChunk(4)
	c.Set(0, 0, 0, 2, voxel.Block{Color: voxel.RGB{R: 1}, Exists: true})
	rt := NewRaytracer(c)

	_, axis, dist, ok := rt.cast(ga4.V4(0.5, 0.5, 0.5, -1), ga4.V4(0, 0, 0, 1))
	if !ok {
		t.Fatal("ray missed the block")
	}
	if axis != 3 {
		t.Fatalf("axis = %d, want 3 (w face)", axis)
	}
	if !near(dist, 3) {
		t.Fatalf("dist = %v, want 3", dist)
	}
}

func TestCastRespectsMaxDistance(t *testing.T) {
	rt := NewRaytracer(singleBlockChunk())
	rt.MaxDistance = 2

	if _, _, _, ok := rt.cast(ga4.V4(-2, 0.5, 0.5, 0.5), ga4.V4(1, 0, 0, 0)); ok {
		t.Fatal("hit reported beyond max distance")
	}
}

func TestShadeFadesWithDistance(t *testing.T) {
	rt := NewRaytracer(singleBlockChunk())
	b := voxel.Block{Color: voxel.RGB{R: 1, G: 1, B: 1}, Exists: true}

	nearPix := rt.shade(b, 1, 0)
	farPix := rt.shade(b, 1, 40)
	if nearPix.R <= farPix.R {
		t.Fatalf("near %+v not brighter than far %+v", nearPix, farPix)
	}

	// Past the cutoff everything is black.
	if got := rt.shade(b, 1, rt.MaxDistance); got != RGB(0, 0, 0) {
		t.Fatalf("at cutoff = %+v, want black", got)
	}
}
