package raster

import (
	"testing"

	"github.com/juliaray/raster3d/pkg/math3d"
)

func TestRendererDrawSingleTriangleFlatFill(t *testing.T) {
	r := NewRenderer(20, 20)
	verts := []InputVertex{
		{Position: math3d.V3(-0.5, -0.5, -2)},
		{Position: math3d.V3(0.5, -0.5, -2)},
		{Position: math3d.V3(0, 0.5, -2)},
	}
	faces := []Face{{A: 0, B: 1, C: 2}}

	r.Draw(verts, faces, SolidTexture{Color: ColorRed}, math3d.Identity())

	if c := r.FB.At(0, 0); c != ColorRed {
		t.Fatalf("center pixel = %v, want red", c)
	}
}

func TestRendererDrawIsAdditiveAcrossCalls(t *testing.T) {
	r := NewRenderer(20, 20)
	tri := []InputVertex{
		{Position: math3d.V3(-0.5, -0.5, -2)},
		{Position: math3d.V3(0.5, -0.5, -2)},
		{Position: math3d.V3(0, 0.5, -2)},
	}
	faces := []Face{{A: 0, B: 1, C: 2}}

	r.Draw(tri, faces, SolidTexture{Color: ColorRed}, math3d.Identity())
	r.Draw(tri, faces, SolidTexture{Color: ColorBlue}, math3d.Translate(math3d.V3(5, 5, 0)))

	if c := r.FB.At(0, 0); c != ColorRed {
		t.Fatalf("original triangle pixel overwritten: got %v, want red", c)
	}
}

func TestRendererDepthTestNearerTriangleWinsRegardlessOfDrawOrder(t *testing.T) {
	near := []InputVertex{
		{Position: math3d.V3(-0.5, -0.5, -1)},
		{Position: math3d.V3(0.5, -0.5, -1)},
		{Position: math3d.V3(0, 0.5, -1)},
	}
	far := []InputVertex{
		{Position: math3d.V3(-0.5, -0.5, -5)},
		{Position: math3d.V3(0.5, -0.5, -5)},
		{Position: math3d.V3(0, 0.5, -5)},
	}
	faces := []Face{{A: 0, B: 1, C: 2}}

	r1 := NewRenderer(20, 20)
	r1.Draw(far, faces, SolidTexture{Color: ColorBlue}, math3d.Identity())
	r1.Draw(near, faces, SolidTexture{Color: ColorRed}, math3d.Identity())

	r2 := NewRenderer(20, 20)
	r2.Draw(near, faces, SolidTexture{Color: ColorRed}, math3d.Identity())
	r2.Draw(far, faces, SolidTexture{Color: ColorBlue}, math3d.Identity())

	c1 := r1.FB.At(0, 0)
	c2 := r2.FB.At(0, 0)
	if c1 != ColorRed || c2 != ColorRed {
		t.Fatalf("nearer triangle must win regardless of draw order: got %v and %v, want red both", c1, c2)
	}
}

func TestRendererClearResetsFramebuffer(t *testing.T) {
	r := NewRenderer(10, 10)
	tri := []InputVertex{
		{Position: math3d.V3(-0.5, -0.5, -2)},
		{Position: math3d.V3(0.5, -0.5, -2)},
		{Position: math3d.V3(0, 0.5, -2)},
	}
	r.Draw(tri, []Face{{A: 0, B: 1, C: 2}}, SolidTexture{Color: ColorWhite}, math3d.Identity())
	r.Clear()
	if c := r.FB.At(0, 0); c != (Color{}) {
		t.Fatalf("pixel after Clear = %v, want zero color", c)
	}
}

func TestRendererDrawClipsTriangleStraddlingViewport(t *testing.T) {
	r := NewRenderer(10, 10)
	verts := []InputVertex{
		{Position: math3d.V3(-5, -5, -2)},
		{Position: math3d.V3(5, -5, -2)},
		{Position: math3d.V3(0, 5, -2)},
	}
	// Drawing must not panic or index out of range even though the
	// triangle's projected extent vastly exceeds the viewport.
	r.Draw(verts, []Face{{A: 0, B: 1, C: 2}}, SolidTexture{Color: ColorGreen}, math3d.Identity())
}
