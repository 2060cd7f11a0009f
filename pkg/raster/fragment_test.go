package raster

import (
	"testing"

	"github.com/juliaray/raster3d/pkg/math3d"
)

func vertexAt(z, w float64, uv math3d.Vec2) Vertex {
	return Vertex{Position: math3d.V4(0, 0, z, w), UV: uv}
}

func TestShadeDropsFragmentOutsideDepthRange(t *testing.T) {
	basis := [3]Vertex{
		vertexAt(2, 1, math3d.V2(0, 0)),
		vertexAt(2, 1, math3d.V2(1, 0)),
		vertexAt(2, 1, math3d.V2(0, 1)),
	}
	r := TriangleRaster{Bary: Barycentric{1.0 / 3, 1.0 / 3, 1.0 / 3}, Basis: basis}
	_, ok := Shade(r)
	if ok {
		t.Fatal("expected fragment with depth=2 to be culled (outside [-1,1])")
	}
}

func TestShadeKeepsFragmentInsideDepthRange(t *testing.T) {
	basis := [3]Vertex{
		vertexAt(0, 1, math3d.V2(0, 0)),
		vertexAt(0, 1, math3d.V2(1, 0)),
		vertexAt(0, 1, math3d.V2(0, 1)),
	}
	r := TriangleRaster{Point: Point{X: 3, Y: 4}, Bary: Barycentric{1.0 / 3, 1.0 / 3, 1.0 / 3}, Basis: basis}
	f, ok := Shade(r)
	if !ok {
		t.Fatal("expected fragment with depth=0 to survive culling")
	}
	if f.X != 3 || f.Y != 4 {
		t.Fatalf("fragment point = %v, want (3,4)", f.Point)
	}
	if f.Depth != 0 {
		t.Fatalf("depth = %v, want 0", f.Depth)
	}
}

func TestShadePerspectiveCorrectUVAtVertex(t *testing.T) {
	// At barycentric (1,0,0) the result must equal vertex 0's own UV
	// regardless of how the three w values differ.
	basis := [3]Vertex{
		vertexAt(0, 1, math3d.V2(0.2, 0.4)),
		vertexAt(0, 5, math3d.V2(0.9, 0.9)),
		vertexAt(0, 9, math3d.V2(0.1, 0.1)),
	}
	r := TriangleRaster{Bary: Barycentric{1, 0, 0}, Basis: basis}
	f, ok := Shade(r)
	if !ok {
		t.Fatal("expected fragment to survive")
	}
	if f.UV != basis[0].UV {
		t.Fatalf("UV = %v, want %v", f.UV, basis[0].UV)
	}
}

func TestShadeInterpolatesColor(t *testing.T) {
	basis := [3]Vertex{
		{Position: math3d.V4(0, 0, 0, 1), Color: math3d.V3(1, 0, 0)},
		{Position: math3d.V4(0, 0, 0, 1), Color: math3d.V3(0, 1, 0)},
		{Position: math3d.V4(0, 0, 0, 1), Color: math3d.V3(0, 0, 1)},
	}
	r := TriangleRaster{Bary: Barycentric{1.0 / 3, 1.0 / 3, 1.0 / 3}, Basis: basis}
	f, ok := Shade(r)
	if !ok {
		t.Fatal("expected fragment to survive")
	}
	want := 1.0 / 3
	if f.Color.X < want-1e-9 || f.Color.X > want+1e-9 {
		t.Fatalf("Color.X = %v, want ~%v", f.Color.X, want)
	}
}
