package raster

import "github.com/juliaray/raster3d/pkg/math3d"

// InputVertex is the caller-supplied, pre-transform vertex: a model-space
// position, texture coordinates, and an optional per-vertex color. It is
// immutable once submitted to Renderer.Draw.
type InputVertex struct {
	Position math3d.Vec3
	UV       math3d.Vec2
	Color    math3d.Vec3 // per-vertex color as linear RGB in [0,1]; zero value is black
}

// Vertex is a post-geometry vertex: a homogeneous position whose layout is
// (x_ndc, y_ndc, z_ndc, w_preserved), where w carries the pre-divide
// view-space depth used as the perspective-correct interpolation denominator.
// Texture coordinates and color are carried through unchanged from the
// InputVertex.
type Vertex struct {
	Position math3d.Vec4
	UV       math3d.Vec2
	Color    math3d.Vec3
}

// Face is an ordered triple of indices into a vertex array. Winding order is
// not used for culling by the core rasterizer.
type Face struct {
	A, B, C int
}
