package raster

import "github.com/juliaray/raster3d/pkg/math3d"

// DefaultNear and DefaultFar are the clip-plane distances used by Geometry
// when a Renderer is not configured with its own.
const (
	DefaultNear = 0.01
	DefaultFar  = 1000.0
)

// Geometry transforms one InputVertex through the given model matrix into a
// post-geometry Vertex. It performs no projection-matrix multiply: the
// perspective divide is done explicitly by dividing x and y by the
// transformed z, and z_ndc is computed directly from near/far. The
// pre-divide z is preserved in the w lane for later perspective-correct
// interpolation.
func Geometry(v InputVertex, model math3d.Mat4, near, far float64) Vertex {
	p := model.MulVec4(math3d.V4(v.Position.X, v.Position.Y, v.Position.Z, 1))

	zNdc := -(far+near)/(far-near) - 2*far*near/(p.Z*(far-near))

	return Vertex{
		Position: math3d.V4(p.X/p.Z, p.Y/p.Z, zNdc, p.Z),
		UV:       v.UV,
		Color:    v.Color,
	}
}
