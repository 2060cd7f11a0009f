package raster

import "github.com/juliaray/raster3d/pkg/math3d"

// Fragment is a TriangleRaster enriched with interpolated attributes and
// depth, immediately before framebuffer resolution.
type Fragment struct {
	Point
	Depth float64
	UV    math3d.Vec2
	Color math3d.Vec3
}

// Shade computes the fragment for a TriangleRaster. Texture coordinates and
// color are interpolated perspective-correctly by dividing each vertex's
// barycentric weight by its preserved view-space depth (Vertex.Position.W).
// Depth itself is interpolated linearly in screen space, not
// perspective-corrected -- this asymmetry matches the source renderer and is
// intentional, not a bug to "fix". ok is false if the interpolated depth
// falls outside [-1, 1] and the fragment must be dropped.
func Shade(r TriangleRaster) (frag Fragment, ok bool) {
	v0, v1, v2 := r.Basis[0], r.Basis[1], r.Basis[2]
	b := r.Bary

	w0 := b[0] / v0.Position.W
	w1 := b[1] / v1.Position.W
	w2 := b[2] / v2.Position.W
	wSum := w0 + w1 + w2

	uv := v0.UV.Scale(w0).Add(v1.UV.Scale(w1)).Add(v2.UV.Scale(w2)).Scale(1 / wSum)
	color := v0.Color.Scale(w0).Add(v1.Color.Scale(w1)).Add(v2.Color.Scale(w2)).Scale(1 / wSum)

	depth := v0.Position.Z*b[0] + v1.Position.Z*b[1] + v2.Position.Z*b[2]
	if depth < -1 || depth > 1 {
		return Fragment{}, false
	}

	return Fragment{
		Point: r.Point,
		Depth: depth,
		UV:    uv,
		Color: color,
	}, true
}
