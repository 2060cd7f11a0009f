package raster

import "github.com/juliaray/raster3d/pkg/math3d"

// Renderer owns a Framebuffer and the scratch state needed to rasterize
// triangles into it. It exposes a single public draw operation; the
// pipeline stages it composes (Geometry, RasterizeTriangle, Shade) are also
// usable standalone for testing or debug visualization.
type Renderer struct {
	FB   *Framebuffer
	Near float64
	Far  float64

	hull *scanlineHull
}

// NewRenderer allocates a Renderer with a Framebuffer of the given pixel
// dimensions and default near/far clip distances.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		FB:   NewFramebuffer(width, height),
		Near: DefaultNear,
		Far:  DefaultFar,
		hull: newScanlineHull(width),
	}
}

// Draw runs the full pipeline for a mesh: geometry once over every vertex,
// then for each face a triangle raster, fragment shade, and framebuffer
// resolution against texture. Drawing is additive against the existing
// framebuffer contents; Clear is the only way to reset it.
func (r *Renderer) Draw(vertices []InputVertex, faces []Face, texture Sampler, model math3d.Mat4) {
	transformed := make([]Vertex, len(vertices))
	for i, v := range vertices {
		transformed[i] = Geometry(v, model, r.Near, r.Far)
	}

	for _, f := range faces {
		basis := [3]Vertex{transformed[f.A], transformed[f.B], transformed[f.C]}
		rasters := RasterizeTriangle(basis, r.FB.Width, r.FB.Height, r.hull)
		for _, tr := range rasters {
			frag, ok := Shade(tr)
			if !ok {
				continue
			}
			color := texture.Sample(frag.UV.X, frag.UV.Y)
			r.FB.TestAndWrite(frag.X, frag.Y, frag.Depth, color)
		}
	}
}

// Clear resets the renderer's framebuffer to its initial state.
func (r *Renderer) Clear() {
	r.FB.Clear()
}
