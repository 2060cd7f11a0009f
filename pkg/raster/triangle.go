package raster

import "math"

// Barycentric is a 3-lane weight vector over a triangle's three vertices.
// The lanes are indexed the same way as the owning TriangleRaster's Basis.
type Barycentric [3]float64

// Scale returns the barycentric vector scaled by s.
func (b Barycentric) Scale(s float64) Barycentric {
	return Barycentric{b[0] * s, b[1] * s, b[2] * s}
}

// Add returns the lane-wise sum of two barycentric vectors.
func (b Barycentric) Add(o Barycentric) Barycentric {
	return Barycentric{b[0] + o[0], b[1] + o[1], b[2] + o[2]}
}

// TriangleRaster is one pixel produced by scan-converting a triangle,
// carrying the barycentric weight of that pixel over the triangle's three
// vertices and a reference to the vertices themselves.
type TriangleRaster struct {
	Point
	Bary  Barycentric
	Basis [3]Vertex
}

// projectToPixel converts a vertex's already-normalized [-1,1] (x, y) into an
// origin-centered pixel coordinate, per the geometry stage's NDC convention.
func projectToPixel(v Vertex, width, height int) Point {
	return Point{
		X: int(math.Round(v.Position.X * float64(width) / 2)),
		Y: int(math.Round(v.Position.Y * float64(height) / 2)),
	}
}

// edgeRaster scan-converts the edge between basis lanes i and j, assigning
// each emitted pixel a Barycentric with weight in lanes i and j only.
func edgeRaster(basis [3]Vertex, i, j int, width, height int) []TriangleRaster {
	pi := projectToPixel(basis[i], width, height)
	pj := projectToPixel(basis[j], width, height)
	lines := RasterizeLine(pi, pj)
	out := make([]TriangleRaster, len(lines))
	for n, lr := range lines {
		var bary Barycentric
		bary[i] = lr.K1
		bary[j] = lr.K2
		out[n] = TriangleRaster{Point: lr.Point, Bary: bary, Basis: basis}
	}
	return out
}

// scanlineHull is the per-column (top, bottom) edge-raster pair used to
// sweep a triangle's interior. Reused across draws by the Renderer to avoid
// reallocating it per triangle.
type scanlineHull struct {
	filled []bool
	min    []TriangleRaster
	max    []TriangleRaster
}

func newScanlineHull(width int) *scanlineHull {
	return &scanlineHull{
		filled: make([]bool, width),
		min:    make([]TriangleRaster, width),
		max:    make([]TriangleRaster, width),
	}
}

func (h *scanlineHull) reset() {
	for i := range h.filled {
		h.filled[i] = false
	}
}

// RasterizeTriangle scan-converts the triangle spanned by basis, whose
// vertex (x, y) components are already-normalized NDC coordinates, into a
// set of TriangleRaster records covering its filled interior. hull is
// scratch state sized to the framebuffer's width; callers should retain and
// reuse one hull across draws.
func RasterizeTriangle(basis [3]Vertex, width, height int, hull *scanlineHull) []TriangleRaster {
	var edges []TriangleRaster
	edges = append(edges, edgeRaster(basis, 0, 1, width, height)...)
	edges = append(edges, edgeRaster(basis, 1, 2, width, height)...)
	edges = append(edges, edgeRaster(basis, 0, 2, width, height)...)
	// The half-open edge runs can leave a vertex pixel unemitted (an apex
	// that is the excluded end of both edges meeting at it), so the three
	// vertex pixels are fed into the hull explicitly.
	for i := range basis {
		var bary Barycentric
		bary[i] = 1
		edges = append(edges, TriangleRaster{Point: projectToPixel(basis[i], width, height), Bary: bary, Basis: basis})
	}

	hull.reset()
	half := width / 2
	for _, r := range edges {
		idx := r.X + half
		if idx < 0 || idx >= width {
			continue
		}
		if !hull.filled[idx] {
			hull.filled[idx] = true
			hull.min[idx] = r
			hull.max[idx] = r
			continue
		}
		if r.Y < hull.min[idx].Y {
			hull.min[idx] = r
		}
		if r.Y > hull.max[idx].Y {
			hull.max[idx] = r
		}
	}

	var out []TriangleRaster
	for idx := 0; idx < width; idx++ {
		if !hull.filled[idx] {
			continue
		}
		rMin := hull.min[idx]
		rMax := hull.max[idx]
		x := rMin.X
		yMin, yMax := rMin.Y, rMax.Y
		for y := yMin; y <= yMax; y++ {
			if y == yMin {
				out = append(out, TriangleRaster{Point: Point{X: x, Y: y}, Bary: rMin.Bary, Basis: basis})
				continue
			}
			if y == yMax {
				out = append(out, TriangleRaster{Point: Point{X: x, Y: y}, Bary: rMax.Bary, Basis: basis})
				continue
			}
			k1, k2 := linearInterpolation(Point{X: x, Y: y}, rMin.Point, rMax.Point)
			bary := rMin.Bary.Scale(k1).Add(rMax.Bary.Scale(k2))
			out = append(out, TriangleRaster{Point: Point{X: x, Y: y}, Bary: bary, Basis: basis})
		}
	}
	return out
}
