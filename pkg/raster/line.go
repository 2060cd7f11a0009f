package raster

// LineRaster is one pixel produced by scan-converting a line segment, carrying
// the barycentric weight pair (K1, K2) -- K1+K2=1 -- of its position along the
// original segment. K1 is the weight of the segment's first endpoint, K2 of
// its second.
type LineRaster struct {
	Point
	K1, K2 float64
}

// RasterizeLine scan-converts the segment a->b with Bresenham's algorithm and
// returns one LineRaster per covered pixel. The run is half-open: it always
// includes the segment's start pixel (after driving-axis direction is
// resolved) and excludes its end pixel, so that two edges sharing an
// endpoint never both emit it. Pixel order follows the line's driving axis;
// it is not guaranteed to run from a to b.
func RasterizeLine(a, b Point) []LineRaster {
	pts := bresenhamLine(a, b)
	out := make([]LineRaster, len(pts))
	for i, p := range pts {
		k1, k2 := linearInterpolation(p, a, b)
		out[i] = LineRaster{Point: p, K1: k1, K2: k2}
	}
	return out
}

// bresenhamLine walks the pixel grid from a to b using integer Bresenham
// stepping, selecting x or y as the driving axis by whichever delta is
// larger in magnitude. A zero-length segment emits nothing.
func bresenhamLine(a, b Point) []Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if absInt(dx) >= absInt(dy) {
		if dx >= 0 {
			return lineUnitX(a, dx, dy)
		}
		return lineUnitX(b, -dx, -dy)
	}
	if dy >= 0 {
		return lineUnitY(a, dx, dy)
	}
	return lineUnitY(b, -dx, -dy)
}

// lineUnitX walks the x axis one pixel at a time from a, for dx >= 0, nudging
// y by the Bresenham error term. dy may be of either sign.
func lineUnitX(a Point, dx, dy int) []Point {
	yinc := 1
	if dy < 0 {
		dy = -dy
		yinc = -1
	}
	y := a.Y
	d := 2*dy - dx
	out := make([]Point, 0, dx)
	for x := a.X; x < a.X+dx; x++ {
		out = append(out, Point{X: x, Y: y})
		if d > 0 {
			d -= 2 * dx
			y += yinc
		}
		d += 2 * dy
	}
	return out
}

// lineUnitY walks the y axis one pixel at a time from a, for dy >= 0, nudging
// x by the Bresenham error term. dx may be of either sign.
func lineUnitY(a Point, dx, dy int) []Point {
	xinc := 1
	if dx < 0 {
		dx = -dx
		xinc = -1
	}
	x := a.X
	d := 2*dx - dy
	out := make([]Point, 0, dy)
	for y := a.Y; y < a.Y+dy; y++ {
		out = append(out, Point{X: x, Y: y})
		if d > 0 {
			d -= 2 * dy
			x += xinc
		}
		d += 2 * dx
	}
	return out
}
