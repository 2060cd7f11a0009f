package raster

import "fmt"

// Point is an integer pixel-space coordinate, origin-centered like the
// Framebuffer it is eventually written into.
type Point struct {
	X, Y int
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// linearInterpolation returns (k1, k2), k1+k2=1, expressing query pixel q's
// position along the segment p1->p2: if the segment is not purely vertical,
// k2 is the fraction of the x-distance from p1 to q; otherwise the analogous
// ratio in y is used. p1 and p2 must not coincide -- callers that can't
// guarantee this have a programmer bug, so this panics rather than returning
// a zero value that would silently corrupt a scan conversion.
func linearInterpolation(q, p1, p2 Point) (k1, k2 float64) {
	dx := absInt(p1.X - p2.X)
	if dx != 0 {
		qv := float64(absInt(p1.X-q.X)) / float64(dx)
		return 1 - qv, qv
	}
	dy := absInt(p1.Y - p2.Y)
	if dy == 0 {
		panic(fmt.Sprintf("raster: linearInterpolation called on a zero-length segment %v == %v", p1, p2))
	}
	qv := float64(absInt(p1.Y-q.Y)) / float64(dy)
	return 1 - qv, qv
}
