package raster

import "testing"

func TestRasterizeLineZeroLengthEmitsNothing(t *testing.T) {
	got := RasterizeLine(Point{X: 3, Y: 3}, Point{X: 3, Y: 3})
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0 for zero-length segment", len(got))
	}
}

func TestRasterizeLineHorizontal(t *testing.T) {
	got := RasterizeLine(Point{X: 0, Y: 0}, Point{X: 10, Y: 0})
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10 (half-open)", len(got))
	}
	for i, lr := range got {
		if lr.X != i || lr.Y != 0 {
			t.Fatalf("point %d = %v, want (%d, 0)", i, lr.Point, i)
		}
	}
	if got[0].K1 != 1 || got[0].K2 != 0 {
		t.Fatalf("first pixel bary = (%v, %v), want (1, 0)", got[0].K1, got[0].K2)
	}
}

func TestRasterizeLineVertical(t *testing.T) {
	got := RasterizeLine(Point{X: 0, Y: 0}, Point{X: 0, Y: 10})
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	for i, lr := range got {
		if lr.X != 0 || lr.Y != i {
			t.Fatalf("point %d = %v, want (0, %d)", i, lr.Point, i)
		}
	}
}

func TestRasterizeLineNegativeEndpoints(t *testing.T) {
	got := RasterizeLine(Point{X: -5, Y: -5}, Point{X: 5, Y: 5})
	if len(got) == 0 {
		t.Fatal("expected non-empty run for diagonal segment")
	}
	if first := got[0]; first.Point != (Point{X: -5, Y: -5}) {
		t.Fatalf("first point = %v, want (-5,-5)", first.Point)
	}
}

func TestBresenhamDiagonalIsExact(t *testing.T) {
	pts := bresenhamLine(Point{X: 0, Y: 0}, Point{X: 4, Y: 4})
	want := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestBresenhamShallowSlopeStaysMonotonic(t *testing.T) {
	pts := bresenhamLine(Point{X: 0, Y: 0}, Point{X: 10, Y: 3})
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}
	prevY := pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < prevY {
			t.Fatalf("y decreased along a rising shallow line: %v after y=%d", p, prevY)
		}
		prevY = p.Y
	}
	if last := pts[len(pts)-1]; last.Y > 3 {
		t.Fatalf("last y = %d, want <= 3", last.Y)
	}
}
