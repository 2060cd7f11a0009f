package raster

import "testing"

func TestNewFramebufferClearedState(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	for y := -2; y < 2; y++ {
		for x := -2; x < 2; x++ {
			if c := fb.At(x, y); c != (Color{}) {
				t.Fatalf("At(%d,%d) = %v, want zero color", x, y, c)
			}
			if d := fb.Depth(x, y); d != DefaultDepthSentinel {
				t.Fatalf("Depth(%d,%d) = %v, want sentinel", x, y, d)
			}
		}
	}
}

func TestFramebufferOriginCenteredIndexing(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.TestAndWrite(-2, -2, 0, ColorRed)
	fb.TestAndWrite(1, 1, 0, ColorBlue)

	if c := fb.At(-2, -2); c != ColorRed {
		t.Fatalf("At(-2,-2) = %v, want red", c)
	}
	if c := fb.At(1, 1); c != ColorBlue {
		t.Fatalf("At(1,1) = %v, want blue", c)
	}
}

func TestFramebufferOutOfViewportWriteIsNoop(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.TestAndWrite(100, 100, 5, ColorRed)
	if d := fb.Depth(100, 100); d != DefaultDepthSentinel {
		t.Fatalf("out-of-bounds write leaked into Depth: %v", d)
	}
}

func TestFramebufferDepthTestStrictlyGreater(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.TestAndWrite(0, 0, 1.0, ColorRed)
	fb.TestAndWrite(0, 0, 1.0, ColorBlue) // equal depth must not overwrite
	if c := fb.At(0, 0); c != ColorRed {
		t.Fatalf("equal-depth write overwrote pixel: got %v, want red", c)
	}

	fb.TestAndWrite(0, 0, 0.5, ColorGreen) // lesser depth must not overwrite
	if c := fb.At(0, 0); c != ColorRed {
		t.Fatalf("lesser-depth write overwrote pixel: got %v, want red", c)
	}

	fb.TestAndWrite(0, 0, 2.0, ColorGreen) // greater depth must win
	if c := fb.At(0, 0); c != ColorGreen {
		t.Fatalf("greater-depth write did not win: got %v, want green", c)
	}
}

func TestFramebufferClearResetsState(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.TestAndWrite(0, 0, 1.0, ColorWhite)
	fb.Clear()
	if c := fb.At(0, 0); c != (Color{}) {
		t.Fatalf("At(0,0) after Clear = %v, want zero color", c)
	}
	if d := fb.Depth(0, 0); d != DefaultDepthSentinel {
		t.Fatalf("Depth(0,0) after Clear = %v, want sentinel", d)
	}
}

func TestFramebufferColorBytesLength(t *testing.T) {
	fb := NewFramebuffer(3, 5)
	b := fb.ColorBytes()
	if want := 3 * 5 * 3; len(b) != want {
		t.Fatalf("len(ColorBytes()) = %d, want %d", len(b), want)
	}
}
