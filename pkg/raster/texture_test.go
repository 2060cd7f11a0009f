package raster

import "testing"

func TestSolidTextureAlwaysSameColor(t *testing.T) {
	tex := SolidTexture{Color: ColorRed}
	if tex.Sample(-1, -1) != ColorRed || tex.Sample(1, 1) != ColorRed {
		t.Fatal("SolidTexture must return the same color everywhere")
	}
}

func TestCheckerTextureAlternates(t *testing.T) {
	tex := CheckerTexture{Cells: 2, A: ColorBlack, B: ColorWhite}
	c1 := tex.Sample(-0.9, -0.9)
	c2 := tex.Sample(0.9, -0.9)
	if c1 == c2 {
		t.Fatal("adjacent checker cells should differ")
	}
}

func TestGradientTextureEndpoints(t *testing.T) {
	tex := GradientTexture{Left: ColorBlack, Right: ColorWhite}
	if c := tex.Sample(-1, 0); c != ColorBlack {
		t.Fatalf("Sample(-1,0) = %v, want black", c)
	}
	if c := tex.Sample(1, 0); c != ColorWhite {
		t.Fatalf("Sample(1,0) = %v, want white", c)
	}
}

func TestClampUnitClampsOutOfRange(t *testing.T) {
	if clampUnit(5) != 1 {
		t.Fatal("clampUnit(5) should clamp to 1")
	}
	if clampUnit(-5) != -1 {
		t.Fatal("clampUnit(-5) should clamp to -1")
	}
	if clampUnit(0.3) != 0.3 {
		t.Fatal("clampUnit(0.3) should be unchanged")
	}
}

func TestImageTextureSamplesNearestNeighbor(t *testing.T) {
	tex := &ImageTexture{
		width:  2,
		height: 2,
		pixels: []Color{ColorRed, ColorGreen, ColorBlue, ColorWhite},
	}
	// Top-left pixel (0,0) corresponds to u=-1, v=1 (v flipped: image row 0 is top).
	if c := tex.Sample(-1, 1); c != ColorRed {
		t.Fatalf("Sample(-1,1) = %v, want red (top-left)", c)
	}
}
