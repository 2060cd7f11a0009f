package raster

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // register 24-bit bitmap decoder
)

// Sampler is the texture contract the core pipeline consumes: sample(u,v)
// over (u,v) in [-1,1]^2, clamped to the edge, with width/height exposed for
// callers that need them but never read by the core itself. Any type
// satisfying this interface -- procedural, bitmap-backed, or solid-color --
// can be handed to Renderer.Draw.
type Sampler interface {
	Sample(u, v float64) Color
	Width() int
	Height() int
}

func clampUnit(c float64) float64 {
	if c < -1 {
		return -1
	}
	if c > 1 {
		return 1
	}
	return c
}

// unitToPixel maps a clamped [-1,1] coordinate to a nearest-neighbor pixel
// index in [0, size).
func unitToPixel(c float64, size int) int {
	t := (c + 1) / 2
	x := int(t * float64(size))
	if x >= size {
		x = size - 1
	}
	if x < 0 {
		x = 0
	}
	return x
}

// SolidTexture samples the same color everywhere.
type SolidTexture struct {
	Color Color
}

func (t SolidTexture) Sample(u, v float64) Color { return t.Color }
func (t SolidTexture) Width() int                { return 1 }
func (t SolidTexture) Height() int               { return 1 }

// CheckerTexture is a procedural checkerboard over [-1,1]^2, divided into a
// Cells x Cells grid alternating between A and B.
type CheckerTexture struct {
	Cells int
	A, B  Color
}

func (t CheckerTexture) Sample(u, v float64) Color {
	u, v = clampUnit(u), clampUnit(v)
	cx := int((u + 1) / 2 * float64(t.Cells))
	cy := int((v + 1) / 2 * float64(t.Cells))
	if (cx+cy)%2 == 0 {
		return t.A
	}
	return t.B
}
func (t CheckerTexture) Width() int  { return t.Cells }
func (t CheckerTexture) Height() int { return t.Cells }

// GradientTexture interpolates linearly along u between Left and Right,
// ignoring v.
type GradientTexture struct {
	Left, Right Color
}

func (t GradientTexture) Sample(u, v float64) Color {
	u = clampUnit(u)
	return LerpColor(t.Left, t.Right, (u+1)/2)
}
func (t GradientTexture) Width() int  { return 2 }
func (t GradientTexture) Height() int { return 1 }

// ImageTexture wraps a decoded raster image (PNG, JPEG, or 24-bit BMP) and
// samples it nearest-neighbor with clamp-to-edge addressing.
type ImageTexture struct {
	width, height int
	pixels        []Color
}

// LoadImageTexture opens and decodes an image file into an ImageTexture.
func LoadImageTexture(path string) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decode texture: %w", err)
	}
	return NewImageTexture(img), nil
}

// NewImageTexture converts a decoded image.Image into an ImageTexture.
func NewImageTexture(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		}
	}
	return &ImageTexture{width: w, height: h, pixels: pixels}
}

func (t *ImageTexture) Sample(u, v float64) Color {
	u, v = clampUnit(u), clampUnit(v)
	x := unitToPixel(u, t.width)
	y := unitToPixel(-v, t.height) // image row 0 is top; v=1 is "up"
	return t.pixels[y*t.width+x]
}
func (t *ImageTexture) Width() int  { return t.width }
func (t *ImageTexture) Height() int { return t.height }
