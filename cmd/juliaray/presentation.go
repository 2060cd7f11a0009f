package main

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/juliaray/raster3d/pkg/raster"
)

// terminalRenderer presents a raster.Framebuffer on a terminal of known cell
// dimensions. A terminal cell covers two framebuffer rows via the half-block
// trick, so the framebuffer it presents is sized twice as tall as the
// terminal (see framebufferSize).
type terminalRenderer struct {
	term   *uv.Terminal
	width  int
	height int
}

// newTerminalRenderer sizes a renderer to the terminal's current cell grid.
func newTerminalRenderer(term *uv.Terminal, width, height int) *terminalRenderer {
	return &terminalRenderer{term: term, width: width, height: height}
}

// framebufferSize returns the pixel dimensions the framebuffer passed to
// render should be allocated at: one column per terminal cell, two rows per
// cell.
func (t *terminalRenderer) framebufferSize() (width, height int) {
	return t.width, t.height * 2
}

// render draws fb onto the terminal's cell grid but does not push it to the
// display; call flush to do that.
func (t *terminalRenderer) render(fb *raster.Framebuffer) {
	drawFramebuffer(fb, t.term, uv.Rectangle{Max: uv.Point{X: t.width, Y: t.height}})
}

// flush pushes the terminal's pending cell grid to the display.
func (t *terminalRenderer) flush() error {
	return t.term.Display()
}

// drawFramebuffer presents a raster.Framebuffer onto a terminal screen using
// the half-block trick: each terminal cell covers two framebuffer rows, the
// upper one as foreground and the lower as background of a "▀" glyph. fb's
// pixel coordinates are origin-centered; area is in terminal cell space
// starting at (0,0).
func drawFramebuffer(fb *raster.Framebuffer, scr uv.Screen, area uv.Rectangle) {
	halfW := fb.Width / 2
	halfH := fb.Height / 2

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row*2 - halfH
		botY := topY + 1
		if topY >= halfH {
			continue
		}

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			x := col - halfW
			top := fb.At(x, topY)
			bot := fb.At(x, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: colorToColor(top),
					Bg: colorToColor(bot),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func colorToColor(c raster.Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
