package ising

import "image/color"

var (
	// UpColor is the pixel color of an Up site.
	UpColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	// DownColor is the pixel color of a Down site.
	DownColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// PixelBuffer is a packed RGB image, three bytes per pixel, row-major.
type PixelBuffer struct {
	Width  int
	Height int
	RGB    []byte
}

// PreviewScale returns the integer upscale factor used for a target extent.
func PreviewScale(extent, size int) int {
	if extent < 0 {
		extent = 0
	}
	return extent/size + 1
}

// RenderPreview draws each site as a solid scale×scale block where scale is
// floor(extent/size)+1.
func (l *Lattice) RenderPreview(extent int) PixelBuffer {
	scale := PreviewScale(extent, l.size)
	side := l.size * scale
	rgb := make([]byte, 0, side*side*3)

	for y := 0; y < l.size; y++ {
		for row := 0; row < scale; row++ {
			for x := 0; x < l.size; x++ {
				c := spinColor(l.At(x, y))
				for col := 0; col < scale; col++ {
					rgb = append(rgb, c.R, c.G, c.B)
				}
			}
		}
	}
	return PixelBuffer{Width: side, Height: side, RGB: rgb}
}

// ExportRaw returns a 1:1 RGB buffer of length 3·size² and the side length.
func (l *Lattice) ExportRaw() ([]byte, int) {
	rgb := make([]byte, 0, len(l.state)*3)
	for y := 0; y < l.size; y++ {
		for x := 0; x < l.size; x++ {
			c := spinColor(l.At(x, y))
			rgb = append(rgb, c.R, c.G, c.B)
		}
	}
	return rgb, l.size
}

func spinColor(s Spin) color.RGBA {
	if s == Up {
		return UpColor
	}
	return DownColor
}
