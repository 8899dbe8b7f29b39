package render

import (
	"image"
	"image/color"

	"ising/pkg/ising"
)

// FillRGBA expands packed RGB pixels into opaque RGBA pixels in dst. dst must
// hold at least 4/3 as many bytes as rgb.
func FillRGBA(dst, rgb []byte) {
	n := len(rgb) / 3
	for i := 0; i < n; i++ {
		src := rgb[i*3 : i*3+3]
		base := i * 4
		dst[base+0] = src[0]
		dst[base+1] = src[1]
		dst[base+2] = src[2]
		dst[base+3] = 0xff
	}
}

// NRGBA converts a lattice pixel buffer into an image.
func NRGBA(pb ising.PixelBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	FillRGBA(img.Pix, pb.RGB)
	return img
}

// FillHeatRGBA maps field values into a translucent two-tone ramp. Values at
// or below lo get cold, values at or above hi get hot. When lo == hi every
// pixel is cold.
func FillHeatRGBA(buf []byte, field []float32, lo, hi float32, cold, hot color.RGBA) {
	span := hi - lo
	for i, v := range field {
		t := float32(0)
		if span > 0 {
			t = (v - lo) / span
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		base := i * 4
		buf[base+0] = lerp(cold.R, hot.R, t)
		buf[base+1] = lerp(cold.G, hot.G, t)
		buf[base+2] = lerp(cold.B, hot.B, t)
		buf[base+3] = lerp(cold.A, hot.A, t)
	}
}

func lerp(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
}
