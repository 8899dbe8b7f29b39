//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ising/pkg/ising"
)

// Painter keeps one RGBA image in sync with a lattice preview.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter returns an empty painter; the image is allocated on first Blit.
func NewPainter() *Painter { return &Painter{} }

// Blit uploads the preview and draws it at the origin of dst. The backing
// image is reallocated when the preview dimensions change.
func (p *Painter) Blit(dst *ebiten.Image, pb ising.PixelBuffer) {
	if pb.Width <= 0 || pb.Height <= 0 || len(pb.RGB) != pb.Width*pb.Height*3 {
		return
	}
	if p.img == nil || p.w != pb.Width || p.h != pb.Height {
		if p.img != nil {
			p.img.Dispose()
		}
		p.w, p.h = pb.Width, pb.Height
		p.img = ebiten.NewImage(p.w, p.h)
		p.buf = make([]byte, 4*p.w*p.h)
	}
	FillRGBA(p.buf, pb.RGB)
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, nil)
}

// Size returns the dimensions of the last uploaded preview.
func (p *Painter) Size() (int, int) { return p.w, p.h }
