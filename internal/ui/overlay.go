//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ising/internal/core"
	"ising/internal/render"
)

var (
	// Colors are premultiplied: no component exceeds alpha.
	lowEnergyTint  = color.RGBA{R: 0, G: 40, B: 120, A: 120}
	highEnergyTint = color.RGBA{R: 170, G: 160, B: 0, A: 170}
)

// Overlay tints every site by its local energy. Key 1 toggles it.
type Overlay struct {
	sim  core.Sim
	show bool

	img  *ebiten.Image
	buf  []byte
	w, h int
}

// NewOverlay constructs an overlay for sims that expose a scalar field.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o != nil && o.show }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay scaled to match the preview.
func (o *Overlay) Draw(screen *ebiten.Image, scale int) {
	if !o.Visible() {
		return
	}
	provider, ok := o.sim.(core.FieldProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	field := provider.Field()
	if size.W <= 0 || size.H <= 0 || len(field) != size.W*size.H {
		return
	}
	if o.img == nil || o.w != size.W || o.h != size.H {
		if o.img != nil {
			o.img.Dispose()
		}
		o.w, o.h = size.W, size.H
		o.img = ebiten.NewImage(o.w, o.h)
		o.buf = make([]byte, 4*o.w*o.h)
	}

	lo, hi := field[0], field[0]
	for _, v := range field[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	render.FillHeatRGBA(o.buf, field, lo, hi, lowEnergyTint, highEnergyTint)
	o.img.WritePixels(o.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
