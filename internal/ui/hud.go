//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"ising/internal/core"
	"ising/pkg/ising"
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	selectColor = color.RGBA{R: 40, G: 44, B: 60, A: 255}
	alertColor  = color.RGBA{R: 250, G: 210, B: 120, A: 255}
)

// HUD renders readouts and the parameter panel to the right of the lattice.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	title string

	readouts []core.Readout
	controls *controlPanel
	alert    string

	panelOffsetX int
	pixel        *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, controls: newControlPanel(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	h.layoutControls()
	return h
}

// MinHeight is the panel height needed to show every row.
func (h *HUD) MinHeight() int {
	if h == nil {
		return 0
	}
	return controlsTop(len(h.readouts)) + len(h.controls.controls)*lineHeight + footerHeight
}

// SetAlert shows msg under the controls until replaced.
func (h *HUD) SetAlert(msg string) {
	if h != nil {
		h.alert = msg
	}
}

// Update refreshes readouts and parameters and handles HUD input.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ReadoutProvider); ok {
		n := len(h.readouts)
		h.readouts = provider.Readouts()
		if len(h.readouts) != n {
			h.layoutControls()
		}
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.controls.refresh(provider.Parameters())
	}
	h.handleKeys()
	h.handleMouse()
}

func (h *HUD) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			h.controls.selectNext(-1)
		} else {
			h.controls.selectNext(1)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd), inpututil.IsKeyJustPressed(ebiten.KeyRight):
		h.controls.adjust(h.controls.selected, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract), inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		h.controls.adjust(h.controls.selected, -1)
	}
}

func (h *HUD) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls.controls {
		state := &h.controls.controls[i]
		if pointInRect(px, my, state.minusRect) {
			h.controls.selected = i
			h.controls.adjust(i, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.controls.selected = i
			h.controls.adjust(i, 1)
			return
		}
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)

	for _, r := range h.readouts {
		y += readoutHeight
		text.Draw(h.panel, r.Label, face, panelPadding, y, dimColor)
		h.drawRightAligned(r.Value, y, h.width-panelPadding, textColor)
	}

	y += readoutHeight
	h.drawSwatch(panelPadding, y-10, ising.UpColor)
	text.Draw(h.panel, "Up", face, panelPadding+16, y, textColor)
	h.drawSwatch(panelPadding+56, y-10, ising.DownColor)
	text.Draw(h.panel, "Down", face, panelPadding+72, y, textColor)

	h.drawControls()

	footer := h.footerTop(height)
	if h.alert != "" {
		text.Draw(h.panel, h.alert, face, panelPadding, footer, alertColor)
	}
	for i, line := range keyHints {
		text.Draw(h.panel, line, face, panelPadding, footer+(i+1)*hintHeight, dimColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls.controls {
		state := &h.controls.controls[i]
		if i == h.controls.selected {
			h.fillRect(image.Rect(panelPadding/2, state.top, h.width-panelPadding/2, state.top+lineHeight), selectColor)
		}
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, textColor)

		value := state.value
		if state.pending {
			value += "*"
		}
		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		h.drawRightAligned(value, labelY, state.minusRect.Min.X-buttonGap, valueColor)

		_, minusOK := h.controls.target(i, -1)
		_, plusOK := h.controls.target(i, 1)
		h.drawButton(state.minusRect, "-", minusOK)
		h.drawButton(state.plusRect, "+", plusOK)
	}
}

func (h *HUD) drawRightAligned(s string, y, right int, c color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	text.Draw(h.panel, s, face, right-bounds.Dx(), y, c)
}

func (h *HUD) drawSwatch(x, y int, c color.RGBA) {
	h.fillRect(image.Rect(x, y, x+12, y+12), c)
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	top := controlsTop(len(h.readouts))
	for i := range h.controls.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls.controls[i].top = rowTop
		h.controls.controls[i].minusRect = minusRect
		h.controls.controls[i].plusRect = plusRect
	}
}

func (h *HUD) footerTop(height int) int {
	top := controlsTop(len(h.readouts)) + len(h.controls.controls)*lineHeight + sectionGap
	if limit := height - footerHeight + sectionGap; top < limit {
		top = limit
	}
	return top
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func controlsTop(readouts int) int {
	return panelPadding + headerBaseline + (readouts+1)*readoutHeight + sectionGap
}

var keyHints = []string{
	"Space run/pause   N step   R regenerate",
	"P save PNG   1 energy overlay",
	"Tab select   +/- adjust   * on reset",
}

const (
	panelPadding   = 12
	headerBaseline = 18
	readoutHeight  = 18
	sectionGap     = 14
	lineHeight     = 28
	buttonSize     = 20
	buttonGap      = 6
	labelBaseline  = 18
	hintHeight     = 16
	footerHeight   = sectionGap + 4*hintHeight + panelPadding
)
