//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"umbrella-glide/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Tunable is a simulation exposing HUD-adjustable parameters.
type Tunable interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.FloatParameterSetter
}

// HUD is the physics tuning panel, toggled with Tab.
type HUD struct {
	sim      Tunable
	visible  bool
	controls []hudControlState
	panel    image.Rectangle
}

type hudControlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 10
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	controlsTop    = panelPadding + headerBaseline + 10
)

// NewHUD constructs a hidden HUD for sim on a screen of the given width.
func NewHUD(sim Tunable, screenW int) *HUD {
	controls := sim.ParameterControls()
	h := &HUD{sim: sim, controls: make([]hudControlState, len(controls))}
	width := screenW - 2*panelPadding
	h.panel = image.Rect(panelPadding, panelPadding, panelPadding+width, panelPadding+controlsTop+len(controls)*lineHeight+panelPadding)
	for i, ctrl := range controls {
		top := h.panel.Min.Y + controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.panel.Max.X-panelPadding-buttonSize, buttonY, h.panel.Max.X-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i] = hudControlState{control: ctrl, top: top, minusRect: minus, plusRect: plus}
	}
	return h
}

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update toggles the panel and applies clicks. It reports whether the click
// was consumed by the panel.
func (h *HUD) Update() bool {
	if h == nil {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
	if !h.visible {
		return false
	}
	snap := h.sim.Parameters()
	for i := range h.controls {
		st := &h.controls[i]
		st.value, st.hasValue = ControlValue(snap, st.control)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !pointInRect(mx, my, h.panel) {
		return false
	}
	for i := range h.controls {
		st := &h.controls[i]
		if !st.hasValue {
			continue
		}
		dir := 0
		switch {
		case pointInRect(mx, my, st.minusRect):
			dir = -1
		case pointInRect(mx, my, st.plusRect):
			dir = 1
		}
		if dir == 0 {
			continue
		}
		if next, ok := Adjust(st.control, st.value, dir); ok && h.sim.SetFloatParameter(st.control.Key, next) {
			st.value = next
		}
		break
	}
	return true
}

// Draw paints the panel when visible.
func (h *HUD) Draw(dst *ebiten.Image) {
	if !h.Visible() {
		return
	}
	p := h.panel
	vector.DrawFilledRect(dst, float32(p.Min.X), float32(p.Min.Y), float32(p.Dx()), float32(p.Dy()), color.RGBA{R: 16, G: 16, B: 20, A: 230}, false)

	face := basicfont.Face7x13
	text.Draw(dst, "Physics", face, p.Min.X+panelPadding, p.Min.Y+panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		st := &h.controls[i]
		labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		text.Draw(dst, st.control.Label, face, p.Min.X+panelPadding, st.top+labelBaseline, labelColor)

		value := "--"
		if st.hasValue {
			value = FormatValue(st.control, st.value)
		} else {
			labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, value)
		text.Draw(dst, value, face, st.minusRect.Min.X-buttonGap-bounds.Dx(), st.top+labelBaseline, labelColor)

		_, canDown := Adjust(st.control, st.value, -1)
		_, canUp := Adjust(st.control, st.value, 1)
		drawHUDButton(dst, st.minusRect, "-", st.hasValue && canDown)
		drawHUDButton(dst, st.plusRect, "+", st.hasValue && canUp)
	}
}

func drawHUDButton(dst *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}
