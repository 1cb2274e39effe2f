//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"umbrella-glide/internal/sims/glide"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of a run.
type Overlay struct {
	showVelocity bool
	showGauge    bool
	showCoins    bool
	coinRadius   float64
}

// NewOverlay constructs an overlay with every layer hidden.
func NewOverlay(coinRadius float64) *Overlay {
	return &Overlay{coinRadius: coinRadius}
}

// Update toggles layers with the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGauge = !o.showGauge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showCoins = !o.showCoins
	}
}

// Draw renders the enabled layers for st.
func (o *Overlay) Draw(screen *ebiten.Image, st glide.RenderState) {
	if o.showVelocity {
		o.drawVelocity(screen, st)
	}
	if o.showGauge {
		o.drawGauge(screen, st)
	}
	if o.showCoins && o.coinRadius > 0 {
		for _, c := range st.Coins {
			vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(o.coinRadius), 1, color.RGBA{R: 250, G: 204, B: 21, A: 160}, false)
		}
		vector.StrokeCircle(screen, float32(st.Player.X), float32(st.Player.Y), float32(o.coinRadius), 1, color.RGBA{R: 255, G: 255, B: 255, A: 120}, false)
	}
}

func (o *Overlay) drawVelocity(screen *ebiten.Image, st glide.RenderState) {
	const (
		pixelsPerUnit = 6.0
		headAngle     = math.Pi / 6
		headLength    = 7.0
	)
	p := st.Player
	if p.VY <= 0 {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, color.RGBA{R: 90, G: 130, B: 170, A: 200}, false)
		return
	}
	normalized := 1.0
	if st.Terminal > 0 {
		normalized = clamp01(p.VY / st.Terminal)
	}
	col := interpolateColor(normalized)
	tipX, tipY := p.X, p.Y+p.VY*pixelsPerUnit
	vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(tipX), float32(tipY), 2, col, false)

	angle := math.Pi / 2
	leftX := tipX - math.Cos(angle+headAngle)*headLength
	leftY := tipY - math.Sin(angle+headAngle)*headLength
	rightX := tipX - math.Cos(angle-headAngle)*headLength
	rightY := tipY - math.Sin(angle-headAngle)*headLength
	vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(leftX), float32(leftY), 2, col, false)
	vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(rightX), float32(rightY), 2, col, false)
}

func (o *Overlay) drawGauge(screen *ebiten.Image, st glide.RenderState) {
	const (
		gaugeW = 8
		gaugeH = 120
		margin = 12
	)
	x := float32(margin)
	y := float32(st.Height/2 - gaugeH/2)
	vector.DrawFilledRect(screen, x, y, gaugeW, gaugeH, color.RGBA{R: 20, G: 20, B: 30, A: 180}, false)
	fill := 0.0
	if st.Terminal > 0 {
		fill = clamp01(st.Player.VY / st.Terminal)
	}
	h := float32(fill * gaugeH)
	vector.DrawFilledRect(screen, x, y+gaugeH-h, gaugeW, h, interpolateColor(fill), false)

	by := float32(st.Height) - 1
	vector.StrokeLine(screen, 0, by, float32(st.Width), by, 2, color.RGBA{R: 239, G: 68, B: 68, A: 220}, false)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// interpolateColor maps 0 to calm blue and 1 to hot red.
func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return color.RGBA{R: lerp(80, 240), G: lerp(170, 70), B: lerp(230, 60), A: 230}
}
