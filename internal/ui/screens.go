//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"umbrella-glide/internal/render"
	"umbrella-glide/internal/shell"
	"umbrella-glide/internal/sims/glide"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const textLine = 20

// Screens draws the start, in-run, pause and game-over chrome.
type Screens struct {
	palette render.Palette
}

// NewScreens constructs Screens with palette.
func NewScreens(palette render.Palette) *Screens {
	return &Screens{palette: palette}
}

// Draw paints the chrome for v over a frame already showing st.
func (s *Screens) Draw(dst *ebiten.Image, v shell.View, st glide.RenderState) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	switch v.Screen {
	case shell.ScreenStart:
		s.dim(dst)
		y := h / 5
		s.centerText(dst, Title, y, s.palette.Text)
		y += 2 * textLine
		for _, line := range StartLines(v) {
			s.centerText(dst, line, y, s.palette.Dim)
			y += textLine
		}
	case shell.ScreenPlaying:
		face := basicfont.Face7x13
		text.Draw(dst, DepthLabel(v.Score), face, 14, 28, s.palette.Text)
		text.Draw(dst, fmt.Sprintf("Coins %d", v.Coins), face, 14, 28+textLine, s.palette.Coin)
		if st.ShowHint && !v.Paused {
			s.centerText(dst, Hint, h/8, s.palette.Text)
		}
		if v.Paused {
			s.dim(dst)
			s.centerText(dst, "Paused", h/2-2*textLine, s.palette.Text)
		}
	case shell.ScreenGameOver:
		s.dim(dst)
		y := h / 4
		for i, line := range GameOverLines(v) {
			clr := s.palette.Dim
			if i == 0 {
				clr = s.palette.Text
			}
			s.centerText(dst, line, y, clr)
			y += textLine
		}
	}
	for _, b := range Buttons(v, w, h) {
		s.drawButton(dst, b)
	}
}

func (s *Screens) dim(dst *ebiten.Image) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), s.palette.Panel, false)
}

func (s *Screens) centerText(dst *ebiten.Image, str string, y int, clr color.Color) {
	if str == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, str)
	x := (dst.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(dst, str, face, x, y, clr)
}

func (s *Screens) drawButton(dst *ebiten.Image, b Button) {
	r := b.Rect
	x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, color.RGBA{R: 30, G: 41, B: 59, A: 230}, false)
	vector.StrokeRect(dst, x, y, w, h, 2, s.palette.Text, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.Label)
	tx := r.Min.X + (r.Dx()-bounds.Dx())/2
	ty := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, b.Label, face, tx, ty, s.palette.Text)
}
