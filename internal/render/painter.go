//go:build ebiten

package render

import (
	"image"
	"image/color"

	"umbrella-glide/internal/sims/glide"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const strokeWidth = 3

// Painter draws a RenderState onto an ebiten image.
type Painter struct {
	palette Palette
	white   *ebiten.Image
	verts   []ebiten.Vertex
	indices []uint16
}

// NewPainter constructs a Painter using palette.
func NewPainter(palette Palette) *Painter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Painter{
		palette: palette,
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw paints the sky, coins and stickman for st.
func (p *Painter) Draw(dst *ebiten.Image, st glide.RenderState) {
	dst.Fill(p.palette.SkyAt(st.Player.Y, st.Height))

	for _, c := range st.Coins {
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), 9, p.palette.Coin, true)
		vector.StrokeCircle(dst, float32(c.X), float32(c.Y), 9, 2, p.palette.CoinEdge, true)
	}

	f := Layout(st.Player)
	canopy := p.palette.Folded
	if f.Open {
		canopy = p.palette.Canopy
	}
	p.fillPolygon(dst, f.Canopy, canopy)
	p.line(dst, f.Handle, p.palette.Handle)
	for _, s := range f.Limbs {
		p.line(dst, s, p.palette.Body)
	}
	vector.DrawFilledCircle(dst, float32(f.Head.Center.X), float32(f.Head.Center.Y), float32(f.Head.R), p.palette.Head, true)
}

func (p *Painter) line(dst *ebiten.Image, s Segment, clr color.Color) {
	vector.StrokeLine(dst, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), strokeWidth, clr, true)
}

func (p *Painter) fillPolygon(dst *ebiten.Image, pts []Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	p.verts, p.indices = path.AppendVerticesAndIndicesForFilling(p.verts[:0], p.indices[:0])
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range p.verts {
		p.verts[i].SrcX, p.verts[i].SrcY = 1, 1
		p.verts[i].ColorR, p.verts[i].ColorG, p.verts[i].ColorB, p.verts[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(p.verts, p.indices, p.white, op)
}
