// Package render lays out and paints the falling stickman.
package render

import (
	"math"

	"umbrella-glide/internal/sims/glide"
)

// Point is a position in screen space.
type Point struct{ X, Y float64 }

// Circle is a filled disc.
type Circle struct {
	Center Point
	R      float64
}

// Segment is a stroked line.
type Segment struct{ A, B Point }

// Figure is the stickman and umbrella for one frame, in screen space.
type Figure struct {
	Head   Circle
	Limbs  []Segment
	Handle Segment
	// Canopy is a closed polygon: a half dome when open, a narrow sliver
	// when folded.
	Canopy []Point
	Open   bool
}

// Figure proportions in logical pixels.
const (
	headRadius   = 8.0
	torsoTop     = -10.0
	torsoBottom  = 12.0
	legSpread    = 7.0
	legLength    = 14.0
	canopyRadius = 30.0
	handleLength = 38.0
	canopySteps  = 16
)

// Layout positions the figure for p.
func Layout(p glide.Player) Figure {
	x, y := p.X, p.Y
	f := Figure{
		Head: Circle{Center: Point{x, y + torsoTop - headRadius}, R: headRadius},
		Limbs: []Segment{
			{Point{x, y + torsoTop}, Point{x, y + torsoBottom}},
			{Point{x, y + torsoBottom}, Point{x - legSpread, y + torsoBottom + legLength}},
			{Point{x, y + torsoBottom}, Point{x + legSpread, y + torsoBottom + legLength}},
		},
		Open: p.Umbrella,
	}
	if p.Umbrella {
		grip := Point{x, y + torsoTop - 2*headRadius - 2}
		top := Point{x, grip.Y - handleLength}
		f.Handle = Segment{grip, top}
		f.Limbs = append(f.Limbs,
			Segment{Point{x, y - 4}, Point{x - 4, grip.Y}},
			Segment{Point{x, y - 4}, Point{x + 4, grip.Y}},
		)
		f.Canopy = dome(top, canopyRadius)
		return f
	}
	grip := Point{x + 10, y}
	f.Handle = Segment{grip, Point{grip.X, grip.Y - handleLength*0.8}}
	f.Limbs = append(f.Limbs,
		Segment{Point{x, y - 4}, grip},
		Segment{Point{x, y - 4}, Point{x - 9, y + 4}},
	)
	tip := f.Handle.B
	f.Canopy = []Point{
		{tip.X, tip.Y - 6},
		{tip.X + 4, tip.Y + 18},
		{tip.X - 4, tip.Y + 18},
	}
	return f
}

func dome(c Point, r float64) []Point {
	pts := make([]Point, 0, canopySteps+1)
	for i := 0; i <= canopySteps; i++ {
		a := math.Pi + math.Pi*float64(i)/canopySteps
		pts = append(pts, Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)})
	}
	return pts
}

// Bounds returns the smallest box holding every part of f.
func (f Figure) Bounds() (min, max Point) {
	min = Point{f.Head.Center.X - f.Head.R, f.Head.Center.Y - f.Head.R}
	max = Point{f.Head.Center.X + f.Head.R, f.Head.Center.Y + f.Head.R}
	grow := func(p Point) {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	for _, s := range f.Limbs {
		grow(s.A)
		grow(s.B)
	}
	grow(f.Handle.A)
	grow(f.Handle.B)
	for _, p := range f.Canopy {
		grow(p)
	}
	return min, max
}
