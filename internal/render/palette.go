package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds every colour the game draws with.
type Palette struct {
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Canopy    color.RGBA
	Folded    color.RGBA
	Handle    color.RGBA
	Head      color.RGBA
	Body      color.RGBA
	Coin      color.RGBA
	CoinEdge  color.RGBA
	Text      color.RGBA
	Dim       color.RGBA
	Panel     color.RGBA
}

// DefaultPalette is the daytime sky theme.
var DefaultPalette = Palette{
	SkyTop:    MustHex("#87ceeb"),
	SkyBottom: MustHex("#1e3a8a"),
	Canopy:    MustHex("#ef4444"),
	Folded:    MustHex("#b91c1c"),
	Handle:    MustHex("#8b5cf6"),
	Head:      MustHex("#fbbf24"),
	Body:      MustHex("#1f2937"),
	Coin:      MustHex("#facc15"),
	CoinEdge:  MustHex("#a16207"),
	Text:      MustHex("#ffffff"),
	Dim:       MustHex("#cbd5e1"),
	Panel:     color.RGBA{A: 160},
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("render: bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHex is ParseHex for package-level literals.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp blends from a to b; t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// SkyAt returns the background colour for a body at depth y of height h.
func (p Palette) SkyAt(y float64, h int) color.RGBA {
	if h <= 0 {
		return p.SkyTop
	}
	return Lerp(p.SkyTop, p.SkyBottom, y/float64(h))
}
