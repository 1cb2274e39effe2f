//go:build !ebiten

package ui

import "umbrella-glide/internal/render"

// Screens is a no-op placeholder used when the ebiten build tag is absent.
type Screens struct{}

// NewScreens constructs stub screens.
func NewScreens(render.Palette) *Screens { return &Screens{} }

// Draw is a no-op placeholder.
func (s *Screens) Draw(any, any, any) {}
