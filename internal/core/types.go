package core

import "time"

// Size describes the logical screen a simulation runs in, in pixels.
type Size struct {
	W int
	H int
}

// Sim defines the contract a frame-driven simulation implements.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(dt time.Duration)
}
