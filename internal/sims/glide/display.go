package glide

// RenderState is an immutable per-frame view of a run for renderers.
type RenderState struct {
	Width  int
	Height int

	Player   Player
	Score    int
	State    State
	Coins    []Coin
	Terminal float64
	ShowHint bool
}

// Snapshot captures the state renderers need for the current frame.
func (l *Loop) Snapshot() RenderState {
	terminal := l.cfg.Params.TerminalClosed
	if l.player.Umbrella {
		terminal = l.cfg.Params.TerminalOpen
	}
	return RenderState{
		Width:    l.cfg.Width,
		Height:   l.cfg.Height,
		Player:   l.player,
		Score:    l.score,
		State:    l.state,
		Coins:    l.Coins(),
		Terminal: terminal,
		ShowHint: l.score < l.cfg.Params.HintScore,
	}
}
