//go:build ebiten

package app

import (
	"time"

	"umbrella-glide/internal/audio"
	"umbrella-glide/internal/input"
	"umbrella-glide/internal/render"
	"umbrella-glide/internal/shell"
	"umbrella-glide/internal/sims/glide"
	"umbrella-glide/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the shell and physics loop to the ebiten.Game interface.
type Game struct {
	loop  *glide.Loop
	shell *shell.Shell
	sink  audio.Sink

	painter *render.Painter
	screens *ui.Screens
	hud     *ui.HUD
	overlay *ui.Overlay

	pointer   input.Tracker
	touches   []ebiten.TouchID
	swallowed bool
}

// New constructs a Game. debug enables the tuning panel and overlay.
func New(loop *glide.Loop, sh *shell.Shell, sink audio.Sink, debug bool) *Game {
	if sink == nil {
		sink = audio.Silent{}
	}
	g := &Game{
		loop:    loop,
		shell:   sh,
		sink:    sink,
		painter: render.NewPainter(render.DefaultPalette),
		screens: ui.NewScreens(render.DefaultPalette),
	}
	if debug {
		g.hud = ui.NewHUD(loop, loop.Size().W)
		g.overlay = ui.NewOverlay(loop.Config().Params.CoinRadius)
	}
	return g
}

// Update handles per-frame input and pumps the frame scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.shell.Close()
		return ebiten.Termination
	}
	g.handleKeys()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if !g.hud.Update() {
		g.handlePointer(g.samplePointer())
	}
	g.loop.Scheduler().RunFrame(time.Now())
	return nil
}

func (g *Game) handleKeys() {
	v := g.shell.View()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyP):
		if v.Screen == shell.ScreenPlaying {
			g.shell.TogglePause()
		} else if v.Screen == shell.ScreenGameOver {
			g.shell.Home()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if v.Screen != shell.ScreenPlaying {
			g.start()
		}
	}
}

func (g *Game) samplePointer() input.Sample {
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		x, y := ebiten.TouchPosition(g.touches[0])
		return input.Sample{Down: true, X: float64(x), Y: float64(y)}
	}
	x, y := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	return input.Sample{Down: down, X: float64(x), Y: float64(y)}
}

func (g *Game) handlePointer(s input.Sample) {
	ev := g.pointer.Update(s)
	v := g.shell.View()
	size := g.loop.Size()

	if ev.Kind == input.Began {
		action := ui.HitTest(ui.Buttons(v, size.W, size.H), int(ev.X), int(ev.Y))
		if action != ui.ActionNone {
			g.swallowed = true
			if action == ui.ActionStart {
				g.start()
			} else {
				ui.Dispatch(g.shell, action)
			}
			return
		}
	}
	if g.swallowed {
		if ev.Kind == input.Ended {
			g.swallowed = false
		}
		return
	}
	if v.Screen != shell.ScreenPlaying {
		return
	}
	if v.Paused {
		input.ApplySuspended(g.loop, ev)
		return
	}
	if changed, open := input.Apply(g.loop, ev); changed {
		if open {
			g.sink.Play(audio.CueUmbrellaOpen)
		} else {
			g.sink.Play(audio.CueUmbrellaClose)
		}
	}
}

func (g *Game) start() {
	if !g.shell.Start() {
		return
	}
	if g.pointer.Down() {
		g.swallowed = true
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.loop.Snapshot()
	g.painter.Draw(screen, st)
	if g.overlay != nil {
		g.overlay.Draw(screen, st)
	}
	g.screens.Draw(screen, g.shell.View(), st)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.loop.Size()
	return s.W, s.H
}
