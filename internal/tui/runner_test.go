package tui

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"umbrella-glide/internal/shell"
	"umbrella-glide/internal/sims/glide"
	"umbrella-glide/internal/store"

	"github.com/gdamore/tcell/v2"
)

func newRunner(t *testing.T, height int) (*Runner, tcell.SimulationScreen, *glide.Loop, *shell.Shell) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 30)

	cfg := glide.DefaultConfig()
	cfg.Height = height
	cfg.Params.CoinChance = 0
	loop := glide.New(cfg, nil)
	quiet := log.New(io.Discard, "", 0)
	sh := shell.New(store.NewMemory(nil), loop, shell.WithLogger(quiet), shell.WithSeed(1))
	return NewRunner(screen, loop, sh, nil, quiet), screen, loop, sh
}

func rowText(screen tcell.Screen, row int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := screen.GetContent(x, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenText(screen tcell.Screen) string {
	_, rows := screen.Size()
	lines := make([]string, rows)
	for y := range lines {
		lines[y] = rowText(screen, y)
	}
	return strings.Join(lines, "\n")
}

func key(k tcell.Key, ch rune) *tcell.EventKey { return tcell.NewEventKey(k, ch, tcell.ModNone) }

func TestStartScreenAndStart(t *testing.T) {
	r, screen, loop, sh := newRunner(t, 640)
	r.Draw()
	if !strings.Contains(screenText(screen), "Umbrella Glide") {
		t.Fatalf("start screen missing title:\n%s", screenText(screen))
	}

	if !r.HandleEvent(key(tcell.KeyEnter, 0)) {
		t.Fatal("enter should not quit")
	}
	if sh.Screen() != shell.ScreenPlaying || loop.State() != glide.StateRunning {
		t.Fatalf("screen=%v state=%v", sh.Screen(), loop.State())
	}

	now := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		now = now.Add(16 * time.Millisecond)
		r.Frame(now)
	}
	if loop.Ticks() != 5 {
		t.Fatalf("ticks=%d, want 5", loop.Ticks())
	}
	if !strings.Contains(rowText(screen, 0), " m") {
		t.Fatalf("depth readout missing: %q", rowText(screen, 0))
	}
}

func TestSpaceTogglesUmbrella(t *testing.T) {
	r, _, loop, _ := newRunner(t, 640)
	r.HandleEvent(key(tcell.KeyRune, ' '))
	if loop.Player().Umbrella {
		t.Fatal("space on the start screen should not open the umbrella")
	}
	r.HandleEvent(key(tcell.KeyEnter, 0))
	r.HandleEvent(key(tcell.KeyRune, ' '))
	if !loop.Player().Umbrella || !r.Umbrella() {
		t.Fatal("space should open the umbrella")
	}
	r.HandleEvent(key(tcell.KeyRune, ' '))
	if loop.Player().Umbrella {
		t.Fatal("second space should close the umbrella")
	}
}

func TestMouseHoldAndSteer(t *testing.T) {
	r, _, loop, _ := newRunner(t, 640)
	r.HandleEvent(key(tcell.KeyEnter, 0))

	r.HandleEvent(tcell.NewEventMouse(59, 10, tcell.Button1, tcell.ModNone))
	p := loop.Player()
	if !p.Umbrella {
		t.Fatal("mouse press should open the umbrella")
	}
	if want := float64(loop.Size().W) - loop.Config().Params.EdgeMargin; p.X != want {
		t.Fatalf("x=%f, want clamp to %f", p.X, want)
	}

	r.HandleEvent(tcell.NewEventMouse(30, 10, tcell.Button1, tcell.ModNone))
	if p = loop.Player(); p.X != 183 {
		t.Fatalf("drag x=%f, want 183", p.X)
	}

	r.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	p = loop.Player()
	if p.Umbrella {
		t.Fatal("mouse release should close the umbrella")
	}
	if p.X != 183 {
		t.Fatalf("release moved x to %f", p.X)
	}
}

func TestHoverDoesNotSteer(t *testing.T) {
	r, _, loop, _ := newRunner(t, 640)
	r.HandleEvent(key(tcell.KeyEnter, 0))
	x := loop.Player().X
	r.HandleEvent(tcell.NewEventMouse(5, 10, tcell.ButtonNone, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(50, 10, tcell.ButtonNone, tcell.ModNone))
	if p := loop.Player(); p.X != x || p.Umbrella {
		t.Fatalf("hover changed the body: x=%f want %f umbrella=%v", p.X, x, p.Umbrella)
	}
}

func TestReleaseWhilePausedClosesUmbrella(t *testing.T) {
	r, _, loop, sh := newRunner(t, 640)
	r.HandleEvent(key(tcell.KeyEnter, 0))
	r.HandleEvent(tcell.NewEventMouse(20, 10, tcell.Button1, tcell.ModNone))
	r.HandleEvent(key(tcell.KeyRune, 'p'))
	if !sh.Paused() || !loop.Player().Umbrella {
		t.Fatalf("paused=%v umbrella=%v", sh.Paused(), loop.Player().Umbrella)
	}

	r.HandleEvent(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	r.HandleEvent(key(tcell.KeyRune, 'p'))
	if sh.Paused() {
		t.Fatal("p should resume")
	}
	if r.Umbrella() || loop.Player().Umbrella {
		t.Fatalf("umbrella still open after release: runner=%v loop=%v", r.Umbrella(), loop.Player().Umbrella)
	}

	// A press during the pause is ignored, and the toggle survives it.
	r.HandleEvent(key(tcell.KeyRune, ' '))
	r.HandleEvent(key(tcell.KeyRune, 'p'))
	r.HandleEvent(tcell.NewEventMouse(20, 10, tcell.Button1, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	r.HandleEvent(key(tcell.KeyRune, 'p'))
	if !loop.Player().Umbrella {
		t.Fatal("space toggle should outlive a click made while paused")
	}
}

func TestPauseAndQuit(t *testing.T) {
	r, _, loop, sh := newRunner(t, 640)
	r.HandleEvent(key(tcell.KeyEnter, 0))
	r.HandleEvent(key(tcell.KeyRune, 'p'))
	if !sh.Paused() || loop.State() != glide.StateIdle {
		t.Fatalf("paused=%v state=%v", sh.Paused(), loop.State())
	}
	ticks := loop.Ticks()
	r.Frame(time.Unix(5, 0))
	if loop.Ticks() != ticks {
		t.Fatal("frame ticked while paused")
	}
	r.HandleEvent(key(tcell.KeyEscape, 0))
	if sh.Paused() {
		t.Fatal("escape should resume")
	}
	if r.HandleEvent(key(tcell.KeyRune, 'q')) {
		t.Fatal("q should quit")
	}
	if r.HandleEvent(key(tcell.KeyCtrlC, 0)) {
		t.Fatal("ctrl-c should quit")
	}
}

func TestRunUntilGameOverAndQuit(t *testing.T) {
	r, screen, _, sh := newRunner(t, 200)
	r.HandleEvent(key(tcell.KeyEnter, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx, time.Millisecond) }()

	deadline := time.Now().Add(4 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(screenText(screen), "Game Over") {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if sh.Screen() != shell.ScreenGameOver {
		t.Fatalf("screen=%v, want game over", sh.Screen())
	}
}
