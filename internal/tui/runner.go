// Package tui runs the game in a terminal with tcell.
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"umbrella-glide/internal/audio"
	"umbrella-glide/internal/shell"
	"umbrella-glide/internal/sims/glide"
	"umbrella-glide/internal/ui"

	"github.com/gdamore/tcell/v2"
)

var (
	styleSky    = tcell.StyleDefault.Background(tcell.NewHexColor(0x1e3a8a)).Foreground(tcell.ColorWhite)
	styleBody   = styleSky.Foreground(tcell.NewHexColor(0xfbbf24))
	styleCanopy = styleSky.Foreground(tcell.NewHexColor(0xef4444)).Bold(true)
	styleHandle = styleSky.Foreground(tcell.NewHexColor(0x8b5cf6))
	styleCoin   = styleSky.Foreground(tcell.NewHexColor(0xfacc15)).Bold(true)
	styleText   = styleSky.Foreground(tcell.ColorWhite).Bold(true)
	styleDim    = styleSky.Foreground(tcell.ColorSilver)
)

// Runner owns a terminal screen and drives the shell from its events.
// All methods must be called from one goroutine; Run arranges that.
type Runner struct {
	screen tcell.Screen
	loop   *glide.Loop
	shell  *shell.Shell
	sink   audio.Sink
	log    *log.Logger

	held    bool
	toggled bool
	open    bool
}

// NewRunner wires a runner to an initialized screen.
func NewRunner(screen tcell.Screen, loop *glide.Loop, sh *shell.Shell, sink audio.Sink, logger *log.Logger) *Runner {
	if sink == nil {
		sink = audio.Silent{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{screen: screen, loop: loop, shell: sh, sink: sink, log: logger}
}

// Run pumps events and frames until the player quits or ctx is done.
func (r *Runner) Run(ctx context.Context, frame time.Duration) error {
	r.screen.EnableMouse()
	r.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	r.Frame(time.Now())
	for {
		select {
		case <-ctx.Done():
			r.shell.Close()
			return ctx.Err()
		case ev := <-events:
			if !r.HandleEvent(ev) {
				r.shell.Close()
				return nil
			}
		case now := <-ticker.C:
			r.Frame(now)
		}
	}
}

// HandleEvent applies one terminal event. It returns false on quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)
	case *tcell.EventMouse:
		r.handleMouse(ev)
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	v := r.shell.View()
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if v.Screen != shell.ScreenPlaying {
			r.start()
		}
	case tcell.KeyEscape:
		r.pauseOrHome(v)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if v.Screen == shell.ScreenPlaying && !v.Paused {
				r.toggled = !r.toggled
				r.syncUmbrella()
			}
		case 'p':
			r.pauseOrHome(v)
		case 'h':
			r.shell.Home()
		case 's':
			if v.Screen != shell.ScreenPlaying {
				r.start()
			}
		}
	}
	return true
}

func (r *Runner) pauseOrHome(v shell.View) {
	switch v.Screen {
	case shell.ScreenPlaying:
		r.shell.TogglePause()
	case shell.ScreenGameOver:
		r.shell.Home()
	}
}

func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	col, _ := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	v := r.shell.View()
	if v.Screen != shell.ScreenPlaying {
		r.held = false
		return
	}
	if v.Paused {
		if !down && r.held {
			r.held = false
			r.syncUmbrella()
		}
		return
	}
	r.held = down
	cols, _ := r.screen.Size()
	if down && cols > 0 {
		r.loop.SetPointerX((float64(col) + 0.5) / float64(cols) * float64(r.loop.Size().W))
	}
	r.syncUmbrella()
}

func (r *Runner) start() {
	if r.shell.Start() {
		r.held, r.toggled, r.open = false, false, false
	}
}

func (r *Runner) syncUmbrella() {
	open := r.held || r.toggled
	if open == r.open {
		return
	}
	r.open = open
	r.loop.SetUmbrella(open)
	if open {
		r.sink.Play(audio.CueUmbrellaOpen)
	} else {
		r.sink.Play(audio.CueUmbrellaClose)
	}
}

// Umbrella reports whether the runner is holding the umbrella open.
func (r *Runner) Umbrella() bool { return r.open }

// Frame runs due ticks and redraws.
func (r *Runner) Frame(now time.Time) {
	r.loop.Scheduler().RunFrame(now)
	r.Draw()
}

// Draw renders the current state to the screen.
func (r *Runner) Draw() {
	cols, rows := r.screen.Size()
	r.screen.SetStyle(styleSky)
	r.screen.Clear()
	if cols <= 0 || rows <= 0 {
		r.screen.Show()
		return
	}
	v := r.shell.View()
	st := r.loop.Snapshot()

	switch v.Screen {
	case shell.ScreenStart:
		lines := append([]string{ui.Title, ""}, ui.StartLines(v)...)
		lines = append(lines, "", "Enter to play, mouse/space for umbrella, q to quit")
		r.centerBlock(lines, rows/4, cols)
	case shell.ScreenPlaying:
		r.drawRun(st, cols, rows)
		r.text(1, 0, fmt.Sprintf("%s  coins %d  best %d m", ui.DepthLabel(v.Score), v.Coins, v.HighScore), styleText)
		if v.Paused {
			r.centerBlock([]string{"Paused", "", "p to resume, h for home"}, rows/2-1, cols)
		} else if st.ShowHint {
			r.centerBlock([]string{ui.Hint}, 2, cols)
		}
	case shell.ScreenGameOver:
		lines := append(ui.GameOverLines(v), "", "Enter to play again, h for home")
		r.centerBlock(lines, rows/3, cols)
	}
	r.screen.Show()
}

// cell maps world coordinates to a terminal cell.
func cell(x, y float64, st glide.RenderState, cols, rows int) (int, int) {
	col := int(x / float64(st.Width) * float64(cols))
	row := int(y / float64(st.Height) * float64(rows))
	return col, row
}

func (r *Runner) drawRun(st glide.RenderState, cols, rows int) {
	for _, c := range st.Coins {
		x, y := cell(c.X, c.Y, st, cols, rows)
		r.put(x, y, '$', styleCoin)
	}
	x, y := cell(st.Player.X, st.Player.Y, st, cols, rows)
	if st.Player.Umbrella {
		r.text(x-2, y-3, "/^^^\\", styleCanopy)
		r.put(x, y-2, '|', styleHandle)
	} else {
		r.put(x+1, y-2, '^', styleCanopy)
		r.put(x+1, y-1, '|', styleHandle)
	}
	r.put(x, y-1, 'o', styleBody)
	r.put(x, y, '|', styleBody)
	r.put(x-1, y+1, '/', styleBody)
	r.put(x+1, y+1, '\\', styleBody)
}

func (r *Runner) centerBlock(lines []string, top, cols int) {
	for i, line := range lines {
		style := styleDim
		if i == 0 {
			style = styleText
		}
		r.text((cols-len(line))/2, top+i, line, style)
	}
}

func (r *Runner) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.put(x+i, y, ch, style)
	}
}

func (r *Runner) put(x, y int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
