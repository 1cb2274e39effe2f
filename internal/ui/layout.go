// Package ui lays out the game's screens and, in ebiten builds, draws them.
package ui

import (
	"fmt"
	"image"

	"umbrella-glide/internal/shell"
)

// Action is what a button press asks the shell to do.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionResume
	ActionHome
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	case ActionHome:
		return "home"
	default:
		return "none"
	}
}

// Button is a labelled hit area.
type Button struct {
	Label  string
	Rect   image.Rectangle
	Action Action
}

const (
	buttonW     = 180
	buttonH     = 48
	buttonSpace = 16
	pauseSize   = 40
	pauseMargin = 12
)

// Buttons returns the buttons visible for v on a w×h screen.
func Buttons(v shell.View, w, h int) []Button {
	switch v.Screen {
	case shell.ScreenStart:
		return []Button{centered("PLAY", ActionStart, w, h*3/5)}
	case shell.ScreenPlaying:
		if v.Paused {
			return []Button{
				centered("RESUME", ActionResume, w, h/2),
				centered("HOME", ActionHome, w, h/2+buttonH+buttonSpace),
			}
		}
		r := image.Rect(w-pauseMargin-pauseSize, pauseMargin, w-pauseMargin, pauseMargin+pauseSize)
		return []Button{{Label: "II", Rect: r, Action: ActionPause}}
	case shell.ScreenGameOver:
		return []Button{
			centered("PLAY AGAIN", ActionStart, w, h*3/5),
			centered("HOME", ActionHome, w, h*3/5+buttonH+buttonSpace),
		}
	}
	return nil
}

func centered(label string, a Action, w, top int) Button {
	x := (w - buttonW) / 2
	return Button{Label: label, Rect: image.Rect(x, top, x+buttonW, top+buttonH), Action: a}
}

// HitTest returns the action of the first button containing (x, y).
func HitTest(buttons []Button, x, y int) Action {
	for _, b := range buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Action
		}
	}
	return ActionNone
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// Controller is the subset of the shell buttons drive.
type Controller interface {
	Start() bool
	Pause()
	Resume()
	Home()
}

// Dispatch performs a on c and reports whether anything was asked of it.
func Dispatch(c Controller, a Action) bool {
	switch a {
	case ActionStart:
		c.Start()
	case ActionPause:
		c.Pause()
	case ActionResume:
		c.Resume()
	case ActionHome:
		c.Home()
	default:
		return false
	}
	return true
}

// Title is shown on the start screen.
const Title = "Umbrella Glide"

// StartLines is the start screen body text.
func StartLines(v shell.View) []string {
	return []string{
		"Hold to open the umbrella",
		"Release to drop fast",
		"Drag or tilt to steer",
		"",
		fmt.Sprintf("Best: %d m   Coins: %d", v.HighScore, v.Coins),
		fmt.Sprintf("Playing as %s", v.PlayerName),
	}
}

// GameOverLines is the game-over screen body text.
func GameOverLines(v shell.View) []string {
	best := fmt.Sprintf("Best: %d m", v.HighScore)
	if v.NewBest {
		best = "New best!"
	}
	return []string{
		"Game Over",
		fmt.Sprintf("Depth: %d m", v.Score),
		best,
		fmt.Sprintf("Coins: %d", v.Coins),
	}
}

// DepthLabel is the in-run depth readout.
func DepthLabel(score int) string { return fmt.Sprintf("%d m", score) }

// Hint is shown near the top of a fresh run.
const Hint = "Hold to glide, release to dive"
