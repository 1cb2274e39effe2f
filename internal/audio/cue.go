// Package audio synthesizes the game's sound cues with beep.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Cue names a sound effect.
type Cue int

const (
	CueUmbrellaOpen Cue = iota
	CueUmbrellaClose
	CueCoin
	CueGameOver
	CueHighScore
)

func (c Cue) String() string {
	switch c {
	case CueUmbrellaOpen:
		return "umbrella-open"
	case CueUmbrellaClose:
		return "umbrella-close"
	case CueCoin:
		return "coin"
	case CueGameOver:
		return "game-over"
	case CueHighScore:
		return "high-score"
	default:
		return "unknown"
	}
}

// Sink plays cues.
type Sink interface {
	Play(c Cue)
	Close()
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

// Close does nothing.
func (Silent) Close() {}

// cueVolume is the base-2 level every cue is played at.
const cueVolume = -1.0

// Streamer builds a fresh, finite streamer for c.
func Streamer(c Cue, sr beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueUmbrellaOpen:
		s = newTone(sr, WaveSine, 300, 720, 120*time.Millisecond)
	case CueUmbrellaClose:
		s = newTone(sr, WaveSine, 700, 260, 100*time.Millisecond)
	case CueCoin:
		s = beep.Seq(
			note(sr, 988, 60*time.Millisecond),
			newTone(sr, WaveSquare, 1319, 1319, 180*time.Millisecond),
		)
	case CueGameOver:
		s = newTone(sr, WaveSquare, 220, 70, 420*time.Millisecond)
	case CueHighScore:
		s = beep.Seq(
			newTone(sr, WaveSquare, 523, 523, 110*time.Millisecond),
			newTone(sr, WaveSquare, 659, 659, 110*time.Millisecond),
			newTone(sr, WaveSquare, 784, 784, 220*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: cueVolume}
}

// note is a plain sine tone cut to d.
func note(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), sine)
}

// Duration reports how long c plays.
func Duration(c Cue) time.Duration {
	switch c {
	case CueUmbrellaOpen:
		return 120 * time.Millisecond
	case CueUmbrellaClose:
		return 100 * time.Millisecond
	case CueCoin:
		return 240 * time.Millisecond
	case CueGameOver:
		return 420 * time.Millisecond
	case CueHighScore:
		return 440 * time.Millisecond
	default:
		return 0
	}
}
