package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// tone is a swept oscillator with a short attack and a linear release.
type tone struct {
	rate     beep.SampleRate
	wave     WaveType
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newTone(rate beep.SampleRate, wave WaveType, from, to float64, d time.Duration) *tone {
	return &tone{rate: rate, wave: wave, from: from, to: to, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	attack := t.total / 20
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 0.6
			} else {
				val = -0.6
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}

		env := 1 - progress
		if attack > 0 && t.pos < attack {
			env *= float64(t.pos) / float64(attack)
		}
		val *= env

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
