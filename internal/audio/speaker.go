//go:build audio

package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker mixes cues onto the default output device.
type Speaker struct {
	mixer *beep.Mixer
}

// NewSpeaker initializes the output device.
func NewSpeaker() (Sink, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues c on the mixer.
func (s *Speaker) Play(c Cue) {
	speaker.Lock()
	s.mixer.Add(Streamer(c, SampleRate))
	speaker.Unlock()
}

// Close stops output and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
