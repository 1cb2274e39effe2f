//go:build !audio

package audio

// NewSpeaker returns a silent sink in builds without the audio tag.
func NewSpeaker() (Sink, error) { return Silent{}, nil }
