// Package audio handles the PCM plumbing between the capture source
// and the recognition engine: format description, conversion, and WAV
// file input. All audio is interleaved signed 16-bit little-endian.
package audio

import "fmt"

const bytesPerSample = 2

// Format describes interleaved S16LE PCM audio.
type Format struct {
	SampleRate int
	Channels   int
}

func (f Format) String() string {
	return fmt.Sprintf("%dHz/%dch", f.SampleRate, f.Channels)
}

// BytesPerFrame returns the byte count of one frame, one sample per
// channel.
func (f Format) BytesPerFrame() int {
	return f.Channels * bytesPerSample
}

func (f Format) valid() bool {
	return f.SampleRate > 0 && f.Channels >= 1 && f.Channels <= 2
}
