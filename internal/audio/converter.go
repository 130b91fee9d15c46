package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/hekt/dictation/internal/speech"
)

// Converter converts S16LE PCM buffers from the capture format to the
// engine format. Stereo is downmixed by averaging, mono is duplicated
// on upmix, and sample rates are converted by nearest-sample mapping.
// The fractional resampling position is carried across buffers, so a
// converter must only be fed one contiguous stream.
type Converter struct {
	src Format
	dst Format
	// pos is the fractional source frame index of the next output
	// frame, relative to the start of the next buffer.
	pos float64
}

func NewConverter(src, dst Format) (*Converter, error) {
	if !src.valid() {
		return nil, fmt.Errorf("%w: invalid source format %s", speech.ErrUnsupportedAudio, src)
	}
	if !dst.valid() {
		return nil, fmt.Errorf("%w: invalid destination format %s", speech.ErrUnsupportedAudio, dst)
	}

	return &Converter{src: src, dst: dst}, nil
}

// Convert converts one buffer. The returned slice is freshly
// allocated; it may be empty when downsampling a short buffer.
func (c *Converter) Convert(buf []byte) ([]byte, error) {
	frameBytes := c.src.BytesPerFrame()
	if len(buf)%frameBytes != 0 {
		return nil, fmt.Errorf(
			"%w: buffer length %d is not aligned to %d-byte frames",
			speech.ErrUnsupportedAudio, len(buf), frameBytes,
		)
	}

	frameCount := len(buf) / frameBytes
	mono := make([]int16, frameCount)
	for i := 0; i < frameCount; i++ {
		offset := i * frameBytes
		if c.src.Channels == 1 {
			mono[i] = int16(binary.LittleEndian.Uint16(buf[offset:]))
			continue
		}
		left := int16(binary.LittleEndian.Uint16(buf[offset:]))
		right := int16(binary.LittleEndian.Uint16(buf[offset+bytesPerSample:]))
		mono[i] = int16((int32(left) + int32(right)) / 2)
	}

	step := float64(c.src.SampleRate) / float64(c.dst.SampleRate)
	out := make([]byte, 0, int(float64(len(mono))/step+1)*c.dst.BytesPerFrame())
	pos := c.pos
	for pos < float64(frameCount) {
		sample := uint16(mono[int(pos)])
		for ch := 0; ch < c.dst.Channels; ch++ {
			out = binary.LittleEndian.AppendUint16(out, sample)
		}
		pos += step
	}
	c.pos = pos - float64(frameCount)

	return out, nil
}
