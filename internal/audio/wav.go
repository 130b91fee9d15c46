package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/hekt/dictation/internal/speech"
)

var _ io.ReadCloser = (*WAVSource)(nil)

// WAVSource reads S16LE PCM from a RIFF/WAVE file, for transcription
// runs over recorded audio instead of a live capture pipe.
type WAVSource struct {
	file    *os.File
	decoder *wav.Decoder
	buf     *gaudio.IntBuffer
}

func OpenWAV(path string) (*WAVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", speech.ErrAudioFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s is not a valid wav file", speech.ErrUnsupportedAudio, path)
	}
	if decoder.BitDepth != 16 {
		_ = file.Close()
		return nil, fmt.Errorf(
			"%w: %d-bit samples are not supported, want 16-bit",
			speech.ErrUnsupportedAudio, decoder.BitDepth,
		)
	}

	return &WAVSource{file: file, decoder: decoder}, nil
}

// Format returns the file's sample rate and channel count.
func (s *WAVSource) Format() Format {
	return Format{
		SampleRate: int(s.decoder.SampleRate),
		Channels:   int(s.decoder.NumChans),
	}
}

func (s *WAVSource) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	if samples == 0 {
		return 0, nil
	}
	if s.buf == nil || len(s.buf.Data) != samples {
		s.buf = &gaudio.IntBuffer{Data: make([]int, samples)}
	}

	n, err := s.decoder.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("failed to decode wav data: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(p[i*bytesPerSample:], uint16(int16(s.buf.Data[i])))
	}

	return n * bytesPerSample, nil
}

func (s *WAVSource) Close() error {
	return s.file.Close()
}
