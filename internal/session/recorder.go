package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// AudioStreamer is the part of the session the recorder drives.
type AudioStreamer interface {
	StreamAudio(ctx context.Context, buf []byte) error
}

// Recorder reads raw audio from the capture source in fixed-size
// chunks and streams each into the session. It returns when the
// source reaches EOF or the context is canceled; the caller decides
// when to finish the session.
type Recorder struct {
	reader     io.Reader
	streamer   AudioStreamer
	bufferSize int
}

func NewRecorder(reader io.Reader, streamer AudioStreamer, bufferSize int) (*Recorder, error) {
	if reader == nil {
		return nil, errors.New("reader must be specified")
	}
	if streamer == nil {
		return nil, errors.New("streamer must be specified")
	}
	if bufferSize < 256 {
		return nil, errors.New("buffer size must be greater than or equal to 256")
	}

	return &Recorder{
		reader:     reader,
		streamer:   streamer,
		bufferSize: bufferSize,
	}, nil
}

func (r *Recorder) Start(ctx context.Context) error {
	buf := make([]byte, r.bufferSize)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			n, err := r.reader.Read(buf)
			if n > 0 {
				// The read buffer is reused, so hand off a copy.
				audio := make([]byte, n)
				copy(audio, buf[:n])

				if err := r.streamer.StreamAudio(ctx, audio); err != nil {
					return fmt.Errorf("failed to stream audio data: %w", err)
				}
			}
			if errors.Is(err, io.EOF) {
				slog.Debug("Recorder: EOF received")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read audio data: %w", err)
			}
		}
	}
}
