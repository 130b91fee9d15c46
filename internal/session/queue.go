package session

import (
	"context"
	"errors"
)

//go:generate moq -rm -out queue_mock.go . AudioQueueInterface
type AudioQueueInterface interface {
	Start(ctx context.Context) error
}

var _ AudioQueueInterface = (*AudioQueue)(nil)

// AudioQueue relays audio buffers from the producer to the engine
// without ever blocking the producer: buffers accumulate in an
// in-memory backlog until the engine consumes them. When the input
// channel closes the backlog is drained and the output channel is
// closed, which propagates the flush downstream.
type AudioQueue struct {
	in  <-chan []byte
	out chan<- []byte
}

func NewAudioQueue(in <-chan []byte, out chan<- []byte) (*AudioQueue, error) {
	if in == nil {
		return nil, errors.New("input channel must be specified")
	}
	if out == nil {
		return nil, errors.New("output channel must be specified")
	}

	return &AudioQueue{
		in:  in,
		out: out,
	}, nil
}

func (q *AudioQueue) Start(ctx context.Context) error {
	var backlog [][]byte
	in := q.in
	for {
		// Sending on a nil channel blocks forever, so the send case
		// stays disabled until the backlog has a head.
		var out chan<- []byte
		var head []byte
		if len(backlog) > 0 {
			out = q.out
			head = backlog[0]
		} else if in == nil {
			close(q.out)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case buf, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			backlog = append(backlog, buf)
		case out <- head:
			backlog = backlog[1:]
		}
	}
}
