package session

import (
	"errors"
	"time"

	"github.com/hekt/dictation/internal/interfaces/vosk"
)

type options struct {
	sinks           []Sink
	inactiveTimeout time.Duration
	openEngine      vosk.OpenFunc
}

type Option func(*options) error

// WithSinks adds receivers for transcript updates beyond the view,
// such as the session store or the event publisher.
func WithSinks(sinks ...Sink) Option {
	return func(o *options) error {
		for _, sink := range sinks {
			if sink == nil {
				return errors.New("sink must not be nil")
			}
		}
		o.sinks = append(o.sinks, sinks...)
		return nil
	}
}

// WithInactiveTimeout aborts the session when no recognition result
// arrives within the duration.
func WithInactiveTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return errors.New("inactive timeout must be positive")
		}
		o.inactiveTimeout = timeout
		return nil
	}
}

// WithEngineOpener replaces how the recognition engine is opened.
func WithEngineOpener(open vosk.OpenFunc) Option {
	return func(o *options) error {
		if open == nil {
			return errors.New("engine opener must be specified")
		}
		o.openEngine = open
		return nil
	}
}
