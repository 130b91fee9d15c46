package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hekt/dictation/internal/assets"
	"github.com/hekt/dictation/internal/audio"
	"github.com/hekt/dictation/internal/interfaces/vosk"
	"github.com/hekt/dictation/internal/speech"
)

// Session is one dictation run. SetUp ensures the locale's model,
// opens the engine, and starts the pipeline workers; StreamAudio
// converts and enqueues capture buffers; Finish flushes whatever is
// buffered and tears the pipeline down, in that order.
//
// The workers run on a context detached from the caller's, so a
// canceled capture does not abandon the flush.
type Session struct {
	locale          string
	source          audio.Format
	assets          assets.ManagerInterface
	viewWriter      io.Writer
	segmentWriter   io.Writer
	sinks           []Sink
	openEngine      vosk.OpenFunc
	inactiveTimeout time.Duration

	transcript *Transcript

	// Workers are built in SetUp when nil, so tests can inject mocks.
	queue      AudioQueueInterface
	recognizer RecognizerInterface
	updater    TranscriptUpdaterInterface
	monitor    ActivityMonitorInterface

	mu        sync.Mutex
	started   bool
	finished  bool
	converter *audio.Converter
	engine    vosk.VoskRecognizer
	inCh      chan []byte
	wctx      context.Context
	cancel    context.CancelFunc
	eg        *errgroup.Group
}

func New(
	locale string,
	source audio.Format,
	manager assets.ManagerInterface,
	viewWriter io.Writer,
	segmentWriter io.Writer,
	opts ...Option,
) (*Session, error) {
	if locale == "" {
		return nil, errors.New("locale must be specified")
	}
	if manager == nil {
		return nil, errors.New("asset manager must be specified")
	}
	if viewWriter == nil {
		return nil, errors.New("view writer must be specified")
	}
	if segmentWriter == nil {
		return nil, errors.New("segment writer must be specified")
	}

	options := &options{
		openEngine: vosk.Open,
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return &Session{
		locale:          locale,
		source:          source,
		assets:          manager,
		viewWriter:      viewWriter,
		segmentWriter:   segmentWriter,
		sinks:           options.sinks,
		openEngine:      options.openEngine,
		inactiveTimeout: options.inactiveTimeout,
		transcript:      NewTranscript(),
	}, nil
}

// Transcript returns the live transcript state. Snapshots of it are
// safe to take while the session runs.
func (s *Session) Transcript() *Transcript {
	return s.transcript
}

// Done reports when the pipeline has stopped, whether from Finish, a
// worker failure, or the inactivity timeout. Before SetUp it returns
// nil, which never becomes ready.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wctx == nil {
		return nil
	}
	return s.wctx.Done()
}

// SetUp ensures the locale's model is installed, negotiates the
// engine's audio format, and starts the pipeline workers. Calling it
// on a session that is already set up is an error.
func (s *Session) SetUp(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("session is already set up")
	}

	installation, err := s.assets.Ensure(ctx, s.locale)
	if err != nil {
		return fmt.Errorf("failed to ensure model for %s: %w", s.locale, err)
	}

	// The engine wants the model's native rate, mono.
	engineFormat := audio.Format{SampleRate: installation.SampleRate, Channels: 1}
	converter, err := audio.NewConverter(s.source, engineFormat)
	if err != nil {
		return err
	}

	engine, err := s.openEngine(installation.Path, float64(installation.SampleRate))
	if err != nil {
		return fmt.Errorf("%w: %v", speech.ErrStreamSetupFailed, err)
	}

	inCh := make(chan []byte)
	engineCh := make(chan []byte, 10)
	resultCh := make(chan []*speech.Result, 10)
	var activityCh chan struct{}
	if s.inactiveTimeout > 0 || s.monitor != nil {
		activityCh = make(chan struct{}, 1)
	}

	if s.queue == nil {
		queue, err := NewAudioQueue(inCh, engineCh)
		if err != nil {
			engine.Close()
			return fmt.Errorf("%w: %v", speech.ErrStreamSetupFailed, err)
		}
		s.queue = queue
	}
	if s.recognizer == nil {
		recognizer, err := NewRecognizer(engine, engineCh, resultCh)
		if err != nil {
			engine.Close()
			return fmt.Errorf("%w: %v", speech.ErrStreamSetupFailed, err)
		}
		s.recognizer = recognizer
	}
	if s.updater == nil {
		updater, err := NewTranscriptUpdater(
			resultCh,
			s.transcript,
			&ViewWriter{Writer: s.viewWriter},
			&SegmentWriter{Writer: s.segmentWriter},
			s.sinks,
			activityCh,
		)
		if err != nil {
			engine.Close()
			return fmt.Errorf("%w: %v", speech.ErrStreamSetupFailed, err)
		}
		s.updater = updater
	}
	if s.monitor == nil && s.inactiveTimeout > 0 {
		monitor, err := NewActivityMonitor(activityCh, s.inactiveTimeout)
		if err != nil {
			engine.Close()
			return fmt.Errorf("%w: %v", speech.ErrStreamSetupFailed, err)
		}
		s.monitor = monitor
	}

	wctx, cancel := context.WithCancel(context.Background())
	eg, wctx := errgroup.WithContext(wctx)

	eg.Go(func() error {
		if err := s.queue.Start(wctx); err != nil {
			return fmt.Errorf("error occurred in audio queue: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := s.recognizer.Start(wctx); err != nil {
			return fmt.Errorf("error occurred in recognizer: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := s.updater.Start(wctx); err != nil {
			return fmt.Errorf("error occurred in transcript updater: %w", err)
		}
		return nil
	})
	if s.monitor != nil {
		eg.Go(func() error {
			if err := s.monitor.Start(wctx); err != nil {
				return fmt.Errorf("error occurred in activity monitor: %w", err)
			}
			return nil
		})
	}

	s.converter = converter
	s.engine = engine
	s.inCh = inCh
	s.wctx = wctx
	s.cancel = cancel
	s.eg = eg
	s.started = true

	slog.Debug("session set up",
		slog.String("locale", s.locale),
		slog.String("model", installation.Path),
		slog.String("source", s.source.String()),
		slog.String("engine", engineFormat.String()),
	)

	return nil
}

// StreamAudio converts one capture buffer to the engine format and
// enqueues it. The unbounded queue means the call does not wait for
// the engine; it fails fast when no session is active.
func (s *Session) StreamAudio(ctx context.Context, buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.finished {
		return fmt.Errorf("%w: no active recognition stream", speech.ErrUnsupportedAudio)
	}

	converted, err := s.converter.Convert(buf)
	if err != nil {
		return err
	}
	if len(converted) == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.wctx.Done():
		return errors.New("recognition stream is closed")
	case s.inCh <- converted:
		return nil
	}
}

// Finish closes the input, waits for the queue to drain and the
// engine to flush its final result, then cancels the workers and
// releases the engine. ctx bounds the wait; cancellation abandons
// the flush. Finishing a session that never started, or finishing
// twice, is a no-op.
func (s *Session) Finish(ctx context.Context) error {
	s.mu.Lock()
	if !s.started || s.finished {
		s.mu.Unlock()
		return nil
	}
	s.finished = true
	close(s.inCh)
	eg := s.eg
	s.mu.Unlock()

	slog.Debug("session finishing")

	done := make(chan error, 1)
	go func() { done <- eg.Wait() }()

	var err error
	select {
	case <-ctx.Done():
		// Abandon the flush.
		s.cancel()
		<-done
		err = ctx.Err()
	case err = <-done:
	}

	s.cancel()
	s.engine.Close()

	if err != nil {
		return fmt.Errorf("failed to finish transcription: %w", err)
	}

	slog.Debug("session finished")

	return nil
}
