package transcribe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hekt/dictation/internal/assets"
	"github.com/hekt/dictation/internal/audio"
	"github.com/hekt/dictation/internal/bus"
	"github.com/hekt/dictation/internal/config"
	"github.com/hekt/dictation/internal/file"
	"github.com/hekt/dictation/internal/session"
	"github.com/hekt/dictation/internal/store"
)

// finishTimeout bounds how long the pipeline may keep committing the
// remaining hypothesis after the audio source stops.
const finishTimeout = 10 * time.Second

type Args struct {
	Config config.Config
}

func Run(ctx context.Context, args Args, opts ...Option) error {
	cfg := args.Config

	options := &options{
		outputFilePath: filepath.Join(cfg.Output.Dir, fmt.Sprintf("%d.txt", time.Now().Unix())),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return fmt.Errorf("failed to apply option: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	manager, err := assets.NewManager(cfg.Models.Dir)
	if err != nil {
		return fmt.Errorf("failed to create model manager: %w", err)
	}

	source := audio.Format{
		SampleRate: cfg.Audio.SampleRate,
		Channels:   cfg.Audio.Channels,
	}
	var audioReader io.Reader = os.Stdin
	if options.inputFilePath != "" {
		wavSource, err := audio.OpenWAV(options.inputFilePath)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer func() {
			if err := wavSource.Close(); err != nil {
				slog.Warn(fmt.Sprintf("failed to close input file: %v", err))
			}
		}()
		source = wavSource.Format()
		audioReader = wavSource
	}

	if dir := filepath.Dir(options.outputFilePath); dir != "." {
		if err := os.MkdirAll(dir, os.FileMode(0o755)); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	// This behavior ensures the output file is created early,
	// making it easier to use with tools like `tail -f`.
	{
		f, err := os.OpenFile(options.outputFilePath, os.O_CREATE, os.FileMode(0o644))
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
	}

	segmentWriter := file.NewOpenCloseFileWriter(
		options.outputFilePath,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		os.FileMode(0o644),
	)

	sinks := make([]session.Sink, 0, 2)

	var sessionRecorder *store.SessionRecorder
	if cfg.Store.Enabled {
		st, err := store.Open(ctx, cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer func() {
			if err := st.Close(); err != nil {
				slog.Warn(fmt.Sprintf("failed to close history store: %v", err))
			}
		}()
		sessionRecorder, err = store.NewSessionRecorder(ctx, st, cfg.Locale)
		if err != nil {
			return fmt.Errorf("failed to create session recorder: %w", err)
		}
		sinks = append(sinks, sessionRecorder)
	}

	if cfg.Publish.Enabled {
		sessionID := uuid.NewString()
		if sessionRecorder != nil {
			sessionID = sessionRecorder.SessionID()
		}
		publisher, err := bus.Connect(cfg.Publish.URL, cfg.Publish.SubjectPrefix, sessionID)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn(fmt.Sprintf("failed to close publisher: %v", err))
			}
		}()
		sinks = append(sinks, publisher)
	}

	sessionOptions := make([]session.Option, 0, 2)
	if len(sinks) > 0 {
		sessionOptions = append(sessionOptions, session.WithSinks(sinks...))
	}
	if timeout := cfg.InactiveTimeout(); timeout > 0 {
		sessionOptions = append(sessionOptions, session.WithInactiveTimeout(timeout))
	}

	sess, err := session.New(
		cfg.Locale,
		source,
		manager,
		os.Stdout,
		segmentWriter,
		sessionOptions...,
	)
	if err != nil {
		return err
	}

	recorder, err := session.NewRecorder(audioReader, sess, cfg.Audio.BufferSize)
	if err != nil {
		return err
	}

	if err := sess.SetUp(ctx); err != nil {
		return fmt.Errorf("failed to set up session: %w", err)
	}

	// The recorder blocks in Read between chunks, so wait on the
	// interrupt and the pipeline as well. A recorder stuck on a quiet
	// source is abandoned; it stops with the process.
	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- recorder.Start(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case <-sess.Done():
		// The pipeline stopped on its own, typically the inactivity
		// timeout. Finish reports the worker's reason.
	case runErr = <-runErrCh:
	}

	// Finish on a fresh context so an interrupt still gets the
	// buffered audio flushed and the last hypothesis committed.
	finishCtx, cancel := context.WithTimeout(context.Background(), finishTimeout)
	defer cancel()
	if err := sess.Finish(finishCtx); err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}
	if sessionRecorder != nil {
		if err := sessionRecorder.Finish(finishCtx); err != nil {
			return fmt.Errorf("failed to close session record: %w", err)
		}
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
