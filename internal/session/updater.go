package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hekt/dictation/internal/speech"
)

//go:generate moq -rm -out updater_mock.go . TranscriptUpdaterInterface
type TranscriptUpdaterInterface interface {
	Start(ctx context.Context) error
}

var _ TranscriptUpdaterInterface = (*TranscriptUpdater)(nil)

// TranscriptUpdater consumes recognition results and applies them to
// the transcript: volatile results replace the tentative tail, final
// results are committed for good. Every update repaints the view;
// committed segments also go to the segment writer and the sinks.
// The result channel closing means the engine has flushed, so the
// updater returns nil and closes the activity channel on the way out.
type TranscriptUpdater struct {
	resultCh      <-chan []*speech.Result
	transcript    *Transcript
	view          *ViewWriter
	segmentWriter io.Writer
	sinks         []Sink
	activityCh    chan<- struct{}
}

func NewTranscriptUpdater(
	resultCh <-chan []*speech.Result,
	transcript *Transcript,
	view *ViewWriter,
	segmentWriter io.Writer,
	sinks []Sink,
	activityCh chan<- struct{},
) (*TranscriptUpdater, error) {
	if resultCh == nil {
		return nil, errors.New("result channel must be specified")
	}
	if transcript == nil {
		return nil, errors.New("transcript must be specified")
	}
	if view == nil {
		return nil, errors.New("view must be specified")
	}
	if segmentWriter == nil {
		return nil, errors.New("segment writer must be specified")
	}

	return &TranscriptUpdater{
		resultCh:      resultCh,
		transcript:    transcript,
		view:          view,
		segmentWriter: segmentWriter,
		sinks:         sinks,
		activityCh:    activityCh,
	}, nil
}

func (u *TranscriptUpdater) Start(ctx context.Context) error {
	if u.activityCh != nil {
		defer close(u.activityCh)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results, ok := <-u.resultCh:
			if !ok {
				return nil
			}
			for _, result := range results {
				if err := u.apply(ctx, result); err != nil {
					return err
				}
			}
			u.notifyActivity()
		}
	}
}

func (u *TranscriptUpdater) apply(ctx context.Context, result *speech.Result) error {
	if result.IsFinal {
		slog.Debug("TranscriptUpdater: commit final result")
		u.transcript.AppendFinal(result.Transcript)
		if _, err := u.segmentWriter.Write([]byte(result.Transcript)); err != nil {
			return fmt.Errorf("failed to write segment: %w", err)
		}
		for _, sink := range u.sinks {
			if err := sink.Final(ctx, result); err != nil {
				slog.Error(fmt.Sprintf("failed to deliver final result to sink: %v", err))
			}
		}
	} else {
		u.transcript.ReplaceVolatile(result.Transcript)
		for _, sink := range u.sinks {
			if err := sink.Partial(ctx, result.Transcript); err != nil {
				slog.Error(fmt.Sprintf("failed to deliver partial result to sink: %v", err))
			}
		}
	}

	finalized, volatile := u.transcript.Snapshot()
	if err := u.view.Render(finalized, volatile); err != nil {
		return fmt.Errorf("failed to render view: %w", err)
	}

	return nil
}

// notifyActivity pokes the activity monitor without blocking; a full
// buffer means a signal is already pending.
func (u *TranscriptUpdater) notifyActivity() {
	if u.activityCh == nil {
		return
	}
	select {
	case u.activityCh <- struct{}{}:
	default:
	}
}
