package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hekt/dictation/internal/session"
	"github.com/hekt/dictation/internal/speech"
)

var _ session.Sink = (*SessionRecorder)(nil)

// SessionRecorder persists committed segments of one dictation run.
// Volatile results are never written; only what the engine committed
// ends up in history.
type SessionRecorder struct {
	store   *Store
	session Session
	seq     int
}

// NewSessionRecorder opens a new session row for the run.
func NewSessionRecorder(ctx context.Context, store *Store, locale string) (*SessionRecorder, error) {
	if store == nil {
		return nil, errors.New("store must be specified")
	}

	session, err := store.CreateSession(ctx, locale)
	if err != nil {
		return nil, err
	}

	slog.Debug("session recorder started", slog.String("session_id", session.ID))

	return &SessionRecorder{
		store:   store,
		session: session,
	}, nil
}

// SessionID returns the ID of the recorded session.
func (r *SessionRecorder) SessionID() string {
	return r.session.ID
}

func (r *SessionRecorder) Partial(ctx context.Context, text string) error {
	return nil
}

func (r *SessionRecorder) Final(ctx context.Context, result *speech.Result) error {
	r.seq++
	seg := Segment{
		SessionID: r.session.ID,
		Seq:       r.seq,
		Text:      result.Transcript,
		StartMS:   result.Start.Milliseconds(),
		EndMS:     result.End.Milliseconds(),
	}
	if err := r.store.AppendSegment(ctx, seg); err != nil {
		return fmt.Errorf("failed to record segment %d: %w", r.seq, err)
	}

	return nil
}

// Finish stamps the session's end time.
func (r *SessionRecorder) Finish(ctx context.Context) error {
	return r.store.EndSession(ctx, r.session.ID)
}
