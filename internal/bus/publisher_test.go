package bus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	mynats "github.com/hekt/dictation/internal/interfaces/nats"
	"github.com/hekt/dictation/internal/speech"
)

func TestNewPublisher(t *testing.T) {
	type args struct {
		conn          mynats.Conn
		subjectPrefix string
		sessionID     string
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				conn:          &mynats.ConnMock{},
				subjectPrefix: "dictation",
				sessionID:     "session-1",
			},
			wantErr: false,
		},
		{
			name: "connection is nil",
			args: args{
				conn:          nil,
				subjectPrefix: "dictation",
				sessionID:     "session-1",
			},
			wantErr: true,
		},
		{
			name: "subject prefix is empty",
			args: args{
				conn:          &mynats.ConnMock{},
				subjectPrefix: "",
				sessionID:     "session-1",
			},
			wantErr: true,
		},
		{
			name: "session ID is empty",
			args: args{
				conn:          &mynats.ConnMock{},
				subjectPrefix: "dictation",
				sessionID:     "",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPublisher(tt.args.conn, tt.args.subjectPrefix, tt.args.sessionID)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPublisher() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPublisher_Partial(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("publishes to the partial subject", func(t *testing.T) {
		conn := &mynats.ConnMock{
			PublishFunc: func(subj string, data []byte) error {
				return nil
			},
		}
		p, err := NewPublisher(conn, "dictation", "session-1")
		if err != nil {
			t.Fatalf("NewPublisher() error = %v", err)
		}
		p.clock = func() time.Time { return now }

		if err := p.Partial(context.Background(), "hello wor"); err != nil {
			t.Fatalf("Partial() error = %v, wantErr %v", err, false)
		}

		calls := conn.PublishCalls()
		if len(calls) != 1 {
			t.Fatalf("Publish called %d times, want 1", len(calls))
		}
		if g, w := calls[0].Subj, "dictation.transcript.partial"; g != w {
			t.Errorf("published to %q, want %q", g, w)
		}

		var got TranscriptEvent
		if err := json.Unmarshal(calls[0].Data, &got); err != nil {
			t.Fatalf("failed to unmarshal payload: %v", err)
		}
		want := TranscriptEvent{
			SessionID: "session-1",
			Text:      "hello wor",
			Final:     false,
			Timestamp: now,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("skips empty text", func(t *testing.T) {
		conn := &mynats.ConnMock{
			PublishFunc: func(subj string, data []byte) error {
				return nil
			},
		}
		p, err := NewPublisher(conn, "dictation", "session-1")
		if err != nil {
			t.Fatalf("NewPublisher() error = %v", err)
		}

		if err := p.Partial(context.Background(), ""); err != nil {
			t.Fatalf("Partial() error = %v, wantErr %v", err, false)
		}
		if got, want := len(conn.PublishCalls()), 0; got != want {
			t.Errorf("Publish called %d times, want %d", got, want)
		}
	})
}

func TestPublisher_Final(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("publishes to the final subject", func(t *testing.T) {
		conn := &mynats.ConnMock{
			PublishFunc: func(subj string, data []byte) error {
				return nil
			},
		}
		p, err := NewPublisher(conn, "dictation", "session-1")
		if err != nil {
			t.Fatalf("NewPublisher() error = %v", err)
		}
		p.clock = func() time.Time { return now }

		result := &speech.Result{
			Transcript: "hello world",
			IsFinal:    true,
			Start:      500 * time.Millisecond,
			End:        1500 * time.Millisecond,
		}
		if err := p.Final(context.Background(), result); err != nil {
			t.Fatalf("Final() error = %v, wantErr %v", err, false)
		}

		calls := conn.PublishCalls()
		if len(calls) != 1 {
			t.Fatalf("Publish called %d times, want 1", len(calls))
		}
		if g, w := calls[0].Subj, "dictation.transcript.final"; g != w {
			t.Errorf("published to %q, want %q", g, w)
		}

		var got TranscriptEvent
		if err := json.Unmarshal(calls[0].Data, &got); err != nil {
			t.Fatalf("failed to unmarshal payload: %v", err)
		}
		want := TranscriptEvent{
			SessionID: "session-1",
			Text:      "hello world",
			Final:     true,
			StartMS:   500,
			EndMS:     1500,
			Timestamp: now,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("publish error propagates", func(t *testing.T) {
		wantErr := errors.New("publish error")
		conn := &mynats.ConnMock{
			PublishFunc: func(subj string, data []byte) error {
				return wantErr
			},
		}
		p, err := NewPublisher(conn, "dictation", "session-1")
		if err != nil {
			t.Fatalf("NewPublisher() error = %v", err)
		}

		result := &speech.Result{Transcript: "hello", IsFinal: true}
		if err := p.Final(context.Background(), result); !errors.Is(err, wantErr) {
			t.Errorf("Final() error = %v, want %v", err, wantErr)
		}
	})
}

func TestPublisher_Close(t *testing.T) {
	t.Run("flushes and drains", func(t *testing.T) {
		conn := &mynats.ConnMock{
			FlushFunc: func() error { return nil },
			DrainFunc: func() error { return nil },
		}
		p, err := NewPublisher(conn, "dictation", "session-1")
		if err != nil {
			t.Fatalf("NewPublisher() error = %v", err)
		}

		if err := p.Close(); err != nil {
			t.Errorf("Close() error = %v, wantErr %v", err, false)
		}
		if got, want := len(conn.FlushCalls()), 1; got != want {
			t.Errorf("Flush called %d times, want %d", got, want)
		}
		if got, want := len(conn.DrainCalls()), 1; got != want {
			t.Errorf("Drain called %d times, want %d", got, want)
		}
	})

	t.Run("closes hard when flush fails", func(t *testing.T) {
		conn := &mynats.ConnMock{
			FlushFunc: func() error { return errors.New("flush error") },
			CloseFunc: func() {},
		}
		p, err := NewPublisher(conn, "dictation", "session-1")
		if err != nil {
			t.Fatalf("NewPublisher() error = %v", err)
		}

		if err := p.Close(); err == nil {
			t.Errorf("Close() error = %v, wantErr %v", err, true)
		}
		if got, want := len(conn.CloseCalls()), 1; got != want {
			t.Errorf("Close called %d times, want %d", got, want)
		}
	})
}
