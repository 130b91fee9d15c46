package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	mynats "github.com/hekt/dictation/internal/interfaces/nats"
	"github.com/hekt/dictation/internal/session"
	"github.com/hekt/dictation/internal/speech"
)

const connectTimeout = 5 * time.Second

// TranscriptEvent is the wire form of one transcript update.
type TranscriptEvent struct {
	SessionID string    `json:"session_id"`
	Text      string    `json:"text"`
	Final     bool      `json:"final"`
	StartMS   int64     `json:"start_ms,omitempty"`
	EndMS     int64     `json:"end_ms,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

var _ session.Sink = (*Publisher)(nil)

// Publisher mirrors transcript updates onto the message bus so other
// processes can follow the dictation live. Partial updates go to
// <prefix>.transcript.partial, committed segments to
// <prefix>.transcript.final.
type Publisher struct {
	conn          mynats.Conn
	subjectPrefix string
	sessionID     string
	clock         func() time.Time
}

// Connect dials the NATS server and returns a publisher over the
// connection.
func Connect(url, subjectPrefix, sessionID string) (*Publisher, error) {
	if url == "" {
		return nil, errors.New("server URL must be specified")
	}

	conn, err := nats.Connect(url,
		nats.Name("dictation"),
		nats.Timeout(connectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	slog.Debug("connected to NATS", slog.String("url", url))

	return NewPublisher(conn, subjectPrefix, sessionID)
}

func NewPublisher(conn mynats.Conn, subjectPrefix, sessionID string) (*Publisher, error) {
	if conn == nil {
		return nil, errors.New("connection must be specified")
	}
	if subjectPrefix == "" {
		return nil, errors.New("subject prefix must be specified")
	}
	if sessionID == "" {
		return nil, errors.New("session ID must be specified")
	}

	return &Publisher{
		conn:          conn,
		subjectPrefix: subjectPrefix,
		sessionID:     sessionID,
		clock:         time.Now,
	}, nil
}

func (p *Publisher) Partial(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	event := TranscriptEvent{
		SessionID: p.sessionID,
		Text:      text,
		Final:     false,
		Timestamp: p.clock().UTC(),
	}
	return p.publish(p.subjectPrefix+".transcript.partial", event)
}

func (p *Publisher) Final(ctx context.Context, result *speech.Result) error {
	event := TranscriptEvent{
		SessionID: p.sessionID,
		Text:      result.Transcript,
		Final:     true,
		StartMS:   result.Start.Milliseconds(),
		EndMS:     result.End.Milliseconds(),
		Timestamp: p.clock().UTC(),
	}
	return p.publish(p.subjectPrefix+".transcript.final", event)
}

func (p *Publisher) publish(subject string, event TranscriptEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript event: %w", err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}

// Close flushes pending messages and drains the connection.
func (p *Publisher) Close() error {
	if err := p.conn.Flush(); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to flush nats connection: %w", err)
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to drain nats connection: %w", err)
	}

	return nil
}
