package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Session is one recorded dictation run. EndedAt stays nil while the
// run is still open.
type Session struct {
	ID        string
	Locale    string
	StartedAt time.Time
	EndedAt   *time.Time
}

// Segment is one committed transcript segment. Seq orders segments
// within a session; StartMS and EndMS are the audio range the segment
// was recognized from.
type Segment struct {
	ID        int64
	SessionID string
	Seq       int
	Text      string
	StartMS   int64
	EndMS     int64
	CreatedAt time.Time
}

// Store keeps session history in a SQLite database.
type Store struct {
	db    *sql.DB
	clock func() time.Time
}

// Open opens the database at path, creating it and its schema as
// needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path must be specified")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	s := &Store{db: db, clock: time.Now}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS sessions (
    session_id TEXT PRIMARY KEY,
    locale TEXT NOT NULL,
    started_at TIMESTAMP NOT NULL,
    ended_at TIMESTAMP
);
CREATE TABLE IF NOT EXISTS segments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    text TEXT NOT NULL,
    start_ms INTEGER NOT NULL,
    end_ms INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY(session_id) REFERENCES sessions(session_id) ON DELETE CASCADE,
    UNIQUE(session_id, seq)
);
CREATE INDEX IF NOT EXISTS idx_segments_session_seq ON segments(session_id, seq);
`
	_, err := s.db.ExecContext(ctx, ddl)
	return err
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSession opens a new session row and returns it.
func (s *Store) CreateSession(ctx context.Context, locale string) (Session, error) {
	if locale == "" {
		return Session{}, errors.New("locale must be specified")
	}

	session := Session{
		ID:        uuid.NewString(),
		Locale:    locale,
		StartedAt: s.clock().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(session_id, locale, started_at) VALUES(?, ?, ?)`,
		session.ID, session.Locale, formatTime(session.StartedAt))
	if err != nil {
		return Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// EndSession stamps the session's end time. Ending an unknown session
// is an error.
func (s *Store) EndSession(ctx context.Context, sessionID string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ? WHERE session_id = ?`,
		formatTime(s.clock().UTC()), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}

	return nil
}

// AppendSegment writes one committed segment. A zero CreatedAt is
// filled from the store clock.
func (s *Store) AppendSegment(ctx context.Context, seg Segment) error {
	if seg.SessionID == "" {
		return errors.New("session ID must be specified")
	}
	if seg.CreatedAt.IsZero() {
		seg.CreatedAt = s.clock().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO segments(session_id, seq, text, start_ms, end_ms, created_at)
		 VALUES(?, ?, ?, ?, ?, ?)`,
		seg.SessionID, seg.Seq, seg.Text, seg.StartMS, seg.EndMS, formatTime(seg.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to append segment: %w", err)
	}

	return nil
}

// ListSessions returns up to limit sessions, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, locale, started_at, ended_at
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			session Session
			started string
			ended   sql.NullString
		)
		if err := rows.Scan(&session.ID, &session.Locale, &started, &ended); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		session.StartedAt = parseTime(started)
		if ended.Valid {
			t := parseTime(ended.String)
			session.EndedAt = &t
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// Segments returns the session's committed segments in order.
func (s *Store) Segments(ctx context.Context, sessionID string) ([]Segment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, seq, text, start_ms, end_ms, created_at
		 FROM segments WHERE session_id = ? ORDER BY seq ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	defer rows.Close()

	var segments []Segment
	for rows.Next() {
		var (
			seg     Segment
			created string
		)
		if err := rows.Scan(&seg.ID, &seg.SessionID, &seg.Seq, &seg.Text, &seg.StartMS, &seg.EndMS, &created); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		seg.CreatedAt = parseTime(created)
		segments = append(segments, seg)
	}

	return segments, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
