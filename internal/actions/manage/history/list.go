package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hekt/dictation/internal/store"
)

type ListArgs struct {
	Path  string
	Limit int
}

func List(ctx context.Context, args ListArgs) error {
	st, err := store.Open(ctx, args.Path)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Warn(fmt.Sprintf("failed to close history store: %v", err))
		}
	}()

	sessions, err := st.ListSessions(ctx, args.Limit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded")
		return nil
	}

	for _, session := range sessions {
		ended := "running"
		if session.EndedAt != nil {
			ended = session.EndedAt.Local().Format(time.DateTime)
		}
		fmt.Printf(
			"%s  %-6s  %s  %s\n",
			session.ID,
			session.Locale,
			session.StartedAt.Local().Format(time.DateTime),
			ended,
		)
	}

	return nil
}
