package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hekt/dictation/internal/store"
)

type ShowArgs struct {
	Path      string
	SessionID string
}

func Show(ctx context.Context, args ShowArgs) error {
	st, err := store.Open(ctx, args.Path)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Warn(fmt.Sprintf("failed to close history store: %v", err))
		}
	}()

	segments, err := st.Segments(ctx, args.SessionID)
	if err != nil {
		return fmt.Errorf("failed to load segments: %w", err)
	}

	if len(segments) == 0 {
		fmt.Println("No segments recorded")
		return nil
	}

	for _, segment := range segments {
		fmt.Printf(
			"[%7.2fs - %7.2fs] %s\n",
			float64(segment.StartMS)/1000,
			float64(segment.EndMS)/1000,
			segment.Text,
		)
	}

	return nil
}
