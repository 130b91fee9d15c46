package model

import (
	"context"
	"fmt"

	"github.com/hekt/dictation/internal/assets"
)

type ReleaseArgs struct {
	Dir string
}

func Release(ctx context.Context, args ReleaseArgs) error {
	manager, err := assets.NewManager(args.Dir)
	if err != nil {
		return fmt.Errorf("failed to create model manager: %w", err)
	}

	removed, err := manager.Release()
	if err != nil {
		return fmt.Errorf("failed to release models: %w", err)
	}

	if len(removed) == 0 {
		fmt.Println("No models installed")
		return nil
	}

	for _, locale := range removed {
		fmt.Printf("Model for %s removed\n", locale)
	}

	return nil
}
