package model

import (
	"context"
	"fmt"

	"github.com/hekt/dictation/internal/assets"
)

type RemoveArgs struct {
	Dir    string
	Locale string
}

func Remove(ctx context.Context, args RemoveArgs) error {
	manager, err := assets.NewManager(args.Dir)
	if err != nil {
		return fmt.Errorf("failed to create model manager: %w", err)
	}

	if err := manager.Remove(args.Locale); err != nil {
		return fmt.Errorf("failed to remove model: %w", err)
	}

	fmt.Printf("Model for %s removed\n", assets.NormalizeLocale(args.Locale))

	return nil
}
