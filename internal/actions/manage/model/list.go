package model

import (
	"context"
	"fmt"

	"github.com/hekt/dictation/internal/assets"
)

type ListArgs struct {
	Dir string
}

func List(ctx context.Context, args ListArgs) error {
	manager, err := assets.NewManager(args.Dir)
	if err != nil {
		return fmt.Errorf("failed to create model manager: %w", err)
	}

	for _, locale := range assets.SupportedLocales() {
		model, ok := assets.Lookup(locale)
		if !ok {
			continue
		}
		mark := " "
		if manager.Installed(locale) {
			mark = "*"
		}
		fmt.Printf("%s %-6s %-32s %4d MB\n", mark, locale, model.Name, model.SizeMB)
	}

	return nil
}
