package model

import (
	"context"
	"fmt"
	"time"

	"github.com/hekt/dictation/internal/assets"
)

type DownloadArgs struct {
	Dir    string
	Locale string
}

func Download(ctx context.Context, args DownloadArgs) error {
	manager, err := assets.NewManager(args.Dir)
	if err != nil {
		return fmt.Errorf("failed to create model manager: %w", err)
	}

	if manager.Installed(args.Locale) {
		fmt.Printf("Model for %s is already installed\n", assets.NormalizeLocale(args.Locale))
		return nil
	}

	stopProgress := showProgress(manager)
	installation, err := manager.Ensure(ctx, args.Locale)
	stopProgress()
	if err != nil {
		return fmt.Errorf("failed to download model: %w", err)
	}

	fmt.Printf("Model installed at %s\n", installation.Path)

	return nil
}

// showProgress redraws the download percentage on one line until the
// returned stop function is called.
func showProgress(manager assets.ManagerInterface) func() {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				progress := manager.Progress()
				if progress.Total > 0 {
					fmt.Printf("\rDownloading... %3.0f%%", progress.Fraction()*100)
				}
			}
		}
	}()

	return func() {
		close(done)
		<-finished
		fmt.Println()
	}
}
