package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/hekt/dictation/internal/speech"
)

//go:generate moq -rm -out downloader_mock.go . DownloaderInterface
type DownloaderInterface interface {
	Download(ctx context.Context, url string, dest string) error
}

var _ DownloaderInterface = (*HTTPDownloader)(nil)

// HTTPDownloader fetches model archives over HTTP, reporting byte
// progress through the callback.
type HTTPDownloader struct {
	client     *http.Client
	onProgress func(done, total int64)
}

func NewHTTPDownloader(onProgress func(done, total int64)) *HTTPDownloader {
	return &HTTPDownloader{
		client:     &http.Client{},
		onProgress: onProgress,
	}
}

// Download writes the body of url to dest. Transport failures surface
// the no-network error, HTTP failures the model-download error.
func (d *HTTPDownloader) Download(ctx context.Context, url string, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", speech.ErrModelDownloadFailed, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", speech.ErrNoNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", speech.ErrModelDownloadFailed, resp.Status)
	}
	d.reportProgress(0, resp.ContentLength)

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("%w: %v", speech.ErrModelDownloadFailed, err)
	}

	writer := &progressWriter{
		total:      resp.ContentLength,
		onProgress: d.onProgress,
	}
	if _, err := io.Copy(io.MultiWriter(file, writer), resp.Body); err != nil {
		_ = file.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", speech.ErrModelDownloadFailed, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", speech.ErrModelDownloadFailed, err)
	}

	return nil
}

func (d *HTTPDownloader) reportProgress(done, total int64) {
	if d.onProgress != nil {
		d.onProgress(done, total)
	}
}

type progressWriter struct {
	done       int64
	total      int64
	onProgress func(done, total int64)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.done += int64(len(p))
	if w.onProgress != nil {
		w.onProgress(w.done, w.total)
	}
	return len(p), nil
}
