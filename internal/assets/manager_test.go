package assets

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hekt/dictation/internal/speech"
)

// writeModelArchive writes a zip shaped like the published model
// archives: the model directory at top level with a few asset files.
func writeModelArchive(t *testing.T, path string, modelName string) {
	t.Helper()

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	writer := zip.NewWriter(file)
	for _, name := range []string{
		modelName + "/am/final.mdl",
		modelName + "/conf/model.conf",
	} {
		f, err := writer.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry: %v", err)
		}
		if _, err := f.Write([]byte("model data")); err != nil {
			t.Fatalf("failed to write zip entry: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m, err := NewManager(t.TempDir())
		if err != nil {
			t.Errorf("NewManager() error = %v, want nil", err)
		}
		if m == nil {
			t.Error("NewManager() = nil, want manager")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		if _, err := NewManager(""); err == nil {
			t.Error("NewManager() error = nil, wantErr true")
		}
	})

	t.Run("nil downloader option", func(t *testing.T) {
		if _, err := NewManager(t.TempDir(), WithDownloader(nil)); err == nil {
			t.Error("NewManager() error = nil, wantErr true")
		}
	})
}

func TestManager_Ensure(t *testing.T) {
	t.Run("unsupported locale fails without download", func(t *testing.T) {
		downloader := &DownloaderInterfaceMock{
			DownloadFunc: func(ctx context.Context, url string, dest string) error {
				return nil
			},
		}
		m, err := NewManager(t.TempDir(), WithDownloader(downloader))
		if err != nil {
			t.Fatalf("NewManager() error = %v", err)
		}

		_, err = m.Ensure(context.Background(), "xx-XX")
		if !errors.Is(err, speech.ErrUnsupportedLocale) {
			t.Errorf("Ensure() error = %v, want %v", err, speech.ErrUnsupportedLocale)
		}
		if got := len(downloader.DownloadCalls()); got != 0 {
			t.Errorf("Download called %d times, want 0", got)
		}
	})

	t.Run("installed model skips download", func(t *testing.T) {
		dir := t.TempDir()
		model, _ := Lookup("en-US")
		if err := os.MkdirAll(filepath.Join(dir, model.Name), 0o755); err != nil {
			t.Fatalf("failed to create model dir: %v", err)
		}

		downloader := &DownloaderInterfaceMock{
			DownloadFunc: func(ctx context.Context, url string, dest string) error {
				return nil
			},
		}
		m, err := NewManager(dir, WithDownloader(downloader))
		if err != nil {
			t.Fatalf("NewManager() error = %v", err)
		}

		inst, err := m.Ensure(context.Background(), "en-US")
		if err != nil {
			t.Errorf("Ensure() error = %v, want nil", err)
		}
		if want := filepath.Join(dir, model.Name); inst.Path != want {
			t.Errorf("Ensure() path = %q, want %q", inst.Path, want)
		}
		if inst.SampleRate != model.SampleRate {
			t.Errorf("Ensure() sample rate = %d, want %d", inst.SampleRate, model.SampleRate)
		}
		if got := len(downloader.DownloadCalls()); got != 0 {
			t.Errorf("Download called %d times, want 0", got)
		}
	})

	t.Run("downloads and installs missing model", func(t *testing.T) {
		dir := t.TempDir()
		model, _ := Lookup("en-US")

		downloader := &DownloaderInterfaceMock{
			DownloadFunc: func(ctx context.Context, url string, dest string) error {
				writeModelArchive(t, dest, model.Name)
				return nil
			},
		}
		m, err := NewManager(dir, WithDownloader(downloader))
		if err != nil {
			t.Fatalf("NewManager() error = %v", err)
		}

		inst, err := m.Ensure(context.Background(), "en-US")
		if err != nil {
			t.Fatalf("Ensure() error = %v, want nil", err)
		}
		if !m.Installed("en-US") {
			t.Error("Installed() = false after Ensure, want true")
		}
		if _, err := os.Stat(filepath.Join(inst.Path, "am", "final.mdl")); err != nil {
			t.Errorf("installed model is missing assets: %v", err)
		}

		calls := downloader.DownloadCalls()
		if len(calls) != 1 {
			t.Fatalf("Download called %d times, want 1", len(calls))
		}
		if calls[0].URL != model.URL {
			t.Errorf("Download url = %q, want %q", calls[0].URL, model.URL)
		}

		// No staging leftovers after installation.
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read model dir: %v", err)
		}
		for _, entry := range entries {
			if entry.Name() != model.Name {
				t.Errorf("unexpected leftover %q in model dir", entry.Name())
			}
		}
	})

	t.Run("download failure propagates", func(t *testing.T) {
		downloader := &DownloaderInterfaceMock{
			DownloadFunc: func(ctx context.Context, url string, dest string) error {
				return fmt.Errorf("%w: connection refused", speech.ErrNoNetwork)
			},
		}
		m, err := NewManager(t.TempDir(), WithDownloader(downloader))
		if err != nil {
			t.Fatalf("NewManager() error = %v", err)
		}

		_, err = m.Ensure(context.Background(), "en-US")
		if !errors.Is(err, speech.ErrNoNetwork) {
			t.Errorf("Ensure() error = %v, want %v", err, speech.ErrNoNetwork)
		}
		if m.Installed("en-US") {
			t.Error("Installed() = true after failed download, want false")
		}
	})

	t.Run("broken archive", func(t *testing.T) {
		downloader := &DownloaderInterfaceMock{
			DownloadFunc: func(ctx context.Context, url string, dest string) error {
				return os.WriteFile(dest, []byte("not a zip archive"), 0o644)
			},
		}
		m, err := NewManager(t.TempDir(), WithDownloader(downloader))
		if err != nil {
			t.Fatalf("NewManager() error = %v", err)
		}

		_, err = m.Ensure(context.Background(), "en-US")
		if !errors.Is(err, speech.ErrModelDownloadFailed) {
			t.Errorf("Ensure() error = %v, want %v", err, speech.ErrModelDownloadFailed)
		}
	})

	t.Run("archive without the model directory", func(t *testing.T) {
		downloader := &DownloaderInterfaceMock{
			DownloadFunc: func(ctx context.Context, url string, dest string) error {
				writeModelArchive(t, dest, "some-other-model")
				return nil
			},
		}
		m, err := NewManager(t.TempDir(), WithDownloader(downloader))
		if err != nil {
			t.Fatalf("NewManager() error = %v", err)
		}

		_, err = m.Ensure(context.Background(), "en-US")
		if !errors.Is(err, speech.ErrModelDownloadFailed) {
			t.Errorf("Ensure() error = %v, want %v", err, speech.ErrModelDownloadFailed)
		}
	})
}

func TestManager_Remove(t *testing.T) {
	t.Run("removes installed model", func(t *testing.T) {
		dir := t.TempDir()
		model, _ := Lookup("en-US")
		if err := os.MkdirAll(filepath.Join(dir, model.Name), 0o755); err != nil {
			t.Fatalf("failed to create model dir: %v", err)
		}

		m, err := NewManager(dir)
		if err != nil {
			t.Fatalf("NewManager() error = %v", err)
		}

		if err := m.Remove("en-US"); err != nil {
			t.Errorf("Remove() error = %v, want nil", err)
		}
		if m.Installed("en-US") {
			t.Error("Installed() = true after Remove, want false")
		}
	})

	t.Run("unsupported locale", func(t *testing.T) {
		m, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("NewManager() error = %v", err)
		}

		if err := m.Remove("xx-XX"); !errors.Is(err, speech.ErrUnsupportedLocale) {
			t.Errorf("Remove() error = %v, want %v", err, speech.ErrUnsupportedLocale)
		}
	})
}

func TestManager_Release(t *testing.T) {
	dir := t.TempDir()
	installed := []string{"en-US", "ja-JP"}
	for _, locale := range installed {
		model, _ := Lookup(locale)
		if err := os.MkdirAll(filepath.Join(dir, model.Name), 0o755); err != nil {
			t.Fatalf("failed to create model dir: %v", err)
		}
	}

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	removed, err := m.Release()
	if err != nil {
		t.Fatalf("Release() error = %v, want nil", err)
	}
	if !reflect.DeepEqual(removed, installed) {
		t.Errorf("Release() = %v, want %v", removed, installed)
	}
	for _, locale := range installed {
		if m.Installed(locale) {
			t.Errorf("Installed(%q) = true after Release, want false", locale)
		}
	}
}
