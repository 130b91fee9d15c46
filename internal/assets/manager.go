package assets

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/hekt/dictation/internal/speech"
)

//go:generate moq -rm -out manager_mock.go . ManagerInterface
type ManagerInterface interface {
	Ensure(ctx context.Context, locale string) (Installation, error)
	DownloadIfNeeded(ctx context.Context, locale string) (Installation, error)
	Installed(locale string) bool
	Supported(locale string) bool
	Remove(locale string) error
	Release() ([]string, error)
	Progress() Progress
}

// Installation locates an installed model on disk.
type Installation struct {
	Path       string
	SampleRate int
}

// Progress reports the running download in bytes. Total is zero until
// the response headers arrive.
type Progress struct {
	Done  int64
	Total int64
}

func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

var _ ManagerInterface = (*Manager)(nil)

// Manager installs model assets under a base directory. Archives are
// unpacked into a staging directory renamed into place, so a torn
// download never looks installed.
type Manager struct {
	dir        string
	downloader DownloaderInterface

	progressDone  atomic.Int64
	progressTotal atomic.Int64
}

type managerOptions struct {
	downloader DownloaderInterface
}

type ManagerOption func(*managerOptions) error

// WithDownloader replaces the HTTP downloader.
func WithDownloader(downloader DownloaderInterface) ManagerOption {
	return func(o *managerOptions) error {
		if downloader == nil {
			return errors.New("downloader must be specified")
		}
		o.downloader = downloader
		return nil
	}
}

func NewManager(dir string, opts ...ManagerOption) (*Manager, error) {
	if dir == "" {
		return nil, errors.New("model directory must be specified")
	}

	options := &managerOptions{}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	m := &Manager{dir: dir}
	if options.downloader != nil {
		m.downloader = options.downloader
	} else {
		m.downloader = NewHTTPDownloader(m.setProgress)
	}

	return m, nil
}

// Ensure fails for an unsupported locale without attempting download,
// otherwise installs the locale's model if it is not present yet.
func (m *Manager) Ensure(ctx context.Context, locale string) (Installation, error) {
	if !m.Supported(locale) {
		return Installation{}, fmt.Errorf("%w: %s", speech.ErrUnsupportedLocale, locale)
	}
	return m.DownloadIfNeeded(ctx, locale)
}

// DownloadIfNeeded returns the locale's installation, downloading and
// unpacking the model first if it is not on disk.
func (m *Manager) DownloadIfNeeded(ctx context.Context, locale string) (Installation, error) {
	model, ok := Lookup(locale)
	if !ok {
		return Installation{}, fmt.Errorf("%w: %s", speech.ErrUnsupportedLocale, locale)
	}

	path := filepath.Join(m.dir, model.Name)
	if dirExists(path) {
		return Installation{Path: path, SampleRate: model.SampleRate}, nil
	}

	slog.Debug("Manager: download model", slog.String("locale", model.Locale), slog.String("url", model.URL))
	if err := m.install(ctx, model); err != nil {
		return Installation{}, err
	}
	slog.Debug("Manager: model installed", slog.String("path", path))

	return Installation{Path: path, SampleRate: model.SampleRate}, nil
}

// Installed reports whether the locale's model is present on disk.
func (m *Manager) Installed(locale string) bool {
	model, ok := Lookup(locale)
	if !ok {
		return false
	}
	return dirExists(filepath.Join(m.dir, model.Name))
}

// Supported reports whether the locale is in the catalog.
func (m *Manager) Supported(locale string) bool {
	_, ok := Lookup(locale)
	return ok
}

// Remove deletes one locale's installed model.
func (m *Manager) Remove(locale string) error {
	model, ok := Lookup(locale)
	if !ok {
		return fmt.Errorf("%w: %s", speech.ErrUnsupportedLocale, locale)
	}
	if err := os.RemoveAll(filepath.Join(m.dir, model.Name)); err != nil {
		return fmt.Errorf("failed to remove %s: %w", model.Name, err)
	}
	return nil
}

// Release deletes every installed model and returns the locales that
// were released.
func (m *Manager) Release() ([]string, error) {
	removed := make([]string, 0, len(catalog))
	for _, locale := range SupportedLocales() {
		model, _ := Lookup(locale)
		path := filepath.Join(m.dir, model.Name)
		if !dirExists(path) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", model.Name, err)
		}
		removed = append(removed, locale)
	}
	return removed, nil
}

// Progress returns the running download's byte progress.
func (m *Manager) Progress() Progress {
	return Progress{
		Done:  m.progressDone.Load(),
		Total: m.progressTotal.Load(),
	}
}

func (m *Manager) setProgress(done, total int64) {
	m.progressDone.Store(done)
	m.progressTotal.Store(total)
}

func (m *Manager) install(ctx context.Context, model Model) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", speech.ErrModelDownloadFailed, err)
	}

	archivePath := filepath.Join(m.dir, model.Name+".zip.partial")
	defer os.Remove(archivePath)
	if err := m.downloader.Download(ctx, model.URL, archivePath); err != nil {
		return err
	}

	stagingDir := filepath.Join(m.dir, model.Name+".staging")
	defer os.RemoveAll(stagingDir)
	if err := extractZip(archivePath, stagingDir); err != nil {
		return fmt.Errorf("%w: %v", speech.ErrModelDownloadFailed, err)
	}

	// The published archives carry the model directory at top level.
	extracted := filepath.Join(stagingDir, model.Name)
	if !dirExists(extracted) {
		return fmt.Errorf("%w: archive does not contain %s", speech.ErrModelDownloadFailed, model.Name)
	}
	if err := os.Rename(extracted, filepath.Join(m.dir, model.Name)); err != nil {
		return fmt.Errorf("%w: %v", speech.ErrModelDownloadFailed, err)
	}

	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func extractZip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, f := range reader.File {
		if err := extractZipFile(f, destDir); err != nil {
			return fmt.Errorf("failed to extract %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractZipFile(f *zip.File, destDir string) error {
	dest := filepath.Join(destDir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(dest, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal path %q", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
