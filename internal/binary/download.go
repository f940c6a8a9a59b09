package binary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Downloader fetches release assets over HTTP.
type Downloader struct {
	client *http.Client
}

// DownloaderOption configures a Downloader during construction.
type DownloaderOption func(*Downloader)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(c *http.Client) DownloaderOption {
	return func(d *Downloader) {
		d.client = c
	}
}

// NewDownloader creates a new downloader. The default client has no timeout;
// callers bound the download through the context.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	d := &Downloader{}
	for _, opt := range opts {
		opt(d)
	}
	if d.client == nil {
		d.client = &http.Client{}
	}
	return d
}

// DownloadExecutable downloads url to destPath and marks it executable.
// The body is written to a temporary file in the destination directory and
// renamed into place only after it is complete, so destPath either does not
// exist or holds the full body.
func (d *Downloader) DownloadExecutable(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	// Unique per run so concurrent hooks never share a temp file
	tmpPath := filepath.Join(destDir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(destPath), uuid.NewString()))
	tmpFile, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("copy response body: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := SetExecutable(tmpPath); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	cleanupNeeded = false
	return nil
}
