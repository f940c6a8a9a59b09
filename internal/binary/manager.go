package binary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/config"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/lock"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/platform"
)

// lockFileName is locked in the version directory while a download is in flight.
// The file outlives the lock and is reused by later runs.
const lockFileName = ".hadolint.lock"

// Manager plans cache paths and populates the cache on demand
type Manager struct {
	cacheRoot    string
	baseURL      string
	downloader   *Downloader
	logger       config.Logger
	lockInterval time.Duration
}

// Config holds configuration for the binary manager
type Config struct {
	// CacheRoot holds one subdirectory per cached version
	CacheRoot string
	// BaseURL is the release download root (default: DefaultBaseURL)
	BaseURL string
	// Downloader overrides the default HTTP downloader
	Downloader *Downloader
	// Logger receives progress messages (default: no-op)
	Logger config.Logger
	// LockPollInterval is how often a waiting run re-checks the cache lock
	LockPollInterval time.Duration
}

// NewManager creates a new binary manager
func NewManager(cfg Config) (*Manager, error) {
	if cfg.CacheRoot == "" {
		return nil, fmt.Errorf("CacheRoot is required")
	}

	m := &Manager{
		cacheRoot:    cfg.CacheRoot,
		baseURL:      cfg.BaseURL,
		downloader:   cfg.Downloader,
		logger:       cfg.Logger,
		lockInterval: cfg.LockPollInterval,
	}

	if m.baseURL == "" {
		m.baseURL = DefaultBaseURL
	}
	if m.downloader == nil {
		m.downloader = NewDownloader()
	}
	if m.logger == nil {
		m.logger = config.NopLogger()
	}
	if m.lockInterval <= 0 {
		m.lockInterval = lock.DefaultPollInterval
	}

	return m, nil
}

// CacheDir returns the directory that holds the binary for version.
func (m *Manager) CacheDir(version string) string {
	return filepath.Join(m.cacheRoot, cacheKey(version))
}

// Plan resolves the download URL and cache path for version on target.
// It performs no I/O.
func (m *Manager) Plan(version string, target platform.Target) *CachedBinary {
	return &CachedBinary{
		Version: version,
		OS:      target.OS,
		Arch:    target.Arch,
		URL:     BuildURL(m.baseURL, version, target),
		Path:    filepath.Join(m.CacheDir(version), BinaryName),
	}
}

// Ensure makes sure bin.Path holds the binary. A cache hit returns without
// any network I/O; a miss downloads bin.URL under the cache lock.
func (m *Manager) Ensure(ctx context.Context, bin *CachedBinary) error {
	if bin == nil {
		return fmt.Errorf("cached binary is required")
	}

	dir := filepath.Dir(bin.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DownloadError{URL: bin.URL, Path: bin.Path, Err: fmt.Errorf("create cache dir: %w", err)}
	}

	if m.hit(bin) {
		return nil
	}

	l, err := lock.TryAcquire(dir, lockFileName)
	if errors.Is(err, lock.ErrLockExists) {
		m.logger.Info("Waiting for cache lock held by another hadolint run...", "lock", filepath.Join(dir, lockFileName))
		l, err = lock.Acquire(ctx, dir, lockFileName, m.lockInterval)
	}
	if err != nil {
		return &DownloadError{URL: bin.URL, Path: bin.Path, Err: fmt.Errorf("acquire cache lock: %w", err)}
	}
	defer func() {
		if err := l.Release(); err != nil {
			m.logger.Warn("failed to release cache lock", "path", l.Path(), "err", err)
		}
	}()

	// Another run may have populated the cache while we waited
	if m.hit(bin) {
		return nil
	}

	m.logger.Info(fmt.Sprintf("Downloading hadolint from %s...", bin.URL))

	start := time.Now()
	if err := m.downloader.DownloadExecutable(ctx, bin.URL, bin.Path); err != nil {
		return &DownloadError{URL: bin.URL, Path: bin.Path, Err: err}
	}
	bin.Executable = true

	m.logger.Debug("download complete", "path", bin.Path, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// hit reports a cache hit and records the executable bit.
func (m *Manager) hit(bin *CachedBinary) bool {
	info, ok := cachedFile(bin.Path)
	if !ok {
		return false
	}
	bin.Executable = isExecutable(info)
	m.logger.Debug("cache hit", "path", bin.Path)
	return true
}

// cachedFile checks if path is a non-empty regular file
func cachedFile(path string) (os.FileInfo, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	return info, info.Mode().IsRegular() && info.Size() > 0
}

// cacheKey maps a version to a single safe directory name.
func cacheKey(version string) string {
	return "v" + strings.NewReplacer("/", "_", `\`, "_").Replace(version)
}
