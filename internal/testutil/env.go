// Package testutil provides utilities for testing the hook in isolation.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// Env describes an isolated test environment.
type Env struct {
	Root     string
	Home     string
	CacheDir string
}

// SetupTestEnv creates isolated test directories and points the hook's
// environment variables at them. This ensures tests never touch the user's
// real ~/.cache/hadolint-py.
//
// PRE_COMMIT_REF, HADOLINT_PY_BASE_URL and HADOLINT_PY_LOG_LEVEL are cleared;
// tests set the ones they need. Cleanup is handled by t.TempDir and t.Setenv.
func SetupTestEnv(t *testing.T) *Env {
	t.Helper()

	tmpDir := t.TempDir()
	env := &Env{
		Root:     tmpDir,
		Home:     filepath.Join(tmpDir, "home"),
		CacheDir: filepath.Join(tmpDir, "cache"),
	}

	if err := os.MkdirAll(env.Home, 0o750); err != nil {
		t.Fatalf("failed to create test directory %s: %v", env.Home, err)
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("USERPROFILE", env.Home)
	t.Setenv("HADOLINT_PY_CACHE_DIR", env.CacheDir)
	t.Setenv("PRE_COMMIT_REF", "")
	t.Setenv("HADOLINT_PY_BASE_URL", "")
	t.Setenv("HADOLINT_PY_LOG_LEVEL", "")

	return env
}

// ReleaseServer is an httptest server standing in for GitHub releases. It
// serves the same body for every path and records what was requested.
type ReleaseServer struct {
	*httptest.Server

	mu    sync.Mutex
	paths []string
}

// NewReleaseServer starts a ReleaseServer that answers every GET with body
// after delay. The server is closed when the test ends.
func NewReleaseServer(t *testing.T, body []byte, delay time.Duration) *ReleaseServer {
	t.Helper()

	rs := &ReleaseServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.paths = append(rs.paths, r.URL.Path)
		rs.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	t.Cleanup(rs.Close)

	return rs
}

// Requests returns the number of requests served so far.
func (rs *ReleaseServer) Requests() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.paths)
}

// Paths returns the request paths served so far, in order.
func (rs *ReleaseServer) Paths() []string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]string(nil), rs.paths...)
}

// SelfBinary returns the bytes of the running test binary, for tests that
// serve it as a fake delegate and re-exec it through a helper-process mode.
func SelfBinary(t *testing.T) []byte {
	t.Helper()

	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("resolve test executable: %v", err)
	}
	data, err := os.ReadFile(exe)
	if err != nil {
		t.Fatalf("read test executable: %v", err)
	}
	return data
}
