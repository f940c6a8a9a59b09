package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/binary"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/config"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/platform"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/testutil"
)

// When HOOK_HELPER_PROCESS is set, the (downloaded copy of the) test binary
// acts as hadolint: it prints its arguments and exits with HOOK_HELPER_EXIT.
func TestMain(m *testing.M) {
	if os.Getenv("HOOK_HELPER_PROCESS") == "1" {
		fmt.Fprintf(os.Stdout, "hadolint %s\n", strings.Join(os.Args[1:], " "))
		fmt.Fprintln(os.Stderr, "DL3006 warning: Always tag the version of an image explicitly")
		code, _ := strconv.Atoi(os.Getenv("HOOK_HELPER_EXIT"))
		os.Exit(code)
	}
	os.Exit(m.Run())
}

func TestHookEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cached delegate has no .exe suffix")
	}

	env := testutil.SetupTestEnv(t)
	server := testutil.NewReleaseServer(t, testutil.SelfBinary(t), 0)

	t.Setenv("PRE_COMMIT_REF", "v2.12.0")
	t.Setenv("HADOLINT_PY_BASE_URL", server.URL)
	t.Setenv("HOOK_HELPER_PROCESS", "1")
	t.Setenv("HOOK_HELPER_EXIT", "1")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	mgr, err := binary.NewManager(binary.Config{
		CacheRoot:        cfg.CacheRoot,
		BaseURL:          cfg.BaseURL,
		LockPollInterval: 5 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	detector := &mockDetector{info: &platform.Info{System: "Linux", Machine: "x86_64"}}
	run := func() (int, string, string) {
		var stdout, stderr bytes.Buffer
		hook := NewHook(cfg, mgr,
			WithDetector(detector),
			WithStreams(nil, &stdout, &stderr),
		)
		code, err := hook.Run(context.Background(), []string{"--no-fail", "Dockerfile"})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return code, stdout.String(), stderr.String()
	}

	code, stdout, stderr := run()

	if code != 1 {
		t.Errorf("exit code = %d, want delegate's 1", code)
	}
	if stdout != "hadolint --no-fail Dockerfile\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "DL3006") {
		t.Errorf("stderr = %q", stderr)
	}

	if paths := server.Paths(); len(paths) != 1 || paths[0] != "/v2.12.0/hadolint-Linux-x86_64" {
		t.Errorf("requested paths = %v", paths)
	}

	cached := filepath.Join(env.CacheDir, "v2.12.0", "hadolint")
	info, err := os.Stat(cached)
	if err != nil {
		t.Fatalf("cached binary missing: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("cached binary not executable: %v", info.Mode())
	}

	// Second run is served from the cache
	code, stdout, _ = run()
	if code != 1 || stdout != "hadolint --no-fail Dockerfile\n" {
		t.Errorf("second run = %d %q", code, stdout)
	}
	if server.Requests() != 1 {
		t.Errorf("requests = %d, want 1", server.Requests())
	}
}

func TestHookEndToEnd_VersionBumpRedownloads(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cached delegate has no .exe suffix")
	}

	env := testutil.SetupTestEnv(t)
	server := testutil.NewReleaseServer(t, testutil.SelfBinary(t), 0)
	t.Setenv("HOOK_HELPER_PROCESS", "1")

	mgr, err := binary.NewManager(binary.Config{CacheRoot: env.CacheDir, BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	for _, ref := range []string{"v2.12.0", "v2.13.1"} {
		hook := NewHook(&config.Config{Ref: ref}, mgr,
			WithDetector(linuxDetector()),
			WithStreams(nil, &bytes.Buffer{}, &bytes.Buffer{}),
		)
		if _, err := hook.Run(context.Background(), nil); err != nil {
			t.Fatalf("Run(%s) error = %v", ref, err)
		}
	}

	if server.Requests() != 2 {
		t.Errorf("requests = %d, want one per pinned version", server.Requests())
	}
	for _, dir := range []string{"v2.12.0", "v2.13.1"} {
		if _, err := os.Stat(filepath.Join(env.CacheDir, dir, "hadolint")); err != nil {
			t.Errorf("missing cache entry for %s: %v", dir, err)
		}
	}
}
