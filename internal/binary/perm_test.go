package binary

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSetExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "hadolint")

	if err := os.WriteFile(testFile, []byte("test"), 0o640); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if err := SetExecutable(testFile); err != nil {
		t.Fatalf("SetExecutable failed: %v", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("failed to stat file after SetExecutable: %v", err)
	}

	// Existing bits are preserved, owner-execute is added
	if got := info.Mode().Perm(); got != 0o740 {
		t.Errorf("mode = %o, want 740", got)
	}
	if !isExecutable(info) {
		t.Error("isExecutable() = false after SetExecutable")
	}
}

func TestSetExecutable_MissingFile(t *testing.T) {
	if err := SetExecutable(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
