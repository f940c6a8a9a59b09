package relay

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The test binary doubles as the delegate: when RELAY_HELPER_PROCESS is set,
// TestMain behaves like a tiny hadolint stand-in instead of running tests.
func TestMain(m *testing.M) {
	if os.Getenv("RELAY_HELPER_PROCESS") == "1" {
		helperMain(os.Args[1:])
		return
	}
	os.Exit(m.Run())
}

// helperMain echoes its args to stdout, writes a marker to stderr, and exits
// with the code in RELAY_HELPER_EXIT.
func helperMain(args []string) {
	fmt.Fprintf(os.Stdout, "args=%s\n", strings.Join(args, "|"))
	fmt.Fprintln(os.Stderr, "stderr-marker")
	if in := os.Getenv("RELAY_HELPER_STDIN"); in == "1" {
		data, _ := readAll(os.Stdin)
		fmt.Fprintf(os.Stdout, "stdin=%s\n", data)
	}
	code, _ := strconv.Atoi(os.Getenv("RELAY_HELPER_EXIT"))
	os.Exit(code)
}

func readAll(f *os.File) (string, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(f)
	return buf.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"success", []string{"--no-fail", "Dockerfile"}, 0},
		{"lint failure", []string{"Dockerfile"}, 1},
		{"arbitrary code", []string{"--format", "json", "a b"}, 42},
		{"no args", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RELAY_HELPER_PROCESS", "1")
			t.Setenv("RELAY_HELPER_EXIT", strconv.Itoa(tt.exitCode))

			var stdout, stderr bytes.Buffer
			code, err := Run(context.Background(), os.Args[0], tt.args, Streams{
				Stdout: &stdout,
				Stderr: &stderr,
			})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if code != tt.exitCode {
				t.Errorf("exit code = %d, want %d", code, tt.exitCode)
			}

			wantOut := fmt.Sprintf("args=%s\n", strings.Join(tt.args, "|"))
			if stdout.String() != wantOut {
				t.Errorf("stdout = %q, want %q", stdout.String(), wantOut)
			}
			if stderr.String() != "stderr-marker\n" {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}
}

func TestRun_PassesStdin(t *testing.T) {
	t.Setenv("RELAY_HELPER_PROCESS", "1")
	t.Setenv("RELAY_HELPER_STDIN", "1")

	var stdout bytes.Buffer
	code, err := Run(context.Background(), os.Args[0], nil, Streams{
		Stdin:  strings.NewReader("FROM alpine"),
		Stdout: &stdout,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "stdin=FROM alpine") {
		t.Errorf("stdin not forwarded: %q", stdout.String())
	}
}

func TestRun_MissingBinary(t *testing.T) {
	code, err := Run(context.Background(), filepath.Join(t.TempDir(), "hadolint"), nil, Streams{})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("closed")
}

func TestRun_RelayFailure(t *testing.T) {
	t.Setenv("RELAY_HELPER_PROCESS", "1")
	t.Setenv("RELAY_HELPER_EXIT", "3")

	code, err := Run(context.Background(), os.Args[0], nil, Streams{Stdout: failingWriter{}})
	if err == nil {
		t.Fatal("expected relay error")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want child's 3", code)
	}
}
