// Package service wires the hook pipeline: resolve the pinned version, detect
// the platform, plan the download, populate the cache, and run the delegate.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/binary"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/config"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/platform"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/relay"
)

// Fetcher plans and populates the binary cache.
type Fetcher interface {
	Plan(version string, target platform.Target) *binary.CachedBinary
	Ensure(ctx context.Context, bin *binary.CachedBinary) error
}

// RunFunc runs the delegate binary and returns its exit code.
type RunFunc func(ctx context.Context, path string, args []string, streams relay.Streams) (int, error)

// Hook runs one invocation of the pre-commit hook.
type Hook struct {
	cfg      *config.Config
	detector platform.Detector
	fetcher  Fetcher
	run      RunFunc
	streams  relay.Streams
	logger   config.Logger
	clock    Clock
	stage    Stage
	start    time.Time
}

// HookOption configures a Hook during construction.
type HookOption func(*Hook)

// WithDetector overrides the platform detector.
func WithDetector(d platform.Detector) HookOption {
	return func(h *Hook) {
		h.detector = d
	}
}

// WithRunner overrides how the delegate is executed.
func WithRunner(run RunFunc) HookOption {
	return func(h *Hook) {
		h.run = run
	}
}

// WithStreams sets the streams the delegate's output is relayed to.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) HookOption {
	return func(h *Hook) {
		h.streams = relay.Streams{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	}
}

// WithLogger sets the logger for stage transitions.
func WithLogger(l config.Logger) HookOption {
	return func(h *Hook) {
		h.logger = l
	}
}

// WithClock sets the clock used for timing.
func WithClock(c Clock) HookOption {
	return func(h *Hook) {
		h.clock = c
	}
}

// NewHook creates a Hook for cfg that fetches through fetcher.
func NewHook(cfg *config.Config, fetcher Fetcher, opts ...HookOption) *Hook {
	h := &Hook{
		cfg:     cfg,
		fetcher: fetcher,
		stage:   StageResolvingVersion,
		streams: relay.Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.detector == nil {
		h.detector = platform.NewDetector()
	}
	if h.run == nil {
		h.run = relay.Run
	}
	if h.logger == nil {
		h.logger = config.NopLogger()
	}
	if h.clock == nil {
		h.clock = systemClock{}
	}
	return h
}

// Stage returns the stage the hook is in (or ended in).
func (h *Hook) Stage() Stage {
	return h.stage
}

// Run executes the pipeline and returns the exit code to terminate with.
// On error the code is 1 and the error is a *StageError wrapping one of
// *config.ConfigurationError, *platform.UnsupportedPlatformError or
// *binary.DownloadError.
func (h *Hook) Run(ctx context.Context, args []string) (int, error) {
	h.start = h.clock.Now()

	h.enter(StageResolvingVersion)
	version, err := config.ResolveVersion(h.cfg.Ref)
	if err != nil {
		return h.fail(err)
	}
	if !config.IsSemver(h.cfg.Ref) {
		h.logger.Warn("pinned ref is not a semantic version", "ref", h.cfg.Ref)
	}

	h.enter(StageDetectingPlatform)
	info, err := h.detector.Detect(ctx)
	if err != nil {
		return h.fail(err)
	}
	target, err := platform.MapInfo(info)
	if err != nil {
		return h.fail(err)
	}

	h.enter(StageBuildingURL)
	bin := h.fetcher.Plan(version, target)
	if bin == nil {
		return h.fail(fmt.Errorf("no download plan for hadolint %s on %s", version, target))
	}
	h.logger.Debug("planned download", "url", bin.URL, "path", bin.Path)

	h.enter(StageFetchingBinary)
	if err := h.fetcher.Ensure(ctx, bin); err != nil {
		return h.fail(err)
	}

	h.enter(StageRunningDelegate)
	code, err := h.run(ctx, bin.Path, args, h.streams)
	if err != nil {
		return h.fail(err)
	}

	h.enter(StageTerminated)
	h.logger.Debug("hadolint exited", "code", code, "elapsed", h.elapsed())
	return code, nil
}

func (h *Hook) enter(s Stage) {
	h.stage = s
	h.logger.Debug("stage", "name", s)
}

func (h *Hook) fail(err error) (int, error) {
	failed := h.stage
	h.stage = StageFailed
	h.logger.Debug("stage", "name", StageFailed, "from", failed, "err", err, "elapsed", h.elapsed())
	return 1, &StageError{Stage: failed, Err: err}
}

func (h *Hook) elapsed() time.Duration {
	return h.clock.Now().Sub(h.start)
}
