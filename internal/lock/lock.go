// Package lock provides an advisory file lock used to serialize cache
// population between concurrent hook runs.
//
// The lock is held by an open file descriptor, so the kernel releases it when
// the holder exits for any reason, including SIGKILL. The lock file itself is
// never removed: an orphaned file is harmless, and unlinking a file other
// processes may be waiting on would let two holders in at once.
package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultPollInterval is how often Acquire retries a held lock.
const DefaultPollInterval = 100 * time.Millisecond

var (
	ErrLockExists = errors.New("cache lock held: another hook run is downloading")
)

// Lock represents a held lock file.
type Lock struct {
	path string
	file *os.File
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// TryAcquire attempts once to lock dir/name, creating the file if needed.
// It returns ErrLockExists if a live process holds the lock.
func TryAcquire(dir, name string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lockPath := filepath.Join(dir, name)

	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file %s: %w", lockPath, err)
	}

	if err := tryLock(file); err != nil {
		file.Close()
		if errors.Is(err, errWouldBlock) {
			return nil, ErrLockExists
		}
		return nil, fmt.Errorf("lock %s: %w", lockPath, err)
	}

	return &Lock{
		path: lockPath,
		file: file,
	}, nil
}

// Acquire waits until dir/name can be locked, polling every interval.
// It gives up when ctx is done.
func Acquire(ctx context.Context, dir, name string, interval time.Duration) (*Lock, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("wait for lock: %w", err)
		}

		l, err := TryAcquire(dir, name)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, ErrLockExists) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for lock: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Release unlocks and closes the lock file. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}

	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil

	if unlockErr != nil {
		return fmt.Errorf("unlock %s: %w", l.path, unlockErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", l.path, closeErr)
	}
	return nil
}
