// Package binary provides functionality for locating, downloading, and caching
// the hadolint binary that the pre-commit hook delegates to.
//
// # Cache Layout
//
// Binaries are cached per pinned version:
//
//	~/.cache/hadolint-py/
//	    v2.12.0/
//	        hadolint
//	    v2.13.1/
//	        hadolint
//
// A cached binary is never refreshed or verified. Bumping the pinned version
// selects a new directory, so an old binary is never served for a new pin.
//
// # Download Strategy
//
// A cache miss is resolved with a single HTTP GET (no retries). The body is
// streamed into a uniquely named temporary file next to the final path, marked
// executable, and renamed into place. An interrupted download therefore never
// leaves a truncated file at the cached path. Concurrent hook runs serialize on
// a lock file in the version directory and re-check the cache once they hold it.
//
// # Usage
//
//	mgr, err := binary.NewManager(binary.Config{
//	    CacheRoot: cfg.CacheRoot,
//	    BaseURL:   cfg.BaseURL,
//	})
//	if err != nil {
//	    return err
//	}
//
//	bin := mgr.Plan("2.12.0", target)
//	if err := mgr.Ensure(ctx, bin); err != nil {
//	    return err
//	}
//
// # Architecture
//
//   - Manager: cache path planning, cache-hit check, locking, download orchestration
//   - Downloader: HTTP download to a temp file with atomic rename
//   - BuildURL: release asset URL construction
package binary
