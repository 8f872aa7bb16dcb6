// Package fetcher materialises remote objects addressed by long-form
// locators to local scratch paths.
package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/helixbio/validate-worker/locator"
	"github.com/helixbio/validate-worker/rate_limiter"
	"github.com/helixbio/validate-worker/store"
)

// FetchError wraps any failure to materialise a locator - malformed
// locator, store construction failure or transfer failure. Transfers are
// not retried here; the store clients carry their own transport-level
// retry behaviour.
type FetchError struct {
	Locator string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %s", e.Locator, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher downloads remote objects through the store registry.
type Fetcher struct {
	registry *store.Registry
	// optional download limiter; nil means downloads are admitted
	// immediately
	limiter *rate_limiter.DownloadLimiter
}

func New(registry *store.Registry) *Fetcher {
	return &Fetcher{registry: registry}
}

// NewWithLimiter returns a fetcher which waits on the given limiter before
// each transfer.
func NewWithLimiter(registry *store.Registry, limiter *rate_limiter.DownloadLimiter) *Fetcher {
	return &Fetcher{registry: registry, limiter: limiter}
}

// Fetch downloads the object addressed by rawLocator into destDir, naming
// the local file after the final segment of the object path. It returns
// the local path of the downloaded file.
func (f *Fetcher) Fetch(ctx context.Context, rawLocator, destDir string) (string, error) {
	loc, err := locator.Parse(rawLocator)
	if err != nil {
		return "", &FetchError{Locator: rawLocator, Err: err}
	}

	s, err := f.registry.Get(ctx, loc)
	if err != nil {
		return "", &FetchError{Locator: rawLocator, Err: err}
	}

	localPath := filepath.Join(destDir, path.Base(loc.Path))

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", &FetchError{Locator: rawLocator, Err: err}
		}
		defer f.limiter.Release()
	}

	slog.Info("Downloading object", "locator", rawLocator, "dest", localPath)
	if err := s.Download(ctx, loc.Path, localPath); err != nil {
		return "", &FetchError{Locator: rawLocator, Err: err}
	}

	return localPath, nil
}
