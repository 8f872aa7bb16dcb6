package fetcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
	"github.com/helixbio/validate-worker/rate_limiter"
	"github.com/helixbio/validate-worker/store"
)

// newFileRegistry lays out objects under a temp file store root and returns
// a registry serving it, plus a locator builder for that root.
func newFileRegistry(t *testing.T, objects map[string]string) (*store.Registry, func(container, objectPath string) string) {
	t.Helper()
	root := t.TempDir()
	for p, contents := range objects {
		full := filepath.Join(root, filepath.FromSlash(p))
		assert.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		assert.NoError(t, os.WriteFile(full, []byte(contents), 0644))
	}
	conns := &connection.Config{FileStoreRoot: &root}
	mkLocator := func(container, objectPath string) string {
		return fmt.Sprintf("file://localhost/containers/%s/paths/%s", container, objectPath)
	}
	return store.NewRegistry(conns), mkLocator
}

func Test_Fetch(t *testing.T) {
	ctx := context.Background()
	registry, mkLocator := newFileRegistry(t, map[string]string{
		"refs/batch1/sample.fa": "ACGT",
	})
	f := New(registry)

	destDir := t.TempDir()
	localPath, err := f.Fetch(ctx, mkLocator("refs", "batch1/sample.fa"), destDir)
	assert.NoError(t, err)

	// local name derives from the final path segment
	assert.Equal(t, filepath.Join(destDir, "sample.fa"), localPath)
	data, err := os.ReadFile(localPath)
	assert.NoError(t, err)
	assert.Equal(t, "ACGT", string(data))
}

func Test_Fetch_MalformedLocator(t *testing.T) {
	registry, _ := newFileRegistry(t, nil)
	f := New(registry)

	_, err := f.Fetch(context.Background(), "file://localhost/containers/refs/no-marker", t.TempDir())
	assert.Error(t, err)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	var malformed *locator.MalformedLocatorError
	assert.True(t, errors.As(err, &malformed))
}

func Test_Fetch_TransferFailure(t *testing.T) {
	registry, mkLocator := newFileRegistry(t, map[string]string{
		"refs/present.fa": "ACGT",
	})
	f := New(registry)

	_, err := f.Fetch(context.Background(), mkLocator("refs", "absent.fa"), t.TempDir())
	assert.Error(t, err)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Locator, "absent.fa")
}

func Test_Fetch_WithLimiter(t *testing.T) {
	ctx := context.Background()
	registry, mkLocator := newFileRegistry(t, map[string]string{
		"refs/a.fa": "A",
		"refs/b.fa": "B",
	})
	limiter := rate_limiter.NewDownloadLimiter("downloads", &rate_limiter.Definition{MaxConcurrency: 1})
	f := NewWithLimiter(registry, limiter)

	destDir := t.TempDir()
	for _, obj := range []string{"a.fa", "b.fa"} {
		_, err := f.Fetch(ctx, mkLocator("refs", obj), destDir)
		assert.NoError(t, err)
	}
}
