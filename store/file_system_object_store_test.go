package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
)

func Test_FileSystemObjectStore_Download(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	destDir := t.TempDir()

	// lay out a container with one object
	assert.NoError(t, os.MkdirAll(filepath.Join(root, "refs", "batch1"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "refs", "batch1", "sample.fa"), []byte("ACGT"), 0644))

	loc, err := locator.Parse("file://localhost/containers/refs/paths/batch1/sample.fa")
	assert.NoError(t, err)

	conns := &connection.Config{FileStoreRoot: &root}
	s, err := Factory.GetObjectStore(ctx, loc, conns)
	assert.NoError(t, err)
	assert.Equal(t, FileSystemObjectStoreIdentifier, s.Identifier())

	destPath := filepath.Join(destDir, "sample.fa")
	assert.NoError(t, s.Download(ctx, loc.Path, destPath))

	data, err := os.ReadFile(destPath)
	assert.NoError(t, err)
	assert.Equal(t, "ACGT", string(data))
}

func Test_FileSystemObjectStore_MissingContainer(t *testing.T) {
	root := t.TempDir()
	loc, err := locator.Parse("file://localhost/containers/no-such/paths/x.txt")
	assert.NoError(t, err)

	conns := &connection.Config{FileStoreRoot: &root}
	_, err = Factory.GetObjectStore(context.Background(), loc, conns)
	assert.Error(t, err)
}

func Test_FileSystemObjectStore_MissingObject(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(root, "refs"), 0755))

	loc, err := locator.Parse("file://localhost/containers/refs/paths/missing.fa")
	assert.NoError(t, err)

	conns := &connection.Config{FileStoreRoot: &root}
	s, err := Factory.GetObjectStore(ctx, loc, conns)
	assert.NoError(t, err)

	err = s.Download(ctx, loc.Path, filepath.Join(t.TempDir(), "missing.fa"))
	assert.Error(t, err)
}
