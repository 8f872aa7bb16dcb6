package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	typehelpers "github.com/turbot/go-kit/types"

	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
)

const FileSystemObjectStoreIdentifier = "file"

func init() {
	// register store
	Factory.RegisterObjectStores(NewFileSystemObjectStore)
}

// FileSystemObjectStore is an [ObjectStore] implementation that reads
// objects from the local filesystem. Containers are directories under the
// configured file store root.
type FileSystemObjectStore struct {
	containerDir string
}

func NewFileSystemObjectStore() ObjectStore {
	return &FileSystemObjectStore{}
}

func (s *FileSystemObjectStore) Identifier() string {
	return FileSystemObjectStoreIdentifier
}

func (s *FileSystemObjectStore) Init(_ context.Context, loc *locator.Locator, conns *connection.Config) error {
	if loc.Container == "" {
		return fmt.Errorf("locator has no container segment: %s", loc.Raw)
	}

	root := typehelpers.SafeString(conns.FileStoreRoot)
	if root == "" {
		root = string(os.PathSeparator)
	}
	s.containerDir = filepath.Join(root, loc.Container)

	if _, err := os.Stat(s.containerDir); err != nil {
		return fmt.Errorf("container directory not accessible: %w", err)
	}
	return nil
}

func (s *FileSystemObjectStore) Download(_ context.Context, remotePath, destPath string) error {
	srcPath := filepath.Join(s.containerDir, filepath.FromSlash(remotePath))

	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open object, %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for file, %w", err)
	}

	outFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file, %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, src); err != nil {
		return fmt.Errorf("failed to write data to file, %w", err)
	}

	return nil
}

func (s *FileSystemObjectStore) Close() error {
	return nil
}
