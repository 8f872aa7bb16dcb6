package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
)

const GcsObjectStoreIdentifier = "gs"

func init() {
	// register store
	Factory.RegisterObjectStores(NewGcsObjectStore)
}

// GcsObjectStore is an [ObjectStore] implementation that downloads objects
// from a GCP Storage bucket.
type GcsObjectStore struct {
	storeURI string
	bucket   string
	client   *storage.Client
}

func NewGcsObjectStore() ObjectStore {
	return &GcsObjectStore{}
}

func (s *GcsObjectStore) Identifier() string {
	return GcsObjectStoreIdentifier
}

func (s *GcsObjectStore) Init(ctx context.Context, loc *locator.Locator, conns *connection.Config) error {
	s.storeURI = loc.StoreURI
	s.bucket = loc.Container
	if s.bucket == "" {
		return fmt.Errorf("locator has no container segment: %s", loc.Raw)
	}

	conn := conns.Gcp
	if conn == nil {
		conn = &connection.GcpConnection{}
	}

	opts, err := conn.GetClientOptions(ctx)
	if err != nil {
		return fmt.Errorf("failed setting GCP Storage client config: %s", err.Error())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create GCP Storage client: %s", err.Error())
	}
	s.client = client

	slog.Info("Initialized GcsObjectStore", "store_uri", s.storeURI, "bucket", s.bucket)
	return nil
}

func (s *GcsObjectStore) Download(ctx context.Context, remotePath, destPath string) error {
	obj := s.client.Bucket(s.bucket).Object(remotePath)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return fmt.Errorf("failed to get object reader: %s", err.Error())
	}
	defer reader.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for file, %w", err)
	}

	outFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file, %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, reader); err != nil {
		return fmt.Errorf("failed to write data to file, %w", err)
	}

	return nil
}

func (s *GcsObjectStore) Close() error {
	return s.client.Close()
}
