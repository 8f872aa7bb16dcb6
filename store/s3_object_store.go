package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
)

const S3ObjectStoreIdentifier = "s3"

func init() {
	// register store
	Factory.RegisterObjectStores(NewS3ObjectStore)
}

// S3ObjectStore is an [ObjectStore] implementation that downloads objects
// from an S3 bucket.
type S3ObjectStore struct {
	storeURI string
	bucket   string
	client   *s3.Client
}

func NewS3ObjectStore() ObjectStore {
	return &S3ObjectStore{}
}

func (s *S3ObjectStore) Identifier() string {
	return S3ObjectStoreIdentifier
}

func (s *S3ObjectStore) Init(ctx context.Context, loc *locator.Locator, conns *connection.Config) error {
	s.storeURI = loc.StoreURI
	s.bucket = loc.Container
	if s.bucket == "" {
		return fmt.Errorf("locator has no container segment: %s", loc.Raw)
	}

	conn := conns.Aws
	if conn == nil {
		conn = &connection.AwsConnection{}
	}
	if err := conn.Validate(); err != nil {
		return fmt.Errorf("invalid aws connection: %w", err)
	}

	cfg, err := conn.GetClientConfiguration(ctx)
	if err != nil {
		return fmt.Errorf("unable to load SDK config, %w", err)
	}
	s.client = s3.NewFromConfig(*cfg)

	slog.Info("Initialized S3ObjectStore", "store_uri", s.storeURI, "bucket", s.bucket)
	return nil
}

func (s *S3ObjectStore) Download(ctx context.Context, remotePath, destPath string) error {
	getObjectOutput, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &remotePath,
	})
	if err != nil {
		return fmt.Errorf("failed to download object, %w", err)
	}
	defer getObjectOutput.Body.Close()

	// ensure the directory exists of the file to write to
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for file, %w", err)
	}

	outFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file, %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, getObjectOutput.Body); err != nil {
		return fmt.Errorf("failed to write data to file, %w", err)
	}

	return nil
}

func (s *S3ObjectStore) Close() error {
	// the s3 client shares its HTTP transport across handles; nothing to release
	return nil
}
