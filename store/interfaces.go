// Package store provides the object-store handles the worker fetches
// through, and the process-wide registry which caches them.
package store

import (
	"context"

	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
)

// ObjectStore is an authenticated handle bound to one storage container.
// Handles are constructed lazily on first use, cached by the Registry for
// the worker's lifetime and only dropped when the registry is cleared on
// shutdown. Only read-style download operations are performed through a
// handle.
type ObjectStore interface {
	// Identifier returns the locator scheme this store serves, e.g. "s3"
	Identifier() string
	// Init binds the store to the container addressed by the locator and
	// constructs the underlying client
	Init(ctx context.Context, loc *locator.Locator, conns *connection.Config) error
	// Download materialises the remote object at destPath
	Download(ctx context.Context, remotePath, destPath string) error
	Close() error
}
