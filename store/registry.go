package store

import (
	"context"
	"log/slog"

	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
)

// Registry caches one ObjectStore handle per store URI for the lifetime of
// the worker process. Rows are processed strictly sequentially, so the map
// is deliberately unsynchronised; insertion only happens on cache miss.
//
// The registry does not detect or refresh expired credentials -
// authentication failure surfaces as a download error from the cached
// handle and is contained at the row boundary.
type Registry struct {
	stores map[string]ObjectStore
	conns  *connection.Config

	// store construction is injectable so tests can substitute handles
	newStore func(ctx context.Context, loc *locator.Locator, conns *connection.Config) (ObjectStore, error)
}

func NewRegistry(conns *connection.Config) *Registry {
	return &Registry{
		stores:   make(map[string]ObjectStore),
		conns:    conns,
		newStore: Factory.GetObjectStore,
	}
}

// NewRegistryWithConstructor returns a registry using the given store
// constructor instead of the global factory.
func NewRegistryWithConstructor(conns *connection.Config, newStore func(ctx context.Context, loc *locator.Locator, conns *connection.Config) (ObjectStore, error)) *Registry {
	return &Registry{
		stores:   make(map[string]ObjectStore),
		conns:    conns,
		newStore: newStore,
	}
}

// Get returns the cached handle for the locator's store URI, constructing
// and caching one on first use.
func (r *Registry) Get(ctx context.Context, loc *locator.Locator) (ObjectStore, error) {
	if s, ok := r.stores[loc.StoreURI]; ok {
		return s, nil
	}

	s, err := r.newStore(ctx, loc, r.conns)
	if err != nil {
		return nil, err
	}

	slog.Debug("Registry created store handle", "store_uri", loc.StoreURI, "scheme", loc.Scheme)
	r.stores[loc.StoreURI] = s
	return s, nil
}

// Len returns the number of cached handles.
func (r *Registry) Len() int {
	return len(r.stores)
}

// Clear closes and drops every cached handle. A fetch issued afterwards
// reconstructs its store rather than reusing a stale handle.
func (r *Registry) Clear() {
	for uri, s := range r.stores {
		if err := s.Close(); err != nil {
			slog.Warn("error closing store handle", "store_uri", uri, "error", err)
		}
	}
	r.stores = make(map[string]ObjectStore)
}
