package store

import (
	"context"
	"fmt"

	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
)

// Factory is the global store factory
var Factory = newObjectStoreFactory()

type ObjectStoreFactory struct {
	storeFuncs map[string]func() ObjectStore
}

func newObjectStoreFactory() ObjectStoreFactory {
	return ObjectStoreFactory{
		storeFuncs: make(map[string]func() ObjectStore),
	}
}

// RegisterObjectStores registers ObjectStore implementations keyed by the
// locator scheme they serve. It is called from the init function of each
// store implementation.
func (f *ObjectStoreFactory) RegisterObjectStores(storeFuncs ...func() ObjectStore) {
	for _, ctor := range storeFuncs {
		// create an instance of the store to get the identifier
		c := ctor()
		f.storeFuncs[c.Identifier()] = ctor
	}
}

// GetObjectStore instantiates and initialises a store handle for the given
// locator. It fails if no store is registered for the locator's scheme.
func (f *ObjectStoreFactory) GetObjectStore(ctx context.Context, loc *locator.Locator, conns *connection.Config) (ObjectStore, error) {
	ctor, ok := f.storeFuncs[loc.Scheme]
	if !ok {
		return nil, fmt.Errorf("no object store registered for scheme %q (locator %s)", loc.Scheme, loc.Raw)
	}

	s := ctor()
	if err := s.Init(ctx, loc, conns); err != nil {
		return nil, fmt.Errorf("failed to initialise %s store: %w", s.Identifier(), err)
	}
	return s, nil
}
