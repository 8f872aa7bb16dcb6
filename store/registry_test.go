package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/locator"
)

// fakeStore counts constructions and closes for registry tests
type fakeStore struct {
	closed bool
}

func (f *fakeStore) Identifier() string { return "fake" }
func (f *fakeStore) Init(context.Context, *locator.Locator, *connection.Config) error {
	return nil
}
func (f *fakeStore) Download(context.Context, string, string) error { return nil }
func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

func fakeConstructor(constructed *int) func(context.Context, *locator.Locator, *connection.Config) (ObjectStore, error) {
	return func(context.Context, *locator.Locator, *connection.Config) (ObjectStore, error) {
		*constructed++
		return &fakeStore{}, nil
	}
}

func Test_Registry_CachesPerStoreURI(t *testing.T) {
	ctx := context.Background()
	var constructed int
	r := NewRegistryWithConstructor(&connection.Config{}, fakeConstructor(&constructed))

	locA1, _ := locator.Parse("s3://x/containers/a/paths/1.txt")
	locA2, _ := locator.Parse("s3://x/containers/a/paths/2.txt")
	locB, _ := locator.Parse("s3://x/containers/b/paths/1.txt")

	sA1, err := r.Get(ctx, locA1)
	assert.NoError(t, err)
	sA2, err := r.Get(ctx, locA2)
	assert.NoError(t, err)
	sB, err := r.Get(ctx, locB)
	assert.NoError(t, err)

	// same store URI reuses the cached handle
	assert.Same(t, sA1, sA2)
	assert.NotSame(t, sA1, sB)
	assert.Equal(t, 2, constructed)
	assert.Equal(t, 2, r.Len())
}

func Test_Registry_ClearDropsHandles(t *testing.T) {
	ctx := context.Background()
	var constructed int
	r := NewRegistryWithConstructor(&connection.Config{}, fakeConstructor(&constructed))

	loc, _ := locator.Parse("s3://x/containers/a/paths/1.txt")

	first, err := r.Get(ctx, loc)
	assert.NoError(t, err)

	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.True(t, first.(*fakeStore).closed)

	// a fetch after shutdown must reconstruct the handle
	second, err := r.Get(ctx, loc)
	assert.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, constructed)
}

func Test_Factory_UnknownScheme(t *testing.T) {
	loc, _ := locator.Parse("magnet://x/containers/a/paths/1.txt")
	_, err := Factory.GetObjectStore(context.Background(), loc, &connection.Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no object store registered")
}
