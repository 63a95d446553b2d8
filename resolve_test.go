package gdrive_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gdrive "github.com/UrayMR/googledrive-ext"
	"github.com/UrayMR/googledrive-ext/memstore"
)

func TestResolveRoot(t *testing.T) {
	adapter := gdrive.New(memstore.New(), gdrive.WithRootFolder(memstore.RootID))

	obj, found, err := adapter.Resolve(context.Background(), "/", false)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, memstore.RootID, obj.ID)
	assert.True(t, obj.IsFolder())
}

func TestResolveNoCreateStopsAtFirstMiss(t *testing.T) {
	store := memstore.New()
	rec := newRecordingStore(store)
	adapter := gdrive.New(rec, gdrive.WithRootFolder(memstore.RootID))

	_, found, err := adapter.Resolve(context.Background(), "a/b/c", false)
	require.NoError(t, err)
	assert.False(t, found)

	assert.Zero(t, rec.count("CreateFolder"), "resolution without create issued create calls")
	assert.Equal(t, 1, rec.count("ChildrenByName"), "walk did not stop at the first missing segment")
	assert.Equal(t, 1, store.Len(), "store gained objects from a read-only resolution")
}

func TestResolveWithCreateBuildsIntermediates(t *testing.T) {
	store := memstore.New()
	rec := newRecordingStore(store)
	adapter := gdrive.New(rec, gdrive.WithRootFolder(memstore.RootID))
	ctx := context.Background()

	obj, found, err := adapter.Resolve(ctx, "a/b/c", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, obj.IsFolder())

	assert.Equal(t, 3, rec.count("CreateFolder"))
	assert.Equal(t, 4, store.Len(), "want root plus folders a, a/b, a/b/c")

	for _, path := range []string{"a", "a/b", "a/b/c"} {
		ok, err := adapter.DirectoryExists(ctx, path)
		require.NoError(t, err)
		assert.True(t, ok, "directory %q missing after create-resolution", path)
	}
}

func TestResolveServedFromCache(t *testing.T) {
	store := memstore.New()
	rec := newRecordingStore(store)
	adapter := gdrive.New(rec, gdrive.WithRootFolder(memstore.RootID))
	ctx := context.Background()

	require.NoError(t, adapter.CreateDirectory(ctx, "docs"))
	rec.reset()

	ok, err := adapter.DirectoryExists(ctx, "docs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, len(rec.calls), "resolution of a freshly created directory hit the store")
}

func TestResolveCachesAbsence(t *testing.T) {
	store := memstore.New()
	rec := newRecordingStore(store)
	adapter := gdrive.New(rec, gdrive.WithRootFolder(memstore.RootID))
	ctx := context.Background()

	ok, err := adapter.Exists(ctx, "nope")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, rec.count("ChildrenByName"))

	ok, err = adapter.Exists(ctx, "nope")
	require.NoError(t, err)
	require.False(t, ok)
	assert.Equal(t, 1, rec.count("ChildrenByName"), "cached absence was re-queried")
}

func TestResolveDuplicateNamesFirstMatchWins(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	first, err := store.CreateFolder(ctx, memstore.RootID, "dup")
	require.NoError(t, err)
	_, err = store.CreateFolder(ctx, memstore.RootID, "dup")
	require.NoError(t, err)

	adapter := gdrive.New(store, gdrive.WithRootFolder(memstore.RootID))
	obj, found, err := adapter.Resolve(ctx, "dup", false)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first.ID, obj.ID, "resolution did not pick the store's first match")
}

func TestResolveCreatesThroughCachedFile(t *testing.T) {
	store := memstore.New()
	adapter := gdrive.New(store, gdrive.WithRootFolder(memstore.RootID))
	ctx := context.Background()

	// Writing caches "f" as a file; a later create-resolution through it must
	// behave like the uncached walk and create a sibling folder named "f".
	require.NoError(t, adapter.Write(ctx, "f", []byte("x")))

	obj, found, err := adapter.Resolve(ctx, "f/child", true)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, obj.IsFolder())

	ok, err := adapter.DirectoryExists(ctx, "f/child")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolveDoesNotDescendIntoFiles(t *testing.T) {
	store := memstore.New()
	adapter := gdrive.New(store, gdrive.WithRootFolder(memstore.RootID))
	ctx := context.Background()

	require.NoError(t, adapter.Write(ctx, "f", []byte("x")))

	_, found, err := adapter.Resolve(ctx, "f/child", false)
	require.NoError(t, err)
	assert.False(t, found, "resolved a path through a file component")
}
