package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache.
func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	// make sure the store is empty at start but returns results
	// that are written to it
	k, v := []byte("french"), []byte("fry")
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
	has, err := base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, base.Set(k, v))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// now layer another btree on top and make sure that we get
	// base data through the cache
	cache := base.CacheWrap()
	got, err = cache.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// writing to the cache does not modify the base
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	got, err = cache.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, got)
	got, err = base.Get(k2)
	require.NoError(t, err)
	assert.Nil(t, got)

	// until we write it
	require.NoError(t, cache.Write())
	got, err = base.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, got)
}

func TestBTreeCacheDiscard(t *testing.T) {
	base := MemStore()
	k, v := []byte("owner"), []byte("alice")
	require.NoError(t, base.Set(k, v))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set(k, []byte("mallory")))
	require.NoError(t, cache.Set([]byte("extra"), []byte("data")))
	require.NoError(t, cache.Delete([]byte("owner")))
	cache.Discard()

	// all modifications are dropped, base is untouched
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	got, err = base.Get([]byte("extra"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBTreeCacheDelete(t *testing.T) {
	base := MemStore()
	k := []byte("spud")
	require.NoError(t, base.Set(k, []byte("gun")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Delete(k))

	// deleted in the cache, still in the base
	has, err := cache.Has(k)
	require.NoError(t, err)
	assert.False(t, has)
	has, err = base.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	// write propagates the delete
	require.NoError(t, cache.Write())
	has, err = base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBTreeCacheIterator(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("c"), []byte("3")))
	require.NoError(t, base.Set([]byte("d"), []byte("4")))

	cache := base.CacheWrap()
	// overwrite, insert and delete within the cache
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Set([]byte("c"), []byte("33")))
	require.NoError(t, cache.Delete([]byte("d")))

	iter, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	defer iter.Close()

	var keys, values []string
	for ; iter.Valid(); require.NoError(t, iter.Next()) {
		keys = append(keys, string(iter.Key()))
		values = append(values, string(iter.Value()))
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []string{"1", "2", "33"}, values)
}

func TestBTreeCacheReverseIterator(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("c"), []byte("3")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))

	iter, err := cache.ReverseIterator(nil, nil)
	require.NoError(t, err)
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); require.NoError(t, iter.Next()) {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"c", "b", "a"}, keys)
}
