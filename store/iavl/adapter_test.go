package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/nftoken/store"
)

func mustGet(t testing.TB, db store.ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := db.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCommitStoreBasic(t *testing.T) {
	kv := MockCommitStore()
	require.NoError(t, kv.LoadLatestVersion())

	id, err := kv.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(0), id.Version)

	k1, v1 := []byte("game"), []byte("of thrones")
	k2, v2 := []byte("hans"), []byte("solo")

	// data in a cache is not visible in the committed state
	cache := kv.CacheWrap()
	require.NoError(t, cache.Set(k1, v1))
	mustGet(t, cache, k1, v1)
	mustGet(t, kv, k1, nil)

	// ...until written back and committed
	require.NoError(t, cache.Write())
	mustGet(t, kv, k1, v1)
	id, err = kv.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)

	// discarded caches leave no trace
	trash := kv.CacheWrap()
	require.NoError(t, trash.Set(k2, v2))
	trash.Discard()
	mustGet(t, kv, k2, nil)

	// each commit advances the version and changes the hash
	cache = kv.CacheWrap()
	require.NoError(t, cache.Set(k2, v2))
	require.NoError(t, cache.Write())
	id2, err := kv.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2.Version)
	assert.NotEqual(t, id.Hash, id2.Hash)

	mustGet(t, kv, k1, v1)
	mustGet(t, kv, k2, v2)
}

func TestCommitStoreIterator(t *testing.T) {
	kv := MockCommitStore()
	require.NoError(t, kv.LoadLatestVersion())

	data := []store.Model{
		{Key: []byte("a1"), Value: []byte("one")},
		{Key: []byte("b2"), Value: []byte("two")},
		{Key: []byte("c3"), Value: []byte("three")},
	}
	batch := kv.NewBatch()
	for _, m := range data {
		require.NoError(t, batch.Set(m.Key, m.Value))
	}
	require.NoError(t, batch.Write())
	_, err := kv.Commit()
	require.NoError(t, err)

	iter, err := kv.Iterator(nil, nil)
	require.NoError(t, err)
	defer iter.Close()
	for i := 0; iter.Valid(); i++ {
		require.True(t, i < len(data))
		assert.Equal(t, data[i].Key, iter.Key())
		assert.Equal(t, data[i].Value, iter.Value())
		require.NoError(t, iter.Next())
	}

	// limit to a range, reverse order
	rev, err := kv.ReverseIterator([]byte("a"), []byte("c"))
	require.NoError(t, err)
	defer rev.Close()
	for i := 1; rev.Valid(); i-- {
		require.True(t, i >= 0)
		assert.Equal(t, data[i].Key, rev.Key())
		assert.Equal(t, data[i].Value, rev.Value())
		require.NoError(t, rev.Next())
	}
}

func TestCommitStoreDiskBacked(t *testing.T) {
	dir, err := ioutil.TempDir("", "iavl-adapter")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	kv := NewCommitStore(dir, "commits")
	require.NoError(t, kv.LoadLatestVersion())

	k, v := []byte("prince"), []byte("purple rain")
	require.NoError(t, kv.Set(k, v))
	id, err := kv.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)

	restored, err := kv.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, id.Version, restored.Version)
	assert.Equal(t, id.Hash, restored.Hash)
	mustGet(t, kv, k, v)
}
