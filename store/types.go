//nolint
package store

import "github.com/iov-one/nftoken"

// Reference all storage types in this package for shorter names everywhere.

type ReadOnlyKVStore = nftoken.ReadOnlyKVStore
type KVStore = nftoken.KVStore
type SetDeleter = nftoken.SetDeleter
type Batch = nftoken.Batch
type Iterator = nftoken.Iterator
type CacheableKVStore = nftoken.CacheableKVStore
type KVCacheWrap = nftoken.KVCacheWrap
type CommitKVStore = nftoken.CommitKVStore
type CommitID = nftoken.CommitID
type Model = nftoken.Model
