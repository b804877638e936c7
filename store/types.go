//nolint
package store

import "github.com/vaultlock/vaultlock"

// Move references for all storage types into this package
// for shorter names everywhere

type KVStore = vaultlock.KVStore
type ReadOnlyKVStore = vaultlock.ReadOnlyKVStore
type SetDeleter = vaultlock.SetDeleter
type Batch = vaultlock.Batch
type Iterator = vaultlock.Iterator
type CacheableKVStore = vaultlock.CacheableKVStore
type KVCacheWrap = vaultlock.KVCacheWrap
type Model = vaultlock.Model
