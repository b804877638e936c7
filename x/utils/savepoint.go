package utils

import (
	"github.com/vaultlock/vaultlock"
)

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error.
//
// This is what turns the multi-leg settlement into an all-or-nothing
// unit: every Deliver runs against a cache wrap that is discarded
// wholesale when any leg fails.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ vaultlock.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnCheck/OnDeliver so it will be triggered
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on Check
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{
		onCheck:   true,
		onDeliver: s.onDeliver,
	}
}

// OnDeliver returns a savepoint that will trigger on Deliver
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{
		onCheck:   s.onCheck,
		onDeliver: true,
	}
}

// Check will optionally set a checkpoint
func (s Savepoint) Check(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx, next vaultlock.Checker) (*vaultlock.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}

	cstore, ok := store.(vaultlock.CacheableKVStore)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()
	return res, nil
}

// Deliver will optionally set a checkpoint
func (s Savepoint) Deliver(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx, next vaultlock.Deliverer) (*vaultlock.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}

	cstore, ok := store.(vaultlock.CacheableKVStore)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()
	return res, nil
}
