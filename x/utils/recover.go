package utils

import (
	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ vaultlock.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx, next vaultlock.Checker) (_ *vaultlock.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx, next vaultlock.Deliverer) (_ *vaultlock.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
