package app

import (
	"github.com/vaultlock/vaultlock"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []vaultlock.Decorator
}

// ChainDecorators takes a chain of decorators,
// and upon adding a final Handler (often a Router),
// returns a Handler that executes the full stack.
//
//	app.ChainDecorators(
//	  utils.NewLogging(),
//	  utils.NewSavepoint().OnDeliver(),
//	  utils.NewRecovery(),
//	).WithHandler(router)
func ChainDecorators(chain ...vaultlock.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Chain appends more decorators to the current chain
func (d Decorators) Chain(chain ...vaultlock.Decorator) Decorators {
	return Decorators{chain: append(d.chain, chain...)}
}

// WithHandler resolves the stack into a concrete Handler
// by terminating the decorator chain
func (d Decorators) WithHandler(h vaultlock.Handler) vaultlock.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = chained{d.chain[i], h}
	}
	return h
}

// chained binds a decorator to its next handler,
// fulfilling the Handler interface
type chained struct {
	mid  vaultlock.Decorator
	next vaultlock.Handler
}

var _ vaultlock.Handler = chained{}

func (c chained) Check(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.CheckResult, error) {
	return c.mid.Check(ctx, store, tx, c.next)
}

func (c chained) Deliver(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.DeliverResult, error) {
	return c.mid.Deliver(ctx, store, tx, c.next)
}
