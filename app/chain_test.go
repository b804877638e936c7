package app

import (
	"context"
	"testing"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/vaultlocktest"
)

// countDecorator remembers how many times it ran before handing off
type countDecorator struct {
	checkCall   int
	deliverCall int
}

var _ vaultlock.Decorator = (*countDecorator)(nil)

func (c *countDecorator) Check(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx, next vaultlock.Checker) (*vaultlock.CheckResult, error) {
	c.checkCall++
	return next.Check(ctx, store, tx)
}

func (c *countDecorator) Deliver(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx, next vaultlock.Deliverer) (*vaultlock.DeliverResult, error) {
	c.deliverCall++
	return next.Deliver(ctx, store, tx)
}

func TestChainDecorators(t *testing.T) {
	outer := &countDecorator{}
	inner := &countDecorator{}
	h := &vaultlocktest.Handler{}

	stack := ChainDecorators(outer).Chain(inner).WithHandler(h)

	tx := &vaultlocktest.Tx{Msg: &vaultlocktest.Msg{RoutePath: "test/any"}}
	if _, err := stack.Check(context.Background(), nil, tx); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if _, err := stack.Deliver(context.Background(), nil, tx); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	for _, dec := range []*countDecorator{outer, inner} {
		if dec.checkCall != 1 || dec.deliverCall != 1 {
			t.Fatalf("decorator not traversed: %+v", dec)
		}
	}
	if h.CallCount() != 2 {
		t.Fatalf("handler not reached: %d", h.CallCount())
	}
}
