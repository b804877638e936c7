package utils

import (
	"context"
	"testing"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
	"github.com/vaultlock/vaultlock/vaultlocktest"
)

type panicHandler struct{}

func (panicHandler) Check(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.CheckResult, error) {
	panic("check kaboom")
}

func (panicHandler) Deliver(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.DeliverResult, error) {
	panic("deliver kaboom")
}

func TestRecovery(t *testing.T) {
	r := NewRecovery()
	ctx := context.Background()
	tx := &vaultlocktest.Tx{}

	_, err := r.Check(ctx, nil, tx, panicHandler{})
	if !errors.ErrPanic.Is(err) {
		t.Fatalf("expected panic error, got %+v", err)
	}

	_, err = r.Deliver(ctx, nil, tx, panicHandler{})
	if !errors.ErrPanic.Is(err) {
		t.Fatalf("expected panic error, got %+v", err)
	}

	// a clean handler passes through untouched
	if _, err := r.Check(ctx, nil, tx, &vaultlocktest.Handler{}); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
}
