package vaultlock

import (
	"context"
	"time"

	"github.com/vaultlock/vaultlock/errors"
)

// Context is just the request-scoped context.Context. We use the
// standard library type directly, but declare the alias so the intent
// is clear in all handler signatures.
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyTime
)

// WithHeight sets the block height for the Context.
// Panics if height was already set.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("block height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height.
// ok is false if no height is set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithBlockTime sets the block time for the Context.
// The ledger executes every call against the time declared for the
// block, never against the wall clock.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the timestamp of the block being processed.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return val, nil
}

// IsExpired returns true if given time is in the past as compared to
// the "now" as declared for the block. Expiration is inclusive, meaning
// that if current time is equal to the expiration time then this
// function returns true.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		// Having a block time is a non negotiable requirement for
		// processing any expiration-aware call.
		panic(err)
	}
	return t <= AsUnixTime(blockNow)
}
