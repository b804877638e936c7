package vaultlock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContextHeight(t *testing.T) {
	ctx := context.Background()

	_, ok := GetHeight(ctx)
	assert.False(t, ok)

	ctx = WithHeight(ctx, 7)
	height, ok := GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), height)

	// the height is set exactly once per block
	assert.Panics(t, func() { WithHeight(ctx, 9) })
}

func TestContextBlockTime(t *testing.T) {
	ctx := context.Background()

	if _, err := BlockTime(ctx); err == nil {
		t.Fatal("expected error without block time")
	}

	now := time.Now()
	ctx = WithBlockTime(ctx, now)
	got, err := BlockTime(ctx)
	assert.NoError(t, err)
	assert.True(t, now.Equal(got))
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	ctx := WithBlockTime(context.Background(), now)

	assert.True(t, IsExpired(ctx, AsUnixTime(now.Add(-time.Minute))))
	assert.False(t, IsExpired(ctx, AsUnixTime(now.Add(time.Minute))))

	// expiry is inclusive
	assert.True(t, IsExpired(ctx, AsUnixTime(now)))
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	assert.Panics(t, func() {
		IsExpired(context.Background(), AsUnixTime(time.Now()))
	})
}
