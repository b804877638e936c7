package x_test

import (
	"context"
	"testing"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/vaultlocktest"
	"github.com/vaultlock/vaultlock/x"
)

func TestChainAuth(t *testing.T) {
	alice := vaultlocktest.NewCondition()
	bob := vaultlocktest.NewCondition()
	carl := vaultlocktest.NewCondition()

	a := &vaultlocktest.Auth{Signer: alice}
	b := &vaultlocktest.Auth{Signer: bob}
	auth := x.ChainAuth(a, b)

	ctx := context.Background()

	if got := auth.GetConditions(ctx); len(got) != 2 {
		t.Fatalf("expected both conditions, got %d", len(got))
	}
	if !auth.HasAddress(ctx, alice.Address()) {
		t.Fatal("alice must authenticate")
	}
	if !auth.HasAddress(ctx, bob.Address()) {
		t.Fatal("bob must authenticate")
	}
	if auth.HasAddress(ctx, carl.Address()) {
		t.Fatal("carl must not authenticate")
	}
}

func TestGetAddresses(t *testing.T) {
	alice := vaultlocktest.NewCondition()
	bob := vaultlocktest.NewCondition()
	auth := &vaultlocktest.Auth{Signers: []vaultlock.Condition{alice, bob}}

	addrs := x.GetAddresses(context.Background(), auth)
	if len(addrs) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(addrs))
	}
	if !addrs[0].Equals(alice.Address()) || !addrs[1].Equals(bob.Address()) {
		t.Fatal("addresses out of order")
	}
}

func TestMainSigner(t *testing.T) {
	alice := vaultlocktest.NewCondition()
	bob := vaultlocktest.NewCondition()

	ctx := context.Background()

	if got := x.MainSigner(ctx, &vaultlocktest.Auth{}); got != nil {
		t.Fatalf("expected no signer, got %s", got)
	}

	auth := &vaultlocktest.Auth{Signers: []vaultlock.Condition{alice, bob}}
	if got := x.MainSigner(ctx, auth); !got.Equals(alice) {
		t.Fatalf("expected first signer, got %s", got)
	}
}

func TestHasAllAddresses(t *testing.T) {
	alice := vaultlocktest.NewCondition()
	bob := vaultlocktest.NewCondition()
	carl := vaultlocktest.NewCondition()

	ctx := context.Background()
	auth := &vaultlocktest.Auth{Signers: []vaultlock.Condition{alice, bob}}

	required := []vaultlock.Address{alice.Address(), bob.Address()}
	if !x.HasAllAddresses(ctx, auth, required) {
		t.Fatal("expected all addresses present")
	}

	required = append(required, carl.Address())
	if x.HasAllAddresses(ctx, auth, required) {
		t.Fatal("carl is not a signer")
	}
}
