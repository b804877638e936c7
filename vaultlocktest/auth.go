package vaultlocktest

import (
	"context"
	"fmt"

	"github.com/vaultlock/vaultlock"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions. This is for the convinience and each time all signers
// (regardless which attribute) are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convinience attribute when creating an authentication method for a
	// single signer.
	// When authenticating all signers declared on this structure are
	// considered.
	Signer vaultlock.Condition

	// Signers represents an authentication of multiple signers.
	Signers []vaultlock.Condition
}

func (a *Auth) GetConditions(vaultlock.Context) []vaultlock.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx vaultlock.Context, addr vaultlock.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer.Address())
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve conditions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convinience only string type keys are allowed.
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx vaultlock.Context, conds ...vaultlock.Condition) vaultlock.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx vaultlock.Context) []vaultlock.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]vaultlock.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []vaultlock.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx vaultlock.Context, addr vaultlock.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
