package vaultlocktest

import "github.com/vaultlock/vaultlock"

// Handler is a mock implementation of the vaultlock.Handler interface
// that counts calls and returns configured results.
type Handler struct {
	checkCall   int
	CheckResult vaultlock.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult vaultlock.DeliverResult
	DeliverErr    error
}

var _ vaultlock.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
