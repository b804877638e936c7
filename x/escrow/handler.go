package escrow

import (
	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
	"github.com/vaultlock/vaultlock/x"
	"github.com/vaultlock/vaultlock/x/ledger"
)

const (
	// pay escrow cost up-front
	initializeCost int64 = 300
	claimCost      int64 = 0
	returnCost     int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r vaultlock.Registry, auth x.Authenticator, ctrl ledger.Controller, policy FeePolicy) {
	if err := policy.Validate(); err != nil {
		panic(err)
	}
	bucket := NewBucket()

	r.Handle(pathInitialize, InitializeHandler{auth, bucket, ctrl})
	r.Handle(pathClaim, ClaimHandler{auth, bucket, ctrl, policy})
	r.Handle(pathReturn, ReturnHandler{auth, bucket, ctrl})
}

//---- initialize

// InitializeHandler opens an escrow and locks the deposit
type InitializeHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   ledger.Controller
}

var _ vaultlock.Handler = InitializeHandler{}

// Check does the validation and sets the cost of the transaction
func (h InitializeHandler) Check(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultlock.CheckResult{GasAllocated: initializeCost}, nil
}

// Deliver persists the escrow record and moves the deposit into the
// init vault. The record is only written when the move succeeds.
func (h InitializeHandler) Deliver(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	e := &Escrow{
		Initializer:       msg.Initializer,
		Receiver:          msg.Receiver,
		InitializerToken:  msg.InitializerToken,
		InitializerAmount: msg.InitializerAmount,
		ReceiverToken:     msg.ReceiverToken,
		ReceiverAmount:    msg.ReceiverAmount,
		FeeBasisPoints:    msg.FeeBasisPoints,
		FeeCollector:      msg.FeeCollector,
		Expiry:            msg.Expiry,
	}

	escrowID := h.bucket.NextID(db)

	// fees accrue in the keyless fee vault unless a collector is named
	if len(e.FeeCollector) == 0 {
		e.FeeCollector = FeeVaultAddr(escrowID)
	}

	if err := h.bucket.Save(db, escrowID, e); err != nil {
		return nil, err
	}

	if err := h.bank.Move(db, e.Initializer, InitVaultAddr(escrowID), e.InitializerToken, e.InitializerAmount); err != nil {
		return nil, errors.Wrap(err, "lock deposit")
	}

	// return id of the escrow to use in future calls
	return &vaultlock.DeliverResult{
		Data: escrowID,
		Tags: eventTags(ActionInitialized, escrowID, e),
	}, nil
}

// validate does all common pre-processing between Check and Deliver
func (h InitializeHandler) validate(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*InitializeMsg, error) {
	var msg InitializeMsg
	if err := vaultlock.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// initializer must authorize locking the deposit
	if !h.auth.HasAddress(ctx, msg.Initializer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "initializer signature missing")
	}

	// an expiry in the past is legal, the escrow opens already claimable

	return &msg, nil
}

//---- claim

// ClaimHandler runs the atomic settlement once the escrow expired
type ClaimHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   ledger.Controller
	policy FeePolicy
}

var _ vaultlock.Handler = ClaimHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ClaimHandler) Check(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultlock.CheckResult{GasAllocated: claimCost}, nil
}

// Deliver settles the exchange. Five moves run against the same
// store; the savepoint decorator guarantees none of them sticks
// unless all of them do.
func (h ClaimHandler) Deliver(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.DeliverResult, error) {
	msg, e, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	escrowID := msg.EscrowID

	initVault := InitVaultAddr(escrowID)
	recvVault := RecvVaultAddr(escrowID)

	var initFee, recvFee uint64
	if h.policy.onInitializer() {
		if initFee, err = Fee(e.InitializerAmount, e.FeeBasisPoints); err != nil {
			return nil, err
		}
	}
	if h.policy.onReceiver() {
		if recvFee, err = Fee(e.ReceiverAmount, e.FeeBasisPoints); err != nil {
			return nil, err
		}
	}

	// stage the receiver payment in the recv vault
	if err := h.bank.Move(db, e.Receiver, recvVault, e.ReceiverToken, e.ReceiverAmount); err != nil {
		return nil, errors.Wrap(err, "stage payment")
	}

	// pay out the deposit, fee cut first. At 10000 basis points the
	// fee swallows the whole amount and the net leg is skipped.
	if initFee > 0 {
		if err := h.bank.Move(db, initVault, e.FeeCollector, e.InitializerToken, initFee); err != nil {
			return nil, errors.Wrap(err, "deposit fee")
		}
	}
	if net := e.InitializerAmount - initFee; net > 0 {
		if err := h.bank.Move(db, initVault, e.Receiver, e.InitializerToken, net); err != nil {
			return nil, errors.Wrap(err, "pay deposit")
		}
	}

	// pay out the staged payment, fee cut first
	if recvFee > 0 {
		if err := h.bank.Move(db, recvVault, e.FeeCollector, e.ReceiverToken, recvFee); err != nil {
			return nil, errors.Wrap(err, "payment fee")
		}
	}
	if net := e.ReceiverAmount - recvFee; net > 0 {
		if err := h.bank.Move(db, recvVault, e.Initializer, e.ReceiverToken, net); err != nil {
			return nil, errors.Wrap(err, "pay initializer")
		}
	}

	// the record is spent, the id is never reused
	if err := h.bucket.Delete(db, escrowID); err != nil {
		return nil, err
	}

	return &vaultlock.DeliverResult{
		Tags: eventTags(ActionClaimed, escrowID, e),
	}, nil
}

// validate does all common pre-processing between Check and Deliver
func (h ClaimHandler) validate(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*ClaimMsg, *Escrow, error) {
	var msg ClaimMsg
	if err := vaultlock.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	e, err := h.bucket.GetEscrow(db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}

	// the claim window only opens at expiry
	if !vaultlock.IsExpired(ctx, e.Expiry) {
		return nil, nil, ErrNotExpired
	}

	// the caller must restate the record exactly
	switch {
	case !msg.Initializer.Equals(e.Initializer):
		return nil, nil, errors.Wrap(ErrMismatch, "initializer")
	case !msg.Receiver.Equals(e.Receiver):
		return nil, nil, errors.Wrap(ErrMismatch, "receiver")
	case !msg.InitializerToken.Equals(e.InitializerToken):
		return nil, nil, errors.Wrap(ErrMismatch, "initializer token")
	case !msg.ReceiverToken.Equals(e.ReceiverToken):
		return nil, nil, errors.Wrap(ErrMismatch, "receiver token")
	}

	// receiver must authorize paying the counter amount
	if !h.auth.HasAddress(ctx, e.Receiver) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "receiver signature missing")
	}

	return &msg, e, nil
}

//---- return

// ReturnHandler hands the deposit back before the claim window opens
type ReturnHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   ledger.Controller
}

var _ vaultlock.Handler = ReturnHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ReturnHandler) Check(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultlock.CheckResult{GasAllocated: returnCost}, nil
}

// Deliver moves the deposit back to the initializer and removes the
// escrow record
func (h ReturnHandler) Deliver(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.DeliverResult, error) {
	msg, e, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	escrowID := msg.EscrowID

	if err := h.bank.Move(db, InitVaultAddr(escrowID), e.Initializer, e.InitializerToken, e.InitializerAmount); err != nil {
		return nil, errors.Wrap(err, "release deposit")
	}
	if err := h.bucket.Delete(db, escrowID); err != nil {
		return nil, err
	}

	return &vaultlock.DeliverResult{
		Tags: eventTags(ActionReturned, escrowID, e),
	}, nil
}

// validate does all common pre-processing between Check and Deliver
func (h ReturnHandler) validate(ctx vaultlock.Context, db vaultlock.KVStore, tx vaultlock.Tx) (*ReturnMsg, *Escrow, error) {
	var msg ReturnMsg
	if err := vaultlock.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	e, err := h.bucket.GetEscrow(db, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}

	// once the claim window opened the deposit is committed
	if vaultlock.IsExpired(ctx, e.Expiry) {
		return nil, nil, ErrAlreadyExpired
	}

	if !h.auth.HasAddress(ctx, e.Initializer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "initializer signature missing")
	}

	return &msg, e, nil
}
