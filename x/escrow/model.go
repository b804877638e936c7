package escrow

import (
	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
	"github.com/vaultlock/vaultlock/orm"
	"github.com/vaultlock/vaultlock/token"
)

// BucketName is where we store the escrow records
const BucketName = "escrow"

// MaxBasisPoints is 100 percent expressed in basis points
const MaxBasisPoints = 10000

// Escrow is the persisted state of one pending exchange
type Escrow struct {
	// Initializer locked the deposit and may return it before expiry
	Initializer vaultlock.Address
	// Receiver may claim after expiry by paying the counter amount
	Receiver vaultlock.Address
	// InitializerToken is the asset kind of the locked deposit
	InitializerToken token.ID
	// InitializerAmount is the deposit locked in the init vault
	InitializerAmount uint64
	// ReceiverToken is the asset kind the receiver must pay
	ReceiverToken token.ID
	// ReceiverAmount is what the receiver must pay to claim
	ReceiverAmount uint64
	// FeeBasisPoints is the settlement fee rate, 1/100 of a percent
	FeeBasisPoints uint16
	// FeeCollector receives the fee cut on settlement
	FeeCollector vaultlock.Address
	// Expiry is the unix time at which the claim window opens
	Expiry vaultlock.UnixTime
}

var _ orm.CloneableData = (*Escrow)(nil)

// Validate ensures the escrow is well formed
func (e *Escrow) Validate() error {
	if err := e.Initializer.Validate(); err != nil {
		return errors.Wrap(err, "initializer")
	}
	if err := e.Receiver.Validate(); err != nil {
		return errors.Wrap(err, "receiver")
	}
	if e.Initializer.Equals(e.Receiver) {
		return errors.Wrap(errors.ErrInput, "initializer and receiver must differ")
	}
	if err := e.InitializerToken.Validate(); err != nil {
		return errors.Wrap(err, "initializer token")
	}
	if err := e.ReceiverToken.Validate(); err != nil {
		return errors.Wrap(err, "receiver token")
	}
	if e.InitializerAmount == 0 {
		return errors.Wrap(errors.ErrAmount, "initializer amount must be positive")
	}
	if e.ReceiverAmount == 0 {
		return errors.Wrap(errors.ErrAmount, "receiver amount must be positive")
	}
	if e.FeeBasisPoints > MaxBasisPoints {
		return errors.Wrapf(errors.ErrInput, "fee above %d basis points", MaxBasisPoints)
	}
	if err := e.FeeCollector.Validate(); err != nil {
		return errors.Wrap(err, "fee collector")
	}
	// any timestamp works as expiry, epoch zero included
	if err := e.Expiry.Validate(); err != nil {
		return errors.Wrap(err, "expiry")
	}
	return nil
}

// Copy produces an independent copy of the escrow
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Initializer:       e.Initializer.Clone(),
		Receiver:          e.Receiver.Clone(),
		InitializerToken:  e.InitializerToken.Clone(),
		InitializerAmount: e.InitializerAmount,
		ReceiverToken:     e.ReceiverToken.Clone(),
		ReceiverAmount:    e.ReceiverAmount,
		FeeBasisPoints:    e.FeeBasisPoints,
		FeeCollector:      e.FeeCollector.Clone(),
		Expiry:            e.Expiry,
	}
}

// AsEscrow extracts the Escrow value from a bucket object
func AsEscrow(obj orm.Object) *Escrow {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Escrow)
}

//--- vault conditions

// Condition returns the derived condition for one role of an escrow.
// The condition bytes double as the proof of derivation, the address
// is the account the ledger knows.
func Condition(role string, escrowID []byte) vaultlock.Condition {
	return vaultlock.NewCondition("escrow", role, escrowID)
}

// InitVaultAddr is the keyless account holding the initializer deposit
func InitVaultAddr(escrowID []byte) vaultlock.Address {
	return Condition("init", escrowID).Address()
}

// RecvVaultAddr is the keyless account staging the receiver payment
// during settlement
func RecvVaultAddr(escrowID []byte) vaultlock.Address {
	return Condition("recv", escrowID).Address()
}

// FeeVaultAddr is the default fee collector when none is named
func FeeVaultAddr(escrowID []byte) vaultlock.Address {
	return Condition("fee", escrowID).Address()
}

//--- escrow.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket with an id sequence
type Bucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewBucket initializes an escrow.Bucket with default name
func NewBucket() Bucket {
	bucket := orm.NewBucket(BucketName,
		orm.NewSimpleObj(nil, new(Escrow)))
	return Bucket{
		Bucket: bucket,
		idSeq:  bucket.Sequence(orm.SeqID),
	}
}

// NextID reserves the next free escrow ID. IDs are assigned once and
// never reused, even after the escrow is settled or returned.
func (b Bucket) NextID(db vaultlock.KVStore) []byte {
	return b.idSeq.NextVal(db)
}

// Save persists the escrow under the given ID
func (b Bucket) Save(db vaultlock.KVStore, escrowID []byte, e *Escrow) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(escrowID, e))
}

// GetEscrow loads the escrow with this ID, ErrNotFound if missing
func (b Bucket) GetEscrow(db vaultlock.ReadOnlyKVStore, escrowID []byte) (*Escrow, error) {
	if len(escrowID) != 8 {
		return nil, errors.Wrapf(errors.ErrInput, "escrow id must be 8 bytes, got %d", len(escrowID))
	}
	obj, err := b.Get(db, escrowID)
	if err != nil {
		return nil, err
	}
	e := AsEscrow(obj)
	if e == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "escrow %d", orm.DecodeSequence(escrowID))
	}
	return e, nil
}
