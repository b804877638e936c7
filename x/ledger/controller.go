package ledger

import (
	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
	"github.com/vaultlock/vaultlock/token"
)

// Controller is the functionality other extensions need from the
// ledger. It is the only write path into wallet state.
type Controller interface {
	// Move transfers amount of one token from src to dest
	Move(db vaultlock.KVStore, src, dest vaultlock.Address, id token.ID, amount uint64) error
	// Issue mints amount of one token into dest
	Issue(db vaultlock.KVStore, dest vaultlock.Address, id token.ID, amount uint64) error
	// Balance returns the amount of one token held by an account
	Balance(db vaultlock.ReadOnlyKVStore, account vaultlock.Address, id token.ID) (uint64, error)
}

// BaseController implements Controller on top of a wallet bucket
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller using the given bucket
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Move transfers the given amount from src to dest.
// If src doesn't hold sufficient funds, it fails.
func (c BaseController) Move(db vaultlock.KVStore, src, dest vaultlock.Address, id token.ID, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "cannot move zero")
	}
	if err := id.Validate(); err != nil {
		return err
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "no account %s", src)
	}

	// a self transfer must not double-count through two wallet
	// snapshots of the same account. Check the funds and stop.
	if src.Equals(dest) {
		if sender.Balance(id) < amount {
			return errors.Wrapf(errors.ErrInsufficientFunds, "%d of %s", amount, id)
		}
		return nil
	}

	if err := sender.Subtract(id, amount); err != nil {
		return err
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(id, amount); err != nil {
		return err
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// Issue attempts to add the given amount to the destination account.
// Fails if it overflows the wallet.
func (c BaseController) Issue(db vaultlock.KVStore, dest vaultlock.Address, id token.ID, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "cannot issue zero")
	}
	if err := id.Validate(); err != nil {
		return err
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(id, amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// Balance returns the amount held, zero for unknown accounts
func (c BaseController) Balance(db vaultlock.ReadOnlyKVStore, account vaultlock.Address, id token.ID) (uint64, error) {
	w, err := c.bucket.Get(db, account)
	if err != nil {
		return 0, err
	}
	if w == nil {
		return 0, nil
	}
	return w.Balance(id), nil
}
