package escrow

import (
	"github.com/vaultlock/vaultlock/errors"
)

var (
	// ErrNotExpired is returned when a claim is attempted before the
	// escrow expiry time has been reached
	ErrNotExpired = errors.Register(1010, "escrow not yet expired")

	// ErrAlreadyExpired is returned when a return is attempted at or
	// after the escrow expiry time
	ErrAlreadyExpired = errors.Register(1011, "escrow already expired")

	// ErrMismatch is returned when the parties or asset kinds named in
	// a claim do not match the stored escrow record
	ErrMismatch = errors.Register(1012, "escrow identity mismatch")

	// ErrArithmetic is returned when the fee computation produces a
	// result that cannot be settled
	ErrArithmetic = errors.Register(1013, "fee arithmetic fault")
)
