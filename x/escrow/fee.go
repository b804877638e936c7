package escrow

import (
	"lukechampine.com/uint128"

	"github.com/vaultlock/vaultlock/errors"
)

// FeePolicy selects which settlement legs carry the fee cut.
// It is fixed at wiring time, not per escrow.
type FeePolicy uint8

const (
	// FeeOnInitializer takes the fee out of the initializer deposit
	// before it is paid to the receiver. This is the default.
	FeeOnInitializer FeePolicy = iota
	// FeeOnReceiver takes the fee out of the receiver payment before
	// it is paid to the initializer.
	FeeOnReceiver
	// FeeOnBoth takes the fee out of both legs.
	FeeOnBoth
)

// Validate ensures the policy is one of the declared values
func (p FeePolicy) Validate() error {
	switch p {
	case FeeOnInitializer, FeeOnReceiver, FeeOnBoth:
		return nil
	}
	return errors.Wrapf(errors.ErrInput, "unknown fee policy %d", p)
}

func (p FeePolicy) String() string {
	switch p {
	case FeeOnInitializer:
		return "initializer"
	case FeeOnReceiver:
		return "receiver"
	case FeeOnBoth:
		return "both"
	}
	return "invalid"
}

// onInitializer reports whether the initializer leg carries a fee
func (p FeePolicy) onInitializer() bool {
	return p == FeeOnInitializer || p == FeeOnBoth
}

// onReceiver reports whether the receiver leg carries a fee
func (p FeePolicy) onReceiver() bool {
	return p == FeeOnReceiver || p == FeeOnBoth
}

// Fee returns the fee cut of the given amount, rounded down. The
// multiplication runs in 128 bits so the largest amounts cannot wrap.
func Fee(amount uint64, bps uint16) (uint64, error) {
	if bps > MaxBasisPoints {
		return 0, errors.Wrapf(ErrArithmetic, "fee rate %d above %d basis points", bps, MaxBasisPoints)
	}
	cut := uint128.From64(amount).Mul64(uint64(bps)).Div64(MaxBasisPoints)
	if cut.Hi != 0 || cut.Lo > amount {
		return 0, errors.Wrapf(ErrArithmetic, "fee cut of %d at %d bps", amount, bps)
	}
	return cut.Lo, nil
}

// Net returns the amount left after taking the fee cut
func Net(amount uint64, bps uint16) (uint64, error) {
	fee, err := Fee(amount, bps)
	if err != nil {
		return 0, err
	}
	return amount - fee, nil
}
