package escrow

import (
	"encoding/binary"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
	"github.com/vaultlock/vaultlock/token"
)

// recordSchema is the serialization version of the escrow record
const recordSchema = 1

// recordSize is the exact byte length of a serialized escrow:
// 1 schema + 32 initializer + 32 receiver + 32 init token + 8 init
// amount + 32 recv token + 8 recv amount + 2 fee bps + 32 fee
// collector + 8 expiry
const recordSize = 1 + vaultlock.AddressLength*3 + token.IDLength*2 + 8 + 8 + 2 + 8

// Marshal encodes the escrow as a fixed-width record
func (e *Escrow) Marshal() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, recordSize)
	out[0] = recordSchema
	pos := 1
	pos += copy(out[pos:], e.Initializer)
	pos += copy(out[pos:], e.Receiver)
	pos += copy(out[pos:], e.InitializerToken)
	binary.BigEndian.PutUint64(out[pos:], e.InitializerAmount)
	pos += 8
	pos += copy(out[pos:], e.ReceiverToken)
	binary.BigEndian.PutUint64(out[pos:], e.ReceiverAmount)
	pos += 8
	binary.BigEndian.PutUint16(out[pos:], e.FeeBasisPoints)
	pos += 2
	pos += copy(out[pos:], e.FeeCollector)
	binary.BigEndian.PutUint64(out[pos:], uint64(e.Expiry))
	return out, nil
}

// Unmarshal parses bytes written by Marshal
func (e *Escrow) Unmarshal(bz []byte) error {
	if len(bz) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow record")
	}
	if bz[0] != recordSchema {
		return errors.Wrapf(errors.ErrType, "unknown escrow schema %d", bz[0])
	}
	if len(bz) != recordSize {
		return errors.Wrapf(errors.ErrInput, "escrow record must be %d bytes, got %d", recordSize, len(bz))
	}
	cut := func(n int) []byte {
		out := make([]byte, n)
		copy(out, bz[:n])
		bz = bz[n:]
		return out
	}
	bz = bz[1:]
	e.Initializer = vaultlock.Address(cut(vaultlock.AddressLength))
	e.Receiver = vaultlock.Address(cut(vaultlock.AddressLength))
	e.InitializerToken = token.ID(cut(token.IDLength))
	e.InitializerAmount = binary.BigEndian.Uint64(cut(8))
	e.ReceiverToken = token.ID(cut(token.IDLength))
	e.ReceiverAmount = binary.BigEndian.Uint64(cut(8))
	e.FeeBasisPoints = binary.BigEndian.Uint16(cut(2))
	e.FeeCollector = vaultlock.Address(cut(vaultlock.AddressLength))
	e.Expiry = vaultlock.UnixTime(binary.BigEndian.Uint64(cut(8)))
	return nil
}
