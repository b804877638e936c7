package ledger

import (
	"encoding/binary"

	"github.com/vaultlock/vaultlock/errors"
	"github.com/vaultlock/vaultlock/token"
)

// setSchema is the current serialization version of the wallet value
const setSchema = 1

// entrySize is 32 bytes token id plus 8 bytes amount
const entrySize = token.IDLength + 8

// Marshal encodes the set as a fixed-width record: one schema byte,
// a 2-byte big-endian balance count, then one 40-byte entry per
// balance in sorted token order.
func (s *Set) Marshal() ([]byte, error) {
	if len(s.Balances) > 0xffff {
		return nil, errors.Wrap(errors.ErrOverflow, "too many balances")
	}
	out := make([]byte, 3+len(s.Balances)*entrySize)
	out[0] = setSchema
	binary.BigEndian.PutUint16(out[1:3], uint16(len(s.Balances)))
	pos := 3
	for _, b := range s.Balances {
		if len(b.Token) != token.IDLength {
			return nil, errors.Wrapf(errors.ErrInput, "token id must be %d bytes", token.IDLength)
		}
		copy(out[pos:], b.Token)
		binary.BigEndian.PutUint64(out[pos+token.IDLength:], b.Amount)
		pos += entrySize
	}
	return out, nil
}

// Unmarshal parses bytes written by Marshal
func (s *Set) Unmarshal(bz []byte) error {
	if len(bz) == 0 {
		s.Balances = nil
		return nil
	}
	if bz[0] != setSchema {
		return errors.Wrapf(errors.ErrType, "unknown wallet schema %d", bz[0])
	}
	if len(bz) < 3 {
		return errors.Wrap(errors.ErrInput, "truncated wallet record")
	}
	count := int(binary.BigEndian.Uint16(bz[1:3]))
	if len(bz) != 3+count*entrySize {
		return errors.Wrapf(errors.ErrInput, "wallet record length %d does not match %d balances", len(bz), count)
	}
	balances := make([]Balance, count)
	pos := 3
	for i := range balances {
		id := make(token.ID, token.IDLength)
		copy(id, bz[pos:pos+token.IDLength])
		balances[i] = Balance{
			Token:  id,
			Amount: binary.BigEndian.Uint64(bz[pos+token.IDLength:]),
		}
		pos += entrySize
	}
	s.Balances = balances
	return nil
}
