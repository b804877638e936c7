/*
Package token defines the identifier for an asset kind.

Every balance, vault and escrow leg is denominated in exactly one
asset kind, named by an opaque 32-byte ID. The ledger treats IDs as
raw bytes and never interprets them.
*/
package token

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/vaultlock/vaultlock/errors"
)

// IDLength is the fixed byte length of an asset identifier
const IDLength = 32

// ID uniquely names one asset kind
type ID []byte

// NewID casts raw bytes to an ID without copying
func NewID(raw []byte) ID {
	return ID(raw)
}

// ParseID decodes a hex string into an ID
func ParseID(enc string) (ID, error) {
	raw, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid token id: %s", enc)
	}
	id := ID(raw)
	return id, id.Validate()
}

// Validate ensures the ID has the proper length
func (id ID) Validate() error {
	if len(id) != IDLength {
		return errors.Wrapf(errors.ErrInput, "token id must be %d bytes, got %d", IDLength, len(id))
	}
	return nil
}

// Equals checks if two IDs name the same asset
func (id ID) Equals(other ID) bool {
	return bytes.Equal(id, other)
}

// Clone returns an independent copy of the ID
func (id ID) Clone() ID {
	out := make(ID, len(id))
	copy(out, id)
	return out
}

func (id ID) String() string {
	if len(id) == 0 {
		return "(empty)"
	}
	return hex.EncodeToString(id)
}

// MarshalJSON encodes the ID as a hex string
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(id))
}

// UnmarshalJSON decodes a hex string into the ID
func (id *ID) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return err
	}
	parsed, err := ParseID(enc)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
