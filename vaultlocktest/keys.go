package vaultlocktest

import (
	"encoding/binary"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/crypto"
)

func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

func NewCondition() vaultlock.Condition {
	return NewKey().PublicKey().Condition()
}

// SequenceID returns an id encoded the way sequence counters are
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
