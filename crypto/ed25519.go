package crypto

import (
	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we derive from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig Signature) bool
	Condition() vaultlock.Condition
}

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (Signature, error)
	PublicKey() PublicKey
}

// Signature is a raw ed25519 signature
type Signature []byte

// PublicKey wraps a raw ed25519 public key
type PublicKey struct {
	Ed25519 []byte
}

var _ PubKey = PublicKey{}

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message []byte, sig Signature) bool {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig)
}

// Condition encodes the public key into a derived condition.
//
//	p.Condition().Address()
//
// will return an Address if needed.
func (p PublicKey) Condition() vaultlock.Condition {
	return vaultlock.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is a shortcut for Condition().Address()
func (p PublicKey) Address() vaultlock.Address {
	return p.Condition().Address()
}

// Validate ensures the key has the proper size
func (p PublicKey) Validate() error {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "invalid ed25519 public key length: %d", len(p.Ed25519))
	}
	return nil
}

// PrivateKey wraps a raw ed25519 private key
type PrivateKey struct {
	Ed25519 []byte
}

var _ Signer = PrivateKey{}

// Sign returns a matching signature for this private key
func (p PrivateKey) Sign(message []byte) (Signature, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "invalid ed25519 private key length: %d", len(p.Ed25519))
	}
	return ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message), nil
}

// PublicKey returns the corresponding PublicKey
func (p PrivateKey) PublicKey() PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) PrivateKey {
	return PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
