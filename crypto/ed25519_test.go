package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignAndVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	msg := []byte("foobar")
	msg2 := []byte("dingbooms")

	sig, err := priv.Sign(msg)
	assert.NoError(t, err)
	sig2, err := priv.Sign(msg2)
	assert.NoError(t, err)

	assert.False(t, bytes.Equal(sig, sig2))

	assert.True(t, pub.Verify(msg, sig))
	assert.True(t, pub.Verify(msg2, sig2))

	assert.False(t, pub.Verify(msg, sig2))
	assert.False(t, pub.Verify(msg2, sig))
	assert.False(t, pub.Verify(msg, nil))
}

func TestDeterministicSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a.PublicKey(), b.PublicKey())

	other := PrivKeyEd25519FromSeed(bytes.Repeat([]byte{7}, 32))
	assert.NotEqual(t, a.PublicKey(), other.PublicKey())
}

func TestCondition(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	cond := pub.Condition()
	assert.NoError(t, cond.Validate())
	assert.NoError(t, pub.Address().Validate())

	ext, typ, data, err := cond.Parse()
	assert.NoError(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, pub.Ed25519, data)
}
