package escrow

import (
	"encoding/binary"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
	"github.com/vaultlock/vaultlock/token"
)

const (
	pathInitialize = "escrow/initialize"
	pathClaim      = "escrow/claim"
	pathReturn     = "escrow/return"
)

const msgSchema = 1

var (
	_ vaultlock.Msg = (*InitializeMsg)(nil)
	_ vaultlock.Msg = (*ClaimMsg)(nil)
	_ vaultlock.Msg = (*ReturnMsg)(nil)
)

//--- InitializeMsg

// InitializeMsg opens a new escrow and locks the initializer deposit
// in the init vault
type InitializeMsg struct {
	Initializer       vaultlock.Address
	Receiver          vaultlock.Address
	InitializerToken  token.ID
	InitializerAmount uint64
	ReceiverToken     token.ID
	ReceiverAmount    uint64
	FeeBasisPoints    uint16
	// FeeCollector may be left empty to collect fees in the keyless
	// fee vault of this escrow
	FeeCollector vaultlock.Address
	Expiry       vaultlock.UnixTime
}

// Path returns the routing path for this message
func (InitializeMsg) Path() string {
	return pathInitialize
}

// Validate ensures the message can become a valid escrow
func (m *InitializeMsg) Validate() error {
	if len(m.FeeCollector) != 0 {
		if err := m.FeeCollector.Validate(); err != nil {
			return errors.Wrap(err, "fee collector")
		}
	}
	// remaining fields share the escrow record rules, a placeholder
	// stands in for the collector resolved at delivery time
	e := Escrow{
		Initializer:       m.Initializer,
		Receiver:          m.Receiver,
		InitializerToken:  m.InitializerToken,
		InitializerAmount: m.InitializerAmount,
		ReceiverToken:     m.ReceiverToken,
		ReceiverAmount:    m.ReceiverAmount,
		FeeBasisPoints:    m.FeeBasisPoints,
		FeeCollector:      make(vaultlock.Address, vaultlock.AddressLength),
		Expiry:            m.Expiry,
	}
	return e.Validate()
}

const initializeMsgSize = 1 + vaultlock.AddressLength*3 + token.IDLength*2 + 8 + 8 + 2 + 8

// Marshal encodes the message as a fixed-width frame
func (m *InitializeMsg) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, initializeMsgSize)
	out[0] = msgSchema
	pos := 1
	copy(out[pos:pos+vaultlock.AddressLength], m.Initializer)
	pos += vaultlock.AddressLength
	copy(out[pos:pos+vaultlock.AddressLength], m.Receiver)
	pos += vaultlock.AddressLength
	copy(out[pos:pos+token.IDLength], m.InitializerToken)
	pos += token.IDLength
	binary.BigEndian.PutUint64(out[pos:], m.InitializerAmount)
	pos += 8
	copy(out[pos:pos+token.IDLength], m.ReceiverToken)
	pos += token.IDLength
	binary.BigEndian.PutUint64(out[pos:], m.ReceiverAmount)
	pos += 8
	binary.BigEndian.PutUint16(out[pos:], m.FeeBasisPoints)
	pos += 2
	// the collector is optional, an absent one leaves zero bytes and
	// pos still has to advance the full field width
	copy(out[pos:pos+vaultlock.AddressLength], m.FeeCollector)
	pos += vaultlock.AddressLength
	binary.BigEndian.PutUint64(out[pos:], uint64(m.Expiry))
	return out, nil
}

// Unmarshal parses bytes written by Marshal
func (m *InitializeMsg) Unmarshal(bz []byte) error {
	if err := checkFrame(bz, initializeMsgSize); err != nil {
		return err
	}
	bz = bz[1:]
	cut := frameCutter(&bz)
	m.Initializer = vaultlock.Address(cut(vaultlock.AddressLength))
	m.Receiver = vaultlock.Address(cut(vaultlock.AddressLength))
	m.InitializerToken = token.ID(cut(token.IDLength))
	m.InitializerAmount = binary.BigEndian.Uint64(cut(8))
	m.ReceiverToken = token.ID(cut(token.IDLength))
	m.ReceiverAmount = binary.BigEndian.Uint64(cut(8))
	m.FeeBasisPoints = binary.BigEndian.Uint16(cut(2))
	collector := vaultlock.Address(cut(vaultlock.AddressLength))
	if isZeroAddr(collector) {
		collector = nil
	}
	m.FeeCollector = collector
	m.Expiry = vaultlock.UnixTime(binary.BigEndian.Uint64(cut(8)))
	return nil
}

//--- ClaimMsg

// ClaimMsg settles an expired escrow. The caller restates both
// parties and both asset kinds, which must match the stored record.
type ClaimMsg struct {
	EscrowID         []byte
	Initializer      vaultlock.Address
	Receiver         vaultlock.Address
	InitializerToken token.ID
	ReceiverToken    token.ID
}

// Path returns the routing path for this message
func (ClaimMsg) Path() string {
	return pathClaim
}

// Validate ensures the message is well formed
func (m *ClaimMsg) Validate() error {
	if len(m.EscrowID) != 8 {
		return errors.Wrap(errors.ErrInput, "escrow id must be 8 bytes")
	}
	if err := m.Initializer.Validate(); err != nil {
		return errors.Wrap(err, "initializer")
	}
	if err := m.Receiver.Validate(); err != nil {
		return errors.Wrap(err, "receiver")
	}
	if err := m.InitializerToken.Validate(); err != nil {
		return errors.Wrap(err, "initializer token")
	}
	if err := m.ReceiverToken.Validate(); err != nil {
		return errors.Wrap(err, "receiver token")
	}
	return nil
}

const claimMsgSize = 1 + 8 + vaultlock.AddressLength*2 + token.IDLength*2

// Marshal encodes the message as a fixed-width frame
func (m *ClaimMsg) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, claimMsgSize)
	out[0] = msgSchema
	pos := 1
	copy(out[pos:pos+8], m.EscrowID)
	pos += 8
	copy(out[pos:pos+vaultlock.AddressLength], m.Initializer)
	pos += vaultlock.AddressLength
	copy(out[pos:pos+vaultlock.AddressLength], m.Receiver)
	pos += vaultlock.AddressLength
	copy(out[pos:pos+token.IDLength], m.InitializerToken)
	pos += token.IDLength
	copy(out[pos:pos+token.IDLength], m.ReceiverToken)
	return out, nil
}

// Unmarshal parses bytes written by Marshal
func (m *ClaimMsg) Unmarshal(bz []byte) error {
	if err := checkFrame(bz, claimMsgSize); err != nil {
		return err
	}
	bz = bz[1:]
	cut := frameCutter(&bz)
	m.EscrowID = cut(8)
	m.Initializer = vaultlock.Address(cut(vaultlock.AddressLength))
	m.Receiver = vaultlock.Address(cut(vaultlock.AddressLength))
	m.InitializerToken = token.ID(cut(token.IDLength))
	m.ReceiverToken = token.ID(cut(token.IDLength))
	return nil
}

//--- ReturnMsg

// ReturnMsg hands the deposit back to the initializer before expiry
// and removes the escrow
type ReturnMsg struct {
	EscrowID []byte
}

// Path returns the routing path for this message
func (ReturnMsg) Path() string {
	return pathReturn
}

// Validate ensures the message is well formed
func (m *ReturnMsg) Validate() error {
	if len(m.EscrowID) != 8 {
		return errors.Wrap(errors.ErrInput, "escrow id must be 8 bytes")
	}
	return nil
}

const returnMsgSize = 1 + 8

// Marshal encodes the message as a fixed-width frame
func (m *ReturnMsg) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, returnMsgSize)
	out[0] = msgSchema
	copy(out[1:], m.EscrowID)
	return out, nil
}

// Unmarshal parses bytes written by Marshal
func (m *ReturnMsg) Unmarshal(bz []byte) error {
	if err := checkFrame(bz, returnMsgSize); err != nil {
		return err
	}
	m.EscrowID = append([]byte(nil), bz[1:]...)
	return nil
}

//--- frame helpers

// checkFrame verifies schema byte and exact length
func checkFrame(bz []byte, size int) error {
	if len(bz) == 0 {
		return errors.Wrap(errors.ErrEmpty, "message frame")
	}
	if bz[0] != msgSchema {
		return errors.Wrapf(errors.ErrType, "unknown message schema %d", bz[0])
	}
	if len(bz) != size {
		return errors.Wrapf(errors.ErrInput, "message frame must be %d bytes, got %d", size, len(bz))
	}
	return nil
}

// frameCutter returns a function slicing off the next n bytes as a copy
func frameCutter(bz *[]byte) func(n int) []byte {
	return func(n int) []byte {
		out := make([]byte, n)
		copy(out, (*bz)[:n])
		*bz = (*bz)[n:]
		return out
	}
}

// isZeroAddr reports whether all address bytes are zero
func isZeroAddr(a vaultlock.Address) bool {
	for _, b := range a {
		if b != 0 {
			return false
		}
	}
	return true
}
