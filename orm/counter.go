package orm

import (
	"encoding/binary"

	"github.com/vaultlock/vaultlock/errors"
)

// Counter is a simple persistent model holding one number.
// It is used to test the bucket implementation and may serve
// as a template for diving into the orm package.
type Counter struct {
	Count int64
}

var _ CloneableData = (*Counter)(nil)

// Validate is always succesful
func (c *Counter) Validate() error {
	return nil
}

// Copy produces another counter with the same value
func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}

// Marshal encodes the counter as 8 bytes big endian
func (c *Counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

// Unmarshal parses the 8 byte big endian representation
func (c *Counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "counter raw length: %d", len(raw))
	}
	c.Count = int64(binary.BigEndian.Uint64(raw))
	return nil
}

// NewCounter wraps the value in an object with the given key
func NewCounter(key []byte, count int64) Object {
	return NewSimpleObj(key, &Counter{Count: count})
}
