package vaultlock

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/vaultlock/vaultlock/errors"
)

// marshalHex is a helper for encoding []byte as upper-case hex inside
// JSON documents, overriding the default base64 encoding.
func marshalHex(bz []byte) ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(bz))
	return json.Marshal(s)
}

// unmarshalHex is a helper to parse lower or upper-case hex strings
// from JSON into []byte.
func unmarshalHex(src []byte, out *[]byte) error {
	var s string
	if err := json.Unmarshal(src, &s); err != nil {
		return errors.Wrap(err, "parse string")
	}
	bz, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "parse hex")
	}
	*out = bz
	return nil
}
