package token

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaultlock/vaultlock/errors"
)

func TestIDValidate(t *testing.T) {
	cases := map[string]struct {
		id      ID
		wantErr *errors.Error
	}{
		"proper length": {
			id: NewID(bytes.Repeat([]byte{1}, IDLength)),
		},
		"empty": {
			id:      nil,
			wantErr: errors.ErrInput,
		},
		"too short": {
			id:      NewID([]byte{1, 2, 3}),
			wantErr: errors.ErrInput,
		},
		"too long": {
			id:      NewID(bytes.Repeat([]byte{1}, IDLength+1)),
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.id.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id := NewID(bytes.Repeat([]byte{0xab}, IDLength))
	parsed, err := ParseID(id.String())
	assert.NoError(t, err)
	assert.True(t, parsed.Equals(id))

	_, err = ParseID("xyz")
	assert.True(t, errors.ErrInput.Is(err))

	_, err = ParseID("abcd")
	assert.True(t, errors.ErrInput.Is(err))
}

func TestIDClone(t *testing.T) {
	id := NewID(bytes.Repeat([]byte{7}, IDLength))
	cp := id.Clone()
	assert.True(t, id.Equals(cp))
	cp[0] = 99
	assert.False(t, id.Equals(cp))
}
