/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* It has a primary index (which may be composite)
* Easy queries for one and iteration.
*/
package orm

import (
	"github.com/vaultlock/vaultlock"
)

// Object is what is stored in the bucket
// Key is joined with the prefix to set the full key
// Value is the data stored
//
// this can be a light wrapper around any codec-backed type
type Object interface {
	Validater

	Key() []byte
	Value() CloneableData
	SetKey([]byte)
	Clone() Object
}

// Validater is any struct that can be validated.
// Not the same as a Validator, which votes on the blocks.
type Validater interface {
	Validate() error
}

// CloneableData is like Persistent, but it also knows how to make
// a copy of itself for safe mutation
type CloneableData interface {
	vaultlock.Persistent
	Validater
	Copy() CloneableData
}

// Cloneable can be cloned
type Cloneable interface {
	Clone() Object
}
