package orm

import (
	"bytes"
	"testing"

	"github.com/vaultlock/vaultlock/store"
)

func TestSequenceMonotonic(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("escrow", SeqID)

	var prev []byte
	for i := int64(1); i <= 10; i++ {
		if got := seq.NextInt(db); got != i {
			t.Fatalf("want %d, got %d", i, got)
		}
		_, cur := seq.Latest(db)
		if prev != nil && bytes.Compare(prev, cur) >= 0 {
			t.Fatalf("sequence bytes must be strictly increasing: %X >= %X", prev, cur)
		}
		prev = cur
	}
}

func TestSequenceIndependentCounters(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("escrow", "id")
	b := NewSequence("ledger", "id")

	a.NextVal(db)
	a.NextVal(db)
	if got := b.NextInt(db); got != 1 {
		t.Fatalf("sequences must be independent, got %d", got)
	}
}

func TestSequenceEncoding(t *testing.T) {
	val := int64(67890)
	if got := DecodeSequence(EncodeSequence(val)); got != val {
		t.Fatalf("want %d, got %d", val, got)
	}
	if got := DecodeSequence(nil); got != 0 {
		t.Fatalf("nil must decode to 0, got %d", got)
	}
}
