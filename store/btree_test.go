package store

import (
	"bytes"
	"testing"
)

func TestBTreeCacheGetSetDelete(t *testing.T) {
	db := MemStore()

	k, v := []byte("french"), []byte("fry")

	if db.Has(k) {
		t.Fatal("key should not exist in an empty store")
	}
	db.Set(k, v)
	if !db.Has(k) {
		t.Fatal("key should exist after set")
	}
	if got := db.Get(k); !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}

	db.Delete(k)
	if db.Has(k) {
		t.Fatal("key should not exist after delete")
	}
	if got := db.Get(k); got != nil {
		t.Fatalf("deleted key must return nil, got %q", got)
	}
}

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))

	// discarded writes never reach the parent
	cache := db.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("a"))
	cache.Discard()

	if db.Has([]byte("b")) {
		t.Fatal("discarded write leaked to the parent")
	}
	if !db.Has([]byte("a")) {
		t.Fatal("discarded delete leaked to the parent")
	}

	// written changes all become visible atomically
	cache = db.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("a"))

	if db.Has([]byte("b")) {
		t.Fatal("cache write visible before Write()")
	}
	cache.Write()

	if !db.Has([]byte("b")) {
		t.Fatal("cache write lost after Write()")
	}
	if db.Has([]byte("a")) {
		t.Fatal("cache delete lost after Write()")
	}
}

func TestCacheWrapIsolationUntilWrite(t *testing.T) {
	db := MemStore()
	db.Set([]byte("k"), []byte("original"))

	cache := db.CacheWrap()
	cache.Set([]byte("k"), []byte("updated"))

	if got := db.Get([]byte("k")); !bytes.Equal(got, []byte("original")) {
		t.Fatalf("parent must see original value, got %q", got)
	}
	if got := cache.Get([]byte("k")); !bytes.Equal(got, []byte("updated")) {
		t.Fatalf("cache must see updated value, got %q", got)
	}
}

func TestIteratorCombinesCacheAndParent(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))
	db.Set([]byte("c"), []byte("3"))

	cache := db.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("c"))

	iter := cache.Iterator(nil, nil)
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}

	want := []string{"a", "b"}
	if len(keys) != len(want) {
		t.Fatalf("want keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("want keys %v, got %v", want, keys)
		}
	}
}

func TestIteratorRange(t *testing.T) {
	db := MemStore()
	for _, k := range []string{"ant", "bee", "cat", "dog"} {
		db.Set([]byte(k), []byte{1})
	}

	iter := db.Iterator([]byte("bee"), []byte("dog"))
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	if len(keys) != 2 || keys[0] != "bee" || keys[1] != "cat" {
		t.Fatalf("unexpected range result: %v", keys)
	}
}

func TestLogableStoreRecordsOps(t *testing.T) {
	db, log := LogableStore()
	db.Set([]byte("x"), []byte("y"))
	db.Delete([]byte("z"))

	ops := log.ShowOps()
	if len(ops) != 2 {
		t.Fatalf("want 2 ops, got %d", len(ops))
	}
	if !ops[0].IsSetOp() || ops[1].IsSetOp() {
		t.Fatal("unexpected op kinds")
	}
}
