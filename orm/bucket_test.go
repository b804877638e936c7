package orm

import (
	"testing"

	"github.com/vaultlock/vaultlock/store"
)

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cntr", NewCounter(nil, 0))

	key := []byte("magnet")

	// missing key returns nil without error
	obj, err := bucket.Get(db, key)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if obj != nil {
		t.Fatalf("expected nil for missing key, got %v", obj)
	}

	if err := bucket.Save(db, NewCounter(key, 77)); err != nil {
		t.Fatalf("save: %+v", err)
	}

	obj, err = bucket.Get(db, key)
	if err != nil {
		t.Fatalf("get: %+v", err)
	}
	if obj == nil {
		t.Fatal("saved object not found")
	}
	cntr := obj.Value().(*Counter)
	if cntr.Count != 77 {
		t.Fatalf("want 77, got %d", cntr.Count)
	}

	if err := bucket.Delete(db, key); err != nil {
		t.Fatalf("delete: %+v", err)
	}
	obj, err = bucket.Get(db, key)
	if err != nil {
		t.Fatalf("get after delete: %+v", err)
	}
	if obj != nil {
		t.Fatal("object must be gone after delete")
	}
}

func TestBucketSaveRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cntr", NewCounter(nil, 0))

	// key is required
	if err := bucket.Save(db, NewCounter(nil, 1)); err == nil {
		t.Fatal("saving an object without a key must fail")
	}
}

func TestBucketPrefixesDoNotCollide(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("aaa", NewCounter(nil, 0))
	two := NewBucket("bbb", NewCounter(nil, 0))

	key := []byte("shared")
	if err := one.Save(db, NewCounter(key, 1)); err != nil {
		t.Fatalf("save: %+v", err)
	}
	if err := two.Save(db, NewCounter(key, 2)); err != nil {
		t.Fatalf("save: %+v", err)
	}

	obj, err := one.Get(db, key)
	if err != nil {
		t.Fatalf("get: %+v", err)
	}
	if got := obj.Value().(*Counter).Count; got != 1 {
		t.Fatalf("bucket one overwritten: %d", got)
	}
}

func TestIllegalBucketNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("bucket name with caps must panic")
		}
	}()
	NewBucket("BadName", NewCounter(nil, 0))
}
