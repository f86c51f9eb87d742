package core

import "testing"

func TestStorageMissingKeyReadsZero(t *testing.T) {
	s := NewStorage()
	key := new(Word).SetUint64(1)
	if !s.Get(key).IsZero() {
		t.Fatal("missing key should read as zero")
	}
}

func TestStoragePutThenGet(t *testing.T) {
	s := NewStorage()
	key := new(Word).SetUint64(1)
	val := new(Word).SetUint64(42)
	s.Put(key, val)

	got := s.Get(key)
	if got.Uint64() != 42 {
		t.Fatalf("Get after Put = %d, want 42", got.Uint64())
	}
}

func TestStorageIsSharedByReference(t *testing.T) {
	s := NewStorage()
	key := new(Word).SetUint64(1)
	s.Put(key, new(Word).SetUint64(1))

	shared := s
	shared.Put(key, new(Word).SetUint64(2))

	if s.Get(key).Uint64() != 2 {
		t.Fatal("Storage is a map; assigning it should share the underlying data, not copy it")
	}
}
