package types

import (
	"testing"
	"time"
)

func TestRootCache_MatchesUncached(t *testing.T) {
	cache, err := NewRootCache(100)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	d := Container("Checkpoint", F("epoch", Uint(64)), F("root", ByteVector(32)))
	val := []interface{}{uint64(12), make([]byte, 32)}
	want, err := HashTreeRoot(val, d)
	if err != nil {
		t.Fatal(err)
	}
	first, err := cache.HashTreeRoot(val, d)
	if err != nil {
		t.Fatal(err)
	}
	// Sets are applied asynchronously.
	time.Sleep(10 * time.Millisecond)
	second, err := cache.HashTreeRoot(val, d)
	if err != nil {
		t.Fatal(err)
	}
	if first != want || second != want {
		t.Errorf("Cached roots %#x, %#x, want %#x", first, second, want)
	}
}

func TestRootCache_KeyedBySchema(t *testing.T) {
	cache, err := NewRootCache(100)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	// Same encoding, different tree shape.
	val := []interface{}{uint8(1), uint8(2)}
	short, long := List(Uint(8), 2), List(Uint(8), 64)
	r1, err := cache.HashTreeRoot(val, short)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	r2, err := cache.HashTreeRoot(val, long)
	if err != nil {
		t.Fatal(err)
	}
	want, err := HashTreeRoot(val, long)
	if err != nil {
		t.Fatal(err)
	}
	if r2 != want {
		t.Errorf("Root = %#x, want %#x", r2, want)
	}
	if r1 == r2 {
		t.Error("Different schemas shared a cached root")
	}
}

func TestRootCache_InvalidValue(t *testing.T) {
	cache, err := NewRootCache(0)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()
	if _, err := cache.HashTreeRoot(make([]byte, 3), ByteVector(4)); err == nil {
		t.Error("Expected error for short byte vector")
	}
}
