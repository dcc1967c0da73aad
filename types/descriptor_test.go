package types

import (
	"math"
	"testing"
)

func TestDescriptorSchema(t *testing.T) {
	tests := []struct {
		d    *Descriptor
		want string
	}{
		{d: Uint(64), want: "uint64"},
		{d: ByteVector(32), want: "ByteVector[32]"},
		{d: ByteList(256), want: "ByteList[256]"},
		{d: List(ByteVector(32), 32), want: "List[ByteVector[32],32]"},
		{d: Vector(Uint(8), 4), want: "Vector[uint8,4]"},
		{
			d:    Container("Checkpoint", F("epoch", Uint(64)), F("root", ByteVector(32))),
			want: "Checkpoint{epoch:uint64,root:ByteVector[32]}",
		},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDescriptorSizes(t *testing.T) {
	tests := []struct {
		name      string
		d         *Descriptor
		fixed     bool
		fixedSize uint64
	}{
		{name: "uint128", d: Uint(128), fixed: true, fixedSize: 16},
		{name: "byte list", d: ByteList(8), fixed: false},
		{name: "vector of byte vectors", d: Vector(ByteVector(48), 512), fixed: true, fixedSize: 48 * 512},
		{name: "vector of byte lists", d: Vector(ByteList(8), 2), fixed: false},
		{name: "list", d: List(Uint(64), 8), fixed: false},
		{
			name:      "fixed container",
			d:         Container("A", F("x", Uint(64)), F("y", ByteVector(96))),
			fixed:     true,
			fixedSize: 104,
		},
		{
			name:  "variable container",
			d:     Container("B", F("x", Uint(64)), F("y", ByteList(32))),
			fixed: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.d.IsFixed() != tt.fixed {
				t.Errorf("IsFixed() = %v, want %v", tt.d.IsFixed(), tt.fixed)
			}
			if tt.d.FixedSize() != tt.fixedSize {
				t.Errorf("FixedSize() = %d, want %d", tt.d.FixedSize(), tt.fixedSize)
			}
		})
	}
}

func TestChunkLimit(t *testing.T) {
	tests := []struct {
		d    *Descriptor
		want uint64
	}{
		{d: ByteVector(48), want: 2},
		{d: ByteList(256), want: 8},
		{d: List(Uint(64), 10), want: 3},
		{d: List(ByteVector(32), 32), want: 32},
		{d: Vector(ByteVector(48), 512), want: 512},
		{d: Container("C", F("a", Uint(8)), F("b", Uint(8)), F("c", Uint(8))), want: 3},
		{d: List(Uint(64), 1<<61), want: 1 << 59},
		{d: List(Uint(64), 1<<62), want: 1 << 60},
		{d: List(Uint(8), math.MaxUint64), want: math.MaxUint64/32 + 1},
		{d: List(Uint(256), 1<<63), want: 1 << 63},
		{d: ByteList(math.MaxUint64), want: math.MaxUint64/32 + 1},
	}
	for _, tt := range tests {
		if got := tt.d.chunkLimit(); got != tt.want {
			t.Errorf("%s chunkLimit() = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestDescriptorPanics(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{name: "uint7", build: func() { Uint(7) }},
		{name: "empty byte vector", build: func() { ByteVector(0) }},
		{name: "empty vector", build: func() { Vector(Uint(8), 0) }},
		{name: "nil list element", build: func() { List(nil, 4) }},
		{name: "empty container", build: func() { Container("Empty") }},
		{name: "duplicate field", build: func() { Container("Dup", F("a", Uint(8)), F("a", Uint(16))) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			tt.build()
		})
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	d := Container("A", F("x", Uint(64)))
	fields := d.Fields()
	fields[0].Name = "changed"
	if d.Fields()[0].Name != "x" {
		t.Error("Fields() exposed the descriptor's field slice")
	}
}

func TestKindString(t *testing.T) {
	if KindList.String() != "List" {
		t.Errorf("KindList.String() = %q", KindList.String())
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}
