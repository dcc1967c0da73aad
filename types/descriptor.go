package types

import (
	"fmt"
)

// BytesPerChunk is the size of a Merkleization leaf.
const BytesPerChunk = 32

// BytesPerLengthOffset is the size of an offset in the fixed region of a
// variable-size composite.
const BytesPerLengthOffset = 4

// Kind identifies which SSZ shape a Descriptor describes.
type Kind uint8

const (
	KindUint Kind = iota
	KindByteVector
	KindByteList
	KindVector
	KindList
	KindContainer
)

// Field is a named member of a container.
type Field struct {
	Name string
	Type *Descriptor
}

// Descriptor is the static schema of an SSZ value. Descriptors are immutable
// once built and may be shared freely between goroutines.
//
// The in-memory value accepted for each kind is:
//
//	Uint          any unsigned Go integer or *uint256.Int
//	ByteVector    []byte of exactly Length() bytes
//	ByteList      []byte of at most Limit() bytes
//	Vector        []interface{} of exactly Length() elements
//	List          []interface{} of at most Limit() elements
//	Container     []interface{} with one entry per field, in declared order
//
// Decoding yields uint64 for integers up to 64 bits and *uint256.Int for the
// wider ones.
type Descriptor struct {
	kind   Kind
	name   string
	bits   int
	length uint64
	elem   *Descriptor
	fields []Field

	fixed     bool
	fixedSize uint64
	schema    string
}

// Uint describes an unsigned integer of the given bit width.
// It panics if bits is not one of 8, 16, 32, 64, 128 or 256.
func Uint(bits int) *Descriptor {
	switch bits {
	case 8, 16, 32, 64, 128, 256:
	default:
		panic(fmt.Sprintf("ssz: unsupported integer width %d", bits))
	}
	return &Descriptor{
		kind:      KindUint,
		bits:      bits,
		fixed:     true,
		fixedSize: uint64(bits / 8),
		schema:    fmt.Sprintf("uint%d", bits),
	}
}

// ByteVector describes exactly n raw bytes.
func ByteVector(n uint64) *Descriptor {
	if n == 0 {
		panic("ssz: ByteVector length must be positive")
	}
	return &Descriptor{
		kind:      KindByteVector,
		length:    n,
		fixed:     true,
		fixedSize: n,
		schema:    fmt.Sprintf("ByteVector[%d]", n),
	}
}

// ByteList describes up to maxN raw bytes.
func ByteList(maxN uint64) *Descriptor {
	return &Descriptor{
		kind:   KindByteList,
		length: maxN,
		schema: fmt.Sprintf("ByteList[%d]", maxN),
	}
}

// Vector describes exactly n elements of elem.
func Vector(elem *Descriptor, n uint64) *Descriptor {
	if elem == nil {
		panic("ssz: Vector element type is nil")
	}
	if n == 0 {
		panic("ssz: Vector length must be positive")
	}
	d := &Descriptor{
		kind:   KindVector,
		elem:   elem,
		length: n,
		fixed:  elem.fixed,
		schema: fmt.Sprintf("Vector[%s,%d]", elem.schema, n),
	}
	if d.fixed {
		d.fixedSize = n * elem.fixedSize
	}
	return d
}

// List describes between zero and maxN elements of elem.
func List(elem *Descriptor, maxN uint64) *Descriptor {
	if elem == nil {
		panic("ssz: List element type is nil")
	}
	return &Descriptor{
		kind:   KindList,
		elem:   elem,
		length: maxN,
		schema: fmt.Sprintf("List[%s,%d]", elem.schema, maxN),
	}
}

// Container describes an ordered set of named fields. The name is only used
// for diagnostics. It panics on an empty field set or duplicate field names.
func Container(name string, fields ...Field) *Descriptor {
	if len(fields) == 0 {
		panic(fmt.Sprintf("ssz: container %s has no fields", name))
	}
	d := &Descriptor{
		kind:   KindContainer,
		name:   name,
		fields: make([]Field, len(fields)),
		fixed:  true,
	}
	copy(d.fields, fields)
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Type == nil {
			panic(fmt.Sprintf("ssz: field %s.%s has no type", name, f.Name))
		}
		if _, ok := seen[f.Name]; ok {
			panic(fmt.Sprintf("ssz: duplicate field %s.%s", name, f.Name))
		}
		seen[f.Name] = struct{}{}
		if !f.Type.fixed {
			d.fixed = false
		}
		d.fixedSize += f.Type.headerSize()
	}
	if !d.fixed {
		// Only the fixed region is known up front.
		d.fixedSize = 0
	}
	d.schema = containerSchema(name, d.fields)
	return d
}

// F is shorthand for building a Field.
func F(name string, typ *Descriptor) Field {
	return Field{Name: name, Type: typ}
}

// Kind returns the shape of the descriptor.
func (d *Descriptor) Kind() Kind { return d.kind }

// Name returns the container name, or the schema string for other kinds.
func (d *Descriptor) Name() string {
	if d.name != "" {
		return d.name
	}
	return d.schema
}

// Bits returns the width of an integer descriptor.
func (d *Descriptor) Bits() int { return d.bits }

// Length returns N for ByteVector and Vector descriptors.
func (d *Descriptor) Length() uint64 { return d.length }

// Limit returns maxN for ByteList and List descriptors.
func (d *Descriptor) Limit() uint64 { return d.length }

// Elem returns the element type of a Vector or List.
func (d *Descriptor) Elem() *Descriptor { return d.elem }

// Fields returns a copy of the fields of a container.
func (d *Descriptor) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// IsFixed reports whether every value of the descriptor encodes to the same
// number of bytes.
func (d *Descriptor) IsFixed() bool { return d.fixed }

// FixedSize returns the encoded size of a fixed-size descriptor and 0 for a
// variable-size one.
func (d *Descriptor) FixedSize() uint64 { return d.fixedSize }

// isBasic reports whether the descriptor packs into chunks alongside its
// siblings. Only integers do; byte vectors are composites of bytes whose
// root is their own packed Merkleization.
func (d *Descriptor) isBasic() bool { return d.kind == KindUint }

// headerSize is the room the descriptor takes in its parent's fixed region.
func (d *Descriptor) headerSize() uint64 {
	if d.fixed {
		return d.fixedSize
	}
	return BytesPerLengthOffset
}

// chunkLimit is the leaf count the Merkle tree of d is padded to.
func (d *Descriptor) chunkLimit() uint64 {
	switch d.kind {
	case KindByteVector, KindByteList:
		return chunkCount(d.length)
	case KindVector, KindList:
		if d.elem.isBasic() {
			perChunk := BytesPerChunk / d.elem.fixedSize
			limit := d.length / perChunk
			if d.length%perChunk != 0 {
				limit++
			}
			return limit
		}
		return d.length
	case KindContainer:
		return uint64(len(d.fields))
	}
	return 1
}

// chunkCount rounds size up to whole chunks without overflowing near MaxUint64.
func chunkCount(size uint64) uint64 {
	n := size / BytesPerChunk
	if size%BytesPerChunk != 0 {
		n++
	}
	return n
}
