package types

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Containers, vectors and lists share one layout: a fixed region holding
// fixed-size members inline and a 4-byte offset for each variable-size
// member, followed by the variable-size payloads in member order.

type typeAtFn func(i int) *Descriptor

func asSequence(val interface{}, d *Descriptor) ([]interface{}, error) {
	seq, ok := val.([]interface{})
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedValue, "%s expects []interface{}, got %T", d.Name(), val)
	}
	return seq, nil
}

// checkOffset rejects offsets that do not fit the 4-byte offset field.
func checkOffset(offset uint64) error {
	if offset > math.MaxUint32 {
		return errors.Wrapf(ErrSchema, "offset %d exceeds 4-byte offset range", offset)
	}
	return nil
}

func sizeSequence(vals []interface{}, typeAt typeAtFn) (uint64, error) {
	var size uint64
	for i, v := range vals {
		t := typeAt(i)
		factory, err := SSZFactory(t)
		if err != nil {
			return 0, err
		}
		s, err := factory.Size(v, t)
		if err != nil {
			return 0, errors.Wrapf(err, "element %d", i)
		}
		if !t.fixed {
			s += BytesPerLengthOffset
		}
		size += s
	}
	return size, nil
}

func marshalSequence(vals []interface{}, typeAt typeAtFn, buf []byte, startOffset uint64) (uint64, error) {
	var fixedLen uint64
	for i := range vals {
		fixedLen += typeAt(i).headerSize()
	}
	index := startOffset
	varIndex := startOffset + fixedLen
	var err error
	for i, v := range vals {
		t := typeAt(i)
		if t.fixed {
			index, err = marshalAt(v, t, buf, index)
			if err != nil {
				return 0, errors.Wrapf(err, "element %d", i)
			}
			continue
		}
		offset := varIndex - startOffset
		if err := checkOffset(offset); err != nil {
			return 0, errors.Wrapf(err, "element %d", i)
		}
		binary.LittleEndian.PutUint32(buf[index:index+BytesPerLengthOffset], uint32(offset))
		index += BytesPerLengthOffset
		varIndex, err = marshalAt(v, t, buf, varIndex)
		if err != nil {
			return 0, errors.Wrapf(err, "element %d", i)
		}
	}
	return varIndex, nil
}

// unmarshalSequence decodes n members from input, which must span exactly
// the fixed region plus every variable payload.
func unmarshalSequence(input []byte, n int, typeAt typeAtFn) ([]interface{}, error) {
	var fixedLen uint64
	for i := 0; i < n; i++ {
		fixedLen += typeAt(i).headerSize()
	}
	total := uint64(len(input))
	if total < fixedLen {
		return nil, errors.Wrapf(ErrTruncatedInput, "fixed region needs %d bytes, have %d", fixedLen, total)
	}

	out := make([]interface{}, n)
	var offsets []uint64
	var varFields []int
	var pos uint64
	for i := 0; i < n; i++ {
		t := typeAt(i)
		if t.fixed {
			v, err := Decode(input[pos:pos+t.fixedSize], t)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = v
			pos += t.fixedSize
			continue
		}
		offsets = append(offsets, uint64(binary.LittleEndian.Uint32(input[pos:pos+BytesPerLengthOffset])))
		varFields = append(varFields, i)
		pos += BytesPerLengthOffset
	}

	if len(offsets) == 0 {
		if total != fixedLen {
			return nil, errors.Wrapf(ErrLengthMismatch, "%d trailing bytes after fixed region", total-fixedLen)
		}
		return out, nil
	}
	if offsets[0] != fixedLen {
		return nil, errors.Wrapf(ErrCorruptOffsetTable, "first offset %d, fixed region ends at %d", offsets[0], fixedLen)
	}
	for j, start := range offsets {
		end := total
		if j+1 < len(offsets) {
			end = offsets[j+1]
		}
		if start > end || end > total {
			return nil, errors.Wrapf(ErrCorruptOffsetTable, "element %d spans [%d, %d) of %d bytes", varFields[j], start, end, total)
		}
		i := varFields[j]
		v, err := Decode(input[start:end], typeAt(i))
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = v
	}
	return out, nil
}

// sequenceRoots returns the hash tree root of every member.
func sequenceRoots(vals []interface{}, typeAt typeAtFn) ([][32]byte, error) {
	roots := make([][32]byte, len(vals))
	for i, v := range vals {
		r, err := HashTreeRoot(v, typeAt(i))
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		roots[i] = r
	}
	return roots, nil
}

// packedElementsRoot packs the encodings of basic elements contiguously and
// Merkleizes them.
func packedElementsRoot(vals []interface{}, elem *Descriptor, limit uint64) ([32]byte, error) {
	buf := make([]byte, uint64(len(vals))*elem.fixedSize)
	var index uint64
	var err error
	for i, v := range vals {
		index, err = marshalAt(v, elem, buf, index)
		if err != nil {
			return [32]byte{}, errors.Wrapf(err, "element %d", i)
		}
	}
	return packedRoot(buf, limit)
}

// elementsRoot Merkleizes the elements of a vector or list under limit.
func elementsRoot(vals []interface{}, elem *Descriptor, limit uint64) ([32]byte, error) {
	if elem.isBasic() {
		return packedElementsRoot(vals, elem, limit)
	}
	roots, err := sequenceRoots(vals, func(int) *Descriptor { return elem })
	if err != nil {
		return [32]byte{}, err
	}
	return Merkleize(roots, limit)
}
