package types

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// listSSZ handles List[elem, maxN].
type listSSZ struct{}

func newListSSZ() *listSSZ {
	return &listSSZ{}
}

func (l *listSSZ) elements(val interface{}, d *Descriptor) ([]interface{}, error) {
	seq, err := asSequence(val, d)
	if err != nil {
		return nil, err
	}
	if uint64(len(seq)) > d.length {
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d elements exceed %s", len(seq), d)
	}
	return seq, nil
}

func (l *listSSZ) Size(val interface{}, d *Descriptor) (uint64, error) {
	seq, err := l.elements(val, d)
	if err != nil {
		return 0, err
	}
	return sizeSequence(seq, d.elemAt)
}

func (l *listSSZ) Marshal(val interface{}, d *Descriptor, buf []byte, startOffset uint64) (uint64, error) {
	seq, err := l.elements(val, d)
	if err != nil {
		return 0, err
	}
	return marshalSequence(seq, d.elemAt, buf, startOffset)
}

func (l *listSSZ) Unmarshal(d *Descriptor, input []byte) (interface{}, error) {
	total := uint64(len(input))
	if total == 0 {
		return []interface{}{}, nil
	}
	var count uint64
	if d.elem.fixed {
		if total%d.elem.fixedSize != 0 {
			return nil, errors.Wrapf(ErrLengthMismatch, "%d bytes is not a multiple of element size %d", total, d.elem.fixedSize)
		}
		count = total / d.elem.fixedSize
	} else {
		// The first offset points just past the offset table, so it
		// also tells how many elements there are.
		if total < BytesPerLengthOffset {
			return nil, errors.Wrapf(ErrTruncatedInput, "%d bytes cannot hold an offset", total)
		}
		first := uint64(binary.LittleEndian.Uint32(input[:BytesPerLengthOffset]))
		if first == 0 || first%BytesPerLengthOffset != 0 || first > total {
			return nil, errors.Wrapf(ErrCorruptOffsetTable, "first offset %d of %d bytes", first, total)
		}
		count = first / BytesPerLengthOffset
	}
	if count > d.length {
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d elements exceed %s", count, d)
	}
	return unmarshalSequence(input, int(count), d.elemAt)
}

func (l *listSSZ) Root(val interface{}, d *Descriptor) ([32]byte, error) {
	seq, err := l.elements(val, d)
	if err != nil {
		return [32]byte{}, err
	}
	root, err := elementsRoot(seq, d.elem, d.chunkLimit())
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(seq))), nil
}
