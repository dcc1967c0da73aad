package types

import (
	"github.com/pkg/errors"
)

// basicSliceSSZ handles ByteList[maxN]: a bounded slice of bytes.
type basicSliceSSZ struct{}

func newBasicSliceSSZ() *basicSliceSSZ {
	return &basicSliceSSZ{}
}

func checkByteListCapacity(data []byte, d *Descriptor) error {
	if uint64(len(data)) > d.length {
		return errors.Wrapf(ErrCapacityExceeded, "%d bytes exceed %s", len(data), d)
	}
	return nil
}

func (b *basicSliceSSZ) Size(val interface{}, d *Descriptor) (uint64, error) {
	data, err := asBytes(val, d)
	if err != nil {
		return 0, err
	}
	if err := checkByteListCapacity(data, d); err != nil {
		return 0, err
	}
	return uint64(len(data)), nil
}

func (b *basicSliceSSZ) Marshal(val interface{}, d *Descriptor, buf []byte, startOffset uint64) (uint64, error) {
	data, err := asBytes(val, d)
	if err != nil {
		return 0, err
	}
	if err := checkByteListCapacity(data, d); err != nil {
		return 0, err
	}
	return startOffset + uint64(copy(buf[startOffset:], data)), nil
}

func (b *basicSliceSSZ) Unmarshal(d *Descriptor, input []byte) (interface{}, error) {
	if err := checkByteListCapacity(input, d); err != nil {
		return nil, err
	}
	out := make([]byte, len(input))
	copy(out, input)
	return out, nil
}

func (b *basicSliceSSZ) Root(val interface{}, d *Descriptor) ([32]byte, error) {
	data, err := asBytes(val, d)
	if err != nil {
		return [32]byte{}, err
	}
	if err := checkByteListCapacity(data, d); err != nil {
		return [32]byte{}, err
	}
	root, err := packedRoot(data, d.chunkLimit())
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(data))), nil
}
