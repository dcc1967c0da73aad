package types

import (
	"github.com/pkg/errors"
)

// basicArraySSZ handles ByteVector[N]: a fixed array of bytes.
type basicArraySSZ struct{}

func newBasicArraySSZ() *basicArraySSZ {
	return &basicArraySSZ{}
}

func asBytes(val interface{}, d *Descriptor) ([]byte, error) {
	b, ok := val.([]byte)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedValue, "%s expects []byte, got %T", d, val)
	}
	return b, nil
}

func (b *basicArraySSZ) Size(val interface{}, d *Descriptor) (uint64, error) {
	data, err := asBytes(val, d)
	if err != nil {
		return 0, err
	}
	if _, err := EncodeBytesFixed(data, d.length); err != nil {
		return 0, err
	}
	return d.length, nil
}

func (b *basicArraySSZ) Marshal(val interface{}, d *Descriptor, buf []byte, startOffset uint64) (uint64, error) {
	data, err := asBytes(val, d)
	if err != nil {
		return 0, err
	}
	data, err = EncodeBytesFixed(data, d.length)
	if err != nil {
		return 0, err
	}
	return startOffset + uint64(copy(buf[startOffset:], data)), nil
}

func (b *basicArraySSZ) Unmarshal(d *Descriptor, input []byte) (interface{}, error) {
	if uint64(len(input)) > d.length {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d trailing bytes after %s", uint64(len(input))-d.length, d)
	}
	return DecodeBytesFixed(input, d.length)
}

func (b *basicArraySSZ) Root(val interface{}, d *Descriptor) ([32]byte, error) {
	data, err := asBytes(val, d)
	if err != nil {
		return [32]byte{}, err
	}
	if _, err := EncodeBytesFixed(data, d.length); err != nil {
		return [32]byte{}, err
	}
	return packedRoot(data, d.chunkLimit())
}
