package types

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// EncodeUint returns the bits/8 little-endian bytes of an unsigned integer.
// val may be any unsigned Go integer or a *uint256.Int.
func EncodeUint(val interface{}, bits int) ([]byte, error) {
	out := make([]byte, bits/8)
	if err := putUint(val, bits, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeUint reads a bits/8 byte little-endian integer from the front of
// input. Widths up to 64 bits decode to uint64, wider ones to *uint256.Int.
func DecodeUint(input []byte, bits int) (interface{}, error) {
	n := bits / 8
	if len(input) < n {
		return nil, errors.Wrapf(ErrTruncatedInput, "uint%d needs %d bytes, have %d", bits, n, len(input))
	}
	if bits <= 64 {
		var x uint64
		for i := n - 1; i >= 0; i-- {
			x = x<<8 | uint64(input[i])
		}
		return x, nil
	}
	be := make([]byte, n)
	for i := 0; i < n; i++ {
		be[n-1-i] = input[i]
	}
	return new(uint256.Int).SetBytes(be), nil
}

// EncodeBytesFixed returns value unchanged if it is exactly length bytes long.
func EncodeBytesFixed(value []byte, length uint64) ([]byte, error) {
	if uint64(len(value)) != length {
		return nil, errors.Wrapf(ErrLengthMismatch, "expected %d bytes, got %d", length, len(value))
	}
	return value, nil
}

// DecodeBytesFixed returns a copy of the first length bytes of input.
func DecodeBytesFixed(input []byte, length uint64) ([]byte, error) {
	if uint64(len(input)) < length {
		return nil, errors.Wrapf(ErrTruncatedInput, "expected %d bytes, have %d", length, len(input))
	}
	out := make([]byte, length)
	copy(out, input)
	return out, nil
}

func asUint64(val interface{}) (uint64, bool) {
	switch v := val.(type) {
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	}
	return 0, false
}

// putUint writes val little-endian into out, which is exactly bits/8 long.
func putUint(val interface{}, bits int, out []byte) error {
	if x, ok := asUint64(val); ok {
		if bits < 64 && x>>uint(bits) != 0 {
			return errors.Wrapf(ErrRange, "%d does not fit in uint%d", x, bits)
		}
		if bits <= 64 {
			for i := range out {
				out[i] = byte(x >> (8 * uint(i)))
			}
			return nil
		}
		binary.LittleEndian.PutUint64(out[:8], x)
		for i := 8; i < len(out); i++ {
			out[i] = 0
		}
		return nil
	}
	var v *uint256.Int
	switch t := val.(type) {
	case *uint256.Int:
		if t == nil {
			return errors.Wrap(ErrUnsupportedValue, "nil *uint256.Int")
		}
		v = t
	case uint256.Int:
		v = &t
	}
	if v == nil {
		return errors.Wrapf(ErrUnsupportedValue, "%T is not an unsigned integer", val)
	}
	if v.BitLen() > bits {
		return errors.Wrapf(ErrRange, "%s does not fit in uint%d", v.Hex(), bits)
	}
	be := v.Bytes32()
	for i := range out {
		out[i] = be[31-i]
	}
	return nil
}

type uintSSZ struct{}

func newUintSSZ() *uintSSZ {
	return &uintSSZ{}
}

func (u *uintSSZ) Size(val interface{}, d *Descriptor) (uint64, error) {
	return d.fixedSize, nil
}

func (u *uintSSZ) Marshal(val interface{}, d *Descriptor, buf []byte, startOffset uint64) (uint64, error) {
	end := startOffset + d.fixedSize
	if err := putUint(val, d.bits, buf[startOffset:end]); err != nil {
		return 0, err
	}
	return end, nil
}

func (u *uintSSZ) Unmarshal(d *Descriptor, input []byte) (interface{}, error) {
	if uint64(len(input)) > d.fixedSize {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d trailing bytes after uint%d", uint64(len(input))-d.fixedSize, d.bits)
	}
	return DecodeUint(input, d.bits)
}

func (u *uintSSZ) Root(val interface{}, d *Descriptor) ([32]byte, error) {
	var chunk [32]byte
	if err := putUint(val, d.bits, chunk[:d.fixedSize]); err != nil {
		return [32]byte{}, err
	}
	return chunk, nil
}
