package types

import (
	"github.com/pkg/errors"
)

// SSZAble is the codec for one kind of descriptor. Every method receives the
// descriptor it operates under so a single instance serves all descriptors
// of that kind.
type SSZAble interface {
	// Size validates val against d and returns its encoded length.
	Size(val interface{}, d *Descriptor) (uint64, error)
	// Marshal writes val into buf at startOffset and returns the offset just
	// past the written bytes. buf must have room for Size(val, d) bytes.
	Marshal(val interface{}, d *Descriptor, buf []byte, startOffset uint64) (uint64, error)
	// Unmarshal decodes input, which must be exactly the encoding of one value.
	Unmarshal(d *Descriptor, input []byte) (interface{}, error)
	// Root computes the hash tree root of val.
	Root(val interface{}, d *Descriptor) ([32]byte, error)
}

var (
	uintCodec       = newUintSSZ()
	byteVectorCodec = newBasicArraySSZ()
	byteListCodec   = newBasicSliceSSZ()
	vectorCodec     = newVectorSSZ()
	listCodec       = newListSSZ()
	containerCodec  = newContainerSSZ()
)

// SSZFactory returns the codec for the descriptor's kind.
func SSZFactory(d *Descriptor) (SSZAble, error) {
	if d == nil {
		return nil, errors.New("nil descriptor")
	}
	switch d.kind {
	case KindUint:
		return uintCodec, nil
	case KindByteVector:
		return byteVectorCodec, nil
	case KindByteList:
		return byteListCodec, nil
	case KindVector:
		return vectorCodec, nil
	case KindList:
		return listCodec, nil
	case KindContainer:
		return containerCodec, nil
	default:
		return nil, errors.Errorf("unsupported kind: %v", d.kind)
	}
}

// DetermineSize validates val against d and returns the length of its encoding.
func DetermineSize(val interface{}, d *Descriptor) (uint64, error) {
	factory, err := SSZFactory(d)
	if err != nil {
		return 0, err
	}
	return factory.Size(val, d)
}

// Encode serializes val under d.
func Encode(val interface{}, d *Descriptor) ([]byte, error) {
	factory, err := SSZFactory(d)
	if err != nil {
		return nil, err
	}
	size, err := factory.Size(val, d)
	if err != nil {
		return nil, err
	}
	// We pre-allocate the whole encoding and let each codec write in place.
	buf := make([]byte, size)
	end, err := factory.Marshal(val, d, buf, 0)
	if err != nil {
		return nil, err
	}
	if end != size {
		return nil, errors.Wrapf(ErrSchema, "wrote %d bytes, expected %d", end, size)
	}
	return buf, nil
}

// Decode deserializes input, which must hold exactly one value of d.
func Decode(input []byte, d *Descriptor) (interface{}, error) {
	factory, err := SSZFactory(d)
	if err != nil {
		return nil, err
	}
	return factory.Unmarshal(d, input)
}

// HashTreeRoot computes the Merkle root of val under d.
func HashTreeRoot(val interface{}, d *Descriptor) ([32]byte, error) {
	factory, err := SSZFactory(d)
	if err != nil {
		return [32]byte{}, err
	}
	return factory.Root(val, d)
}

func marshalAt(val interface{}, d *Descriptor, buf []byte, startOffset uint64) (uint64, error) {
	factory, err := SSZFactory(d)
	if err != nil {
		return 0, err
	}
	return factory.Marshal(val, d, buf, startOffset)
}
