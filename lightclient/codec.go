package lightclient

import (
	"github.com/pkg/errors"

	"github.com/524119574/lcssz/types"
)

// typedValue is the contract every container struct in this package meets.
type typedValue interface {
	Descriptor() *types.Descriptor
	SSZValue() interface{}
	FromSSZValue(v interface{}) error
}

func marshalTyped(v typedValue) ([]byte, error) {
	enc, err := types.Encode(v.SSZValue(), v.Descriptor())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal for type: %s", v.Descriptor().Name())
	}
	return enc, nil
}

func marshalTypedTo(dst []byte, v typedValue) ([]byte, error) {
	enc, err := marshalTyped(v)
	if err != nil {
		return nil, err
	}
	return append(dst, enc...), nil
}

func sizeTyped(v typedValue) int {
	size, err := types.DetermineSize(v.SSZValue(), v.Descriptor())
	if err != nil {
		return 0
	}
	return int(size)
}

func unmarshalTyped(buf []byte, v typedValue) error {
	decoded, err := types.Decode(buf, v.Descriptor())
	if err != nil {
		return errors.Wrapf(err, "could not unmarshal input into type: %s", v.Descriptor().Name())
	}
	return v.FromSSZValue(decoded)
}

func rootTyped(v typedValue) ([32]byte, error) {
	root, err := types.HashTreeRoot(v.SSZValue(), v.Descriptor())
	if err != nil {
		return [32]byte{}, errors.Wrapf(err, "could not tree hash type: %s", v.Descriptor().Name())
	}
	return root, nil
}
