package ssz

import (
	fssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	"github.com/524119574/lcssz/types"
)

// Typed is implemented by Go types that carry their own SSZ schema.
type Typed interface {
	// Descriptor returns the schema of the type.
	Descriptor() *types.Descriptor
	// SSZValue returns the value in the in-memory form the descriptor expects.
	SSZValue() interface{}
}

// TypedUnmarshaler is implemented by Go types that can be filled from a
// decoded SSZ value.
type TypedUnmarshaler interface {
	Descriptor() *types.Descriptor
	FromSSZValue(v interface{}) error
}

type hashRoot interface {
	HashTreeRoot() ([32]byte, error)
}

// Encode serializes val under the descriptor d.
//
//	d := types.Container("Checkpoint",
//	    types.F("epoch", types.Uint(64)),
//	    types.F("root", types.ByteVector(32)),
//	)
//	encoded, err := Encode([]interface{}{uint64(3), root[:]}, d)
//	if err != nil {
//	    return fmt.Errorf("failed to encode: %v", err)
//	}
func Encode(val interface{}, d *types.Descriptor) ([]byte, error) {
	if d == nil {
		return nil, errors.New("cannot encode without a descriptor")
	}
	enc, err := types.Encode(val, d)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal for type: %v", d.Name())
	}
	return enc, nil
}

// Decode deserializes input, which must hold exactly one value of d.
func Decode(input []byte, d *types.Descriptor) (interface{}, error) {
	if d == nil {
		return nil, errors.New("cannot decode without a descriptor")
	}
	val, err := types.Decode(input, d)
	if err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal input into type: %v", d.Name())
	}
	return val, nil
}

// HashTreeRoot computes the 32-byte Merkle root of val under d.
func HashTreeRoot(val interface{}, d *types.Descriptor) ([32]byte, error) {
	if d == nil {
		return [32]byte{}, errors.New("cannot compute root without a descriptor")
	}
	root, err := types.HashTreeRoot(val, d)
	if err != nil {
		return [32]byte{}, errors.Wrapf(err, "could not tree hash type: %v", d.Name())
	}
	return root, nil
}

// Marshal a typed value and output the result into a byte slice.
// Values implementing fastssz's Marshaler are encoded through it; otherwise
// val must implement Typed.
func Marshal(val interface{}) ([]byte, error) {
	if val == nil {
		return nil, errors.New("untyped-value nil cannot be marshaled")
	}
	if v, ok := val.(fssz.Marshaler); ok {
		return v.MarshalSSZ()
	}
	v, ok := val.(Typed)
	if !ok {
		return nil, errors.Errorf("type %T has no SSZ schema", val)
	}
	return Encode(v.SSZValue(), v.Descriptor())
}

// Unmarshal SSZ encoded data into the value pointed to by val.
//
//	var header lightclient.BeaconBlockHeader
//	if err := Unmarshal(encodedBytes, &header); err != nil {
//	    return fmt.Errorf("failed to unmarshal: %v", err)
//	}
func Unmarshal(input []byte, val interface{}) error {
	if val == nil {
		return errors.New("cannot unmarshal into untyped, nil value")
	}
	if v, ok := val.(fssz.Unmarshaler); ok {
		return v.UnmarshalSSZ(input)
	}
	v, ok := val.(TypedUnmarshaler)
	if !ok {
		return errors.Errorf("type %T has no SSZ schema", val)
	}
	decoded, err := Decode(input, v.Descriptor())
	if err != nil {
		return err
	}
	return v.FromSSZValue(decoded)
}

// Root computes the hash tree root of a typed value.
func Root(val interface{}) ([32]byte, error) {
	if val == nil {
		return [32]byte{}, errors.New("untyped-value nil cannot be tree hashed")
	}
	if v, ok := val.(hashRoot); ok {
		return v.HashTreeRoot()
	}
	v, ok := val.(Typed)
	if !ok {
		return [32]byte{}, errors.Errorf("type %T has no SSZ schema", val)
	}
	return HashTreeRoot(v.SSZValue(), v.Descriptor())
}
