package types

import (
	"github.com/pkg/errors"
)

// vectorSSZ handles Vector[elem, N].
type vectorSSZ struct{}

func newVectorSSZ() *vectorSSZ {
	return &vectorSSZ{}
}

func (v *vectorSSZ) elements(val interface{}, d *Descriptor) ([]interface{}, error) {
	seq, err := asSequence(val, d)
	if err != nil {
		return nil, err
	}
	if uint64(len(seq)) != d.length {
		return nil, errors.Wrapf(ErrLengthMismatch, "%s has %d elements", d, len(seq))
	}
	return seq, nil
}

func (v *vectorSSZ) Size(val interface{}, d *Descriptor) (uint64, error) {
	seq, err := v.elements(val, d)
	if err != nil {
		return 0, err
	}
	return sizeSequence(seq, d.elemAt)
}

func (v *vectorSSZ) Marshal(val interface{}, d *Descriptor, buf []byte, startOffset uint64) (uint64, error) {
	seq, err := v.elements(val, d)
	if err != nil {
		return 0, err
	}
	return marshalSequence(seq, d.elemAt, buf, startOffset)
}

func (v *vectorSSZ) Unmarshal(d *Descriptor, input []byte) (interface{}, error) {
	if d.fixed && uint64(len(input)) > d.fixedSize {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d trailing bytes after %s", uint64(len(input))-d.fixedSize, d)
	}
	return unmarshalSequence(input, int(d.length), d.elemAt)
}

func (v *vectorSSZ) Root(val interface{}, d *Descriptor) ([32]byte, error) {
	seq, err := v.elements(val, d)
	if err != nil {
		return [32]byte{}, err
	}
	return elementsRoot(seq, d.elem, d.chunkLimit())
}

func (d *Descriptor) elemAt(int) *Descriptor {
	return d.elem
}
