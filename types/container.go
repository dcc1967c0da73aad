package types

import (
	"github.com/pkg/errors"
)

// containerSSZ handles Container{fields...}.
type containerSSZ struct{}

func newContainerSSZ() *containerSSZ {
	return &containerSSZ{}
}

func (c *containerSSZ) fields(val interface{}, d *Descriptor) ([]interface{}, error) {
	seq, err := asSequence(val, d)
	if err != nil {
		return nil, err
	}
	if len(seq) != len(d.fields) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%s has %d fields, got %d values", d.name, len(d.fields), len(seq))
	}
	return seq, nil
}

func (d *Descriptor) fieldAt(i int) *Descriptor {
	return d.fields[i].Type
}

// wrapField names the failing field so errors read like
// "BeaconBlockHeader.parent_root: expected 32 bytes, got 31: length mismatch".
func (d *Descriptor) wrapField(err error, i int) error {
	return errors.Wrapf(err, "%s.%s", d.name, d.fields[i].Name)
}

func (c *containerSSZ) Size(val interface{}, d *Descriptor) (uint64, error) {
	seq, err := c.fields(val, d)
	if err != nil {
		return 0, err
	}
	var size uint64
	for i, v := range seq {
		t := d.fields[i].Type
		s, err := DetermineSize(v, t)
		if err != nil {
			return 0, d.wrapField(err, i)
		}
		if !t.fixed {
			s += BytesPerLengthOffset
		}
		size += s
	}
	return size, nil
}

func (c *containerSSZ) Marshal(val interface{}, d *Descriptor, buf []byte, startOffset uint64) (uint64, error) {
	seq, err := c.fields(val, d)
	if err != nil {
		return 0, err
	}
	return marshalSequence(seq, d.fieldAt, buf, startOffset)
}

func (c *containerSSZ) Unmarshal(d *Descriptor, input []byte) (interface{}, error) {
	if d.fixed && uint64(len(input)) > d.fixedSize {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d trailing bytes after %s", uint64(len(input))-d.fixedSize, d.name)
	}
	seq, err := unmarshalSequence(input, len(d.fields), d.fieldAt)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", d.name)
	}
	return seq, nil
}

func (c *containerSSZ) Root(val interface{}, d *Descriptor) ([32]byte, error) {
	seq, err := c.fields(val, d)
	if err != nil {
		return [32]byte{}, err
	}
	roots := make([][32]byte, len(seq))
	for i, v := range seq {
		r, err := HashTreeRoot(v, d.fields[i].Type)
		if err != nil {
			return [32]byte{}, d.wrapField(err, i)
		}
		roots[i] = r
	}
	return Merkleize(roots, d.chunkLimit())
}
