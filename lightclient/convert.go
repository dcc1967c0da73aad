package lightclient

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/524119574/lcssz/types"
)

// fieldReader pulls typed fields out of a decoded container value. The first
// failure is kept in err and later reads return zero values.
type fieldReader struct {
	d      *types.Descriptor
	names  []types.Field
	fields []interface{}
	err    error
}

func newFieldReader(v interface{}, d *types.Descriptor) *fieldReader {
	r := &fieldReader{d: d, names: d.Fields()}
	fields, ok := v.([]interface{})
	if !ok || len(fields) != len(r.names) {
		r.err = errors.Wrapf(types.ErrUnsupportedValue, "%s: unexpected value %T", d.Name(), v)
		return r
	}
	r.fields = fields
	return r
}

func (r *fieldReader) fail(i int, v interface{}) {
	if r.err == nil {
		r.err = errors.Wrapf(types.ErrUnsupportedValue, "%s.%s: unexpected value %T", r.d.Name(), r.names[i].Name, v)
	}
}

func (r *fieldReader) uint64(i int) uint64 {
	if r.err != nil {
		return 0
	}
	x, ok := r.fields[i].(uint64)
	if !ok {
		r.fail(i, r.fields[i])
	}
	return x
}

func (r *fieldReader) uint256(i int) *uint256.Int {
	if r.err != nil {
		return nil
	}
	x, ok := r.fields[i].(*uint256.Int)
	if !ok {
		r.fail(i, r.fields[i])
	}
	return x
}

func (r *fieldReader) bytes(i int) []byte {
	if r.err != nil {
		return nil
	}
	b, ok := r.fields[i].([]byte)
	if !ok {
		r.fail(i, r.fields[i])
	}
	return b
}

func (r *fieldReader) branch(i int) [][]byte {
	if r.err != nil {
		return nil
	}
	seq, ok := r.fields[i].([]interface{})
	if !ok {
		r.fail(i, r.fields[i])
		return nil
	}
	out := make([][]byte, len(seq))
	for j, e := range seq {
		b, ok := e.([]byte)
		if !ok {
			r.fail(i, e)
			return nil
		}
		out[j] = b
	}
	return out
}

// nested decodes field i into dst.
func (r *fieldReader) nested(i int, dst typedValue) {
	if r.err != nil {
		return
	}
	if err := dst.FromSSZValue(r.fields[i]); err != nil {
		r.err = errors.Wrapf(err, "%s.%s", r.d.Name(), r.names[i].Name)
	}
}

func branchValue(branch [][]byte) []interface{} {
	out := make([]interface{}, len(branch))
	for i, b := range branch {
		out[i] = b
	}
	return out
}
