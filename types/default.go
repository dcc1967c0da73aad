package types

import (
	"github.com/holiman/uint256"
)

// Default returns the zero value of d in the form Encode accepts: zero
// integers, zeroed byte vectors, empty lists and recursively defaulted
// vectors and containers.
func Default(d *Descriptor) interface{} {
	switch d.kind {
	case KindUint:
		if d.bits <= 64 {
			return uint64(0)
		}
		return new(uint256.Int)
	case KindByteVector:
		return make([]byte, d.length)
	case KindByteList:
		return []byte{}
	case KindVector:
		out := make([]interface{}, d.length)
		for i := range out {
			out[i] = Default(d.elem)
		}
		return out
	case KindList:
		return []interface{}{}
	case KindContainer:
		out := make([]interface{}, len(d.fields))
		for i, f := range d.fields {
			out[i] = Default(f.Type)
		}
		return out
	}
	return nil
}
