package types

import (
	"strings"
)

var kindNames = [...]string{
	KindUint:       "uint",
	KindByteVector: "ByteVector",
	KindByteList:   "ByteList",
	KindVector:     "Vector",
	KindList:       "List",
	KindContainer:  "Container",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// String returns the canonical schema of the descriptor, for example
// "List[ByteVector[32],32]". Two descriptors with the same schema string
// encode and Merkleize identically.
func (d *Descriptor) String() string {
	return d.schema
}

func containerSchema(name string, fields []Field) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(f.Name)
		sb.WriteByte(':')
		sb.WriteString(f.Type.schema)
	}
	sb.WriteByte('}')
	return sb.String()
}
