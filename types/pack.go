package types

// Pack splits serialized bytes into 32-byte chunks, zero-padding the last one.
// Empty input yields no chunks; Merkleize resolves that to the zero leaf.
func Pack(serialized []byte) [][32]byte {
	if len(serialized) == 0 {
		return nil
	}
	chunks := make([][32]byte, chunkCount(uint64(len(serialized))))
	for i := range chunks {
		copy(chunks[i][:], serialized[i*BytesPerChunk:])
	}
	return chunks
}

// packedRoot Merkleizes bytes that are packed contiguously into chunks.
func packedRoot(serialized []byte, limit uint64) ([32]byte, error) {
	return Merkleize(Pack(serialized), limit)
}
