package types

import (
	"encoding/binary"
	"math/bits"

	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/gohashtree"
)

// maxTreeDepth covers every limit representable in a uint64.
const maxTreeDepth = 64

// zeroHashes[i] is the root of a subtree of depth i whose leaves are all zero.
var zeroHashes [maxTreeDepth + 1][32]byte

func init() {
	for i := 1; i <= maxTreeDepth; i++ {
		zeroHashes[i] = hashPair(zeroHashes[i-1], zeroHashes[i-1])
	}
}

// ZeroHash returns the root of an all-zero subtree of the given depth.
func ZeroHash(depth int) [32]byte {
	return zeroHashes[depth]
}

func hashPair(a, b [32]byte) [32]byte {
	var buf [64]byte
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return sha256.Sum256(buf[:])
}

// treeDepth returns the depth of a tree with limit leaves rounded up to the
// next power of two.
func treeDepth(limit uint64) int {
	if limit <= 1 {
		return 0
	}
	return bits.Len64(limit - 1)
}

// Merkleize returns the root of a binary SHA-256 tree over chunks, padded with
// zero chunks up to the next power of two of limit. A limit of zero pads to
// the chunk count instead. An empty chunk list resolves to the zero subtree
// of the limit's depth. It fails with ErrCapacityExceeded if there are more
// chunks than the limit allows.
func Merkleize(chunks [][32]byte, limit uint64) ([32]byte, error) {
	count := uint64(len(chunks))
	if limit == 0 {
		limit = count
	}
	if count > limit {
		return [32]byte{}, errors.Wrapf(ErrCapacityExceeded, "%d chunks over limit %d", count, limit)
	}
	depth := treeDepth(limit)
	if count == 0 {
		return zeroHashes[depth], nil
	}
	layer := chunks
	for d := 0; d < depth; d++ {
		if len(layer)%2 == 1 {
			// Full slice expression so the caller's backing array is never written.
			layer = append(layer[:len(layer):len(layer)], zeroHashes[d])
		}
		next := make([][32]byte, len(layer)/2)
		if err := gohashtree.Hash(next, layer); err != nil {
			return [32]byte{}, errors.Wrapf(err, "could not hash tree layer %d", d)
		}
		layer = next
	}
	return layer[0], nil
}

// MixInLength binds a list root to its actual length:
// hash(root || uint64_le(length) zero-padded to 32 bytes).
func MixInLength(root [32]byte, length uint64) [32]byte {
	var chunk [32]byte
	binary.LittleEndian.PutUint64(chunk[:8], length)
	return hashPair(root, chunk)
}
