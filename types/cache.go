package types

import (
	"github.com/dgraph-io/ristretto"
	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
)

// DefaultRootCacheSize is the number of roots a RootCache keeps by default.
const DefaultRootCacheSize = 100000

var rootCacheKey = toBytes32([]byte("hash_tree_root_cache_key"))

// RootCache memoizes hash tree roots by content. Entries are keyed by the
// descriptor schema and the value's encoding, so a hit always returns the
// root an uncached computation would produce. It is safe for concurrent use.
type RootCache struct {
	hashCache *ristretto.Cache
}

// NewRootCache creates a cache holding up to maxRoots roots.
func NewRootCache(maxRoots int64) (*RootCache, error) {
	if maxRoots <= 0 {
		maxRoots = DefaultRootCacheSize
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxRoots * 10, // keys to track frequency of.
		MaxCost:     maxRoots,      // each root costs 1.
		BufferItems: 64,            // keys per Get buffer.
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create root cache")
	}
	return &RootCache{hashCache: cache}, nil
}

// HashTreeRoot returns the root of val under d, consulting the cache first.
func (c *RootCache) HashTreeRoot(val interface{}, d *Descriptor) ([32]byte, error) {
	enc, err := Encode(val, d)
	if err != nil {
		return [32]byte{}, err
	}
	key := cacheKey(d, enc)
	if cached, ok := c.hashCache.Get(key); ok {
		if root, ok := cached.([32]byte); ok {
			return root, nil
		}
	}
	root, err := HashTreeRoot(val, d)
	if err != nil {
		return [32]byte{}, err
	}
	c.hashCache.Set(key, root, 1)
	return root, nil
}

// Close stops the cache's background goroutines.
func (c *RootCache) Close() {
	c.hashCache.Close()
}

func cacheKey(d *Descriptor, enc []byte) []byte {
	data := make([]byte, 0, len(d.schema)+1+len(enc))
	data = append(data, d.schema...)
	data = append(data, 0)
	data = append(data, enc...)
	sum := highwayhash.Sum(data, rootCacheKey[:])
	return sum[:]
}

func toBytes32(x []byte) [32]byte {
	var y [32]byte
	copy(y[:], x)
	return y
}
