// Package hash provides the xxHash64 blob-identity hashing used to key
// the spatial predicate cache.
package hash

import "github.com/cespare/xxhash/v2"

// Blob computes the xxHash64 of a geometry blob's bytes, used as the
// cache key for the ST_* predicate functions so that ST_MinX, ST_MaxX,
// ST_MinY, and ST_MaxY invoked on the same row share one decode.
func Blob(data []byte) uint64 {
	return xxhash.Sum64(data)
}
