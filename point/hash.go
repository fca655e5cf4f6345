package point

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ContentHash derives a stable point identifier from value's bytes, the
// same content-addressing incdbscan's _utils.hash_ uses
// (xxhash.xxh64_intdigest(array.tobytes())) so that two insertions of the
// same coordinates — regardless of whether the caller's original slice was
// built from ints or floats, since the engine only accepts []float64
// values — always collapse onto one Point.
//
// Returned as a hex string rather than a raw uint64 so it composes cleanly
// as a map key and a graph/radiusindex vertex ID.
func ContentHash(value []float64) string {
	buf := make([]byte, 8*len(value))
	for i, v := range value {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}

	sum := xxhash.Sum64(buf)
	out := make([]byte, 16)
	const hex = "0123456789abcdef"
	for i := 0; i < 8; i++ {
		b := byte(sum >> (56 - 8*i))
		out[i*2] = hex[b>>4]
		out[i*2+1] = hex[b&0xf]
	}

	return string(out)
}
