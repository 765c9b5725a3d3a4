package sprite

import (
	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a cheap content key for clustering byte-identical
// sprite candidates. Two buffers with equal content always produce the
// same fingerprint; the converse does not hold, so a fingerprint match
// must always be confirmed with an exact byte comparison before two
// sprites are merged.
type Fingerprint struct {
	Sum uint64
	Len int
}

// FingerprintOf computes the fingerprint of buf. It is deterministic
// across runs and platforms. An empty buffer is valid input and maps
// to a fixed fingerprint.
func FingerprintOf(buf []byte) Fingerprint {
	return Fingerprint{
		Sum: xxhash.Sum64(buf),
		Len: len(buf),
	}
}
