package optimizer

import (
	"bytes"

	"github.com/spriteforge/spriteforge/internal/sprite"
)

// resolveDuplicates maps every duplicate sprite ID to its canonical
// owner: the lowest ID with byte-identical content. IDs are scanned in
// ascending order, which is what makes the owner choice reproducible; a
// different traversal order would pick different owners.
//
// Fingerprints only cluster candidates; a merge is recorded only after
// an exact byte comparison, so a fingerprint collision between
// distinct contents can at worst add a bucket entry, never a wrong
// merge. IDs that are canonical to themselves do not appear in the map.
func resolveDuplicates(store *sprite.Store) map[uint32]uint32 {
	canonical := make(map[uint32]uint32)
	buckets := make(map[sprite.Fingerprint][]uint32)

	for _, id := range store.IDs() {
		buf, _ := store.Get(id)
		fp := sprite.FingerprintOf(buf)

		merged := false
		for _, owner := range buckets[fp] {
			ownerBuf, _ := store.Get(owner)
			if bytes.Equal(buf, ownerBuf) {
				canonical[id] = owner
				merged = true
				break
			}
		}
		if !merged {
			buckets[fp] = append(buckets[fp], id)
		}
	}

	return canonical
}
