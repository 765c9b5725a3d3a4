package optimizer

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/spriteforge/spriteforge/internal/sprite"
	"github.com/spriteforge/spriteforge/internal/thing"
)

// compactStore renumbers live sprites into a dense 1..N identifier
// space. The live bitmap iterates in ascending order, so surviving
// sprites keep their relative order: if old IDs a < b both survive,
// new(a) < new(b). Buffers are copied into the new store.
func compactStore(store *sprite.Store, live *roaring.Bitmap) (*sprite.Store, map[uint32]uint32) {
	out := sprite.NewStore()
	remap := make(map[uint32]uint32, live.GetCardinality())

	next := uint32(1)
	it := live.Iterator()
	for it.HasNext() {
		old := it.Next()
		buf, ok := store.Get(old)
		if !ok {
			// Live IDs are collected against this store, so every one
			// has a buffer.
			continue
		}
		cp := make([]byte, len(buf))
		copy(cp, buf)
		if err := out.Put(next, cp); err != nil {
			// next is fresh and strictly ascending from 1, so a Put
			// failure means this loop's invariant is broken.
			panic(err)
		}
		remap[old] = next
		next++
	}

	return out, remap
}

// rewriteCompacted replaces every non-zero slot with its compacted
// identifier. A slot whose target has no new identifier (a dangling
// reference excluded from the live set) is cleared to empty rather
// than left pointing at nothing.
func rewriteCompacted(set *thing.Set, remap map[uint32]uint32) *thing.Set {
	out := &thing.Set{}
	for _, cat := range thing.Categories() {
		out.SetCategory(cat, applySlotMap(set.ByCategory(cat), func(id uint32) uint32 {
			return remap[id]
		}))
	}
	return out
}
