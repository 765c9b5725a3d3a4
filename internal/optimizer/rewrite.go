package optimizer

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/spriteforge/spriteforge/internal/sprite"
	"github.com/spriteforge/spriteforge/internal/thing"
)

// applySlotMap returns a copy of things where every non-zero sprite
// slot is remapped through fn. A thing is deep-copied the first time
// one of its slots actually changes; things with no changed slot are
// returned as the original pointer. The input things are never
// mutated.
func applySlotMap(things []*thing.Thing, fn func(uint32) uint32) []*thing.Thing {
	out := make([]*thing.Thing, len(things))
	for i, t := range things {
		nt := t
		cloned := false
		for gi, g := range t.FrameGroups {
			for si, id := range g.SpriteIDs {
				if id == sprite.EmptyID {
					continue
				}
				mapped := fn(id)
				if mapped == id {
					continue
				}
				if !cloned {
					nt = t.Clone()
					cloned = true
				}
				nt.FrameGroups[gi].SpriteIDs[si] = mapped
			}
		}
		out[i] = nt
	}
	return out
}

// rewriteCanonical replaces every duplicate sprite reference in every
// category with its canonical owner. IDs absent from the map are
// already canonical and pass through unchanged, which also covers
// dangling references.
func rewriteCanonical(set *thing.Set, canonical map[uint32]uint32) *thing.Set {
	out := &thing.Set{}
	for _, cat := range thing.Categories() {
		out.SetCategory(cat, applySlotMap(set.ByCategory(cat), func(id uint32) uint32 {
			if owner, ok := canonical[id]; ok {
				return owner
			}
			return id
		}))
	}
	return out
}

// collectLive scans every non-zero slot of the canonicalized things
// and returns the set of referenced sprite IDs that have a backing
// buffer. References with no backing buffer are reported as warnings
// and excluded from the live set, so compaction keeps the output
// identifier space dense; the offending slots are cleared during the
// final reference pass.
func collectLive(set *thing.Set, store *sprite.Store) (*roaring.Bitmap, []Warning) {
	live := roaring.NewBitmap()
	var warnings []Warning
	seen := make(map[Warning]struct{})

	for _, cat := range thing.Categories() {
		for _, t := range set.ByCategory(cat) {
			for _, g := range t.FrameGroups {
				for _, id := range g.SpriteIDs {
					if id == sprite.EmptyID {
						continue
					}
					if store.Has(id) {
						live.Add(id)
						continue
					}
					w := Warning{Category: cat, ThingID: t.ID, SpriteID: id}
					if _, ok := seen[w]; !ok {
						seen[w] = struct{}{}
						warnings = append(warnings, w)
					}
				}
			}
		}
	}

	return live, warnings
}
