package optimizer

import (
	"testing"

	"github.com/spriteforge/spriteforge/internal/thing"
)

func TestApplySlotMap_CloneOnlyOnChange(t *testing.T) {
	a := refThing(1, thing.CategoryItem, 5, 0, 9)
	b := refThing(2, thing.CategoryItem, 7)

	out := applySlotMap([]*thing.Thing{a, b}, func(id uint32) uint32 {
		if id == 9 {
			return 3
		}
		return id
	})

	if out[0] == a {
		t.Error("thing with a remapped slot must be cloned")
	}
	if out[1] != b {
		t.Error("thing with no remapped slot must be the original pointer")
	}

	slots := out[0].FrameGroups[0].SpriteIDs
	if slots[0] != 5 || slots[1] != 0 || slots[2] != 3 {
		t.Errorf("slots = %v, want [5 0 3]", slots)
	}

	// Empty slots never reach the map function.
	if a.FrameGroups[0].SpriteIDs[1] != 0 {
		t.Error("empty slot was touched")
	}
}

func TestRewriteCanonical_PassesThroughUnmapped(t *testing.T) {
	set := &thing.Set{
		Outfits: []*thing.Thing{refThing(1, thing.CategoryOutfit, 4, 8)},
	}
	out := rewriteCanonical(set, map[uint32]uint32{8: 4})

	slots := out.Outfits[0].FrameGroups[0].SpriteIDs
	if slots[0] != 4 || slots[1] != 4 {
		t.Errorf("slots = %v, want [4 4]", slots)
	}
}

func TestCollectLive_SkipsEmptyAndMissing(t *testing.T) {
	store := storeWith(t, map[uint32][]byte{1: []byte("x"), 2: []byte("y")})
	set := &thing.Set{
		Items:   []*thing.Thing{refThing(1, thing.CategoryItem, 1, 0, 2)},
		Effects: []*thing.Thing{refThing(2, thing.CategoryEffect, 2, 77)},
	}

	live, warnings := collectLive(set, store)

	if got := live.GetCardinality(); got != 2 {
		t.Errorf("live set has %d entries, want 2", got)
	}
	if !live.Contains(1) || !live.Contains(2) {
		t.Errorf("live set = %v, want {1, 2}", live.ToArray())
	}
	if live.Contains(0) {
		t.Error("empty slots must never be live")
	}
	if len(warnings) != 1 || warnings[0].SpriteID != 77 {
		t.Errorf("warnings = %v, want one for sprite 77", warnings)
	}
}

func TestCollectLive_DeduplicatesWarnings(t *testing.T) {
	store := storeWith(t, map[uint32][]byte{})
	set := &thing.Set{
		Items: []*thing.Thing{refThing(1, thing.CategoryItem, 42, 42, 42)},
	}

	_, warnings := collectLive(set, store)
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1 per unique (thing, sprite)", len(warnings))
	}
}
