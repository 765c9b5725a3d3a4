package thing

import "testing"

func newTestThing(id uint32, cat Category, spriteIDs ...uint32) *Thing {
	g := NewFrameGroup(GroupDefault, len(spriteIDs), 1, 1, 1, 1, 1, 1)
	copy(g.SpriteIDs, spriteIDs)
	return &Thing{ID: id, Category: cat, FrameGroups: []*FrameGroup{g}}
}

func TestThing_CloneIsDeep(t *testing.T) {
	orig := newTestThing(5, CategoryItem, 1, 2, 3)

	c := orig.Clone()
	c.FrameGroups[0].SpriteIDs[0] = 99

	if orig.FrameGroups[0].SpriteIDs[0] != 1 {
		t.Error("modifying a clone changed the original thing")
	}
	if c.ID != 5 || c.Category != CategoryItem {
		t.Error("clone did not preserve identity fields")
	}
}

func TestThing_SpriteCount(t *testing.T) {
	th := &Thing{
		ID:       1,
		Category: CategoryOutfit,
		FrameGroups: []*FrameGroup{
			NewFrameGroup(GroupIdle, 2, 2, 1, 4, 1, 1, 1),
			NewFrameGroup(GroupMoving, 2, 2, 1, 4, 1, 1, 8),
		},
	}
	want := 2*2*4 + 2*2*4*8
	if got := th.SpriteCount(); got != want {
		t.Errorf("SpriteCount() = %d, want %d", got, want)
	}
}

func TestSet_Categories(t *testing.T) {
	s := &Set{
		Items:    []*Thing{newTestThing(100, CategoryItem, 1)},
		Outfits:  []*Thing{newTestThing(1, CategoryOutfit, 2)},
		Missiles: []*Thing{newTestThing(1, CategoryMissile, 3)},
	}

	if got := len(s.ByCategory(CategoryItem)); got != 1 {
		t.Errorf("ByCategory(item) has %d entries, want 1", got)
	}
	if got := len(s.ByCategory(CategoryEffect)); got != 0 {
		t.Errorf("ByCategory(effect) has %d entries, want 0", got)
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}

	s.SetCategory(CategoryEffect, []*Thing{newTestThing(1, CategoryEffect, 4)})
	if s.Count() != 4 {
		t.Errorf("Count() after SetCategory = %d, want 4", s.Count())
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryItem, "item"},
		{CategoryOutfit, "outfit"},
		{CategoryEffect, "effect"},
		{CategoryMissile, "missile"},
		{Category(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
