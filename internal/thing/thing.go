// Package thing defines the game object records that reference
// sprites: items, outfits, effects, and missiles, each owning one or
// more frame groups of sprite references.
package thing

// Category identifies which of the four record collections a thing
// belongs to.
type Category int

const (
	CategoryItem Category = iota
	CategoryOutfit
	CategoryEffect
	CategoryMissile
)

// Categories returns all categories in their fixed order.
func Categories() []Category {
	return []Category{CategoryItem, CategoryOutfit, CategoryEffect, CategoryMissile}
}

func (c Category) String() string {
	switch c {
	case CategoryItem:
		return "item"
	case CategoryOutfit:
		return "outfit"
	case CategoryEffect:
		return "effect"
	case CategoryMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// Thing is a single game object definition. Things are treated as
// immutable by the optimizer: any change produces a deep copy so that
// holders of the original keep observing pre-optimization data.
type Thing struct {
	ID          uint32
	Category    Category
	FrameGroups []*FrameGroup
}

// Clone returns a deep copy of the thing, including all frame groups
// and their sprite ID arrays.
func (t *Thing) Clone() *Thing {
	out := &Thing{
		ID:       t.ID,
		Category: t.Category,
	}
	if t.FrameGroups != nil {
		out.FrameGroups = make([]*FrameGroup, len(t.FrameGroups))
		for i, g := range t.FrameGroups {
			out.FrameGroups[i] = g.Clone()
		}
	}
	return out
}

// SpriteCount returns the total number of sprite reference slots
// across all frame groups.
func (t *Thing) SpriteCount() int {
	n := 0
	for _, g := range t.FrameGroups {
		n += g.TotalSprites()
	}
	return n
}

// Set groups the four per-category ordered thing lists that make up a
// project's object definitions.
type Set struct {
	Items    []*Thing
	Outfits  []*Thing
	Effects  []*Thing
	Missiles []*Thing
}

// ByCategory returns the list for the given category. The returned
// slice is the set's own backing slice, not a copy.
func (s *Set) ByCategory(c Category) []*Thing {
	switch c {
	case CategoryItem:
		return s.Items
	case CategoryOutfit:
		return s.Outfits
	case CategoryEffect:
		return s.Effects
	case CategoryMissile:
		return s.Missiles
	default:
		return nil
	}
}

// SetCategory replaces the list for the given category.
func (s *Set) SetCategory(c Category, things []*Thing) {
	switch c {
	case CategoryItem:
		s.Items = things
	case CategoryOutfit:
		s.Outfits = things
	case CategoryEffect:
		s.Effects = things
	case CategoryMissile:
		s.Missiles = things
	}
}

// Count returns the total number of things across all categories.
func (s *Set) Count() int {
	return len(s.Items) + len(s.Outfits) + len(s.Effects) + len(s.Missiles)
}
